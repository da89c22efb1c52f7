package clog

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

// newBufferLogger 返回写入内存缓冲区的 json 格式 logger（测试用）
func newBufferLogger(t *testing.T, level string, opts ...Option) (Logger, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	logger, err := New(
		&Config{Level: level, Format: "json", Output: "buffer"},
		append(opts, WithBuffer(buf))...,
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return logger, buf
}

func TestNew_DefaultConfig(t *testing.T) {
	logger, err := New(nil)
	if err != nil {
		t.Fatalf("New(nil) error = %v", err)
	}
	if logger == nil {
		t.Fatal("New(nil) returned nil logger")
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		config *Config
	}{
		{name: "bad level", config: &Config{Level: "verbose"}},
		{name: "bad format", config: &Config{Format: "xml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.config); err == nil {
				t.Error("New() 应返回错误")
			}
		})
	}
}

func TestLogOutput(t *testing.T) {
	logger, buf := newBufferLogger(t, "debug")

	logger.Info("disk map built", Int("volumes", 4), String("server", "EX01"))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("输出不是合法 JSON: %v", err)
	}
	if entry["msg"] != "disk map built" {
		t.Errorf("msg = %v", entry["msg"])
	}
	if entry["volumes"] != float64(4) {
		t.Errorf("volumes = %v", entry["volumes"])
	}
	if entry["server"] != "EX01" {
		t.Errorf("server = %v", entry["server"])
	}
}

func TestLevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(t, "warn")

	logger.Debug("debug message")
	logger.Info("info message")
	if buf.Len() != 0 {
		t.Errorf("warn 级别不应输出 debug/info 日志: %q", buf.String())
	}

	logger.Warn("warn message")
	if !strings.Contains(buf.String(), "warn message") {
		t.Error("warn 日志未输出")
	}
}

func TestSetLevel(t *testing.T) {
	logger, buf := newBufferLogger(t, "error")

	logger.Info("before")
	if buf.Len() != 0 {
		t.Fatal("error 级别不应输出 info 日志")
	}

	if err := logger.SetLevel(DebugLevel); err != nil {
		t.Fatalf("SetLevel() error = %v", err)
	}
	logger.Info("after")
	if !strings.Contains(buf.String(), "after") {
		t.Error("SetLevel 后 info 日志应输出")
	}
}

func TestWith(t *testing.T) {
	logger, buf := newBufferLogger(t, "info")

	child := logger.With(String("server", "EX01"))
	child.Info("extracted")

	if !strings.Contains(buf.String(), `"server":"EX01"`) {
		t.Errorf("预设字段未出现: %q", buf.String())
	}

	// 父 logger 不受影响
	buf.Reset()
	logger.Info("plain")
	if strings.Contains(buf.String(), "EX01") {
		t.Error("父 logger 不应携带子 logger 的字段")
	}
}

func TestWithNamespace(t *testing.T) {
	logger, buf := newBufferLogger(t, "info", WithNamespace("diskmap"))

	logger.WithNamespace("extract").Info("hello")

	if !strings.Contains(buf.String(), `"namespace":"diskmap.extract"`) {
		t.Errorf("namespace 字段错误: %q", buf.String())
	}
}

func TestContextFields(t *testing.T) {
	type ctxKey string
	logger, buf := newBufferLogger(t, "info", WithContextField(ctxKey("job-id"), "job_id"))

	ctx := context.WithValue(context.Background(), ctxKey("job-id"), "j-42")
	logger.InfoContext(ctx, "processing")

	if !strings.Contains(buf.String(), `"job_id":"j-42"`) {
		t.Errorf("context 字段未提取: %q", buf.String())
	}

	// 无对应值时不输出字段
	buf.Reset()
	logger.InfoContext(context.Background(), "processing")
	if strings.Contains(buf.String(), "job_id") {
		t.Error("缺失的 context 值不应产生字段")
	}
}

func TestParseLevel(t *testing.T) {
	for s, want := range map[string]Level{
		"debug": DebugLevel,
		"INFO":  InfoLevel,
		"Warn":  WarnLevel,
		"error": ErrorLevel,
		"fatal": FatalLevel,
	} {
		got, err := ParseLevel(s)
		if err != nil || got != want {
			t.Errorf("ParseLevel(%q) = %v, %v", s, got, err)
		}
	}

	if _, err := ParseLevel("verbose"); err == nil {
		t.Error("ParseLevel(verbose) 应返回错误")
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()

	// 所有方法都应为空操作且不 panic
	logger.Info("ignored", String("k", "v"))
	logger.Error("ignored")
	if l := logger.With(String("k", "v")); l != logger {
		t.Error("Discard().With() 应返回自身")
	}
	if err := logger.SetLevel(DebugLevel); err != nil {
		t.Errorf("SetLevel() error = %v", err)
	}
	logger.Flush()
}
