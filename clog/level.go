package clog

import (
	"fmt"
	"strings"
)

// Level 日志级别，数值与 log/slog 的级别对齐，
// 便于 handler 层直接换算为 slog.Level。
type Level int

const (
	// DebugLevel 调试输出，如单条磁盘描述符的构建过程
	DebugLevel Level = iota - 4
	// InfoLevel 正常流程，如一次提取完成的汇总
	InfoLevel
	// WarnLevel 可继续运行的异常，如 .env 文件缺失
	WarnLevel
	// ErrorLevel 出错但进程可恢复
	ErrorLevel
	// FatalLevel 记录后进程退出
	FatalLevel
)

var levelNames = map[Level]string{
	DebugLevel: "debug",
	InfoLevel:  "info",
	WarnLevel:  "warn",
	ErrorLevel: "error",
	FatalLevel: "fatal",
}

// String 返回级别的小写名称
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("level(%d)", l)
}

// ParseLevel 解析级别名称，不区分大小写。
// 无法识别时返回 InfoLevel 和错误，调用方可选择降级使用默认级别。
//
// 示例：
//
//	level, err := clog.ParseLevel(profile.Log.Level)
func ParseLevel(s string) (Level, error) {
	want := strings.ToLower(s)
	for level, name := range levelNames {
		if name == want {
			return level, nil
		}
	}
	return InfoLevel, fmt.Errorf("unknown log level: %s", s)
}
