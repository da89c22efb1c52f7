package clog

import "context"

// discardLogger 丢弃所有日志的 Logger。
// 提取器在未显式配置日志时使用它作为默认值。
type discardLogger struct{}

var _ Logger = discardLogger{}

// Discard 返回一个静默的 Logger，所有输出被丢弃。
//
// 示例：
//
//	ex := extract.New() // 内部等价于 extract.New(extract.WithLogger(clog.Discard()))
func Discard() Logger {
	return discardLogger{}
}

func (discardLogger) Debug(string, ...Field) {}
func (discardLogger) Info(string, ...Field)  {}
func (discardLogger) Warn(string, ...Field)  {}
func (discardLogger) Error(string, ...Field) {}
func (discardLogger) Fatal(string, ...Field) {}

func (discardLogger) DebugContext(context.Context, string, ...Field) {}
func (discardLogger) InfoContext(context.Context, string, ...Field)  {}
func (discardLogger) WarnContext(context.Context, string, ...Field)  {}
func (discardLogger) ErrorContext(context.Context, string, ...Field) {}
func (discardLogger) FatalContext(context.Context, string, ...Field) {}

func (d discardLogger) With(...Field) Logger           { return d }
func (d discardLogger) WithNamespace(...string) Logger { return d }

func (discardLogger) SetLevel(Level) error { return nil }
func (discardLogger) Flush()               {}
