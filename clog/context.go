package clog

import (
	"context"
	"log/slog"
)

// extractContextFields 从 context 中提取配置的字段。
func extractContextFields(ctx context.Context, options *options) []slog.Attr {
	if ctx == nil || options == nil || len(options.contextFields) == 0 {
		return nil
	}

	attrs := make([]slog.Attr, 0, len(options.contextFields))
	for _, cf := range options.contextFields {
		if val := ctx.Value(cf.Key); val != nil {
			attrs = append(attrs, slog.Any(cf.FieldName, val))
		}
	}
	return attrs
}
