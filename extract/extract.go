// Package extract 提供容量规划 CSV 记录的提取前端。
// 把已解析的行记录变换为下游部署机制可消费的结构：磁盘映射、
// 数据库属性列表、数据库副本列表。
//
// 特性：
//   - 纯内存变换，不做文件 I/O，不访问任何在线服务
//   - 所有错误立即终止整次提取，不返回部分结果
//   - 服务器名匹配不区分大小写，支持 "*" 和 "?" 通配符
//
// 基本使用：
//
//	ex := extract.New(extract.WithLogger(logger))
//	descriptors, err := ex.DiskMap(records, "EX01", rules)
package extract

import (
	"github.com/ceyewan/diskmap/clog"
)

// Extractor 提取器实例，持有日志等横切依赖。
//
// 自身无状态，所有方法都是对参数的纯变换，可并发使用。
type Extractor struct {
	logger clog.Logger
}

// Option 函数式选项，用于配置 Extractor 实例。
type Option func(*Extractor)

// WithLogger 注入日志实例，默认使用 clog.Discard()。
func WithLogger(logger clog.Logger) Option {
	return func(e *Extractor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New 创建提取器。
func New(opts ...Option) *Extractor {
	e := &Extractor{
		logger: clog.Discard(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
