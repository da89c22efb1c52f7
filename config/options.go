package config

import "github.com/ceyewan/diskmap/clog"

// Option 配置选项模式
type Option func(*Options)

// Options 加载器配置
type Options struct {
	Name      string      // 配置文件名称（不含扩展名）
	Paths     []string    // 配置文件搜索路径
	FileType  string      // 配置文件类型 (yaml, json, etc.)
	EnvPrefix string      // 环境变量前缀
	Logger    clog.Logger // 加载与重载过程中的日志输出，默认静默
}

// defaultOptions 返回默认加载器配置
func defaultOptions() *Options {
	return &Options{
		Name:      "profile",
		Paths:     []string{".", "./config"},
		FileType:  "yaml",
		EnvPrefix: "DISKMAP",
	}
}

// WithConfigName 设置配置文件名称（不带扩展名）
func WithConfigName(name string) Option {
	return func(o *Options) {
		o.Name = name
	}
}

// WithConfigPath 添加配置文件搜索路径
func WithConfigPath(path string) Option {
	return func(o *Options) {
		o.Paths = append(o.Paths, path)
	}
}

// WithConfigPaths 设置配置文件搜索路径（覆盖默认值）
func WithConfigPaths(paths ...string) Option {
	return func(o *Options) {
		o.Paths = paths
	}
}

// WithConfigType 设置配置文件类型 (yaml, json, etc.)
func WithConfigType(typ string) Option {
	return func(o *Options) {
		o.FileType = typ
	}
}

// WithEnvPrefix 设置环境变量前缀
func WithEnvPrefix(prefix string) Option {
	return func(o *Options) {
		o.EnvPrefix = prefix
	}
}

// WithLogger 设置加载器使用的日志记录器
func WithLogger(l clog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}
