package config

import (
	"context"

	"github.com/ceyewan/diskmap/clog"
	"github.com/ceyewan/diskmap/normalize"
	"github.com/ceyewan/diskmap/xerrors"
)

// Profile 一次提取任务的配置档案。
//
// 对应的 yaml 形如：
//
//	server: "EX01"
//	servers_csv: "./Servers.csv"
//	databases_csv: "./MailboxDatabases.csv"
//	copies_csv: "./DatabaseCopies.csv"
//	rules: "PROD-:PRD_"
//	output:
//	  encoding: "json"
//	clog:
//	  level: "info"
//	  format: "console"
type Profile struct {
	// Server 目标服务器名，支持 "*" 和 "?" 通配符，大小写不敏感。
	Server string `mapstructure:"server"`

	// ServersCSV 逐服务器记录的 CSV 路径（DbPerVolume / DbMap 列）。
	ServersCSV string `mapstructure:"servers_csv"`

	// DatabasesCSV 逐数据库记录的 CSV 路径，可为空。
	DatabasesCSV string `mapstructure:"databases_csv"`

	// CopiesCSV 逐副本记录的 CSV 路径，可为空。
	CopiesCSV string `mapstructure:"copies_csv"`

	// Rules 紧凑格式的字面量替换规则（"pattern:replacement;..."），
	// 应用于数据库名和路径。规则模式大小写敏感，而 Viper 会把映射键
	// 统一转为小写，所以这里用字符串格式透传。
	Rules string `mapstructure:"rules"`

	// Output 提取结果载荷的输出配置。
	Output OutputConfig `mapstructure:"output"`

	// Log 日志配置。
	Log clog.Config `mapstructure:"clog"`
}

// OutputConfig 载荷序列化配置。
type OutputConfig struct {
	// Encoding 序列化格式：json | msgpack，默认 json。
	Encoding string `mapstructure:"encoding"`
}

// validate 设置默认值并验证档案
func (p *Profile) validate() error {
	if p.Output.Encoding == "" {
		p.Output.Encoding = "json"
	}
	if p.Server == "" {
		return xerrors.Wrap(xerrors.ErrInvalidInput, "profile: server is required")
	}
	if p.ServersCSV == "" {
		return xerrors.Wrap(xerrors.ErrInvalidInput, "profile: servers_csv is required")
	}
	return nil
}

// RuleSet 解析档案中的规则字符串为 normalize.Rules。
func (p *Profile) RuleSet() normalize.Rules {
	return normalize.Parse(p.Rules)
}

// LoadProfile 创建加载器、加载并解析出完整的提取档案。
//
// 来源优先级与 Loader 一致：环境变量 > .env > 环境特定配置 > 基础配置。
func LoadProfile(ctx context.Context, opts ...Option) (*Profile, error) {
	loader, err := New(opts...)
	if err != nil {
		return nil, err
	}
	if err := loader.Load(ctx); err != nil {
		return nil, err
	}

	var profile Profile
	if err := loader.Unmarshal(&profile); err != nil {
		return nil, xerrors.Wrap(err, "unmarshal profile")
	}
	if err := profile.validate(); err != nil {
		return nil, err
	}

	return &profile, nil
}
