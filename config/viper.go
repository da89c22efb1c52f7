package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/ceyewan/diskmap/clog"
	"github.com/ceyewan/diskmap/xerrors"
)

// loader 基于 Viper 的 Loader 实现。
// 按优先级合并：环境变量 > .env > 环境特定配置 > 基础配置。
type loader struct {
	v       *viper.Viper
	opts    *Options
	log     clog.Logger
	watcher *keyWatcher
}

func newLoader(opts ...Option) (Loader, error) {
	options := defaultOptions()
	for _, o := range opts {
		o(options)
	}

	log := options.Logger
	if log == nil {
		log = clog.Discard()
	}

	return &loader{
		v:       viper.New(),
		opts:    options,
		log:     log.WithNamespace("config"),
		watcher: newKeyWatcher(),
	}, nil
}

// Load 加载并合并所有配置来源，随后开启文件监听。
func (l *loader) Load(ctx context.Context) error {
	l.v.SetConfigName(l.opts.Name)
	l.v.SetConfigType(l.opts.FileType)
	for _, path := range l.opts.Paths {
		l.v.AddConfigPath(path)
	}

	// 环境变量优先级最高，先行绑定
	l.v.SetEnvPrefix(l.opts.EnvPrefix)
	l.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	l.v.AutomaticEnv()

	if err := l.mergeDotEnv(); err != nil {
		l.log.Warn("skipping .env files", clog.Error(err))
	}

	if err := l.v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return xerrors.Wrapf(err, "failed to read config file %s", l.opts.Name)
		}
		l.log.Warn("no configuration file found", clog.String("name", l.opts.Name))
	}

	if err := l.mergeOverlay(); err != nil {
		return err
	}

	if err := l.Validate(); err != nil {
		return err
	}

	l.watcher.snapshot(l.v.Get)

	l.v.OnConfigChange(func(fsnotify.Event) {
		l.reload()
	})
	l.v.WatchConfig()

	return nil
}

// reload 在配置文件变更后重新合并覆盖层并通知订阅者。
func (l *loader) reload() {
	if err := l.mergeOverlay(); err != nil {
		l.log.Error("failed to reload overlay config", clog.Error(err))
	}
	if err := l.mergeDotEnv(); err != nil {
		l.log.Warn("skipping .env files on reload", clog.Error(err))
	}
	for _, key := range l.watcher.changed(l.v.Get) {
		l.log.Info("configuration key changed", clog.String("key", key))
	}
}

// mergeDotEnv 从工作目录及各搜索路径加载 .env 文件。
// 所有候选位置都不存在时返回最后一个错误。
func (l *loader) mergeDotEnv() error {
	candidates := []string{".env"}
	for _, path := range l.opts.Paths {
		candidates = append(candidates, filepath.Join(path, ".env"))
	}

	var lastErr error
	loaded := false
	for _, candidate := range candidates {
		if err := godotenv.Load(candidate); err != nil {
			lastErr = err
			continue
		}
		loaded = true
	}

	if !loaded {
		return lastErr
	}
	return nil
}

// mergeOverlay 合并环境特定配置文件（如 profile.staging.yaml）。
// 由 <EnvPrefix>_ENV 环境变量选择环境名，未设置时不做任何事。
func (l *loader) mergeOverlay() error {
	env := os.Getenv(l.opts.EnvPrefix + "_ENV")
	if env == "" {
		return nil
	}

	overlayName := l.opts.Name + "." + env
	l.v.SetConfigName(overlayName)
	defer l.v.SetConfigName(l.opts.Name)

	if err := l.v.MergeInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return xerrors.Wrapf(err, "failed to merge overlay config %s", overlayName)
		}
		l.log.Info("no overlay configuration for environment", clog.String("env", env))
	}
	return nil
}

// Get 根据 key 获取原始配置值
func (l *loader) Get(key string) any {
	return l.v.Get(key)
}

// Unmarshal 将整个配置反序列化到结构体
func (l *loader) Unmarshal(v any) error {
	return l.v.Unmarshal(v)
}

// UnmarshalKey 将指定 key 的配置反序列化到结构体
func (l *loader) UnmarshalKey(key string, v any) error {
	return l.v.UnmarshalKey(key, v)
}

// Watch 订阅指定 key 的变更事件，取消 ctx 即退订并关闭通道。
func (l *loader) Watch(ctx context.Context, key string) (<-chan Event, error) {
	ch := l.watcher.subscribe(key, l.v.Get(key))

	go func() {
		<-ctx.Done()
		l.watcher.unsubscribe(key, ch)
	}()

	return ch, nil
}

// Validate 验证配置非空
func (l *loader) Validate() error {
	if len(l.v.AllSettings()) == 0 {
		return xerrors.Wrapf(ErrValidationFailed, "configuration is empty")
	}
	return nil
}
