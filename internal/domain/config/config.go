package config

import (
	"context"
	"path/filepath"

	"github.com/Yat-Muk/vigil/internal/pkg/errors"
)

// Repository 配置倉庫接口
// 程序只讀取啟動配置，從不回寫
type Repository interface {
	// Load 加載配置
	Load(ctx context.Context) (*Config, error)
}

// Config 主配置結構
type Config struct {
	Systemd SystemdConfig `yaml:"systemd"`
	UI      UIConfig      `yaml:"ui"`
	Log     LogConfig     `yaml:"log"`
}

// SystemdConfig 服務管理器相關配置
type SystemdConfig struct {
	// SystemctlPath pkexec 需要完整路徑才能提權執行
	SystemctlPath string `yaml:"systemctl_path"`
	// PkexecPath 提權包裝器
	PkexecPath string `yaml:"pkexec_path"`
	// UnitType 列表展示的單元類型
	UnitType string `yaml:"unit_type"`
}

// UIConfig 界面配置
type UIConfig struct {
	// AltScreen 是否使用備用屏幕緩衝區
	AltScreen bool `yaml:"alt_screen"`
}

// LogConfig 日誌配置
type LogConfig struct {
	Level      string `yaml:"level"`
	MaxSize    int    `yaml:"max_size"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAge     int    `yaml:"max_age"`
	Compress   bool   `yaml:"compress"`
}

// DefaultConfig 返回默認配置
func DefaultConfig() *Config {
	return &Config{
		Systemd: SystemdConfig{
			SystemctlPath: "/usr/bin/systemctl",
			PkexecPath:    "pkexec",
			UnitType:      "service",
		},
		UI: UIConfig{
			AltScreen: true,
		},
		Log: LogConfig{
			Level:      "info",
			MaxSize:    10,
			MaxBackups: 5,
			MaxAge:     30,
			Compress:   true,
		},
	}
}

// Validate 校驗配置
func (c *Config) Validate() error {
	if c.Systemd.SystemctlPath == "" || !filepath.IsAbs(c.Systemd.SystemctlPath) {
		return errors.Wrap(errors.ErrConfigInvalid, "CFG001", "systemctl_path 必須是絕對路徑")
	}
	if c.Systemd.PkexecPath == "" {
		return errors.Wrap(errors.ErrConfigInvalid, "CFG002", "pkexec_path 不能為空")
	}
	if c.Systemd.UnitType == "" {
		return errors.Wrap(errors.ErrConfigInvalid, "CFG003", "unit_type 不能為空")
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.Wrap(errors.ErrConfigInvalid, "CFG004", "log.level 必須是 debug/info/warn/error 之一")
	}

	return nil
}
