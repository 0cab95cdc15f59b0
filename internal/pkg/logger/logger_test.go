package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// TestLogger_Init 測試日誌初始化
func TestLogger_Init(t *testing.T) {
	t.Run("初始化成功", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.OutputPath = filepath.Join(t.TempDir(), "vigil.log")

		log, err := New(cfg)
		require.NoError(t, err)
		assert.NotNil(t, log)
		defer log.Sync()
	})

	t.Run("非法級別返回錯誤", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Level = "shouting"
		cfg.OutputPath = filepath.Join(t.TempDir(), "vigil.log")

		_, err := New(cfg)
		assert.Error(t, err)
	})
}

// TestLogger_FileOutput 測試文件輸出
func TestLogger_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vigil.log")
	cfg := DefaultConfig()
	cfg.OutputPath = path
	cfg.Level = "debug"

	log, err := New(cfg)
	require.NoError(t, err)

	log.Info("test message", zap.String("unit", "ssh.service"))
	log.Sync()

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "test message")
	assert.Contains(t, string(content), "ssh.service")
}

// TestLogger_Levels 測試不同日誌級別
func TestLogger_Levels(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Level = "debug"
	cfg.OutputPath = filepath.Join(t.TempDir(), "vigil.log")

	log, err := New(cfg)
	require.NoError(t, err)
	defer log.Sync()

	assert.NotPanics(t, func() {
		log.Debug("debug message")
		log.Info("info message")
		log.Warn("warn message")
		log.Error("error message")
	})
}
