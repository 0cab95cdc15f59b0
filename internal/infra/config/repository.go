package config

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	domainConfig "github.com/Yat-Muk/vigil/internal/domain/config"
)

// FileRepository 基於文件的只讀配置倉庫
type FileRepository struct {
	filePath string
	logger   *zap.Logger
}

func NewFileRepository(path string, logger *zap.Logger) *FileRepository {
	return &FileRepository{
		filePath: path,
		logger:   logger,
	}
}

// Load 加載配置
// 文件不存在時返回默認配置；文件存在但非法時返回錯誤
func (r *FileRepository) Load(ctx context.Context) (*domainConfig.Config, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		r.logger.Info("配置文件不存在，使用默認配置", zap.String("path", r.filePath))
		return domainConfig.DefaultConfig(), nil
	}

	content, err := os.ReadFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("讀取配置文件失敗: %w", err)
	}

	// 以默認值為基礎解析，未出現的字段保持默認
	cfg := domainConfig.DefaultConfig()
	if err := yaml.Unmarshal(content, cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件失敗: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r.logger.Debug("配置加載成功", zap.String("path", r.filePath))
	return cfg, nil
}
