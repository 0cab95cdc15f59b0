package main

import (
	"context"

	"go.uber.org/zap"

	domainConfig "github.com/Yat-Muk/vigil/internal/domain/config"
	infraConfig "github.com/Yat-Muk/vigil/internal/infra/config"
	infraSystem "github.com/Yat-Muk/vigil/internal/infra/system"
	"github.com/Yat-Muk/vigil/internal/pkg/appctx"
	"github.com/Yat-Muk/vigil/internal/tui/handlers"
	"github.com/Yat-Muk/vigil/internal/tui/state"
)

type AppDependencies struct {
	Log           *zap.Logger
	Paths         *appctx.Paths
	Config        *domainConfig.Config
	Props         infraSystem.PropertyReader
	HandlerConfig *handlers.Config
}

// Close 釋放持有的外部連接
func (d *AppDependencies) Close() {
	if d.Props != nil {
		d.Props.Close()
	}
}

func initializeDependencies(log *zap.Logger, paths *appctx.Paths) (*AppDependencies, error) {
	// ==========================================
	// 1. 加載啟動配置（只讀）
	// ==========================================
	configRepo := infraConfig.NewFileRepository(paths.ConfigFile, log)

	// 文件缺失時倉庫返回默認值；文件非法必須在啟動時報錯，
	// 否則 systemctl_path 寫錯會靜默退回默認路徑
	cfg, err := configRepo.Load(context.Background())
	if err != nil {
		return nil, err
	}

	// ==========================================
	// 2. 基礎設施層 (Infrastructure Layer)
	// ==========================================
	runner := infraSystem.NewRunner(cfg.Systemd.SystemctlPath, cfg.Systemd.PkexecPath, log)
	collector := infraSystem.NewCollector(runner, cfg.Systemd.UnitType, log)

	// DBus 屬性讀取純屬補充信息，連不上就降級
	props, err := infraSystem.NewPropertyReader(log)
	if err != nil {
		log.Warn("DBus 不可用，詳情頁不顯示 PID/內存", zap.Error(err))
		props = nil
	}

	// ==========================================
	// 3. 狀態管理 (State Management)
	// ==========================================
	stateMgr := state.NewManager(&state.Config{
		Log:           log,
		InitialConfig: cfg,
	})

	// ==========================================
	// 4. TUI Handler 配置
	// ==========================================
	handlerCfg := &handlers.Config{
		Log:       log,
		StateMgr:  stateMgr,
		Collector: collector,
		Runner:    runner,
		Props:     props,
	}

	return &AppDependencies{
		Log:           log,
		Paths:         paths,
		Config:        cfg,
		Props:         props,
		HandlerConfig: handlerCfg,
	}, nil
}
