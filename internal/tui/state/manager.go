package state

import (
	"go.uber.org/zap"

	domainConfig "github.com/Yat-Muk/vigil/internal/domain/config"
)

// Config 初始化配置
type Config struct {
	Log           *zap.Logger
	InitialConfig *domainConfig.Config
}

// Manager 狀態管理器 (State Container)
type Manager struct {
	log *zap.Logger

	// 各個子狀態模塊
	ui     *UIState
	units  *UnitsState
	detail *DetailState
	result *ResultState

	appConfig *domainConfig.Config
}

// NewManager 創建狀態管理器
func NewManager(cfg *Config) *Manager {
	m := &Manager{
		log:       cfg.Log,
		appConfig: cfg.InitialConfig,
	}
	if m.appConfig == nil {
		m.appConfig = domainConfig.DefaultConfig()
	}

	m.ui = NewUIState()
	m.units = NewUnitsState()
	m.detail = NewDetailState()
	m.result = NewResultState()

	return m
}

// Getters 訪問器

func (m *Manager) UI() *UIState                    { return m.ui }
func (m *Manager) Units() *UnitsState              { return m.units }
func (m *Manager) Detail() *DetailState            { return m.detail }
func (m *Manager) Result() *ResultState            { return m.result }
func (m *Manager) AppConfig() *domainConfig.Config { return m.appConfig }
