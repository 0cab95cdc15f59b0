package model

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Model Bubble Tea 入口模型
// 本身不持有狀態，所有消息交給 Router 分發
type Model struct {
	router *Router
}

func NewModel(router *Router) *Model {
	return &Model{
		router: router,
	}
}

// Init 觸發首次列表刷新
func (m *Model) Init() tea.Cmd {
	return m.router.InitModel()
}

// Update 消息循環入口
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := m.router.Update(msg)
	return m, cmd
}

func (m *Model) View() string {
	return m.router.View()
}
