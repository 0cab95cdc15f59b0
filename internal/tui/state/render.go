package state

import (
	"fmt"

	"github.com/Yat-Muk/vigil/internal/tui/view"
)

// Render - 安全渲染視圖
func (m *Manager) Render() string {
	if !m.units.Loaded {
		return view.RenderLoading("正在讀取服務列表", m.ui.Spinner)
	}

	width := m.ui.Width
	if width == 0 {
		width = 80
	}

	// 獲取全局狀態消息
	statusMsg := m.ui.Status.Message
	if m.ui.Status.Detail != "" {
		statusMsg = fmt.Sprintf("%s\n%s", statusMsg, m.ui.Status.Detail)
	}

	switch m.ui.CurrentView {
	case DetailView:
		return view.RenderDetail(
			m.detail.Unit,
			m.detail.PropsLine,
			m.detail.Viewport,
			m.detail.ViewportReady,
			m.detail.Loading,
			m.ui.Spinner,
		)

	case ActionResultView:
		return view.RenderActionResult(
			string(m.result.Action),
			m.result.Unit,
			m.result.Viewport,
			m.result.ViewportReady,
			m.result.Content(),
		)

	default:
		selected, hasSelection := m.units.Selected()
		return view.RenderDashboard(view.DashboardData{
			Records:      m.units.Visible(),
			Total:        len(m.units.Records),
			UnitType:     m.appConfig.Systemd.UnitType,
			Cursor:       m.units.Cursor,
			Filter:       m.units.Filter,
			FilterMode:   m.ui.FilterMode,
			TextInput:    m.ui.TextInput,
			SortColumn:   m.units.SortColumn,
			SortAsc:      m.units.SortAsc,
			Selected:     selected,
			HasSelection: hasSelection,
			Width:        width,
			Height:       m.ui.Height,
			Loading:      m.ui.Loading,
			Spinner:      m.ui.Spinner,
			StatusMsg:    statusMsg,
		})
	}
}
