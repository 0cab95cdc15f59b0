package model

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/Yat-Muk/vigil/internal/tui/handlers"
	"github.com/Yat-Muk/vigil/internal/tui/msg"
	"github.com/Yat-Muk/vigil/internal/tui/state"
)

// Router 事件路由器
type Router struct {
	stateMgr   *state.Manager
	keyHandler *handlers.KeyHandler
	cmdBuilder *handlers.CommandBuilder
	log        *zap.Logger
}

// NewRouter 創建路由器
func NewRouter(cfg *handlers.Config) *Router {
	cmdBuilder := handlers.NewCommandBuilder(cfg)
	keyHandler := handlers.NewKeyHandler(cfg.StateMgr, cmdBuilder)

	return &Router{
		stateMgr:   cfg.StateMgr,
		keyHandler: keyHandler,
		cmdBuilder: cmdBuilder,
		log:        cfg.Log,
	}
}

// InitModel 用於 Model.Init 調用
func (r *Router) InitModel() tea.Cmd {
	return tea.Batch(
		r.stateMgr.UI().Spinner.Tick,
		r.cmdBuilder.RefreshCmd(),
	)
}

// Update 適配 bubbletea 的 Update 簽名
func (r *Router) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	if cmd := r.routeMessage(message); cmd != nil {
		return nil, cmd
	}
	return nil, nil
}

// View 適配 bubbletea 的 View 簽名
func (r *Router) View() string {
	return r.stateMgr.Render()
}

// routeMessage 內部路由邏輯
func (r *Router) routeMessage(message tea.Msg) tea.Cmd {
	m := r.stateMgr

	switch msgType := message.(type) {

	// 監聽窗口大小變化消息
	case tea.WindowSizeMsg:
		m.UI().UpdateSize(msgType.Width, msgType.Height)
		m.Detail().Resize(msgType.Width, msgType.Height)
		m.Result().Resize(msgType.Width, msgType.Height)
		return nil

	case tea.KeyMsg:
		_, cmd := r.keyHandler.Handle(msgType, m)
		return cmd

	case spinner.TickMsg:
		if !m.UI().Loading && !m.Detail().Loading && m.Units().Loaded {
			return nil
		}
		var cmd tea.Cmd
		m.UI().Spinner, cmd = m.UI().Spinner.Update(msgType)
		return cmd

	case msg.UnitsLoadedMsg:
		ui := m.UI()
		ui.Loading = false

		if msgType.Err != nil {
			// 保留上一次的列表，只在狀態欄呈現失敗原因
			stderr := strings.TrimSpace(msgType.Err.Error())
			ui.SetStatus(state.StatusFatal, "服務列表刷新失敗", stderr)
			m.Units().Loaded = true
			r.log.Error("刷新單元列表失敗", zap.Error(msgType.Err))
			return nil
		}

		m.Units().SetRecords(msgType.Records)
		ui.SetStatus(state.StatusSuccess, fmt.Sprintf("✓ 刷新成功，共 %d 個服務", len(msgType.Records)), "")
		return nil

	case msg.ActionResultMsg:
		ui := m.UI()
		ui.Loading = false

		label := handlers.ActionLabel(msgType.Action)

		if msgType.Result.Ok() {
			ui.SetStatus(state.StatusSuccess, fmt.Sprintf("✓ %s %s 成功", label, msgType.Unit), "")
			// 動作成功後立即刷新列表，讓新狀態反映到表格
			ui.Loading = true
			return tea.Batch(ui.Spinner.Tick, r.cmdBuilder.RefreshCmd())
		}

		r.log.Warn("服務動作失敗",
			zap.String("action", string(msgType.Action)),
			zap.String("unit", msgType.Unit),
			zap.Int("code", msgType.Result.Code),
		)

		m.Result().SetResult(msgType.Action, msgType.Unit, msgType.Result)
		ui.SetStatus(state.StatusError, fmt.Sprintf("✗ %s %s 失敗", label, msgType.Unit), "")
		return ui.SwitchView(state.ActionResultView)

	case msg.StatusLoadedMsg:
		if msgType.Err != nil {
			m.UI().SetStatus(state.StatusError, fmt.Sprintf("獲取詳情失敗: %v", msgType.Err), "")
			m.Detail().Loading = false
			return m.UI().SwitchView(state.DashboardView)
		}

		m.Detail().SetContent(msgType.Unit, msgType.Text, msgType.PropsLine)
		return nil

	default:
		// 標準處理：同時更新 Spinner 和 TextInput（光標閃爍等內部消息）
		var cmd tea.Cmd
		m.UI().Spinner, cmd = m.UI().Spinner.Update(message)

		inputCmd := m.UI().UpdateInput(message)

		return tea.Batch(cmd, inputCmd)
	}
}
