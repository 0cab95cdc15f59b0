package handlers

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Yat-Muk/vigil/internal/domain/unit"
	"github.com/Yat-Muk/vigil/internal/tui/constants"
	"github.com/Yat-Muk/vigil/internal/tui/state"
)

// KeyHandler 核心處理器：負責全局導航和請求分發
type KeyHandler struct {
	stateMgr   *state.Manager
	cmdBuilder *CommandBuilder
}

func NewKeyHandler(stateMgr *state.Manager, cmdBuilder *CommandBuilder) *KeyHandler {
	return &KeyHandler{
		stateMgr:   stateMgr,
		cmdBuilder: cmdBuilder,
	}
}

// actionKeys 按鍵到控制動作的映射
var actionKeys = map[string]unit.Action{
	constants.KeyStart:   unit.ActionStart,
	constants.KeyStop:    unit.ActionStop,
	constants.KeyRestart: unit.ActionRestart,
	constants.KeyReload:  unit.ActionReload,
	constants.KeyEnable:  unit.ActionEnable,
	constants.KeyDisable: unit.ActionDisable,
	constants.KeyMask:    unit.ActionMask,
	constants.KeyUnmask:  unit.ActionUnmask,
}

// actionLabels 動作的狀態欄顯示名
var actionLabels = map[unit.Action]string{
	unit.ActionStart:   "啟動",
	unit.ActionStop:    "停止",
	unit.ActionRestart: "重啟",
	unit.ActionReload:  "重載",
	unit.ActionEnable:  "啟用",
	unit.ActionDisable: "禁用",
	unit.ActionMask:    "屏蔽",
	unit.ActionUnmask:  "解除屏蔽",
}

// ActionLabel 返回動作的中文名
func ActionLabel(a unit.Action) string {
	if label, ok := actionLabels[a]; ok {
		return label
	}
	return string(a)
}

// Handle 處理全局按鍵
func (h *KeyHandler) Handle(msg tea.KeyMsg, m *state.Manager) (*state.Manager, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	// 過濾輸入模式攔截所有按鍵
	if m.UI().FilterMode {
		return h.handleFilterInput(msg, m)
	}

	switch m.UI().CurrentView {
	case state.DetailView:
		return h.handleSubpageKeys(msg, m, func() tea.Cmd {
			var cmd tea.Cmd
			m.Detail().Viewport, cmd = m.Detail().Viewport.Update(msg)
			return cmd
		})

	case state.ActionResultView:
		return h.handleSubpageKeys(msg, m, func() tea.Cmd {
			var cmd tea.Cmd
			m.Result().Viewport, cmd = m.Result().Viewport.Update(msg)
			return cmd
		})

	default:
		return h.handleDashboardKeys(msg, m)
	}
}

// handleFilterInput 過濾輸入模式：逐鍵實時更新過濾詞
func (h *KeyHandler) handleFilterInput(msg tea.KeyMsg, m *state.Manager) (*state.Manager, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		// 取消並清除過濾
		m.UI().ExitFilterMode()
		m.Units().SetFilter("")
		return m, nil

	case tea.KeyEnter:
		// 確認當前過濾詞
		m.UI().ExitFilterMode()
		return m, nil

	default:
		cmd := m.UI().UpdateInput(msg)
		m.Units().SetFilter(m.UI().GetInputBuffer())
		return m, cmd
	}
}

// handleSubpageKeys 詳情/結果子頁面：返回或滾動
func (h *KeyHandler) handleSubpageKeys(msg tea.KeyMsg, m *state.Manager, scroll func() tea.Cmd) (*state.Manager, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		return m, m.UI().SwitchView(state.DashboardView)
	default:
		return m, scroll()
	}
}

// handleDashboardKeys 儀表盤主視圖按鍵
func (h *KeyHandler) handleDashboardKeys(msg tea.KeyMsg, m *state.Manager) (*state.Manager, tea.Cmd) {
	key := msg.String()

	switch key {
	case constants.KeyQuit:
		return m, tea.Quit

	case "up", "k":
		m.Units().MoveCursor(-1)
		return m, nil

	case "down", "j":
		m.Units().MoveCursor(1)
		return m, nil

	case "pgup":
		m.Units().MoveCursor(-10)
		return m, nil

	case "pgdown":
		m.Units().MoveCursor(10)
		return m, nil

	case "enter":
		selected, ok := m.Units().Selected()
		if !ok {
			m.UI().SetStatus(state.StatusWarn, "⚠️ 沒有選中的服務", "")
			return m, nil
		}
		m.Detail().Loading = true
		m.Detail().Unit = selected.Unit
		switchCmd := m.UI().SwitchView(state.DetailView)
		return m, tea.Batch(switchCmd, m.UI().Spinner.Tick, h.cmdBuilder.StatusCmd(selected.Unit))

	case constants.KeyFilter:
		return m, m.UI().EnterFilterMode(m.Units().Filter)

	case "esc":
		// 清除已確認的過濾詞
		m.Units().SetFilter("")
		return m, nil

	case constants.KeyRefresh:
		m.UI().Loading = true
		return m, tea.Batch(m.UI().Spinner.Tick, h.cmdBuilder.RefreshCmd())

	case constants.KeySortColumn:
		m.Units().CycleSortColumn()
		return m, nil

	case constants.KeySortOrder:
		m.Units().ToggleSortOrder()
		return m, nil
	}

	if action, ok := actionKeys[key]; ok {
		return h.handleAction(action, m)
	}

	return m, nil
}

// handleAction 執行控制動作
// 動作必須對當前選中單元可用，否則僅提示不執行
func (h *KeyHandler) handleAction(action unit.Action, m *state.Manager) (*state.Manager, tea.Cmd) {
	selected, ok := m.Units().Selected()
	if !ok {
		m.UI().SetStatus(state.StatusWarn, "⚠️ 沒有選中的服務", "")
		return m, nil
	}

	buttons := unit.Availability(selected.Active, selected.Enabled)
	if !buttons.Allows(action) {
		m.UI().SetStatus(state.StatusWarn,
			fmt.Sprintf("⚠️ %s 當前不可%s", selected.Unit, ActionLabel(action)), "")
		return m, nil
	}

	m.UI().Loading = true
	m.UI().SetStatus(state.StatusInfo,
		fmt.Sprintf("正在%s %s ...", ActionLabel(action), selected.Unit), "")

	return m, tea.Batch(m.UI().Spinner.Tick, h.cmdBuilder.ActionCmd(action, selected.Unit))
}
