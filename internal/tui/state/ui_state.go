package state

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	ttea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// View 定義視圖枚舉
type View int

const (
	DashboardView View = iota
	DetailView
	ActionResultView
)

// StatusType 狀態類型
type StatusType int

const (
	StatusReady StatusType = iota
	StatusSuccess
	StatusError
	StatusFatal
	StatusInfo
	StatusWarn
)

// StatusMsg 狀態欄消息
type StatusMsg struct {
	Type    StatusType
	Message string
	Detail  string
}

// UIState UI 核心狀態
type UIState struct {
	CurrentView  View
	PreviousView View // 用於返回
	TextInput    textinput.Model
	Spinner      spinner.Model
	Width        int
	Height       int
	FilterMode   bool // 過濾輸入模式
	Loading      bool // 後台命令執行中
	Status       StatusMsg
}

// NewUIState 創建 UI 狀態
func NewUIState() *UIState {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 100
	ti.Width = 50

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return &UIState{
		CurrentView: DashboardView,
		TextInput:   ti,
		Width:       80,
		Height:      24,
		Status:      StatusMsg{Type: StatusReady},
		Spinner:     s,
	}
}

// SwitchView 切換視圖
func (s *UIState) SwitchView(v View) ttea.Cmd {
	s.PreviousView = s.CurrentView
	s.CurrentView = v

	// 切換視圖時重置狀態欄（錯誤狀態保留給用戶看）
	if s.Status.Type != StatusError && s.Status.Type != StatusFatal {
		s.Status = StatusMsg{Type: StatusReady}
	}

	return nil
}

// EnterFilterMode 進入過濾輸入模式
func (s *UIState) EnterFilterMode(current string) ttea.Cmd {
	s.FilterMode = true
	s.TextInput.SetValue(current)
	s.TextInput.CursorEnd()
	return s.TextInput.Focus()
}

// ExitFilterMode 退出過濾輸入模式
func (s *UIState) ExitFilterMode() {
	s.FilterMode = false
	s.TextInput.Blur()
	s.TextInput.Reset()
}

// SetStatus 設置狀態欄消息
func (s *UIState) SetStatus(t StatusType, msg, detail string) {
	s.Status = StatusMsg{
		Type:    t,
		Message: msg,
		Detail:  detail,
	}
}

// UpdateInput 更新輸入框
func (s *UIState) UpdateInput(msg ttea.Msg) ttea.Cmd {
	var cmd ttea.Cmd
	s.TextInput, cmd = s.TextInput.Update(msg)
	return cmd
}

func (s *UIState) GetInputBuffer() string {
	return s.TextInput.Value()
}

// UpdateSize 更新尺寸
func (s *UIState) UpdateSize(w, h int) {
	s.Width = w
	s.Height = h
}
