package state

import (
	"strconv"

	"github.com/charmbracelet/bubbles/viewport"

	"github.com/Yat-Muk/vigil/internal/domain/unit"
	"github.com/Yat-Muk/vigil/internal/infra/system"
)

// DetailState 單元詳情視圖狀態
type DetailState struct {
	Unit          string
	Content       string
	PropsLine     string
	Viewport      viewport.Model
	ViewportReady bool
	Loading       bool
}

// NewDetailState 創建詳情狀態
func NewDetailState() *DetailState {
	return &DetailState{}
}

// SetContent 寫入詳情內容並重置滾動位置
func (s *DetailState) SetContent(unitName, content, propsLine string) {
	s.Unit = unitName
	s.Content = content
	s.PropsLine = propsLine
	s.Loading = false
	if s.ViewportReady {
		s.Viewport.SetContent(content)
		s.Viewport.GotoTop()
	}
}

// Resize 調整視口尺寸
// 頂部 Logo 與標題佔用固定高度
func (s *DetailState) Resize(width, height int) {
	headerHeight := 14
	vpHeight := height - headerHeight
	if vpHeight < 3 {
		vpHeight = 3
	}

	if !s.ViewportReady {
		s.Viewport = viewport.New(width, vpHeight)
		s.ViewportReady = true
		if s.Content != "" {
			s.Viewport.SetContent(s.Content)
		}
		return
	}
	s.Viewport.Width = width
	s.Viewport.Height = vpHeight
}

// ResultState 動作失敗詳情視圖狀態
type ResultState struct {
	Action        unit.Action
	Unit          string
	Result        system.Result
	Viewport      viewport.Model
	ViewportReady bool
}

// NewResultState 創建動作結果狀態
func NewResultState() *ResultState {
	return &ResultState{}
}

// SetResult 寫入失敗結果
func (s *ResultState) SetResult(action unit.Action, unitName string, result system.Result) {
	s.Action = action
	s.Unit = unitName
	s.Result = result
	if s.ViewportReady {
		s.Viewport.SetContent(s.Content())
		s.Viewport.GotoTop()
	}
}

// Content 組合退出碼與原始輸出
func (s *ResultState) Content() string {
	text := "exit code: " + strconv.Itoa(s.Result.Code)
	if s.Result.Stdout != "" {
		text += "\n\n--- stdout ---\n" + s.Result.Stdout
	}
	if s.Result.Stderr != "" {
		text += "\n\n--- stderr ---\n" + s.Result.Stderr
	}
	return text
}

// Resize 調整視口尺寸
func (s *ResultState) Resize(width, height int) {
	headerHeight := 14
	vpHeight := height - headerHeight
	if vpHeight < 3 {
		vpHeight = 3
	}

	if !s.ViewportReady {
		s.Viewport = viewport.New(width, vpHeight)
		s.ViewportReady = true
		s.Viewport.SetContent(s.Content())
		return
	}
	s.Viewport.Width = width
	s.Viewport.Height = vpHeight
}
