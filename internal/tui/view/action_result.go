package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/Yat-Muk/vigil/internal/tui/style"
)

// RenderActionResult 渲染動作失敗詳情視圖
// 完整保留命令的退出碼與原始輸出，便於排障
func RenderActionResult(action, unitName string, vp viewport.Model, ready bool, content string) string {
	header := renderSubpageHeader(fmt.Sprintf("%s %s 失敗", action, unitName))

	errorLine := style.ErrorStyle.Render(fmt.Sprintf(" ✗ %s %s 執行失敗", action, unitName))

	sections := []string{header, "", errorLine, ""}

	if ready {
		sections = append(sections, vp.View())
	} else {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(style.Gray).
			PaddingLeft(1).
			Render(content))
	}

	gray := lipgloss.NewStyle().Foreground(style.Gray)
	darkGray := lipgloss.NewStyle().Foreground(style.DarkGray)
	hints := lipgloss.JoinHorizontal(lipgloss.Left,
		gray.Render("↑/↓ "), darkGray.Render("滾動"),
		darkGray.Render(" • "),
		gray.Render("Esc/q "), darkGray.Render("返回"),
	)
	sections = append(sections, lipgloss.NewStyle().PaddingLeft(1).PaddingTop(1).Render(hints))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
