package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/Yat-Muk/vigil/internal/tui/style"
)

// RenderDetail 渲染單元詳情視圖 (systemctl status 輸出)
func RenderDetail(unitName, propsLine string, vp viewport.Model, ready, loading bool, sp spinner.Model) string {
	header := renderSubpageHeader(fmt.Sprintf("詳情 - %s", unitName))

	if loading {
		loadingText := style.InfoStyle.Render(fmt.Sprintf("%s 正在讀取狀態...", sp.View()))
		return lipgloss.JoinVertical(lipgloss.Left, header, "", loadingText)
	}

	sections := []string{header}

	if propsLine != "" {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(style.Violet).
			PaddingLeft(1).
			Render(propsLine))
	}

	if ready {
		sections = append(sections, vp.View())
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
