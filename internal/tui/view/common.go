package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/Yat-Muk/vigil/internal/tui/style"
)

// RenderLogo 渲染 VIGIL ASCII Logo
func RenderLogo() string {
	logoLines := []string{
		" ██╗   ██╗██╗ ██████╗ ██╗██╗     ",
		" ██║   ██║██║██╔════╝ ██║██║     ",
		" ██║   ██║██║██║  ███╗██║██║     ",
		" ╚██╗ ██╔╝██║██║   ██║██║██║     ",
		"  ╚████╔╝ ██║╚██████╔╝██║███████╗",
		"   ╚═══╝  ╚═╝ ╚═════╝ ╚═╝╚══════╝",
	}

	gradientColors := []lipgloss.Color{
		lipgloss.Color("#B477ED"),
		lipgloss.Color("#DDAAFF"),
		lipgloss.Color("#DEDEF8"),
		lipgloss.Color("#90CCFB"),
		lipgloss.Color("#1AAEFC"),
		lipgloss.Color("#0381ED"),
	}

	var coloredLines []string
	for i, line := range logoLines {
		coloredLine := lipgloss.NewStyle().
			Foreground(gradientColors[i]).
			Width(50).
			AlignHorizontal(lipgloss.Center).
			Render(line)
		coloredLines = append(coloredLines, coloredLine)
	}

	return lipgloss.JoinVertical(lipgloss.Left, coloredLines...)
}

// renderSubpageHeader 渲染子頁面頭部
func renderSubpageHeader(subTitle string) string {
	logo := RenderLogo()

	mainSubtitle := lipgloss.NewStyle().
		Foreground(style.Violet).
		Width(50).
		AlignHorizontal(lipgloss.Center).
		Render(":: systemd 服務儀表盤 ::")

	subTitleLine := lipgloss.NewStyle().
		Foreground(style.SkyBlue).
		Render(fmt.Sprintf(" »»» %s «««", subTitle))

	// 雙線分隔
	separator := lipgloss.NewStyle().
		Foreground(style.Gray).
		Render(strings.Repeat("═", 50))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		logo,
		"",
		mainSubtitle,
		"",
		subTitleLine,
		separator,
	)
}

// RenderStatusMessage 渲染底部狀態欄
// 根據關鍵字（警告、失敗、成功）決定顏色
func RenderStatusMessage(msg string) string {
	if msg == "" {
		return ""
	}

	baseStyle := lipgloss.NewStyle().Foreground(style.Violet)
	if strings.Contains(msg, "⚠️") ||
		strings.Contains(msg, "警告") {
		baseStyle = style.WarningStyle
	} else if strings.Contains(msg, "失敗") ||
		strings.Contains(msg, "錯誤") ||
		strings.Contains(msg, "無效") ||
		strings.Contains(msg, "✗") {
		baseStyle = style.ErrorStyle
	} else if strings.Contains(msg, "成功") ||
		strings.Contains(msg, "完成") ||
		strings.Contains(msg, "✓") {
		baseStyle = style.SuccessStyle
	}

	rawLines := strings.Split(msg, "\n")
	var renderedLines []string
	for _, line := range rawLines {
		renderedLines = append(renderedLines, baseStyle.Render(line))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, renderedLines...)

	return lipgloss.NewStyle().
		Padding(1, 1).
		Align(lipgloss.Left).
		Render(content)
}

// RenderFilterFooter 渲染過濾輸入行
func RenderFilterFooter(ti textinput.Model) string {
	prompt := lipgloss.NewStyle().
		Foreground(style.Gray).
		Render(" ❯ 過濾: ")

	inputLine := lipgloss.JoinHorizontal(lipgloss.Left, prompt, ti.View())

	darkGray := lipgloss.NewStyle().Foreground(style.DarkGray)
	gray := lipgloss.NewStyle().Foreground(style.Gray)

	hints := lipgloss.JoinHorizontal(lipgloss.Left,
		gray.Render("Esc "), darkGray.Render("清除"),
		darkGray.Render(" • "),
		gray.Render("Enter "), darkGray.Render("確認"),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		inputLine,
		lipgloss.NewStyle().PaddingLeft(1).Render(hints),
	)
}

// RenderLoading 渲染加載頁面
func RenderLoading(message string, sp spinner.Model) string {
	header := renderSubpageHeader("加載中")
	loadingText := style.InfoStyle.Render(fmt.Sprintf("%s %s...", sp.View(), message))
	return lipgloss.JoinVertical(lipgloss.Left, header, "", loadingText)
}
