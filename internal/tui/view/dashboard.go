package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/Yat-Muk/vigil/internal/domain/unit"
	"github.com/Yat-Muk/vigil/internal/tui/style"
)

// DashboardData 儀表盤渲染輸入
type DashboardData struct {
	Records      []unit.Record
	Total        int
	UnitType     string
	Cursor       int
	Filter       string
	FilterMode   bool
	TextInput    textinput.Model
	SortColumn   unit.Column
	SortAsc      bool
	Selected     unit.Record
	HasSelection bool
	Width        int
	Height       int
	Loading      bool
	Spinner      spinner.Model
	StatusMsg    string
}

// 表格列寬（Description 自適應剩餘寬度）
const (
	colUnitWidth    = 32
	colLoadWidth    = 8
	colActiveWidth  = 9
	colSubWidth     = 9
	colEnabledWidth = 9
)

// RenderDashboard 渲染服務儀表盤主視圖
func RenderDashboard(d DashboardData) string {
	var sections []string

	sections = append(sections, renderSubpageHeader("服務儀表盤"))
	sections = append(sections, "")
	sections = append(sections, renderHeaderRow(d))
	sections = append(sections, renderRows(d))
	sections = append(sections, renderSummary(d))

	if d.FilterMode {
		sections = append(sections, RenderFilterFooter(d.TextInput))
	} else {
		sections = append(sections, renderHints(d))
	}

	if d.StatusMsg != "" {
		sections = append(sections, RenderStatusMessage(d.StatusMsg))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeaderRow 渲染表頭，排序列帶方向指示
func renderHeaderRow(d DashboardData) string {
	arrow := "▲"
	if !d.SortAsc {
		arrow = "▼"
	}

	title := func(c unit.Column) string {
		t := c.Title()
		if c == d.SortColumn {
			return t + arrow
		}
		return t
	}

	cells := []string{
		pad(title(unit.ColUnit), colUnitWidth),
		pad(title(unit.ColLoad), colLoadWidth),
		pad(title(unit.ColActive), colActiveWidth),
		pad(title(unit.ColSub), colSubWidth),
		pad(title(unit.ColEnabled), colEnabledWidth),
		title(unit.ColDescription),
	}

	// 行首留出狀態指示點的位置
	return style.HeaderRowStyle.Render("   " + strings.Join(cells, " "))
}

// renderRows 渲染可見的表格行
func renderRows(d DashboardData) string {
	if len(d.Records) == 0 {
		empty := lipgloss.NewStyle().Foreground(style.Muted).Padding(1, 2)
		if d.Filter != "" {
			return empty.Render("沒有匹配的服務")
		}
		return empty.Render("沒有服務")
	}

	descWidth := d.Width - colUnitWidth - colLoadWidth - colActiveWidth - colSubWidth - colEnabledWidth - 12
	if descWidth < 10 {
		descWidth = 10
	}

	// 光標所在行保持在可視窗口內
	maxRows := d.Height - 22
	if maxRows < 5 {
		maxRows = 5
	}
	start := 0
	if d.Cursor >= maxRows {
		start = d.Cursor - maxRows + 1
	}
	end := start + maxRows
	if end > len(d.Records) {
		end = len(d.Records)
	}

	var rows []string
	for i := start; i < end; i++ {
		r := d.Records[i]

		line := fmt.Sprintf("%s %s %s %s %s %s",
			pad(r.Unit, colUnitWidth),
			pad(r.Load, colLoadWidth),
			pad(r.Active, colActiveWidth),
			pad(r.Sub, colSubWidth),
			pad(r.Enabled, colEnabledWidth),
			truncate(r.Description, descWidth),
		)

		// 狀態指示點始終按分級着色，選中行的反色背景不覆蓋它
		color := style.ClassColor(unit.Classify(r.Active, r.Enabled))
		dot := lipgloss.NewStyle().Foreground(color).Render("●")

		if i == d.Cursor {
			rows = append(rows, " "+dot+style.SelectedRowStyle.Render(line))
			continue
		}

		rows = append(rows, " "+dot+style.RowStyle.Foreground(color).Render(line))
	}

	if start > 0 {
		rows = append([]string{lipgloss.NewStyle().Foreground(style.Muted).Render("  ↑ ...")}, rows...)
	}
	if end < len(d.Records) {
		rows = append(rows, lipgloss.NewStyle().Foreground(style.Muted).Render("  ↓ ..."))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderSummary 渲染統計行
func renderSummary(d DashboardData) string {
	summary := fmt.Sprintf(" 共 %d 個 %s 單元", d.Total, d.UnitType)
	if d.Filter != "" {
		summary = fmt.Sprintf(" 顯示 %d / %d 個 %s 單元 (過濾: %q)", len(d.Records), d.Total, d.UnitType, d.Filter)
	}
	if d.Loading {
		summary += "  " + d.Spinner.View() + " 執行中..."
	}
	return lipgloss.NewStyle().Foreground(style.Gray).Render(summary)
}

// renderHints 渲染按鍵提示
// 動作鍵只顯示對當前選中單元可用的部分
func renderHints(d DashboardData) string {
	gray := lipgloss.NewStyle().Foreground(style.Gray)
	darkGray := lipgloss.NewStyle().Foreground(style.DarkGray)

	type hint struct {
		key  string
		text string
	}

	base := []hint{
		{"↑/↓", "移動"},
		{"Enter", "詳情"},
		{"/", "過濾"},
		{"o", "排序列"},
		{"O", "排序方向"},
		{"R", "刷新"},
		{"q", "退出"},
	}

	var actions []hint
	if d.HasSelection {
		buttons := unit.Availability(d.Selected.Active, d.Selected.Enabled)
		all := []struct {
			key    string
			text   string
			enable bool
		}{
			{"s", "啟動", buttons.Start},
			{"x", "停止", buttons.Stop},
			{"r", "重啟", buttons.Restart},
			{"l", "重載", buttons.Reload},
			{"e", "啟用", buttons.Enable},
			{"d", "禁用", buttons.Disable},
			{"m", "屏蔽", buttons.Mask},
			{"u", "解除屏蔽", buttons.Unmask},
		}
		for _, a := range all {
			if a.enable {
				actions = append(actions, hint{a.key, a.text})
			}
		}
	}

	renderLine := func(hints []hint) string {
		var parts []string
		for i, h := range hints {
			if i > 0 {
				parts = append(parts, darkGray.Render(" • "))
			}
			parts = append(parts, gray.Render(h.key+" "), darkGray.Render(h.text))
		}
		return lipgloss.JoinHorizontal(lipgloss.Left, parts...)
	}

	lines := []string{renderLine(base)}
	if len(actions) > 0 {
		lines = append(lines, renderLine(actions))
	}

	return lipgloss.NewStyle().PaddingLeft(1).PaddingTop(1).Render(
		lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// pad 按顯示寬度右補空格，超寬截斷
func pad(s string, width int) string {
	return runewidth.FillRight(truncate(s, width), width)
}

// truncate 按顯示寬度截斷，留省略號
func truncate(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
