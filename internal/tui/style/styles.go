package style

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Yat-Muk/vigil/internal/domain/unit"
)

var (
	// 表頭樣式
	HeaderRowStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Secondary)

	// 表格行樣式
	RowStyle = lipgloss.NewStyle().
			Padding(0, 1)

	// 選中行
	SelectedRowStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Foreground(Text).
				Background(Primary).
				Bold(true)

	// 錯誤樣式
	ErrorStyle = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// 成功樣式
	SuccessStyle = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	// 警告樣式
	WarningStyle = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	// 信息樣式
	InfoStyle = lipgloss.NewStyle().
			Foreground(Info)
)

// ClassColor 狀態分級對應的顏色
// 靜默單元取弱化色，活躍取綠色，其餘取紅色突出需要關注
func ClassColor(class unit.Class) lipgloss.Color {
	switch class {
	case unit.ClassNeutral:
		return Muted
	case unit.ClassHealthy:
		return Success
	default:
		return Error
	}
}
