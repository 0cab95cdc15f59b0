package style

import "github.com/charmbracelet/lipgloss"

// 配色方案
var (
	// 主色調 - 鮮艷現代
	FutureGreen = lipgloss.Color("#B2FF00") // 螢光綠 - 健康/運行中
	SkyBlue     = lipgloss.Color("#1AAEFC") // 天藍 - 主要強調/Logo
	Violet      = lipgloss.Color("#DDAAFF") // 紫羅蘭 - 次要強調
	Yellow      = lipgloss.Color("#FFDC65") // 明黃 - 警告
	Red         = lipgloss.Color("#FF007F") // 紅色 - 異常/停止

	// 文字顏色
	White    = lipgloss.Color("#F3F3F0") // 純白 - 主要文字
	Gray     = lipgloss.Color("#C0C0C0") // 淺灰 - 次要文字
	DarkGray = lipgloss.Color("#8A8783") // 深灰 - 弱化文字
)

// 功能顏色映射
var (
	Primary   = SkyBlue
	Secondary = Violet
	Text      = White

	Muted   = DarkGray
	Success = FutureGreen
	Error   = Red
	Warning = Yellow
	Info    = SkyBlue
)
