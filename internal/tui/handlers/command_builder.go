package handlers

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/Yat-Muk/vigil/internal/domain/unit"
	"github.com/Yat-Muk/vigil/internal/infra/system"
	"github.com/Yat-Muk/vigil/internal/tui/msg"
	"github.com/Yat-Muk/vigil/internal/tui/state"
)

// Config 依賴注入配置
type Config struct {
	Log       *zap.Logger
	StateMgr  *state.Manager
	Collector *system.Collector
	Runner    system.Runner
	Props     system.PropertyReader // 可為 nil，DBus 不可用時降級
}

type CommandBuilder struct {
	log       *zap.Logger
	stateMgr  *state.Manager
	collector *system.Collector
	runner    system.Runner
	props     system.PropertyReader
}

// NewCommandBuilder 構造函數
func NewCommandBuilder(cfg *Config) *CommandBuilder {
	return &CommandBuilder{
		log:       cfg.Log,
		stateMgr:  cfg.StateMgr,
		collector: cfg.Collector,
		runner:    cfg.Runner,
		props:     cfg.Props,
	}
}

// RefreshCmd 後台刷新單元列表
func (b *CommandBuilder) RefreshCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		records, err := b.collector.Collect(ctx)
		return msg.UnitsLoadedMsg{Records: records, Err: err}
	}
}

// ActionCmd 後台執行控制動作
// 動作通過提權包裝器調度，可能彈出 PolicyKit 授權對話框
func (b *CommandBuilder) ActionCmd(action unit.Action, unitName string) tea.Cmd {
	return func() tea.Msg {
		// 授權對話框可能長時間等待用戶輸入
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		b.log.Info("執行服務動作",
			zap.String("action", string(action)),
			zap.String("unit", unitName),
		)

		result := b.runner.Run(ctx, true, "systemctl", string(action), unitName)
		return msg.ActionResultMsg{Action: action, Unit: unitName, Result: result}
	}
}

// StatusCmd 後台加載單元詳情
func (b *CommandBuilder) StatusCmd(unitName string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		text := b.collector.Status(ctx, unitName)

		propsLine := ""
		if b.props != nil {
			if props, err := b.props.Props(ctx, unitName); err == nil {
				propsLine = buildPropsLine(props)
			}
		}

		return msg.StatusLoadedMsg{Unit: unitName, Text: text, PropsLine: propsLine}
	}
}

// buildPropsLine 組合 DBus 補充屬性為單行摘要
func buildPropsLine(props *system.UnitProps) string {
	if props == nil || !props.Active {
		return ""
	}

	var parts []string
	if props.PID > 0 {
		parts = append(parts, fmt.Sprintf("PID: %d", props.PID))
	}
	if props.Memory > 0 {
		parts = append(parts, fmt.Sprintf("內存: %s", formatBytes(props.Memory)))
	}
	if !props.Since.IsZero() {
		parts = append(parts, fmt.Sprintf("運行: %s", formatDuration(time.Since(props.Since))))
	}
	return strings.Join(parts, "  │  ")
}

// formatBytes 格式化字節大小
func formatBytes(bytes uint64) string {
	if bytes < 1024 {
		return fmt.Sprintf("%d B", bytes)
	}
	fBytes := float64(bytes) / 1024.0
	units := []string{"KB", "MB", "GB", "TB", "PB"}
	unitIdx := 0
	for fBytes >= 1024 && unitIdx < len(units)-1 {
		fBytes /= 1024
		unitIdx++
	}
	return fmt.Sprintf("%.2f %s", fBytes, units[unitIdx])
}

// formatDuration 格式化時長
func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%d秒", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%d分鐘", int(d.Minutes()))
	}
	if d < 24*time.Hour {
		hours := int(d.Hours())
		minutes := int(d.Minutes()) % 60
		return fmt.Sprintf("%d小時%d分鐘", hours, minutes)
	}
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	return fmt.Sprintf("%d天%d小時", days, hours)
}
