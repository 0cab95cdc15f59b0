package system

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Yat-Muk/vigil/internal/domain/unit"
)

// CollectError 單元列表採集失敗
// 保留原始 stderr 供界面完整呈現
type CollectError struct {
	Code   int
	Stderr string
}

func (e *CollectError) Error() string {
	return fmt.Sprintf("failed to list units: %s", e.Stderr)
}

// Collector 通過 systemctl 採集單元清單
type Collector struct {
	runner   Runner
	unitType string
	logger   *zap.Logger
}

// NewCollector 創建單元採集器
func NewCollector(runner Runner, unitType string, logger *zap.Logger) *Collector {
	return &Collector{
		runner:   runner,
		unitType: unitType,
		logger:   logger,
	}
}

// Collect 合併兩次 systemctl 調用的結果
//
// 第一遍 list-unit-files 取安裝態（enabled/disabled/masked...），
// 失敗時靜默降級，所有單元的安裝態標記為 "?"。
// 第二遍 list-units 取運行態，失敗則整體失敗並返回 CollectError。
// 已安裝但未加載的單元以佔位運行態補入清單尾部，
// 使 disabled 單元仍然可見、可啟用。
func (c *Collector) Collect(ctx context.Context) ([]unit.Record, error) {
	typeFlag := "--type=" + c.unitType

	enabledMap, fileOrder := c.collectEnablement(ctx, typeFlag)

	result := c.runner.Run(ctx, false,
		"systemctl", "list-units", typeFlag, "--all", "--no-legend", "--no-pager")
	if !result.Ok() {
		c.logger.Error("list-units 失敗",
			zap.Int("code", result.Code),
			zap.String("stderr", result.Stderr),
		)
		return nil, &CollectError{Code: result.Code, Stderr: result.Stderr}
	}

	records := make([]unit.Record, 0, len(fileOrder))
	loaded := make(map[string]int)

	for _, line := range strings.Split(result.Stdout, "\n") {
		line = strings.TrimRight(line, " \t")
		if line == "" {
			continue
		}

		parts := strings.Fields(line)

		// 失敗單元帶 "●" 前綴，去掉以對齊列
		if len(parts) > 0 && parts[0] == "●" {
			parts = parts[1:]
		}
		if len(parts) < 5 {
			continue
		}

		name := parts[0]
		enabled, ok := enabledMap[name]
		if !ok {
			enabled = "?"
		}

		record := unit.Record{
			Unit:        name,
			Load:        parts[1],
			Active:      parts[2],
			Sub:         parts[3],
			Description: strings.Join(parts[4:], " "),
			Enabled:     enabled,
		}

		// 同名單元重複出現時後者覆蓋前者，保持首見位置
		if i, ok := loaded[name]; ok {
			records[i] = record
			continue
		}
		loaded[name] = len(records)
		records = append(records, record)
	}

	// 已安裝但未加載的單元補佔位記錄
	for _, name := range fileOrder {
		if _, ok := loaded[name]; ok {
			continue
		}
		records = append(records, unit.Placeholder(name, enabledMap[name]))
	}

	c.logger.Debug("單元採集完成",
		zap.Int("total", len(records)),
		zap.Int("loaded", len(loaded)),
	)

	return records, nil
}

// collectEnablement 採集安裝態映射，保留解析順序
// 此步驟可選，失敗時返回空映射
func (c *Collector) collectEnablement(ctx context.Context, typeFlag string) (map[string]string, []string) {
	result := c.runner.Run(ctx, false,
		"systemctl", "list-unit-files", typeFlag, "--no-legend", "--no-pager")
	if !result.Ok() {
		c.logger.Warn("list-unit-files 失敗，安裝態不可用",
			zap.Int("code", result.Code),
			zap.String("stderr", result.Stderr),
		)
		return map[string]string{}, nil
	}

	enabledMap := make(map[string]string)
	order := make([]string, 0, 64)

	for _, line := range strings.Split(result.Stdout, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 2 {
			continue
		}
		if _, ok := enabledMap[parts[0]]; !ok {
			order = append(order, parts[0])
		}
		enabledMap[parts[0]] = parts[1]
	}

	return enabledMap, order
}

// Status 取單元的詳細狀態文本
// 非零退出也有可讀輸出（如 inactive 單元），此時拼接 stderr 一併展示
func (c *Collector) Status(ctx context.Context, name string) string {
	result := c.runner.Run(ctx, false, "systemctl", "status", name, "--no-pager")
	if result.Ok() {
		return result.Stdout
	}
	return result.Stdout + "\n" + result.Stderr
}
