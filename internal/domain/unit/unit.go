package unit

import (
	"sort"
	"strings"
)

// PlaceholderDescription 只在單元文件列表中出現、尚未加載的單元的描述
const PlaceholderDescription = "Not loaded (available to enable/start)"

// Record 表格中的一行：一個 systemd 服務單元
type Record struct {
	Unit        string // 單元名，如 "ssh.service"，集合內唯一
	Load        string // loaded / not-found / n/a ...
	Active      string // active / inactive / failed ...
	Sub         string // running / dead / exited ...
	Description string
	Enabled     string // enabled / disabled / masked / static / "?"
}

// Placeholder 為只存在於單元文件列表中的單元合成佔位記錄
func Placeholder(name, enabledState string) Record {
	return Record{
		Unit:        name,
		Load:        "n/a",
		Active:      "inactive",
		Sub:         "dead",
		Description: PlaceholderDescription,
		Enabled:     enabledState,
	}
}

// Matches 判斷記錄是否匹配過濾串（所有列、不分大小寫、子串匹配）
func (r Record) Matches(filter string) bool {
	if filter == "" {
		return true
	}
	needle := strings.ToLower(filter)
	for _, col := range []string{r.Unit, r.Description, r.Load, r.Active, r.Sub, r.Enabled} {
		if strings.Contains(strings.ToLower(col), needle) {
			return true
		}
	}
	return false
}

// Class 狀態指示燈的三值分類
type Class int

const (
	ClassNeutral   Class = iota // 已禁用或已屏蔽，不論是否在運行
	ClassHealthy                // 正在運行
	ClassAttention              // 其餘情況，需要關注
)

// Classify 計算狀態分類
// 啟用狀態優先於活動狀態：被刻意禁用但仍在運行的單元顯示為中性
func Classify(active, enabled string) Class {
	switch enabled {
	case "disabled", "masked":
		return ClassNeutral
	}
	if active == "active" {
		return ClassHealthy
	}
	return ClassAttention
}

// Action 單元控制操作
type Action string

const (
	ActionStart   Action = "start"
	ActionStop    Action = "stop"
	ActionRestart Action = "restart"
	ActionReload  Action = "reload"
	ActionEnable  Action = "enable"
	ActionDisable Action = "disable"
	ActionMask    Action = "mask"
	ActionUnmask  Action = "unmask"
)

// Valid 判斷是否為受支持的操作
func (a Action) Valid() bool {
	switch a {
	case ActionStart, ActionStop, ActionRestart, ActionReload,
		ActionEnable, ActionDisable, ActionMask, ActionUnmask:
		return true
	}
	return false
}

// Buttons 各操作在當前選中單元上是否可用
type Buttons struct {
	Start   bool
	Stop    bool
	Restart bool
	Reload  bool
	Enable  bool
	Disable bool
	Mask    bool
	Unmask  bool
}

// Availability 根據 (active, enabled) 推導操作可用性
// 所有按鍵開關都從這裡推導，避免分散在各個 handler 裡漂移
func Availability(active, enabled string) Buttons {
	b := Buttons{Reload: true}

	if active == "active" {
		b.Stop = true
		b.Restart = true
	} else {
		b.Start = true
	}

	switch enabled {
	case "enabled":
		b.Disable = true
		b.Mask = true
	case "disabled":
		b.Enable = true
		b.Mask = true
	case "masked":
		b.Unmask = true
	default:
		// 未知或 static：全部放行，交給 systemd 自己裁決
		b.Enable = true
		b.Disable = true
		b.Mask = true
		b.Unmask = true
	}

	return b
}

// Allows 判斷指定操作當前是否可用
func (b Buttons) Allows(a Action) bool {
	switch a {
	case ActionStart:
		return b.Start
	case ActionStop:
		return b.Stop
	case ActionRestart:
		return b.Restart
	case ActionReload:
		return b.Reload
	case ActionEnable:
		return b.Enable
	case ActionDisable:
		return b.Disable
	case ActionMask:
		return b.Mask
	case ActionUnmask:
		return b.Unmask
	}
	return false
}

// Column 表格可排序的列
type Column int

const (
	ColUnit Column = iota
	ColDescription
	ColLoad
	ColActive
	ColSub
	ColEnabled

	columnCount
)

// Next 循環切換到下一列
func (c Column) Next() Column {
	return (c + 1) % columnCount
}

// Title 列標題
func (c Column) Title() string {
	switch c {
	case ColUnit:
		return "Unit"
	case ColDescription:
		return "Description"
	case ColLoad:
		return "Load"
	case ColActive:
		return "Active"
	case ColSub:
		return "Sub"
	case ColEnabled:
		return "Enabled"
	}
	return ""
}

func (r Record) field(c Column) string {
	switch c {
	case ColUnit:
		return r.Unit
	case ColDescription:
		return r.Description
	case ColLoad:
		return r.Load
	case ColActive:
		return r.Active
	case ColSub:
		return r.Sub
	case ColEnabled:
		return r.Enabled
	}
	return ""
}

// Sort 按列穩定排序（原地）
func Sort(records []Record, col Column, asc bool) {
	sort.SliceStable(records, func(i, j int) bool {
		a := strings.ToLower(records[i].field(col))
		b := strings.ToLower(records[j].field(col))
		if asc {
			return a < b
		}
		return a > b
	})
}
