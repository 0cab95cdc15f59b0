package state

import (
	"github.com/Yat-Muk/vigil/internal/domain/unit"
)

// UnitsState 單元列表狀態
type UnitsState struct {
	Records    []unit.Record // 完整列表（未過濾）
	Filter     string
	Cursor     int // 可見列表中的索引
	SortColumn unit.Column
	SortAsc    bool
	Loaded     bool // 首次刷新是否完成
}

// NewUnitsState 創建單元列表狀態
func NewUnitsState() *UnitsState {
	return &UnitsState{
		SortColumn: unit.ColUnit,
		SortAsc:    true,
	}
}

// SetRecords 替換完整列表並套用當前排序
func (s *UnitsState) SetRecords(records []unit.Record) {
	s.Records = records
	s.Loaded = true
	unit.Sort(s.Records, s.SortColumn, s.SortAsc)
	s.clampCursor()
}

// SetFilter 更新過濾詞並修正光標
func (s *UnitsState) SetFilter(filter string) {
	s.Filter = filter
	s.clampCursor()
}

// Visible 返回過濾後的可見列表
func (s *UnitsState) Visible() []unit.Record {
	if s.Filter == "" {
		return s.Records
	}
	visible := make([]unit.Record, 0, len(s.Records))
	for _, r := range s.Records {
		if r.Matches(s.Filter) {
			visible = append(visible, r)
		}
	}
	return visible
}

// Selected 返回當前選中單元，無選中時返回 false
func (s *UnitsState) Selected() (unit.Record, bool) {
	visible := s.Visible()
	if len(visible) == 0 || s.Cursor < 0 || s.Cursor >= len(visible) {
		return unit.Record{}, false
	}
	return visible[s.Cursor], true
}

// MoveCursor 上下移動光標，自動夾取邊界
func (s *UnitsState) MoveCursor(delta int) {
	s.Cursor += delta
	s.clampCursor()
}

// CycleSortColumn 循環切換排序列並重排
func (s *UnitsState) CycleSortColumn() {
	s.SortColumn = s.SortColumn.Next()
	unit.Sort(s.Records, s.SortColumn, s.SortAsc)
	s.clampCursor()
}

// ToggleSortOrder 翻轉排序方向並重排
func (s *UnitsState) ToggleSortOrder() {
	s.SortAsc = !s.SortAsc
	unit.Sort(s.Records, s.SortColumn, s.SortAsc)
	s.clampCursor()
}

func (s *UnitsState) clampCursor() {
	max := len(s.Visible()) - 1
	if s.Cursor > max {
		s.Cursor = max
	}
	if s.Cursor < 0 {
		s.Cursor = 0
	}
}
