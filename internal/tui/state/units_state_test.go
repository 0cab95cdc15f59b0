package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yat-Muk/vigil/internal/domain/unit"
)

func sampleRecords() []unit.Record {
	return []unit.Record{
		{Unit: "cron.service", Active: "active", Enabled: "enabled", Description: "Scheduler"},
		{Unit: "apparmor.service", Active: "inactive", Enabled: "enabled", Description: "AppArmor"},
		{Unit: "ssh.service", Active: "active", Enabled: "enabled", Description: "OpenSSH"},
	}
}

func TestUnitsState_SetRecords_套用排序(t *testing.T) {
	s := NewUnitsState()
	s.SetRecords(sampleRecords())

	require.Len(t, s.Records, 3)
	assert.True(t, s.Loaded)
	// 默認按單元名升序
	assert.Equal(t, "apparmor.service", s.Records[0].Unit)
	assert.Equal(t, "cron.service", s.Records[1].Unit)
	assert.Equal(t, "ssh.service", s.Records[2].Unit)
}

func TestUnitsState_Filter與光標修正(t *testing.T) {
	s := NewUnitsState()
	s.SetRecords(sampleRecords())
	s.Cursor = 2

	s.SetFilter("ssh")
	visible := s.Visible()
	require.Len(t, visible, 1)
	// 過濾後可見行減少，光標被夾回範圍內
	assert.Equal(t, 0, s.Cursor)

	selected, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, "ssh.service", selected.Unit)
}

func TestUnitsState_Filter無匹配(t *testing.T) {
	s := NewUnitsState()
	s.SetRecords(sampleRecords())

	s.SetFilter("nonexistent")
	assert.Empty(t, s.Visible())

	_, ok := s.Selected()
	assert.False(t, ok)
}

func TestUnitsState_MoveCursor邊界(t *testing.T) {
	s := NewUnitsState()
	s.SetRecords(sampleRecords())

	s.MoveCursor(-1)
	assert.Equal(t, 0, s.Cursor)

	s.MoveCursor(10)
	assert.Equal(t, 2, s.Cursor)
}

func TestUnitsState_排序切換(t *testing.T) {
	s := NewUnitsState()
	s.SetRecords(sampleRecords())

	s.ToggleSortOrder()
	assert.False(t, s.SortAsc)
	assert.Equal(t, "ssh.service", s.Records[0].Unit)

	s.CycleSortColumn()
	assert.Equal(t, unit.ColDescription, s.SortColumn)
}
