package view

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/Yat-Muk/vigil/internal/domain/unit"
)

func testDashboardData() DashboardData {
	records := []unit.Record{
		{Unit: "ssh.service", Load: "loaded", Active: "active", Sub: "running", Enabled: "enabled", Description: "OpenSSH server"},
		{Unit: "cron.service", Load: "loaded", Active: "inactive", Sub: "dead", Enabled: "enabled", Description: "Cron daemon"},
	}
	return DashboardData{
		Records:   records,
		Total:     len(records),
		UnitType:  "service",
		Selected:  records[0],
		TextInput: textinput.New(),
		Spinner:   spinner.New(),
		Width:     120,
		Height:    40,
	}
}

func TestRenderDashboard_狀態指示點(t *testing.T) {
	d := testDashboardData()
	d.HasSelection = true

	out := RenderDashboard(d)

	// 每行一個指示點，選中行（光標 0）也不丟失
	if got := strings.Count(out, "●"); got != len(d.Records) {
		t.Errorf("指示點數量 = %d; 預期 %d", got, len(d.Records))
	}
	if !strings.Contains(out, "ssh.service") {
		t.Error("輸出應包含 ssh.service")
	}
}

func TestRenderDashboard_統計行含單元類型(t *testing.T) {
	out := RenderDashboard(testDashboardData())

	if !strings.Contains(out, "共 2 個 service 單元") {
		t.Error("統計行應標明單元類型與數量")
	}
}
