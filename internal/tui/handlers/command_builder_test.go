package handlers

import (
	"testing"
	"time"

	"github.com/Yat-Muk/vigil/internal/infra/system"
)

// 測試 formatBytes 函數
func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name     string
		input    uint64
		expected string
	}{
		{"Zero", 0, "0 B"},
		{"Bytes", 500, "500 B"},
		{"Exact 1KB", 1024, "1.00 KB"}, // 關鍵邊界測試
		{"1.5KB", 1536, "1.50 KB"},
		{"Exact 1MB", 1048576, "1.00 MB"},
		{"Large GB", 10737418240, "10.00 GB"}, // 10 GB
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := formatBytes(tt.input)
			if result != tt.expected {
				t.Errorf("formatBytes(%d) = %s; want %s", tt.input, result, tt.expected)
			}
		})
	}
}

// 測試 formatDuration 函數
func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Duration
		expected string
	}{
		{"Seconds", 45 * time.Second, "45秒"},
		{"Minutes", 5 * time.Minute, "5分鐘"},
		{"HoursMins", 1*time.Hour + 30*time.Minute, "1小時30分鐘"},
		{"DaysHours", 26 * time.Hour, "1天2小時"},
		{"Zero", 0, "0秒"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := formatDuration(tt.input)
			if result != tt.expected {
				t.Errorf("formatDuration(%v) = %s; want %s", tt.input, result, tt.expected)
			}
		})
	}
}

// 測試 buildPropsLine 組合邏輯
func TestBuildPropsLine(t *testing.T) {
	t.Run("非活躍單元返回空", func(t *testing.T) {
		props := &system.UnitProps{Active: false, PID: 42}
		if got := buildPropsLine(props); got != "" {
			t.Errorf("buildPropsLine() = %q; want empty", got)
		}
	})

	t.Run("nil 返回空", func(t *testing.T) {
		if got := buildPropsLine(nil); got != "" {
			t.Errorf("buildPropsLine(nil) = %q; want empty", got)
		}
	})

	t.Run("完整屬性", func(t *testing.T) {
		props := &system.UnitProps{
			Active: true,
			PID:    1234,
			Memory: 2048,
			Since:  time.Now().Add(-5 * time.Minute),
		}
		got := buildPropsLine(props)
		want := "PID: 1234  │  內存: 2.00 KB  │  運行: 5分鐘"
		if got != want {
			t.Errorf("buildPropsLine() = %q; want %q", got, want)
		}
	})
}
