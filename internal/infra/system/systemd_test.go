package system

import (
	"context"
	"os"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestPropertyReader_Props(t *testing.T) {
	// 非 systemd 環境直接跳過
	if _, err := os.Stat("/run/systemd/system"); os.IsNotExist(err) {
		t.Skip("Skipping systemd test: /run/systemd/system not found (not a systemd environment)")
	}

	reader, err := NewPropertyReader(zap.NewNop())
	if err != nil {
		t.Skipf("Skipping systemd test: cannot connect to system bus: %v", err)
	}
	defer reader.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// dbus.service 幾乎一定在運行
	props, err := reader.Props(ctx, "dbus.service")
	if err != nil {
		t.Fatalf("Props failed: %v", err)
	}

	t.Logf("Props: %+v", props)

	if props.Active {
		if props.PID == 0 {
			t.Error("Active service should have a PID")
		}
		if props.Since.IsZero() {
			t.Error("Active service should have an ActiveEnterTimestamp")
		}
	}
}

func TestPropertyReader_不存在的單元(t *testing.T) {
	if _, err := os.Stat("/run/systemd/system"); os.IsNotExist(err) {
		t.Skip("Skipping systemd test")
	}

	reader, err := NewPropertyReader(zap.NewNop())
	if err != nil {
		t.Skipf("Skipping systemd test: %v", err)
	}
	defer reader.Close()

	// 不存在的單元不應 panic，Active 應為 false
	props, err := reader.Props(context.Background(), "vigil-test-dummy-nonexistent.service")
	if err != nil {
		t.Logf("Props on non-existent unit returned error: %v", err)
		return
	}
	if props.Active {
		t.Error("non-existent unit should not be active")
	}
}
