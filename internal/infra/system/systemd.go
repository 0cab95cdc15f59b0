package system

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/coreos/go-systemd/v22/dbus"
	"go.uber.org/zap"

	"github.com/Yat-Muk/vigil/internal/pkg/errors"
)

// UnitProps DBus 補充屬性
// 這些細節 systemctl status 以文本形式混雜輸出，走 DBus 拿結構化值
type UnitProps struct {
	PID    uint32
	Memory uint64 // 0 表示未知
	Since  time.Time
	Active bool
}

// PropertyReader 單元屬性讀取器接口
// 僅用於只讀補充信息，控制動作一律走 systemctl 提權路徑
type PropertyReader interface {
	Props(ctx context.Context, name string) (*UnitProps, error)
	Close()
}

type dbusReader struct {
	conn *dbus.Conn
	log  *zap.Logger
	mu   sync.Mutex
}

// NewPropertyReader 連接系統 DBus 總線
// 連接失敗不是致命錯誤，調用方應降級為純 systemctl 模式
func NewPropertyReader(log *zap.Logger) (PropertyReader, error) {
	conn, err := dbus.NewSystemConnectionContext(context.Background())
	if err != nil {
		return nil, errors.Wrap(err, "SYS001", "無法連接 Systemd DBus")
	}
	return &dbusReader{conn: conn, log: log}, nil
}

func (r *dbusReader) Close() {
	if r.conn != nil {
		r.conn.Close()
	}
}

func (r *dbusReader) Props(ctx context.Context, name string) (*UnitProps, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	units, err := r.conn.ListUnitsByNamesContext(ctx, []string{name})
	if err != nil {
		return nil, err
	}

	props := &UnitProps{}
	if len(units) > 0 {
		props.Active = units[0].ActiveState == "active"
	}

	// GetAllPropertiesContext 比按類型取屬性更穩健
	all, err := r.conn.GetAllPropertiesContext(ctx, name)
	if err != nil {
		r.log.Debug("讀取單元屬性失敗", zap.String("unit", name), zap.Error(err))
		return props, nil
	}

	if pid, ok := all["MainPID"].(uint32); ok {
		props.PID = pid
	}
	if mem, ok := all["MemoryCurrent"].(uint64); ok && mem != math.MaxUint64 {
		props.Memory = mem
	}
	if ts, ok := all["ActiveEnterTimestamp"].(uint64); ok && ts > 0 {
		props.Since = time.UnixMicro(int64(ts))
	}

	return props, nil
}
