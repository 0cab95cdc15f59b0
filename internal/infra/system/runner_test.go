package system

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestElevatedArgv(t *testing.T) {
	argv := elevatedArgv("pkexec", "/usr/bin/systemctl", []string{"restart", "nginx.service"})
	assert.Equal(t, []string{"pkexec", "/usr/bin/systemctl", "restart", "nginx.service"}, argv)
}

func TestElevatedArgv_無參數(t *testing.T) {
	argv := elevatedArgv("/usr/bin/pkexec", "/usr/bin/systemctl", nil)
	assert.Equal(t, []string{"/usr/bin/pkexec", "/usr/bin/systemctl"}, argv)
}

func TestRun_成功(t *testing.T) {
	r := NewRunner("/usr/bin/systemctl", "pkexec", zap.NewNop())

	result := r.Run(context.Background(), false, "echo", "hello")
	assert.Equal(t, 0, result.Code)
	assert.True(t, result.Ok())
	assert.Equal(t, "hello\n", result.Stdout)
	assert.Empty(t, result.Stderr)
}

func TestRun_命令不存在(t *testing.T) {
	r := NewRunner("/usr/bin/systemctl", "pkexec", zap.NewNop())

	result := r.Run(context.Background(), false, "definitely-not-a-real-command-vigil")
	assert.Equal(t, 1, result.Code)
	assert.False(t, result.Ok())
	assert.True(t, strings.Contains(result.Stderr, "command not found"))
}

func TestRun_非零退出碼(t *testing.T) {
	r := NewRunner("/usr/bin/systemctl", "pkexec", zap.NewNop())

	result := r.Run(context.Background(), false, "sh", "-c", "echo oops >&2; exit 3")
	assert.Equal(t, 3, result.Code)
	assert.Equal(t, "oops\n", result.Stderr)
}

func TestRun_上下文取消(t *testing.T) {
	r := NewRunner("/usr/bin/systemctl", "pkexec", zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := r.Run(ctx, false, "sleep", "10")
	assert.NotEqual(t, 0, result.Code)
}
