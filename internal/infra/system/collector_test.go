package system

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Yat-Muk/vigil/internal/domain/unit"
)

// fakeRunner 按子命令返回預設結果
type fakeRunner struct {
	results map[string]Result
	calls   [][]string
}

func (f *fakeRunner) Run(_ context.Context, elevated bool, name string, args ...string) Result {
	argv := append([]string{name}, args...)
	f.calls = append(f.calls, argv)
	if len(args) > 0 {
		if r, ok := f.results[args[0]]; ok {
			return r
		}
	}
	return Result{Code: 1, Stderr: "unexpected command"}
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{results: map[string]Result{}}
}

const listUnitsOut = `ssh.service loaded active running OpenBSD Secure Shell server
cron.service loaded active running Regular background program processing daemon
● failed-thing.service loaded failed failed A unit that blew up
apparmor.service loaded inactive dead Load AppArmor profiles
badline
short line here
`

const listUnitFilesOut = `ssh.service enabled enabled
cron.service enabled enabled
failed-thing.service disabled disabled
apparmor.service enabled enabled
ghost.service disabled disabled
masked-thing.service masked masked
incomplete
`

func TestCollect_合併兩遍輸出(t *testing.T) {
	runner := newFakeRunner()
	runner.results["list-units"] = Result{Stdout: listUnitsOut}
	runner.results["list-unit-files"] = Result{Stdout: listUnitFilesOut}

	c := NewCollector(runner, "service", zap.NewNop())
	records, err := c.Collect(context.Background())
	require.NoError(t, err)

	// 4 個運行中單元 + 2 個僅安裝的佔位單元
	require.Len(t, records, 6)

	assert.Equal(t, unit.Record{
		Unit: "ssh.service", Load: "loaded", Active: "active", Sub: "running",
		Description: "OpenBSD Secure Shell server", Enabled: "enabled",
	}, records[0])

	// "●" 前綴被剝離
	assert.Equal(t, "failed-thing.service", records[2].Unit)
	assert.Equal(t, "failed", records[2].Active)
	assert.Equal(t, "disabled", records[2].Enabled)

	// 僅安裝單元取佔位運行態，按解析順序排在尾部
	assert.Equal(t, unit.Record{
		Unit: "ghost.service", Load: "n/a", Active: "inactive", Sub: "dead",
		Description: unit.PlaceholderDescription, Enabled: "disabled",
	}, records[4])
	assert.Equal(t, "masked-thing.service", records[5].Unit)
	assert.Equal(t, "masked", records[5].Enabled)
}

func TestCollect_安裝態缺失時標記問號(t *testing.T) {
	runner := newFakeRunner()
	runner.results["list-units"] = Result{Stdout: listUnitsOut}
	runner.results["list-unit-files"] = Result{Code: 1, Stderr: "boom"}

	c := NewCollector(runner, "service", zap.NewNop())
	records, err := c.Collect(context.Background())
	require.NoError(t, err)

	// 降級後不產生佔位單元
	require.Len(t, records, 4)
	for _, r := range records {
		assert.Equal(t, "?", r.Enabled)
	}
}

func TestCollect_運行態失敗時整體失敗(t *testing.T) {
	runner := newFakeRunner()
	runner.results["list-units"] = Result{Code: 1, Stderr: "Failed to connect to bus"}
	runner.results["list-unit-files"] = Result{Stdout: listUnitFilesOut}

	c := NewCollector(runner, "service", zap.NewNop())
	records, err := c.Collect(context.Background())
	assert.Nil(t, records)

	var collectErr *CollectError
	require.ErrorAs(t, err, &collectErr)
	assert.Equal(t, 1, collectErr.Code)
	assert.Equal(t, "Failed to connect to bus", collectErr.Stderr)
	assert.Contains(t, collectErr.Error(), "Failed to connect to bus")
}

func TestCollect_同名單元後者覆蓋(t *testing.T) {
	runner := newFakeRunner()
	runner.results["list-units"] = Result{Stdout: "dup.service loaded inactive dead First sighting\n" +
		"other.service loaded active running Something else\n" +
		"dup.service loaded active running Second sighting\n"}
	runner.results["list-unit-files"] = Result{Stdout: ""}

	c := NewCollector(runner, "service", zap.NewNop())
	records, err := c.Collect(context.Background())
	require.NoError(t, err)

	// 重複單元只出現一次，取最後一次的值，位置保持首見處
	require.Len(t, records, 2)
	assert.Equal(t, "dup.service", records[0].Unit)
	assert.Equal(t, "active", records[0].Active)
	assert.Equal(t, "Second sighting", records[0].Description)
}

func TestCollect_畸形行被跳過(t *testing.T) {
	runner := newFakeRunner()
	runner.results["list-units"] = Result{Stdout: "only three tokens\n\n   \n"}
	runner.results["list-unit-files"] = Result{Stdout: ""}

	c := NewCollector(runner, "service", zap.NewNop())
	records, err := c.Collect(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestCollect_單元類型傳遞(t *testing.T) {
	runner := newFakeRunner()
	runner.results["list-units"] = Result{Stdout: ""}
	runner.results["list-unit-files"] = Result{Stdout: ""}

	c := NewCollector(runner, "socket", zap.NewNop())
	_, err := c.Collect(context.Background())
	require.NoError(t, err)

	require.Len(t, runner.calls, 2)
	assert.Contains(t, runner.calls[0], "--type=socket")
	assert.Contains(t, runner.calls[1], "--type=socket")
}

func TestStatus_成功返回標準輸出(t *testing.T) {
	runner := newFakeRunner()
	runner.results["status"] = Result{Stdout: "● ssh.service - OpenBSD Secure Shell server\n   Active: active (running)\n"}

	c := NewCollector(runner, "service", zap.NewNop())
	text := c.Status(context.Background(), "ssh.service")
	assert.True(t, strings.HasPrefix(text, "● ssh.service"))
}

func TestStatus_失敗時拼接stderr(t *testing.T) {
	runner := newFakeRunner()
	runner.results["status"] = Result{Code: 3, Stdout: "○ foo.service\n   Active: inactive (dead)\n", Stderr: "some warning"}

	c := NewCollector(runner, "service", zap.NewNop())
	text := c.Status(context.Background(), "foo.service")
	assert.Contains(t, text, "inactive (dead)")
	assert.Contains(t, text, "some warning")
}
