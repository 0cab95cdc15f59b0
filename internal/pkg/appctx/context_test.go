package appctx

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaths(t *testing.T) {
	tmpDir := t.TempDir()

	paths, err := NewPaths(tmpDir)
	require.NoError(t, err)

	assert.NotNil(t, paths)
	assert.Equal(t, tmpDir, paths.BaseDir)
}

func TestPaths_Directories(t *testing.T) {
	tmpDir := t.TempDir()

	paths, err := NewPaths(tmpDir)
	require.NoError(t, err)

	assert.NotEmpty(t, paths.LogDir)
	assert.NotEmpty(t, paths.ConfigFile)

	// 驗證目錄已創建
	assert.DirExists(t, paths.BaseDir)
	assert.DirExists(t, paths.LogDir)

	// 配置文件位於 BaseDir 下
	assert.Equal(t, filepath.Join(tmpDir, "config.yaml"), paths.ConfigFile)
}

func TestNewPaths_Nested(t *testing.T) {
	// 多層不存在的目錄也應該能創建
	tmpDir := filepath.Join(t.TempDir(), "a", "b", "c")

	paths, err := NewPaths(tmpDir)
	require.NoError(t, err)
	assert.DirExists(t, paths.BaseDir)
}
