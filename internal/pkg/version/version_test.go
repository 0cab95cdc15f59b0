package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestBuildInfo 測試構建信息
func TestBuildInfo(t *testing.T) {
	t.Run("版本存在", func(t *testing.T) {
		assert.NotEmpty(t, Version)
	})

	t.Run("Go版本存在", func(t *testing.T) {
		assert.NotEmpty(t, GoVersion)
	})
}

// TestShort 測試短版本字符串
func TestShort(t *testing.T) {
	t.Run("不帶提交哈希", func(t *testing.T) {
		old := GitCommit
		GitCommit = ""
		defer func() { GitCommit = old }()

		assert.Equal(t, "v"+Version, Short())
	})

	t.Run("帶提交哈希", func(t *testing.T) {
		old := GitCommit
		GitCommit = "abcdef01"
		defer func() { GitCommit = old }()

		assert.Contains(t, Short(), "abcdef01")
	})
}

// TestInfo 測試完整版本信息
func TestInfo(t *testing.T) {
	info := Info()
	assert.Contains(t, info, "Vigil")
	assert.Contains(t, info, Version)
	assert.Contains(t, info, GoVersion)
}
