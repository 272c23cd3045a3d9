package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePaths(t *testing.T) {
	base := t.TempDir()

	paths, err := ResolvePaths(PathsConfig{UploadDir: "uploads", OutputDir: "/abs/output"}, "logs/app.log", base)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(base, "uploads"), paths.UploadDir)
	assert.Equal(t, "/abs/output", paths.OutputDir)
	assert.Equal(t, filepath.Join(base, "logs"), paths.LogsDir)
	assert.Equal(t, filepath.Join(base, "uploads", "a.xlsx"), paths.UploadPath("a.xlsx"))
	assert.Equal(t, filepath.Join("/abs/output", "a_summary.docx"), paths.OutputPath("a_summary.docx"))
}

func TestPaths_EnsureDirectories(t *testing.T) {
	base := t.TempDir()

	paths, err := ResolvePaths(PathsConfig{UploadDir: "in/nested", OutputDir: "out"}, "app.log", base)
	require.NoError(t, err)
	require.NoError(t, paths.EnsureDirectories())

	for _, dir := range []string{paths.UploadDir, paths.OutputDir} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}
