package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pubsummary/internal/config"
	"pubsummary/internal/shared/testutil"
	"pubsummary/internal/validation"
	"pubsummary/pkg/contracts"
)

type failingChecker struct{}

func (failingChecker) ValidateOutputDirectory(string) error { return errors.New("read-only") }

func newHealthPaths(t *testing.T) *config.Paths {
	t.Helper()
	base := t.TempDir()
	paths := &config.Paths{
		BaseDir:   base,
		UploadDir: filepath.Join(base, "uploads"),
		OutputDir: filepath.Join(base, "output"),
	}
	require.NoError(t, paths.EnsureDirectories())
	return paths
}

func TestHealthServiceChecks(t *testing.T) {
	logger, _ := testutil.NewTestLogger(t)
	paths := newHealthPaths(t)
	hs := NewHealthService(contracts.GetVersionInfo(), paths, validation.NewFileValidator(logger, 0), logger)
	ctx := context.Background()

	assert.Equal(t, "ok", hs.HealthCheck(ctx).Status)

	ready := hs.ReadinessCheck(ctx)
	assert.Equal(t, "ready", ready.Status)
	assert.Equal(t, "ready", ready.Services["uploads"].Status)
	assert.Equal(t, "ready", ready.Services["output"].Status)

	live := hs.LivenessCheck(ctx)
	assert.Equal(t, "alive", live.Status)
	assert.Contains(t, live.Runtime, "goroutines")

	v := hs.Version()
	assert.Equal(t, contracts.Version, v["version"])
	assert.Equal(t, contracts.APIVersion, v["api_version"])
}

func TestHealthServiceNotReady(t *testing.T) {
	logger, logs := testutil.NewTestLogger(t)
	paths := newHealthPaths(t)

	hs := NewHealthService(contracts.GetVersionInfo(), paths, failingChecker{}, logger)
	status := hs.ReadinessCheck(context.Background())
	assert.Equal(t, "not_ready", status.Status)
	assert.Contains(t, status.Services["output"].Message, "read-only")
	assert.True(t, logs.ContainsMessage("Readiness check failed"))

	require.NoError(t, os.RemoveAll(paths.UploadDir))
	hs = NewHealthService(contracts.GetVersionInfo(), paths, validation.NewFileValidator(logger, 0), logger)
	status = hs.ReadinessCheck(context.Background())
	assert.Equal(t, "not_ready", status.Status)
	assert.Contains(t, status.Services["uploads"].Message, "not found")
}

func TestHealthServiceArtifactStats(t *testing.T) {
	paths := newHealthPaths(t)
	require.NoError(t, os.WriteFile(filepath.Join(paths.OutputDir, "a_summary.docx"), []byte("12345"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(paths.OutputDir, "a_journal_summary.xlsx"), []byte("123"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(paths.OutputDir, "sub"), 0755))

	hs := NewHealthService(contracts.GetVersionInfo(), paths, failingChecker{}, nil)
	stats, err := hs.ArtifactStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalFiles)
	assert.Equal(t, int64(8), stats.TotalSizeBytes)
}
