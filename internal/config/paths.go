package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Paths holds the resolved directories the service writes to. It is built
// once at startup from PathsConfig and handed to the components that need
// it; nothing below the boundary layer consults ambient paths.
type Paths struct {
	BaseDir   string
	UploadDir string
	OutputDir string
	LogsDir   string
}

// ResolvePaths resolves relative directories in cfg against baseDir. An
// empty baseDir means the current working directory.
func ResolvePaths(cfg PathsConfig, logFile, baseDir string) (*Paths, error) {
	if baseDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		baseDir = wd
	}

	resolve := func(p string) string {
		if filepath.IsAbs(p) {
			return filepath.Clean(p)
		}
		return filepath.Join(baseDir, p)
	}

	return &Paths{
		BaseDir:   baseDir,
		UploadDir: resolve(cfg.UploadDir),
		OutputDir: resolve(cfg.OutputDir),
		LogsDir:   filepath.Dir(resolve(logFile)),
	}, nil
}

// EnsureDirectories creates all required directories if they don't exist
func (p *Paths) EnsureDirectories() error {
	for _, dir := range []string{p.UploadDir, p.OutputDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// UploadPath returns the location an upload with the given sanitised name
// is stored at.
func (p *Paths) UploadPath(filename string) string {
	return filepath.Join(p.UploadDir, filename)
}

// OutputPath returns the location of the named artifact.
func (p *Paths) OutputPath(filename string) string {
	return filepath.Join(p.OutputDir, filename)
}

// LogPathResolution logs the resolved directories
func (p *Paths) LogPathResolution(logger *slog.Logger) {
	logger.Info("Path resolution summary",
		slog.Group("directories",
			slog.String("base", p.BaseDir),
			slog.String("uploads", p.UploadDir),
			slog.String("output", p.OutputDir),
			slog.String("logs", p.LogsDir),
		))
}
