package files

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"pubsummary/internal/config"
	apperrors "pubsummary/internal/errors"
)

// Manager owns the upload and output directories. Every write goes through
// a temporary file in the destination directory followed by a rename, so a
// reader never observes a partially written file.
type Manager struct {
	paths  *config.Paths
	logger *slog.Logger
}

// NewManager creates a file manager for the resolved paths.
func NewManager(paths *config.Paths, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		paths:  paths,
		logger: logger.With(slog.String("component", "file_manager")),
	}
}

// Paths returns the directories the manager writes to.
func (m *Manager) Paths() *config.Paths {
	return m.paths
}

// EnsureDirectories creates the upload and output directories.
func (m *Manager) EnsureDirectories() error {
	if err := m.paths.EnsureDirectories(); err != nil {
		return apperrors.NewIOError("create directories", err)
	}
	return nil
}

// SaveUpload stores r under the upload directory as name, which must already
// be sanitised, and returns the full path.
func (m *Manager) SaveUpload(ctx context.Context, name string, r io.Reader) (string, error) {
	if !isPlainName(name) {
		return "", apperrors.NewInvalidInput(fmt.Sprintf("invalid upload name %q", name))
	}

	path := m.paths.UploadPath(name)
	n, err := writeAtomic(path, func(w io.Writer) (int64, error) {
		return io.Copy(w, r)
	})
	if err != nil {
		return "", apperrors.NewIOError("save upload", err).WithContext("file", name)
	}

	m.logger.InfoContext(ctx, "upload saved",
		slog.String("file", name),
		slog.Int64("bytes", n))
	return path, nil
}

// WriteArtifact atomically replaces the named file in the output directory
// with data and returns the full path.
func (m *Manager) WriteArtifact(ctx context.Context, name string, data []byte) (string, error) {
	if !isPlainName(name) {
		return "", apperrors.NewInvalidInput(fmt.Sprintf("invalid artifact name %q", name))
	}

	path := m.paths.OutputPath(name)
	if _, err := writeAtomic(path, func(w io.Writer) (int64, error) {
		n, err := w.Write(data)
		return int64(n), err
	}); err != nil {
		return "", apperrors.NewIOError("write artifact", err).WithContext("file", name)
	}

	m.logger.DebugContext(ctx, "artifact written",
		slog.String("file", name),
		slog.Int("bytes", len(data)))
	return path, nil
}

// ResolveArtifact returns the full path of an existing artifact. Names with
// path separators, dot segments, or that do not name a regular file in the
// output directory are reported as NOT_FOUND.
func (m *Manager) ResolveArtifact(name string) (string, error) {
	if !isPlainName(name) {
		m.logger.Warn("rejected artifact name", slog.String("file", name))
		return "", apperrors.NewNotFound("artifact").WithContext("file", name)
	}

	path := m.paths.OutputPath(name)
	if !within(m.paths.OutputDir, path) {
		return "", apperrors.NewNotFound("artifact").WithContext("file", name)
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", apperrors.NewNotFound("artifact").WithContext("file", name)
		}
		return "", apperrors.NewIOError("stat artifact", err).WithContext("file", name)
	}
	if !info.Mode().IsRegular() {
		return "", apperrors.NewNotFound("artifact").WithContext("file", name)
	}
	return path, nil
}

// RemoveUpload deletes a stored upload. A missing file is not an error.
func (m *Manager) RemoveUpload(name string) error {
	if !isPlainName(name) {
		return nil
	}
	if err := os.Remove(m.paths.UploadPath(name)); err != nil && !os.IsNotExist(err) {
		return apperrors.NewIOError("remove upload", err).WithContext("file", name)
	}
	return nil
}

// writeAtomic writes through fill into a temporary file beside path and
// renames it into place.
func writeAtomic(path string, fill func(io.Writer) (int64, error)) (int64, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, fmt.Errorf("failed to create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return 0, fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	n, err := fill(tmp)
	if err != nil {
		tmp.Close()
		return n, fmt.Errorf("failed to write content: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return n, fmt.Errorf("failed to sync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return n, fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return n, fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return n, fmt.Errorf("failed to rename into place: %w", err)
	}
	return n, nil
}

// isPlainName reports whether name is a single path element.
func isPlainName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, 0) {
		return false
	}
	return filepath.Base(name) == name
}

func within(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) && rel != "."
}
