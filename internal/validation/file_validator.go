package validation

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	apperrors "pubsummary/internal/errors"
)

// AllowedExtensions are the workbook formats the loader can read.
var AllowedExtensions = []string{".xlsx", ".xlsm", ".xltx"}

// Upload is a sanitised, accepted upload.
type Upload struct {
	// Name is the sanitised file name the upload is stored under.
	Name string
	// BaseName is Name without its extension; artifacts are named after it.
	BaseName string
}

// FileValidator checks uploads and the directories the service writes to.
type FileValidator struct {
	logger   *slog.Logger
	maxBytes int64
}

// NewFileValidator creates a validator. maxBytes <= 0 disables the size check.
func NewFileValidator(logger *slog.Logger, maxBytes int64) *FileValidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileValidator{
		logger:   logger.With(slog.String("component", "file_validator")),
		maxBytes: maxBytes,
	}
}

// ValidateUpload sanitises the client file name and checks the extension and
// size. All failures are INVALID_INPUT.
func (v *FileValidator) ValidateUpload(filename string, size int64) (Upload, error) {
	if strings.TrimSpace(filename) == "" {
		return Upload{}, apperrors.NewInvalidInput("no file selected")
	}

	name := SecureFilename(filename)
	if name == "" || BaseName(name) == "" {
		v.logger.Warn("Upload name sanitised to empty", slog.String("filename", filename))
		return Upload{}, apperrors.NewInvalidInput("invalid file name").
			WithContext("filename", filename)
	}

	if strings.HasPrefix(filename, "~$") {
		return Upload{}, apperrors.NewInvalidInput("temporary Excel files are not accepted").
			WithContext("filename", filename)
	}

	ext := strings.ToLower(filepath.Ext(name))
	if !allowedExtension(ext) {
		v.logger.Warn("Upload rejected by extension",
			slog.String("filename", filename),
			slog.String("extension", ext))
		return Upload{}, apperrors.NewInvalidInput(
			fmt.Sprintf("unsupported file type %q: expected one of %s", ext, strings.Join(AllowedExtensions, ", "))).
			WithContext("filename", filename)
	}

	if size == 0 {
		return Upload{}, apperrors.NewInvalidInput("uploaded file is empty").
			WithContext("filename", filename)
	}
	if v.maxBytes > 0 && size > v.maxBytes {
		return Upload{}, apperrors.NewInvalidInput(
			fmt.Sprintf("file exceeds maximum size of %d bytes", v.maxBytes)).
			WithContext("filename", filename).
			WithContext("size", size)
	}

	return Upload{Name: name, BaseName: BaseName(name)}, nil
}

// ValidateOutputDirectory ensures output directory exists or can be created
func (v *FileValidator) ValidateOutputDirectory(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		v.logger.Error("Failed to create output directory",
			slog.String("directory", dir),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	// Verify it's writable by creating a test file
	testFile, err := os.CreateTemp(dir, ".write_test_*")
	if err != nil {
		v.logger.Error("Output directory is not writable",
			slog.String("directory", dir),
			slog.String("error", err.Error()))
		return fmt.Errorf("output directory %s is not writable: %w", dir, err)
	}
	testFile.Close()
	os.Remove(testFile.Name())

	v.logger.Debug("Output directory validated", slog.String("directory", dir))
	return nil
}

// ValidateFile checks if a specific file exists and is readable
func (v *FileValidator) ValidateFile(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		v.logger.Error("File does not exist", slog.String("file", path))
		return apperrors.NewInvalidInput(fmt.Sprintf("file %s does not exist", path))
	}
	if err != nil {
		return apperrors.NewIOError("stat file", err).WithContext("file", path)
	}
	if info.IsDir() {
		return apperrors.NewInvalidInput(fmt.Sprintf("%s is a directory, not a file", path))
	}

	file, err := os.Open(path)
	if err != nil {
		return apperrors.NewIOError("open file", err).WithContext("file", path)
	}
	file.Close()

	v.logger.Debug("File validated",
		slog.String("file", path),
		slog.Int64("size", info.Size()))
	return nil
}

// ValidateExcelFile checks a local workbook path the same way an upload is
// checked: it must exist, be readable and carry an accepted extension.
func (v *FileValidator) ValidateExcelFile(path string) (Upload, error) {
	if err := v.ValidateFile(path); err != nil {
		return Upload{}, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return Upload{}, apperrors.NewIOError("stat file", err)
	}
	return v.ValidateUpload(filepath.Base(path), info.Size())
}

func allowedExtension(ext string) bool {
	for _, a := range AllowedExtensions {
		if ext == a {
			return true
		}
	}
	return false
}
