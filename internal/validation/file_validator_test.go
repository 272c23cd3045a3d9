package validation

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "pubsummary/internal/errors"
	"pubsummary/internal/shared/testutil"
)

func TestSecureFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"My cool movie.mov", "My_cool_movie.mov"},
		{"../../../etc/passwd", "etc_passwd"},
		{"i contain cool \u00fcml\u00e4uts.txt", "i_contain_cool_umlauts.txt"},
		{`C:\Users\me\pubs 2020.xlsx`, "C_Users_me_pubs_2020.xlsx"},
		{"publications.xlsx", "publications.xlsx"},
		{"  __.hidden.xlsx", "hidden.xlsx"},
		{"CON.xlsx", "_CON.xlsx"},
		{"\u65e5\u672c.xlsx", "xlsx"},
		{"...", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SecureFilename(tt.in))
		})
	}
}

func TestBaseName(t *testing.T) {
	assert.Equal(t, "pubs", BaseName("pubs.xlsx"))
	assert.Equal(t, "pubs.v2", BaseName("pubs.v2.xlsx"))
	assert.Equal(t, "pubs", BaseName("pubs"))
}

func TestValidateUpload(t *testing.T) {
	logger, _ := testutil.NewTestLogger(t)
	v := NewFileValidator(logger, 1024)

	tests := []struct {
		name     string
		filename string
		size     int64
		want     Upload
		wantErr  string
	}{
		{name: "valid", filename: "Pubs 2020.xlsx", size: 10, want: Upload{Name: "Pubs_2020.xlsx", BaseName: "Pubs_2020"}},
		{name: "uppercase extension", filename: "pubs.XLSX", size: 10, want: Upload{Name: "pubs.XLSX", BaseName: "pubs"}},
		{name: "macro workbook", filename: "pubs.xlsm", size: 10, want: Upload{Name: "pubs.xlsm", BaseName: "pubs"}},
		{name: "traversal is flattened", filename: "../x/pubs.xlsx", size: 10, want: Upload{Name: "x_pubs.xlsx", BaseName: "x_pubs"}},
		{name: "empty name", filename: "", size: 10, wantErr: "no file selected"},
		{name: "sanitises to empty", filename: "\u65e5\u672c", size: 10, wantErr: "invalid file name"},
		{name: "extension only", filename: ".xlsx", size: 10, wantErr: "unsupported file type"},
		{name: "wrong extension", filename: "pubs.csv", size: 10, wantErr: "unsupported file type"},
		{name: "legacy xls", filename: "pubs.xls", size: 10, wantErr: "unsupported file type"},
		{name: "temp file", filename: "~$pubs.xlsx", size: 10, wantErr: "temporary"},
		{name: "empty file", filename: "pubs.xlsx", size: 0, wantErr: "empty"},
		{name: "too large", filename: "pubs.xlsx", size: 2048, wantErr: "maximum size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.ValidateUpload(tt.filename, tt.size)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidInput))
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateUploadNoLimit(t *testing.T) {
	v := NewFileValidator(nil, 0)
	_, err := v.ValidateUpload("pubs.xlsx", 1<<40)
	assert.NoError(t, err)
}

func TestValidateOutputDirectory(t *testing.T) {
	v := NewFileValidator(nil, 0)

	dir := filepath.Join(t.TempDir(), "new", "output")
	require.NoError(t, v.ValidateOutputDirectory(dir))
	assert.DirExists(t, dir)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "probe file removed")

	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))
	assert.Error(t, v.ValidateOutputDirectory(filepath.Join(file, "sub")))
}

func TestValidateExcelFile(t *testing.T) {
	v := NewFileValidator(nil, 0)
	dir := t.TempDir()

	path := testutil.WriteWorkbook(t, dir, "pubs.xlsx", testutil.SampleRows())
	up, err := v.ValidateExcelFile(path)
	require.NoError(t, err)
	assert.Equal(t, "pubs", up.BaseName)

	_, err = v.ValidateExcelFile(filepath.Join(dir, "missing.xlsx"))
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidInput))

	_, err = v.ValidateExcelFile(dir)
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidInput))

	csvPath := filepath.Join(dir, "pubs.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(strings.Repeat("x", 4)), 0644))
	_, err = v.ValidateExcelFile(csvPath)
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidInput))
}
