package exporter

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"pubsummary/pkg/contracts/domain"
)

func TestNewEncoder(t *testing.T) {
	tests := []struct {
		format  string
		wantExt string
		wantErr bool
	}{
		{"xlsx", ".xlsx", false},
		{"XLSX", ".xlsx", false},
		{"", ".xlsx", false},
		{"csv", ".csv", false},
		{"ods", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			enc, err := NewEncoder(tt.format)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantExt, enc.Extension())
		})
	}
}

func TestExportEmptyTableProducesNothing(t *testing.T) {
	for _, enc := range []Encoder{NewXLSXWriter(), NewCSVWriter()} {
		data, ok, err := Export(enc, domain.Table{Columns: domain.DefaultColumns(), Records: []domain.Record{}})
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, data)
	}
}

func TestExportXLSX(t *testing.T) {
	data, ok, err := Export(NewXLSXWriter(), journalTable())
	require.NoError(t, err)
	require.True(t, ok)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{DefaultSheetName}, f.GetSheetList())

	rows, err := f.GetRows(DefaultSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Year", "Type", "Faculty Name", "Title", "Venue", "DOI"}, rows[0])
	assert.Equal(t, []string{"2020", "Journal", "A", "T1", "V1", "10.1/a"}, rows[1])

	typ, err := f.GetCellType(DefaultSheetName, "A2")
	require.NoError(t, err)
	assert.NotEqual(t, excelize.CellTypeSharedString, typ)
	assert.NotEqual(t, excelize.CellTypeInlineString, typ)
}

func TestXLSXWriterCustomSheet(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&XLSXWriter{SheetName: "Journals"}).Encode(&buf, journalTable()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"Journals"}, f.GetSheetList())
}
