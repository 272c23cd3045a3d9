package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// PublicationHeader is the canonical header row of an input workbook.
var PublicationHeader = []any{"Year", "Type", "Faculty Name", "Title", "Venue"}

// SampleRows mirrors a small department export: two journals, a conference
// outside 2020-2021 and a workshop.
func SampleRows() [][]any {
	return [][]any{
		PublicationHeader,
		{2020, "Journal", "A", "T1", "V1"},
		{2019, "Conference", "B", "T2", "V2"},
		{2021, "journal", "C", "T3", "V3"},
		{2021, "Workshop", "D", "T4", "V4"},
	}
}

// BuildWorkbook returns the bytes of an .xlsx file whose first sheet holds
// rows, starting at A1.
func BuildWorkbook(t testing.TB, rows [][]any) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("set row %d: %v", i+1, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf.Bytes()
}

// WriteWorkbook saves BuildWorkbook(rows) as name under dir and returns the
// full path.
func WriteWorkbook(t testing.TB, dir, name string, rows [][]any) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, BuildWorkbook(t, rows), 0644); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	return path
}

// ReadWorkbook returns the raw rows of the first sheet of the workbook at path.
func ReadWorkbook(t testing.TB, path string) [][]string {
	t.Helper()

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0), excelize.Options{RawCellValue: true})
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	return rows
}
