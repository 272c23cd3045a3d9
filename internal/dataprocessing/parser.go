package dataprocessing

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	apperrors "pubsummary/internal/errors"
	"pubsummary/pkg/contracts/domain"
)

// Loader reads publication tables from Excel workbooks.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a workbook loader.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger.With(slog.String("component", "table_loader"))}
}

// LoadFile opens the workbook at path and parses its first worksheet.
func (l *Loader) LoadFile(ctx context.Context, path string) (domain.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return domain.Table{}, apperrors.NewMalformedTable("failed to open workbook", err)
	}
	defer f.Close()

	return l.parse(ctx, f)
}

// Load parses a workbook read from r.
func (l *Loader) Load(ctx context.Context, r io.Reader) (domain.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return domain.Table{}, apperrors.NewMalformedTable("failed to open workbook", err)
	}
	defer f.Close()

	return l.parse(ctx, f)
}

// parse reads the first worksheet. Row 1 is the header; every later row that
// is not entirely blank must carry an integer year and non-empty text for
// the other required columns.
func (l *Loader) parse(ctx context.Context, f *excelize.File) (domain.Table, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return domain.Table{}, apperrors.NewMalformedTable("workbook has no worksheets", nil)
	}
	sheet := sheets[0]

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return domain.Table{}, apperrors.NewMalformedTable("failed to read worksheet", err).
			WithContext("sheet", sheet)
	}
	if len(rows) == 0 {
		return domain.Table{}, apperrors.NewMalformedTable("worksheet has no header row", nil).
			WithContext("sheet", sheet)
	}

	columns, index, err := mapColumns(rows[0])
	if err != nil {
		return domain.Table{}, err
	}

	table := domain.Table{Columns: columns, Records: []domain.Record{}}
	skipped := 0
	for i, row := range rows[1:] {
		if blankRow(row) {
			skipped++
			continue
		}
		rowNum := i + 2
		rec, err := parseRow(row, len(columns), index, rowNum)
		if err != nil {
			return domain.Table{}, err
		}
		table.Records = append(table.Records, rec)
	}

	l.logger.DebugContext(ctx, "workbook parsed",
		slog.String("sheet", sheet),
		slog.Int("columns", len(columns)),
		slog.Int("records", len(table.Records)),
		slog.Int("blank_rows", skipped))

	return table, nil
}

// mapColumns resolves the header row into columns and the index of each
// required field. Duplicate headers keep the first occurrence for the field;
// later duplicates are carried as extra columns.
func mapColumns(header []string) ([]domain.Column, map[domain.Field]int, error) {
	columns := make([]domain.Column, 0, len(header))
	index := make(map[domain.Field]int, len(domain.RequiredFields))

	for i, name := range header {
		field := domain.FieldForHeader(name)
		if field != domain.FieldExtra {
			if _, dup := index[field]; dup {
				field = domain.FieldExtra
			} else {
				index[field] = i
			}
		}
		columns = append(columns, domain.Column{Name: strings.TrimSpace(name), Field: field})
	}

	for _, f := range domain.RequiredFields {
		if _, ok := index[f]; !ok {
			return nil, nil, apperrors.NewMissingField(f.String())
		}
	}
	return columns, index, nil
}

// valueFields must hold text on every record row. Type is free text: a blank
// type matches no partition and the row is dropped later by the filter.
var valueFields = []domain.Field{domain.FieldFacultyName, domain.FieldTitle, domain.FieldVenue}

func parseRow(row []string, width int, index map[domain.Field]int, rowNum int) (domain.Record, error) {
	cells := make([]string, width)
	copy(cells, row)

	yearCell := strings.TrimSpace(cells[index[domain.FieldYear]])
	year, err := parseYear(yearCell)
	if err != nil {
		return domain.Record{}, apperrors.NewMalformedTable(
			fmt.Sprintf("invalid year on row %d", rowNum), err).
			WithContext("row", rowNum).
			WithContext("value", yearCell)
	}

	rec := domain.Record{
		Year:        year,
		Type:        cells[index[domain.FieldType]],
		FacultyName: cells[index[domain.FieldFacultyName]],
		Title:       cells[index[domain.FieldTitle]],
		Venue:       cells[index[domain.FieldVenue]],
		Cells:       cells,
	}

	for _, f := range valueFields {
		if strings.TrimSpace(cells[index[f]]) == "" {
			return domain.Record{}, apperrors.NewMalformedTable(
				fmt.Sprintf("empty %s on row %d", f, rowNum), nil).
				WithContext("row", rowNum).
				WithContext("field", f.String())
		}
	}

	return rec, nil
}

// parseYear accepts integer text and integral numeric cells such as "2020.0".
func parseYear(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("year is empty")
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("year %q is not a number", s)
	}
	if v != math.Trunc(v) || math.IsInf(v, 0) || v > math.MaxInt32 || v < math.MinInt32 {
		return 0, fmt.Errorf("year %q is not an integer", s)
	}
	return int(v), nil
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
