package exporter

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"pubsummary/pkg/contracts/domain"
)

// DefaultSheetName is the worksheet exported tables are written to.
const DefaultSheetName = "Sheet1"

// XLSXWriter encodes a table as an Excel workbook with a bold header row.
type XLSXWriter struct {
	SheetName string
}

// NewXLSXWriter creates an XLSX writer using DefaultSheetName.
func NewXLSXWriter() *XLSXWriter {
	return &XLSXWriter{SheetName: DefaultSheetName}
}

// Extension implements Encoder.
func (*XLSXWriter) Extension() string { return ".xlsx" }

// ContentType implements Encoder.
func (*XLSXWriter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Encode writes t to a single-sheet workbook.
func (x *XLSXWriter) Encode(w io.Writer, t domain.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := x.SheetName
	if sheet == "" {
		sheet = DefaultSheetName
	}
	if current := f.GetSheetName(0); current != sheet {
		if err := f.SetSheetName(current, sheet); err != nil {
			return fmt.Errorf("failed to name sheet: %w", err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return fmt.Errorf("failed to create stream writer: %w", err)
	}

	cols := t.Layout()
	header := make([]any, len(cols))
	for i, c := range cols {
		header[i] = excelize.Cell{StyleID: headerStyle, Value: c.Name}
	}
	if err := sw.SetRow("A1", header); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}

	for i, r := range t.Records {
		row := make([]any, len(cols))
		for j, c := range cols {
			row[j] = cellValue(r, c, j)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, row); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("failed to flush sheet: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
