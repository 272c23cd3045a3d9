// Package exporter serializes filtered publication tables.
//
// Two encoders are provided:
//
// XLSXWriter: single-sheet Excel workbook with a bold header row. Years are
// written as numeric cells.
//
// CSVWriter: comma-separated values with an optional UTF-8 BOM for Excel
// compatibility.
//
// Both write the table's original column layout, including columns that
// the summary does not interpret. Export skips empty tables entirely, so an
// empty partition never produces a file.
//
// Example usage:
//
//	enc, err := exporter.NewEncoder("xlsx")
//	if err != nil {
//		return err
//	}
//	data, ok, err := exporter.Export(enc, part.Journals)
package exporter
