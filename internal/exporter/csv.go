package exporter

import (
	"encoding/csv"
	"fmt"
	"io"

	"pubsummary/pkg/contracts/domain"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVWriter encodes a table as comma-separated values.
type CSVWriter struct {
	// BOMPrefix adds a UTF-8 BOM so Excel detects the encoding.
	BOMPrefix bool
}

// NewCSVWriter creates a CSV writer that emits a BOM.
func NewCSVWriter() *CSVWriter {
	return &CSVWriter{BOMPrefix: true}
}

// Extension implements Encoder.
func (*CSVWriter) Extension() string { return ".csv" }

// ContentType implements Encoder.
func (*CSVWriter) ContentType() string { return "text/csv; charset=utf-8" }

// Encode writes the header row followed by one row per record.
func (c *CSVWriter) Encode(w io.Writer, t domain.Table) error {
	if c.BOMPrefix {
		if _, err := w.Write(utf8BOM); err != nil {
			return fmt.Errorf("failed to write BOM: %w", err)
		}
	}

	writer := csv.NewWriter(w)

	if err := writer.Write(headerRow(t)); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}

	for i, record := range textRows(t) {
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
