package exporter

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"pubsummary/pkg/contracts/domain"
)

// Supported export formats.
const (
	FormatXLSX = "xlsx"
	FormatCSV  = "csv"
)

// Encoder serializes a table into one tabular file format.
type Encoder interface {
	Encode(w io.Writer, t domain.Table) error
	Extension() string
	ContentType() string
}

// NewEncoder returns the encoder for an export format name.
func NewEncoder(format string) (Encoder, error) {
	switch strings.ToLower(format) {
	case FormatXLSX, "":
		return NewXLSXWriter(), nil
	case FormatCSV:
		return NewCSVWriter(), nil
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
}

// Export encodes t into memory. An empty table produces no file: Export
// returns nil data and ok=false.
func Export(enc Encoder, t domain.Table) (data []byte, ok bool, err error) {
	if t.Empty() {
		return nil, false, nil
	}

	var buf bytes.Buffer
	if err := enc.Encode(&buf, t); err != nil {
		return nil, false, err
	}
	return buf.Bytes(), true, nil
}
