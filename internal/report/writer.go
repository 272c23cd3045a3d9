package report

import (
	"fmt"
	"io"
	"strings"
)

// Supported summary formats.
const (
	FormatDOCX     = "docx"
	FormatMarkdown = "markdown"
)

// Writer serializes a Document.
type Writer interface {
	// Write encodes doc to w.
	Write(w io.Writer, doc Document) error
	// Extension is the file extension, with leading dot, for the format.
	Extension() string
	// ContentType is the MIME type served for the format.
	ContentType() string
}

// NewWriter returns the writer for a summary format name.
func NewWriter(format string) (Writer, error) {
	switch strings.ToLower(format) {
	case FormatDOCX, "":
		return NewDOCXWriter(), nil
	case FormatMarkdown, "md":
		return NewMarkdownWriter(), nil
	default:
		return nil, fmt.Errorf("unsupported summary format: %s", format)
	}
}
