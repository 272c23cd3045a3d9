package report

import (
	"io"
	"strings"

	"github.com/nao1215/markdown"
)

// MarkdownWriter outputs the summary as Markdown. Each record line becomes
// its own paragraph. Text taken from the workbook is escaped so it renders
// literally.
type MarkdownWriter struct{}

// NewMarkdownWriter creates a MarkdownWriter.
func NewMarkdownWriter() *MarkdownWriter {
	return &MarkdownWriter{}
}

// Extension implements Writer.
func (*MarkdownWriter) Extension() string { return ".md" }

// ContentType implements Writer.
func (*MarkdownWriter) ContentType() string { return "text/markdown; charset=utf-8" }

// Write implements Writer.
func (*MarkdownWriter) Write(w io.Writer, doc Document) error {
	md := markdown.NewMarkdown(w)

	md.H1(EscapeMarkdown(doc.Title))
	md.PlainText("")

	for _, s := range doc.Sections {
		heading(md, s.Level, EscapeMarkdown(s.Heading))
		md.PlainText("")
		for _, line := range s.Lines {
			md.PlainText(EscapeMarkdown(line))
			md.PlainText("")
		}
	}

	return md.Build()
}

// heading maps document levels onto Markdown headings; level 0 is the title
// so sections start at H2.
func heading(md *markdown.Markdown, level int, text string) {
	switch level {
	case 0:
		md.H1(text)
	case 1:
		md.H2(text)
	case 2:
		md.H3(text)
	default:
		md.H4(text)
	}
}

var inlineEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	"*", `\*`,
	"_", `\_`,
	"[", `\[`,
	"]", `\]`,
	"<", `\<`,
	">", `\>`,
	"|", `\|`,
	"~", `\~`,
)

// EscapeMarkdown backslash-escapes characters that would start emphasis,
// code, links, HTML or tables, plus a leading marker that would turn the
// line into a heading, quote or list item.
func EscapeMarkdown(s string) string {
	s = inlineEscaper.Replace(s)
	trimmed := strings.TrimLeft(s, " ")
	if trimmed == "" {
		return s
	}
	switch trimmed[0] {
	case '#', '+', '-', '=':
		indent := len(s) - len(trimmed)
		return s[:indent] + `\` + trimmed
	}
	return s
}
