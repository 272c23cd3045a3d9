// Package report renders a filtered publication partition into a summary
// document.
//
// Rendering is split in two steps. Render builds an in-memory Document with
// no I/O at all; a Writer then serializes that Document. Two writers exist:
//
// DOCXWriter: Office Open XML word-processing document with a title
// paragraph and one Heading 1 per section.
//
// MarkdownWriter: Markdown text where the title is a level-one heading and
// each section a level-two heading.
//
// Example usage:
//
//	doc := report.Render("Publication Summary Report", part)
//	w, err := report.NewWriter("docx")
//	if err != nil {
//		return err
//	}
//	var buf bytes.Buffer
//	err = w.Write(&buf, doc)
package report
