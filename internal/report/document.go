package report

import (
	"fmt"

	"pubsummary/pkg/contracts/domain"
)

// Section names, in the order they appear in every document.
const (
	SectionJournals    = "Journals"
	SectionConferences = "Conferences"
)

// NoRecordsLine is the single line rendered for an empty section.
const NoRecordsLine = "No records found."

// Heading levels. The title uses level 0, matching word processors that
// reserve it for the document title style.
const (
	TitleLevel   = 0
	SectionLevel = 1
)

// DefaultTitle is used when Render is given an empty title.
const DefaultTitle = "Publication Summary Report"

// Document is a rendered summary, independent of any file format.
type Document struct {
	Title    string
	Sections []Section
}

// Section is one headed block of the document.
type Section struct {
	Heading string
	Level   int
	Lines   []string
	// Empty is set when the section had no records and Lines holds the
	// fallback text.
	Empty bool
}

// Render builds the summary document for a partition. Both sections are
// always present, journals first.
func Render(title string, part domain.Partition) Document {
	if title == "" {
		title = DefaultTitle
	}
	return Document{
		Title: title,
		Sections: []Section{
			renderSection(SectionJournals, part.Journals),
			renderSection(SectionConferences, part.Conferences),
		},
	}
}

func renderSection(heading string, t domain.Table) Section {
	s := Section{Heading: heading, Level: SectionLevel}
	if t.Empty() {
		s.Lines = []string{NoRecordsLine}
		s.Empty = true
		return s
	}
	s.Lines = make([]string, 0, t.Len())
	for _, r := range t.Records {
		s.Lines = append(s.Lines, FormatRecord(r))
	}
	return s
}

// FormatRecord returns the summary line for one record:
// {year} - {faculty}: "{title}" ({venue}).
func FormatRecord(r domain.Record) string {
	return fmt.Sprintf("%d - %s: \"%s\" (%s)", r.Year, r.FacultyName, r.Title, r.Venue)
}
