package domain

import (
	"strconv"
	"strings"
)

// Publication type labels. A record's Type is compared against these after
// lowercasing; any other value belongs to neither partition.
const (
	TypeJournal    = "journal"
	TypeConference = "conference"
)

// Field identifies which publication attribute a worksheet column carries.
type Field int

const (
	FieldExtra Field = iota
	FieldYear
	FieldType
	FieldFacultyName
	FieldTitle
	FieldVenue
)

// RequiredFields lists the fields every input table must provide, in the
// order their canonical columns are written.
var RequiredFields = []Field{FieldYear, FieldType, FieldFacultyName, FieldTitle, FieldVenue}

// String returns the canonical column header for the field.
func (f Field) String() string {
	switch f {
	case FieldYear:
		return "Year"
	case FieldType:
		return "Type"
	case FieldFacultyName:
		return "Faculty Name"
	case FieldTitle:
		return "Title"
	case FieldVenue:
		return "Venue"
	default:
		return "Extra"
	}
}

// FieldForHeader maps a worksheet header to a field. Matching ignores case,
// surrounding whitespace, and inner spaces, underscores and hyphens, so
// "Faculty Name", "faculty_name" and "FacultyName" are the same column.
func FieldForHeader(header string) Field {
	switch normalizeHeader(header) {
	case "year":
		return FieldYear
	case "type":
		return FieldType
	case "facultyname":
		return FieldFacultyName
	case "title":
		return FieldTitle
	case "venue":
		return FieldVenue
	default:
		return FieldExtra
	}
}

func normalizeHeader(header string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(header)) {
		switch r {
		case ' ', '_', '-', '\t':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Column is one worksheet column as it appeared in the source table.
type Column struct {
	Name  string `json:"name"`
	Field Field  `json:"field"`
}

// DefaultColumns returns the canonical five-column layout used when a table
// was not loaded from a worksheet.
func DefaultColumns() []Column {
	cols := make([]Column, 0, len(RequiredFields))
	for _, f := range RequiredFields {
		cols = append(cols, Column{Name: f.String(), Field: f})
	}
	return cols
}

// Record is a single publication entry.
type Record struct {
	Year        int    `json:"year"`
	Type        string `json:"type"`
	FacultyName string `json:"faculty_name"`
	Title       string `json:"title"`
	Venue       string `json:"venue"`

	// Cells holds the raw source row aligned with Table.Columns so exports
	// can reproduce columns the summary does not interpret.
	Cells []string `json:"-"`
}

// Value returns the text of the record for the given column index.
func (r Record) Value(col Column, idx int) string {
	switch col.Field {
	case FieldYear:
		return strconv.Itoa(r.Year)
	case FieldType:
		return r.Type
	case FieldFacultyName:
		return r.FacultyName
	case FieldTitle:
		return r.Title
	case FieldVenue:
		return r.Venue
	}
	if idx < len(r.Cells) {
		return r.Cells[idx]
	}
	return ""
}

// Table is an ordered sequence of records. Order is significant.
type Table struct {
	Columns []Column `json:"columns,omitempty"`
	Records []Record `json:"records"`
}

// Layout returns the table's columns, falling back to DefaultColumns.
func (t Table) Layout() []Column {
	if len(t.Columns) == 0 {
		return DefaultColumns()
	}
	return t.Columns
}

// Len returns the number of records.
func (t Table) Len() int {
	return len(t.Records)
}

// Empty reports whether the table holds no records.
func (t Table) Empty() bool {
	return len(t.Records) == 0
}

// Criteria is a closed year interval. StartYear > EndYear is allowed and
// matches nothing.
type Criteria struct {
	StartYear int `json:"start_year"`
	EndYear   int `json:"end_year"`
}

// Contains reports whether year lies within the interval.
func (c Criteria) Contains(year int) bool {
	return c.StartYear <= year && year <= c.EndYear
}

// Partition is the result of filtering a table: two disjoint, order
// preserving sub-tables.
type Partition struct {
	Journals    Table `json:"journals"`
	Conferences Table `json:"conferences"`
}

// Artifacts names the output files produced for one input. Journal and
// Conference are empty when the corresponding partition was empty.
type Artifacts struct {
	BaseName        string `json:"-"`
	Journal         string `json:"journal,omitempty"`
	Conference      string `json:"conference,omitempty"`
	Summary         string `json:"summary"`
	JournalCount    int    `json:"journal_count"`
	ConferenceCount int    `json:"conference_count"`
}
