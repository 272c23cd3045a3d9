package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pubsummary/pkg/contracts/domain"
)

func partition(journals, conferences []domain.Record) domain.Partition {
	return domain.Partition{
		Journals:    domain.Table{Records: journals},
		Conferences: domain.Table{Records: conferences},
	}
}

func TestFormatRecord(t *testing.T) {
	r := domain.Record{Year: 2020, Type: "Journal", FacultyName: "A", Title: "T1", Venue: "V1"}
	assert.Equal(t, `2020 - A: "T1" (V1)`, FormatRecord(r))

	r.Title = `Say "hi"`
	assert.Equal(t, `2020 - A: "Say "hi"" (V1)`, FormatRecord(r))
}

func TestRender(t *testing.T) {
	tests := []struct {
		name            string
		part            domain.Partition
		wantJournals    []string
		wantConferences []string
	}{
		{
			name: "both populated",
			part: partition(
				[]domain.Record{
					{Year: 2020, FacultyName: "A", Title: "T1", Venue: "V1"},
					{Year: 2021, FacultyName: "C", Title: "T3", Venue: "V3"},
				},
				[]domain.Record{{Year: 2019, FacultyName: "B", Title: "T2", Venue: "V2"}},
			),
			wantJournals:    []string{`2020 - A: "T1" (V1)`, `2021 - C: "T3" (V3)`},
			wantConferences: []string{`2019 - B: "T2" (V2)`},
		},
		{
			name:            "empty partition",
			part:            partition(nil, nil),
			wantJournals:    []string{NoRecordsLine},
			wantConferences: []string{NoRecordsLine},
		},
		{
			name:            "only journals",
			part:            partition([]domain.Record{{Year: 2020, FacultyName: "A", Title: "T1", Venue: "V1"}}, []domain.Record{}),
			wantJournals:    []string{`2020 - A: "T1" (V1)`},
			wantConferences: []string{NoRecordsLine},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Render("Publication Summary Report", tt.part)

			assert.Equal(t, "Publication Summary Report", doc.Title)
			require.Len(t, doc.Sections, 2)
			assert.Equal(t, SectionJournals, doc.Sections[0].Heading)
			assert.Equal(t, SectionConferences, doc.Sections[1].Heading)
			assert.Equal(t, SectionLevel, doc.Sections[0].Level)
			assert.Equal(t, tt.wantJournals, doc.Sections[0].Lines)
			assert.Equal(t, tt.wantConferences, doc.Sections[1].Lines)

			assert.Equal(t, doc, Render("Publication Summary Report", tt.part))
		})
	}
}

func TestRenderDefaultTitle(t *testing.T) {
	doc := Render("", partition(nil, nil))
	assert.Equal(t, DefaultTitle, doc.Title)
	assert.True(t, doc.Sections[0].Empty)
}

func TestNewWriter(t *testing.T) {
	tests := []struct {
		format  string
		wantExt string
		wantErr bool
	}{
		{"docx", ".docx", false},
		{"DOCX", ".docx", false},
		{"", ".docx", false},
		{"markdown", ".md", false},
		{"md", ".md", false},
		{"pdf", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			w, err := NewWriter(tt.format)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantExt, w.Extension())
			assert.NotEmpty(t, w.ContentType())
		})
	}
}
