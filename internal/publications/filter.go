package publications

import (
	"strings"

	"pubsummary/pkg/contracts/domain"
)

// Filter keeps the records whose year lies in c and splits them into
// journals and conferences. Records of any other type are dropped. Both
// partitions keep the input order and share the input's column layout; an
// empty partition is a table with no records, never nil.
func Filter(table domain.Table, c domain.Criteria) domain.Partition {
	part := domain.Partition{
		Journals:    newTable(table.Columns),
		Conferences: newTable(table.Columns),
	}

	for _, rec := range table.Records {
		if !c.Contains(rec.Year) {
			continue
		}
		switch strings.ToLower(rec.Type) {
		case domain.TypeJournal:
			part.Journals.Records = append(part.Journals.Records, rec)
		case domain.TypeConference:
			part.Conferences.Records = append(part.Conferences.Records, rec)
		}
	}

	return part
}

func newTable(cols []domain.Column) domain.Table {
	t := domain.Table{Records: []domain.Record{}}
	if len(cols) > 0 {
		t.Columns = append([]domain.Column(nil), cols...)
	}
	return t
}
