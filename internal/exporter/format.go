package exporter

import "pubsummary/pkg/contracts/domain"

// headerRow returns the column names of t in layout order.
func headerRow(t domain.Table) []string {
	cols := t.Layout()
	header := make([]string, len(cols))
	for i, c := range cols {
		header[i] = c.Name
	}
	return header
}

// textRows renders every record of t as strings in layout order.
func textRows(t domain.Table) [][]string {
	cols := t.Layout()
	rows := make([][]string, 0, t.Len())
	for _, r := range t.Records {
		row := make([]string, len(cols))
		for i, c := range cols {
			row[i] = r.Value(c, i)
		}
		rows = append(rows, row)
	}
	return rows
}

// cellValue returns the typed value for a spreadsheet cell. Years stay
// numeric; every other column is written as text.
func cellValue(r domain.Record, c domain.Column, idx int) any {
	if c.Field == domain.FieldYear {
		return r.Year
	}
	return r.Value(c, idx)
}
