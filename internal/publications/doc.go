// Package publications partitions a publication table by year range and type.
//
// Filter is pure: it never mutates its input and performs no I/O, so the
// service layer can call it between loading a workbook and writing artifacts.
//
//	part := publications.Filter(table, domain.Criteria{StartYear: 2020, EndYear: 2021})
//	fmt.Println(part.Journals.Len(), part.Conferences.Len())
package publications
