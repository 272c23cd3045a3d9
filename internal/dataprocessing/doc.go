// Package dataprocessing loads publication tables from Excel workbooks.
//
// The Loader reads the first worksheet of an .xlsx file. Row 1 is the header;
// columns are matched to Year, Type, Faculty Name, Title and Venue ignoring
// case, spaces, underscores and hyphens. Other columns are kept so exports can
// reproduce them.
//
//	loader := dataprocessing.NewLoader(logger)
//	table, err := loader.LoadFile(ctx, "uploads/pubs.xlsx")
//
// # Error Handling
//
// All failures are MALFORMED_TABLE application errors:
//
//   - a missing required column is reported with ErrMissingField and the
//     column name in the error context
//   - a missing or non-integer year carries the row number and raw value
//   - an empty required text cell carries the row number and field
//
// Rows whose cells are all blank are skipped rather than rejected.
package dataprocessing
