// Package errors defines the closed set of failure kinds used across the
// summary service and renders them as RFC 7807 problem responses.
//
// Layers below HTTP return *AppError values (or wrap them with %w). The
// ErrorHandler classifies with errors.As, never by message text:
//
//	INVALID_INPUT    400  missing upload, bad form values, bad extension
//	MALFORMED_TABLE  422  unreadable workbook, missing column, bad year cell
//	NOT_FOUND        404  unknown artifact
//	IO               500  filesystem failures
//
// Every problem body carries an "error" member with the human-readable
// message so simple clients can display it directly.
package errors
