// Package shared holds helpers used across packages that belong to no single
// layer.
//
// The testutil subpackage provides:
//
//   - BufferedSlogHandler and NewTestLogger, a capturing slog handler with
//     assertion helpers (AssertLogContains, AssertLogAttr, AssertNoErrors).
//   - BuildWorkbook, WriteWorkbook and ReadWorkbook, which create and read
//     .xlsx publication tables for loader, service and handler tests.
//
// Only test support and dependency-free helpers belong here; domain logic
// lives in its own package.
package shared
