// Package main provides the summarize CLI, which produces the journal and
// conference tables and the summary document from a local workbook.
//
// Usage:
//
//	summarize generate --input pubs.xlsx --start 2019 --end 2021
//	summarize version
package main

func main() {
	Execute()
}
