// Package http implements the HTTP handlers of the publication summary
// service. Handlers stay thin: they parse the request, delegate to a service
// and render the result.
//
// # Endpoints
//
//	POST /upload               multipart upload (excelFile, startYear, endYear)
//	GET  /output/{filename}    download a generated artifact as an attachment
//	GET  /api/health           basic health
//	GET  /api/health/ready     upload and output directories writable
//	GET  /api/health/live      process liveness
//	GET  /api/health/artifacts output directory statistics
//	GET  /api/version          build information
//
// A successful upload answers with the artifact URLs:
//
//	{
//	    "journal": "/output/pubs_journal_summary.xlsx",
//	    "conference": "/output/pubs_conference_summary.xlsx",
//	    "summary": "/output/pubs_summary.docx",
//	    "journal_count": 2,
//	    "conference_count": 1
//	}
//
// Table artifacts are omitted when their partition is empty.
//
// # Error Handling
//
// All errors follow RFC 7807 Problem Details and carry the human-readable
// message in the "error" extension:
//
//	{
//	    "type": "/errors/summary/malformed-table",
//	    "title": "Unprocessable Entity",
//	    "status": 422,
//	    "error": "missing required column: Year",
//	    "error_code": "MALFORMED_TABLE",
//	    "trace_id": "..."
//	}
//
// # Testing
//
// Handlers are tested with httptest against mocked services.
package http
