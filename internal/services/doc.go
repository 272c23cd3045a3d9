// Package services implements the business logic layer between the HTTP
// handlers and the processing packages.
//
// # Services
//
// SummaryService turns a publication workbook into its artifacts:
//
//	upload → validate → store → load table → filter → encode → write → remove upload
//
// Every artifact is encoded in memory before the first write, so a
// malformed workbook leaves no output behind. Artifacts are named after the
// sanitised upload name B:
//
//	B_journal_summary.xlsx     only when journals matched
//	B_conference_summary.xlsx  only when conferences matched
//	B_summary.docx             always
//
// HealthService reports liveness, readiness (writable upload and output
// directories) and version information.
//
// # Dependencies
//
// Services receive their collaborators as small interfaces (TableLoader,
// ArtifactStore, UploadValidator, DirectoryChecker) so tests can substitute
// testify mocks:
//
//	svc, err := services.NewSummaryService(loader, manager, validator, opts, logger)
//	svc.WithTelemetry(providers.Tracer, metrics)
//	artifacts, err := svc.ProcessUpload(ctx, header.Filename, header.Size, file, criteria)
//
// # Errors
//
// Errors are returned as application errors from internal/errors; callers
// map their Kind to a response instead of inspecting messages.
package services
