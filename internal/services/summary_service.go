package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	apperrors "pubsummary/internal/errors"
	"pubsummary/internal/exporter"
	"pubsummary/internal/infrastructure"
	"pubsummary/internal/publications"
	"pubsummary/internal/report"
	"pubsummary/internal/validation"
	"pubsummary/pkg/contracts/domain"
)

// Artifact name suffixes appended to the input's base name.
const (
	JournalSuffix    = "_journal_summary"
	ConferenceSuffix = "_conference_summary"
	SummarySuffix    = "_summary"
)

// Artifact labels used in logs and metrics.
const (
	artifactJournal    = "journal"
	artifactConference = "conference"
	artifactSummary    = "summary"
)

// TableLoader reads a publication table from a workbook on disk.
type TableLoader interface {
	LoadFile(ctx context.Context, path string) (domain.Table, error)
}

// ArtifactStore persists uploads and generated artifacts.
type ArtifactStore interface {
	SaveUpload(ctx context.Context, name string, r io.Reader) (string, error)
	RemoveUpload(name string) error
	WriteArtifact(ctx context.Context, name string, data []byte) (string, error)
}

// UploadValidator accepts or rejects a client upload by name and size.
type UploadValidator interface {
	ValidateUpload(filename string, size int64) (validation.Upload, error)
}

// SummaryOptions selects the output formats.
type SummaryOptions struct {
	Title         string
	SummaryFormat string
	ExportFormat  string
}

// SummaryService turns an uploaded publication workbook into two filtered
// tables and a summary document.
type SummaryService struct {
	loader    TableLoader
	store     ArtifactStore
	validator UploadValidator
	encoder   exporter.Encoder
	writer    report.Writer
	title     string
	logger    *slog.Logger
	tracer    trace.Tracer
	metrics   *infrastructure.BusinessMetrics
}

// NewSummaryService creates a summary service. Unknown formats in opts are
// rejected.
func NewSummaryService(loader TableLoader, store ArtifactStore, validator UploadValidator, opts SummaryOptions, logger *slog.Logger) (*SummaryService, error) {
	if logger == nil {
		logger = slog.Default()
	}

	enc, err := exporter.NewEncoder(opts.ExportFormat)
	if err != nil {
		return nil, err
	}
	w, err := report.NewWriter(opts.SummaryFormat)
	if err != nil {
		return nil, err
	}

	return &SummaryService{
		loader:    loader,
		store:     store,
		validator: validator,
		encoder:   enc,
		writer:    w,
		title:     opts.Title,
		logger:    logger.With(slog.String("service", "summary")),
		tracer:    tracenoop.NewTracerProvider().Tracer("summary"),
	}, nil
}

// WithTelemetry attaches a tracer and metrics to the service.
func (s *SummaryService) WithTelemetry(tracer trace.Tracer, metrics *infrastructure.BusinessMetrics) *SummaryService {
	if tracer != nil {
		s.tracer = tracer
	}
	s.metrics = metrics
	return s
}

// ProcessUpload validates and stores an upload, then generates its
// artifacts. The stored upload is removed once generation finishes,
// whether or not it succeeded.
func (s *SummaryService) ProcessUpload(ctx context.Context, filename string, size int64, content io.Reader, c domain.Criteria) (domain.Artifacts, error) {
	upload, err := s.validator.ValidateUpload(filename, size)
	if err != nil {
		s.recordFailure(ctx, err)
		return domain.Artifacts{}, err
	}

	path, err := s.store.SaveUpload(ctx, upload.Name, content)
	if err != nil {
		s.recordFailure(ctx, err)
		return domain.Artifacts{}, err
	}
	defer func() {
		if err := s.store.RemoveUpload(upload.Name); err != nil {
			s.logger.WarnContext(ctx, "Failed to remove upload",
				slog.String("file", upload.Name),
				slog.String("error", err.Error()))
		}
	}()

	return s.Generate(ctx, upload.BaseName, path, c)
}

// Generate loads the workbook at inputPath, filters it by c and writes the
// artifacts named after baseName. Every artifact is encoded before the first
// one is written, so a malformed table leaves the output directory
// untouched.
func (s *SummaryService) Generate(ctx context.Context, baseName, inputPath string, c domain.Criteria) (domain.Artifacts, error) {
	ctx = infrastructure.EnsureTraceID(ctx)
	ctx, span := s.tracer.Start(ctx, "summary.generate",
		trace.WithAttributes(
			attribute.String("summary.base_name", baseName),
			attribute.Int("summary.start_year", c.StartYear),
			attribute.Int("summary.end_year", c.EndYear),
		))
	defer span.End()

	start := time.Now()
	logger := s.logger.With(slog.String("base_name", baseName))

	logger.InfoContext(ctx, "Generating summary",
		slog.Int("start_year", c.StartYear),
		slog.Int("end_year", c.EndYear))

	table, err := s.loader.LoadFile(ctx, inputPath)
	if err != nil {
		logger.WarnContext(ctx, "Failed to load table", slog.String("error", err.Error()))
		s.recordFailure(ctx, err)
		return domain.Artifacts{}, err
	}
	s.addCounter(ctx, func(m *infrastructure.BusinessMetrics) metric.Int64Counter { return m.RecordsLoaded }, int64(table.Len()))

	files, artifacts, err := s.Build(baseName, table, c)
	if err != nil {
		s.recordFailure(ctx, err)
		return domain.Artifacts{}, err
	}

	for _, f := range files {
		if _, err := s.store.WriteArtifact(ctx, f.Name, f.Data); err != nil {
			logger.ErrorContext(ctx, "Failed to write artifact",
				slog.String("file", f.Name),
				slog.String("error", err.Error()))
			s.recordFailure(ctx, err)
			return domain.Artifacts{}, err
		}
		s.addCounter(ctx, func(m *infrastructure.BusinessMetrics) metric.Int64Counter { return m.ArtifactsWritten }, 1,
			attribute.String("artifact", f.Kind))
	}

	duration := time.Since(start)
	if s.metrics != nil {
		s.metrics.SummariesGenerated.Add(ctx, 1)
		s.metrics.SummaryDuration.Record(ctx, duration.Seconds())
	}
	span.SetAttributes(
		attribute.Int("summary.records", table.Len()),
		attribute.Int("summary.journals", artifacts.JournalCount),
		attribute.Int("summary.conferences", artifacts.ConferenceCount),
	)

	logger.InfoContext(ctx, "Summary generated",
		slog.Int("records", table.Len()),
		slog.Int("journals", artifacts.JournalCount),
		slog.Int("conferences", artifacts.ConferenceCount),
		slog.String("summary", artifacts.Summary),
		slog.Duration("duration", duration))

	return artifacts, nil
}

// ArtifactFile is one encoded output awaiting persistence.
type ArtifactFile struct {
	Kind string
	Name string
	Data []byte
}

// Build filters table and encodes every artifact in memory. It performs no
// I/O. Empty partitions produce no table artifact; the summary document is
// always produced.
func (s *SummaryService) Build(baseName string, table domain.Table, c domain.Criteria) ([]ArtifactFile, domain.Artifacts, error) {
	part := publications.Filter(table, c)

	artifacts := domain.Artifacts{
		BaseName:        baseName,
		JournalCount:    part.Journals.Len(),
		ConferenceCount: part.Conferences.Len(),
	}
	files := make([]ArtifactFile, 0, 3)

	for _, p := range []struct {
		kind   string
		suffix string
		table  domain.Table
		name   *string
	}{
		{artifactJournal, JournalSuffix, part.Journals, &artifacts.Journal},
		{artifactConference, ConferenceSuffix, part.Conferences, &artifacts.Conference},
	} {
		data, ok, err := exporter.Export(s.encoder, p.table)
		if err != nil {
			return nil, domain.Artifacts{}, apperrors.NewIOError(fmt.Sprintf("encode %s table", p.kind), err)
		}
		if !ok {
			continue
		}
		name := baseName + p.suffix + s.encoder.Extension()
		*p.name = name
		files = append(files, ArtifactFile{Kind: p.kind, Name: name, Data: data})
	}

	var buf bytes.Buffer
	if err := s.writer.Write(&buf, report.Render(s.title, part)); err != nil {
		return nil, domain.Artifacts{}, apperrors.NewIOError("render summary document", err)
	}
	artifacts.Summary = baseName + SummarySuffix + s.writer.Extension()
	files = append(files, ArtifactFile{Kind: artifactSummary, Name: artifacts.Summary, Data: buf.Bytes()})

	return files, artifacts, nil
}

func (s *SummaryService) recordFailure(ctx context.Context, err error) {
	infrastructure.RecordError(ctx, err)
	if s.metrics == nil {
		return
	}
	s.metrics.SummaryFailures.Add(ctx, 1,
		metric.WithAttributes(attribute.String("kind", string(apperrors.KindOf(err)))))
}

func (s *SummaryService) addCounter(ctx context.Context, pick func(*infrastructure.BusinessMetrics) metric.Int64Counter, n int64, attrs ...attribute.KeyValue) {
	if s.metrics == nil {
		return
	}
	pick(s.metrics).Add(ctx, n, metric.WithAttributes(attrs...))
}
