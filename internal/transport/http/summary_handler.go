package http

import (
	"errors"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	apierrors "pubsummary/internal/errors"
	"pubsummary/internal/exporter"
	"pubsummary/internal/middleware"
	"pubsummary/internal/report"
	"pubsummary/pkg/contracts/domain"
)

// Form and route names shared with clients.
const (
	UploadField    = "excelFile"
	StartYearField = "startYear"
	EndYearField   = "endYear"
	OutputRoute    = "/output"
)

// multipartMemory is the part of an upload kept in memory; the rest spills
// to temporary files.
const multipartMemory = 8 << 20

// uploadForm holds the non-file upload fields as received.
type uploadForm struct {
	StartYear string `form:"startYear" validate:"required,integer"`
	EndYear   string `form:"endYear" validate:"required,integer"`
}

// criteria converts the form into filter bounds.
func (f uploadForm) criteria() (domain.Criteria, error) {
	start, err := strconv.Atoi(f.StartYear)
	if err != nil {
		return domain.Criteria{}, apierrors.NewAppError(apierrors.KindInvalidInput,
			StartYearField+" must be an integer", err).WithContext("field", StartYearField)
	}
	end, err := strconv.Atoi(f.EndYear)
	if err != nil {
		return domain.Criteria{}, apierrors.NewAppError(apierrors.KindInvalidInput,
			EndYearField+" must be an integer", err).WithContext("field", EndYearField)
	}
	return domain.Criteria{StartYear: start, EndYear: end}, nil
}

// UploadResponse lists the artifact URLs produced for an upload. Table
// artifacts are omitted when their partition was empty.
type UploadResponse struct {
	Journal         string `json:"journal,omitempty"`
	Conference      string `json:"conference,omitempty"`
	Summary         string `json:"summary"`
	JournalCount    int    `json:"journal_count"`
	ConferenceCount int    `json:"conference_count"`
}

// NewUploadResponse converts artifact names into retrieval URLs.
func NewUploadResponse(a domain.Artifacts) UploadResponse {
	return UploadResponse{
		Journal:         artifactURL(a.Journal),
		Conference:      artifactURL(a.Conference),
		Summary:         artifactURL(a.Summary),
		JournalCount:    a.JournalCount,
		ConferenceCount: a.ConferenceCount,
	}
}

func artifactURL(name string) string {
	if name == "" {
		return ""
	}
	return OutputRoute + "/" + url.PathEscape(name)
}

// SummaryHandler serves uploads and artifact downloads.
type SummaryHandler struct {
	service      SummaryServiceInterface
	artifacts    ArtifactResolver
	validator    *middleware.ValidationMiddleware
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
}

// NewSummaryHandler creates a new summary handler
func NewSummaryHandler(service SummaryServiceInterface, artifacts ArtifactResolver, validator *middleware.ValidationMiddleware, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *SummaryHandler {
	return &SummaryHandler{
		service:      service,
		artifacts:    artifacts,
		validator:    validator,
		logger:       logger.With(slog.String("handler", "summary")),
		errorHandler: errorHandler,
	}
}

// Routes mounts POST /upload and GET /output/{filename} on r.
func (h *SummaryHandler) Routes(r chi.Router) {
	r.With(middleware.ContentTypeValidator(h.errorHandler, "multipart/form-data")).
		Post("/upload", h.Upload)
	r.Get(OutputRoute+"/{filename}", h.Download)
}

// Upload handles POST /upload
func (h *SummaryHandler) Upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		h.errorHandler.HandleError(w, r, formError(err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile(UploadField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			h.errorHandler.HandleError(w, r, apierrors.NewInvalidInput("No file uploaded"))
			return
		}
		h.errorHandler.HandleError(w, r, formError(err))
		return
	}
	defer file.Close()

	form := uploadForm{
		StartYear: strings.TrimSpace(r.FormValue(StartYearField)),
		EndYear:   strings.TrimSpace(r.FormValue(EndYearField)),
	}
	if err := h.validator.ValidateStruct(form); err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	criteria, err := form.criteria()
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	h.logger.InfoContext(ctx, "Upload received",
		slog.String("filename", header.Filename),
		slog.Int64("size", header.Size),
		slog.Int("start_year", criteria.StartYear),
		slog.Int("end_year", criteria.EndYear))

	artifacts, err := h.service.ProcessUpload(ctx, header.Filename, header.Size, file, criteria)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, NewUploadResponse(artifacts))
}

// Download handles GET /output/{filename}
func (h *SummaryHandler) Download(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "filename")

	path, err := h.artifacts.ResolveArtifact(name)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	h.logger.DebugContext(r.Context(), "Serving artifact", slog.String("file", name))

	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": name}))
	if ct, ok := artifactContentTypes[strings.ToLower(filepath.Ext(name))]; ok {
		w.Header().Set("Content-Type", ct)
	}
	http.ServeFile(w, r, path)
}

// formError classifies multipart parsing failures as client errors. A body
// cut off by the size limit is 413.
func formError(err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return apierrors.ErrPayloadTooLarge.WithDetails(map[string]int64{"max_bytes": maxErr.Limit})
	}
	return apierrors.NewAppError(apierrors.KindInvalidInput, "invalid upload form", err)
}

// artifactContentTypes maps every artifact extension the service can emit
// to its MIME type.
var artifactContentTypes = func() map[string]string {
	types := make(map[string]string)
	for _, f := range []string{exporter.FormatXLSX, exporter.FormatCSV} {
		if enc, err := exporter.NewEncoder(f); err == nil {
			types[enc.Extension()] = enc.ContentType()
		}
	}
	for _, f := range []string{report.FormatDOCX, report.FormatMarkdown} {
		if wr, err := report.NewWriter(f); err == nil {
			types[wr.Extension()] = wr.ContentType()
		}
	}
	return types
}()
