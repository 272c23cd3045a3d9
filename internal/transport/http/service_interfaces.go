package http

import (
	"context"
	"io"

	"pubsummary/pkg/contracts/domain"
)

// SummaryServiceInterface turns an upload into summary artifacts.
type SummaryServiceInterface interface {
	ProcessUpload(ctx context.Context, filename string, size int64, content io.Reader, c domain.Criteria) (domain.Artifacts, error)
}

// ArtifactResolver maps an artifact file name to its location on disk.
type ArtifactResolver interface {
	ResolveArtifact(name string) (string, error)
}
