package services

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"pubsummary/pkg/contracts/domain"
)

// MockTableLoader is a mock for the TableLoader interface
type MockTableLoader struct {
	mock.Mock
}

func (m *MockTableLoader) LoadFile(ctx context.Context, path string) (domain.Table, error) {
	args := m.Called(ctx, path)
	return args.Get(0).(domain.Table), args.Error(1)
}

// MockArtifactStore is a mock for the ArtifactStore interface
type MockArtifactStore struct {
	mock.Mock
}

func (m *MockArtifactStore) SaveUpload(ctx context.Context, name string, r io.Reader) (string, error) {
	args := m.Called(ctx, name, r)
	return args.String(0), args.Error(1)
}

func (m *MockArtifactStore) RemoveUpload(name string) error {
	args := m.Called(name)
	return args.Error(0)
}

func (m *MockArtifactStore) WriteArtifact(ctx context.Context, name string, data []byte) (string, error) {
	args := m.Called(ctx, name, data)
	return args.String(0), args.Error(1)
}
