package storage

import (
	"context"
	"errors"
	"sync"
)

// StubReportArchive is an in-memory implementation of ReportArchive.
// Use this for development until a real storage backend is configured.
type StubReportArchive struct {
	// BaseURL is the base URL for generated object locations.
	// Defaults to "https://archive.example.com" if not set.
	BaseURL string

	mu      sync.Mutex
	objects map[string][]byte
}

// NewStubReportArchive creates a new StubReportArchive
func NewStubReportArchive() *StubReportArchive {
	return &StubReportArchive{
		BaseURL: "https://archive.example.com",
		objects: make(map[string][]byte),
	}
}

// Ensure StubReportArchive implements ReportArchive
var _ ReportArchive = (*StubReportArchive)(nil)

// Store keeps the document in memory and returns a stub location
func (s *StubReportArchive) Store(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if key == "" {
		return "", errors.New("archive key is required")
	}
	if len(data) == 0 {
		return "", errors.New("archive data is empty")
	}

	s.mu.Lock()
	s.objects[key] = data
	s.mu.Unlock()

	return s.BaseURL + "/" + key, nil
}

// Exists reports whether a document was stored under the key
func (s *StubReportArchive) Exists(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, errors.New("archive key is required")
	}

	s.mu.Lock()
	_, ok := s.objects[key]
	s.mu.Unlock()

	return ok, nil
}

// Stored returns the bytes stored under the key, if any
func (s *StubReportArchive) Stored(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.objects[key]
	return data, ok
}
