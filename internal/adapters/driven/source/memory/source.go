// Package memory provides an in-memory document source for tests and
// dry runs.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/custodia-labs/docpatch-cli/internal/core/domain"
	"github.com/custodia-labs/docpatch-cli/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.DocumentSource = (*Source)(nil)

// Source is an in-memory implementation of driven.DocumentSource.
type Source struct {
	mu        sync.RWMutex
	documents map[string]string
}

// New creates an empty in-memory source.
func New() *Source {
	return &Source{documents: make(map[string]string)}
}

// Put seeds or replaces a document without going through WriteText.
func (s *Source) Put(uri, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents[uri] = text
}

// ReadText returns the stored text for uri.
func (s *Source) ReadText(_ context.Context, uri string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	text, ok := s.documents[uri]
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrNotFound, uri)
	}
	return text, nil
}

// WriteText stores text under uri.
func (s *Source) WriteText(_ context.Context, uri string, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents[uri] = text
	return nil
}
