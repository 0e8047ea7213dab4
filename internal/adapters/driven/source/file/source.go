// Package file provides a filesystem-backed document source.
package file

import (
	"context"
	"fmt"
	"os"

	"github.com/custodia-labs/docpatch-cli/internal/core/domain"
	"github.com/custodia-labs/docpatch-cli/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.DocumentSource = (*Source)(nil)

// Source reads and writes documents as local files. URIs are file
// paths, absolute or relative to the process working directory.
type Source struct {
	// BackupSuffix, when non-empty, makes every write first copy the
	// current content to path+BackupSuffix (e.g. ".bak").
	BackupSuffix string
}

// New creates a filesystem document source.
func New() *Source {
	return &Source{}
}

// NewWithBackup creates a filesystem document source that snapshots the
// previous content next to the file before each write.
func NewWithBackup(suffix string) *Source {
	return &Source{BackupSuffix: suffix}
}

// ReadText returns the file's content. A missing file is reported as
// domain.ErrNotFound so callers can distinguish it from I/O trouble.
func (s *Source) ReadText(_ context.Context, uri string) (string, error) {
	data, err := os.ReadFile(uri)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", domain.ErrNotFound, uri)
		}
		return "", err
	}
	return string(data), nil
}

// WriteText replaces the file's content, preserving its permissions
// when it already exists.
func (s *Source) WriteText(_ context.Context, uri string, text string) error {
	perm := os.FileMode(0644)
	if info, err := os.Stat(uri); err == nil {
		perm = info.Mode().Perm()
	}

	if s.BackupSuffix != "" {
		if prev, err := os.ReadFile(uri); err == nil {
			if err := os.WriteFile(uri+s.BackupSuffix, prev, perm); err != nil {
				return fmt.Errorf("failed to write backup: %w", err)
			}
		}
	}

	return os.WriteFile(uri, []byte(text), perm)
}
