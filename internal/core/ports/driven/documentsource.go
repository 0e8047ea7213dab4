package driven

import "context"

// DocumentSource provides access to document text by URI.
// Implementations decide what a URI means (a file path, a map key).
type DocumentSource interface {
	// ReadText returns the full text of the document at uri.
	ReadText(ctx context.Context, uri string) (string, error)

	// WriteText replaces the document at uri with text.
	WriteText(ctx context.Context, uri string, text string) error
}
