package domain

// Document is the text buffer a patch plan runs against.
// It is loaded once from a document source, transformed in memory,
// and persisted at most once after a successful run. A Document is
// owned by a single patch run; concurrent runs against the same
// document are not supported.
type Document struct {
	// URI is the document's location at its source (usually a file path).
	URI string

	// Text is the full content. Anchors address it by byte offset.
	Text string
}
