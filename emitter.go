package booktoc

import "context"

// SummaryEmitter consumes a built chapter tree and persists it as the
// book's table of contents.
type SummaryEmitter interface {
	// Emit serializes the chapters and writes the result, replacing any
	// previously generated table of contents.
	Emit(ctx context.Context, chapters []*Chapter) error
}
