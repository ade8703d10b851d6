package booktoc

import "context"

// IndexResolver determines the path of a directory chapter's content
// document, conventionally named Config.IndexBaseName plus the document
// extension.
type IndexResolver interface {
	// Resolve returns the path of dir's index document. When the
	// document does not exist the configured missing-file policy
	// applies: create a stub and return its path, return "" to mark the
	// chapter content-less, or fail with an ENOTFOUND error naming the
	// expected path. Existence is the only check performed; content is
	// not validated.
	Resolve(ctx context.Context, dir string) (string, error)
}
