package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/ElektraInitiative/booktoc"
)

// Ensure Resolver implements booktoc.IndexResolver at compile time.
var _ booktoc.IndexResolver = (*Resolver)(nil)

// Resolver resolves a directory chapter's index document on disk.
type Resolver struct {
	cfg booktoc.Config
}

// NewResolver creates a new Resolver with the given configuration.
func NewResolver(cfg booktoc.Config) *Resolver {
	return &Resolver{cfg: cfg}
}

// Resolve returns the path of dir's index document. A missing document is
// handled according to the configured policy: create a stub, mark the
// chapter content-less, or fail. The strict failure names the expected
// path so the author can create it.
func (r *Resolver) Resolve(ctx context.Context, dir string) (string, error) {
	path := filepath.Join(dir, r.cfg.IndexFileName())

	_, err := os.Stat(path)
	if err == nil {
		return path, nil
	}
	if !os.IsNotExist(err) {
		return "", booktoc.Errorf(booktoc.EINTERNAL, "cannot stat %s: %v", path, err)
	}

	switch {
	case r.cfg.CreateMissingIndex:
		stub := "# " + filepath.Base(dir) + "\n"
		if err := os.WriteFile(path, []byte(stub), 0644); err != nil {
			return "", booktoc.Errorf(booktoc.EINTERNAL, "cannot create stub index document %s: %v", path, err)
		}
		return path, nil
	case r.cfg.IgnoreMissingIndex:
		return "", nil
	default:
		return "", booktoc.Errorf(booktoc.ENOTFOUND, "missing index document: %s", path)
	}
}
