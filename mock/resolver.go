package mock

import (
	"context"

	"github.com/ElektraInitiative/booktoc"
)

var _ booktoc.IndexResolver = (*IndexResolver)(nil)

// IndexResolver is a mock implementation of booktoc.IndexResolver.
type IndexResolver struct {
	ResolveFn func(ctx context.Context, dir string) (string, error)
}

func (r *IndexResolver) Resolve(ctx context.Context, dir string) (string, error) {
	return r.ResolveFn(ctx, dir)
}
