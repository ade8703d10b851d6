// Package mock provides function-field mock implementations of the
// booktoc service interfaces for testing.
package mock

import (
	"context"

	"github.com/ElektraInitiative/booktoc"
)

var _ booktoc.TreeBuilder = (*TreeBuilder)(nil)

// TreeBuilder is a mock implementation of booktoc.TreeBuilder.
type TreeBuilder struct {
	BuildFn func(ctx context.Context, root string) ([]*booktoc.Chapter, error)
}

func (b *TreeBuilder) Build(ctx context.Context, root string) ([]*booktoc.Chapter, error) {
	return b.BuildFn(ctx, root)
}
