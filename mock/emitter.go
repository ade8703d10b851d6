package mock

import (
	"context"

	"github.com/ElektraInitiative/booktoc"
)

var _ booktoc.SummaryEmitter = (*SummaryEmitter)(nil)

// SummaryEmitter is a mock implementation of booktoc.SummaryEmitter.
type SummaryEmitter struct {
	EmitFn func(ctx context.Context, chapters []*booktoc.Chapter) error
}

func (e *SummaryEmitter) Emit(ctx context.Context, chapters []*booktoc.Chapter) error {
	return e.EmitFn(ctx, chapters)
}
