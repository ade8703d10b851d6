// Package slog provides logging decorators for booktoc services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/ElektraInitiative/booktoc"
)

// Ensure LoggingBuilder implements booktoc.TreeBuilder.
var _ booktoc.TreeBuilder = (*LoggingBuilder)(nil)

// LoggingBuilder wraps a TreeBuilder with structured logging of build
// outcomes.
type LoggingBuilder struct {
	next   booktoc.TreeBuilder
	logger *slog.Logger
}

// NewLoggingBuilder creates a new LoggingBuilder.
func NewLoggingBuilder(next booktoc.TreeBuilder, logger *slog.Logger) *LoggingBuilder {
	return &LoggingBuilder{next: next, logger: logger}
}

// Build delegates to the wrapped builder and logs the result.
func (b *LoggingBuilder) Build(ctx context.Context, root string) ([]*booktoc.Chapter, error) {
	begin := time.Now()
	chapters, err := b.next.Build(ctx, root)
	if err != nil {
		b.logger.Error("chapter tree build failed",
			"root", root,
			"code", booktoc.ErrorCode(err),
			"error", booktoc.ErrorMessage(err),
			"duration", time.Since(begin),
		)
		return nil, err
	}
	b.logger.Info("chapter tree built",
		"root", root,
		"chapters", booktoc.CountChapters(chapters),
		"duration", time.Since(begin),
	)
	return chapters, nil
}
