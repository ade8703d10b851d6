package main

import (
	"fmt"
	"path/filepath"

	"github.com/ElektraInitiative/booktoc"
)

// Run executes the gen command.
func (c *GenCmd) Run(deps *Dependencies) error {
	chapters, err := deps.Builder.Build(deps.Ctx, deps.Src)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", booktoc.ErrorMessage(err))
		return err
	}

	if err := deps.Emitter.Emit(deps.Ctx, chapters); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", booktoc.ErrorMessage(err))
		return err
	}

	summary := filepath.Join(deps.Src, booktoc.SummaryBaseName+".md")
	fmt.Fprintf(deps.Stdout, "Wrote %s (%d chapters)\n", summary, booktoc.CountChapters(chapters))
	return nil
}
