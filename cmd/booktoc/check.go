package main

import (
	"fmt"

	"github.com/ElektraInitiative/booktoc"
)

// Run executes the check command. The build runs with stub creation
// disabled (see main.go), so a passing check guarantees gen would
// succeed without the create-missing policy.
func (c *CheckCmd) Run(deps *Dependencies) error {
	chapters, err := deps.Builder.Build(deps.Ctx, deps.Src)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", booktoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "OK: %d chapters\n", booktoc.CountChapters(chapters))
	return nil
}
