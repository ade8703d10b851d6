package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/ElektraInitiative/booktoc"
)

// Run executes the print command.
func (c *PrintCmd) Run(deps *Dependencies) error {
	chapters, err := deps.Builder.Build(deps.Ctx, deps.Src)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", booktoc.ErrorMessage(err))
		return err
	}

	printChapters(deps.Stdout, chapters)
	return nil
}

func printChapters(w io.Writer, chapters []*booktoc.Chapter) {
	for _, ch := range chapters {
		indent := strings.Repeat("  ", len(ch.Number)-1)
		content := ch.ContentPath
		if content == "" {
			content = "(draft)"
		}
		fmt.Fprintf(w, "%s%s. %s  %s\n", indent, ch.Number, ch.Name, content)
		printChapters(w, ch.Children)
	}
}
