// Package markdown serializes chapter trees to mdBook-style SUMMARY.md
// files.
package markdown

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/ElektraInitiative/booktoc"
)

// indent is the nesting unit for summary list items.
const indent = "    "

// Format renders chapters as a markdown table of contents. Every chapter
// is validated first, so a malformed tree handed in by a host cannot
// produce a broken summary. Links are relative to baseDir and
// forward-slash separated so the output is identical across platforms. A
// content-less chapter renders as a draft entry with an empty link
// target.
func Format(chapters []*booktoc.Chapter, baseDir string) (string, error) {
	var b strings.Builder
	b.WriteString("# Summary\n\n")
	if err := writeChapters(&b, chapters, baseDir, 0); err != nil {
		return "", err
	}
	return b.String(), nil
}

func writeChapters(b *strings.Builder, chapters []*booktoc.Chapter, baseDir string, depth int) error {
	for _, ch := range chapters {
		if err := ch.Validate(); err != nil {
			return err
		}

		link := ""
		if ch.ContentPath != "" {
			rel, err := filepath.Rel(baseDir, ch.ContentPath)
			if err != nil {
				return booktoc.Errorf(booktoc.EINTERNAL, "cannot relativize %s against %s: %v", ch.ContentPath, baseDir, err)
			}
			link = filepath.ToSlash(rel)
		}

		b.WriteString(strings.Repeat(indent, depth))
		b.WriteString("- [")
		b.WriteString(ch.Name)
		b.WriteString("](")
		b.WriteString(link)
		b.WriteString(")\n")

		if err := writeChapters(b, ch.Children, baseDir, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// Ensure Emitter implements booktoc.SummaryEmitter at compile time.
var _ booktoc.SummaryEmitter = (*Emitter)(nil)

// Emitter writes the rendered table of contents to SUMMARY.md in the
// book source directory.
type Emitter struct {
	dir string
}

// NewEmitter creates a new Emitter for the given book source directory.
func NewEmitter(dir string) *Emitter {
	return &Emitter{dir: dir}
}

// Emit renders the chapters and writes SUMMARY.md, replacing any
// previously generated file.
func (e *Emitter) Emit(ctx context.Context, chapters []*booktoc.Chapter) error {
	content, err := Format(chapters, e.dir)
	if err != nil {
		return err
	}

	path := filepath.Join(e.dir, booktoc.SummaryBaseName+".md")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return booktoc.Errorf(booktoc.EINTERNAL, "cannot write summary %s: %v", path, err)
	}
	return nil
}
