package booktoc

import (
	"context"
	"strconv"
	"strings"
)

// SummaryBaseName is the reserved filename stem of the generated table of
// contents. An entry with this stem at the root of the book is never
// ingested as a chapter, so a previously generated summary cannot leak
// back into the tree it describes.
const SummaryBaseName = "SUMMARY"

// SectionNumber identifies a chapter's position in the tree as a dotted
// sequence of 1-based sibling positions, e.g. [2, 1, 3] renders as
// "2.1.3". The sequence length equals the chapter's depth.
type SectionNumber []int

// Child returns the section number of the i-th child (1-based) as a fresh
// sequence. The receiver is never modified and shares no backing storage
// with the result, so sibling numbers derived from the same parent cannot
// clobber each other.
func (n SectionNumber) Child(i int) SectionNumber {
	child := make(SectionNumber, len(n), len(n)+1)
	copy(child, n)
	return append(child, i)
}

// String renders the number in dotted form, e.g. "1.2.3".
func (n SectionNumber) String() string {
	parts := make([]string, len(n))
	for i, v := range n {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ".")
}

// Chapter represents one entry in the generated table of contents, backed
// by either a single document or a directory with an index document.
type Chapter struct {
	// Title shown in the table of contents.
	Name string `json:"name"`

	// Path to the document whose content backs this chapter. Empty only
	// for a directory chapter whose index document is missing and the
	// ignore-missing policy is in effect.
	ContentPath string `json:"contentPath,omitempty"`

	// Position in the tree. Sibling numbers are contiguous starting at 1.
	Number SectionNumber `json:"number"`

	// Nested chapters. Non-empty only for directory-backed chapters.
	Children []*Chapter `json:"children,omitempty"`
}

// Validate returns an error if the chapter contains invalid fields.
func (c *Chapter) Validate() error {
	if c.Name == "" {
		return Errorf(EINVALID, "chapter name required")
	}
	if len(c.Number) == 0 {
		return Errorf(EINVALID, "chapter section number required")
	}
	for _, v := range c.Number {
		if v < 1 {
			return Errorf(EINVALID, "chapter section number entries must be positive, got %d", v)
		}
	}
	return nil
}

// CountChapters returns the total number of chapters in the tree,
// including all nested children.
func CountChapters(chapters []*Chapter) int {
	n := len(chapters)
	for _, c := range chapters {
		n += CountChapters(c.Children)
	}
	return n
}

// TreeBuilder builds an ordered, numbered chapter tree from a book source
// directory.
type TreeBuilder interface {
	// Build scans root and returns the top-level chapters in order.
	// It either returns a complete, consistent tree or fails outright;
	// there is no partial result.
	Build(ctx context.Context, root string) ([]*Chapter, error)
}
