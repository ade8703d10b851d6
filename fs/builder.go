package fs

import (
	"context"
	"path/filepath"
	"sort"

	"github.com/ElektraInitiative/booktoc"
)

// Ensure Builder implements booktoc.TreeBuilder at compile time.
var _ booktoc.TreeBuilder = (*Builder)(nil)

// Builder builds a chapter tree by walking a directory hierarchy
// depth-first. Byte-wise filename order decides chapter order, so the
// result is deterministic across platforms.
type Builder struct {
	cfg booktoc.Config

	// Resolver resolves directory index documents. Defaults to a
	// filesystem Resolver with the same configuration.
	Resolver booktoc.IndexResolver

	// Namer derives chapter titles. Defaults to a filesystem Namer with
	// the same configuration.
	Namer booktoc.Namer
}

// NewBuilder creates a new Builder with filesystem-backed resolver and
// namer.
func NewBuilder(cfg booktoc.Config) *Builder {
	return &Builder{
		cfg:      cfg,
		Resolver: NewResolver(cfg),
		Namer:    NewNamer(cfg),
	}
}

// Build returns the ordered top-level chapters under root. The tree is
// complete or the build fails; there is no partial result.
func (b *Builder) Build(ctx context.Context, root string) ([]*booktoc.Chapter, error) {
	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}
	return b.buildDir(ctx, root, nil, true, map[string]bool{})
}

// buildDir builds the chapters for one directory. prefix is the section
// number of the directory's own chapter (nil at the traversal root).
// visited guards against directory cycles; the entry filter already
// refuses to follow symlinks, so the guard only fires if that ever
// changes.
func (b *Builder) buildDir(ctx context.Context, dir string, prefix booktoc.SectionNumber, isRoot bool, visited map[string]bool) ([]*booktoc.Chapter, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, booktoc.Errorf(booktoc.EINTERNAL, "cannot resolve path %s: %v", dir, err)
	}
	if visited[abs] {
		return nil, booktoc.Errorf(booktoc.EINVALID, "directory cycle detected at %s", dir)
	}
	visited[abs] = true

	entries, err := FilterEntries(dir, b.cfg.Extension)
	if err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	// Numbering happens after exclusion; filtering first keeps sibling
	// numbers contiguous.
	included := entries[:0]
	for _, entry := range entries {
		if isRoot && stem(entry.Name()) == booktoc.SummaryBaseName {
			continue
		}
		if !entry.IsDir() && stem(entry.Name()) == b.cfg.IndexBaseName {
			// This directory's own content document, never a sibling
			// chapter.
			continue
		}
		included = append(included, entry)
	}

	chapters := make([]*booktoc.Chapter, 0, len(included))
	for i, entry := range included {
		number := prefix.Child(i + 1)
		path := filepath.Join(dir, entry.Name())

		var chapter *booktoc.Chapter
		if entry.IsDir() {
			chapter, err = b.buildDirChapter(ctx, path, entry.Name(), number, visited)
		} else {
			chapter, err = b.buildFileChapter(path, entry.Name(), number)
		}
		if err != nil {
			return nil, err
		}
		chapters = append(chapters, chapter)
	}
	return chapters, nil
}

// buildFileChapter builds a leaf chapter backed by a single document.
func (b *Builder) buildFileChapter(path, name string, number booktoc.SectionNumber) (*booktoc.Chapter, error) {
	title, err := b.Namer.Name(path, stem(name))
	if err != nil {
		return nil, err
	}
	return &booktoc.Chapter{
		Name:        title,
		ContentPath: path,
		Number:      number,
	}, nil
}

// buildDirChapter builds a directory chapter: its content comes from the
// resolved index document and its children from recursing into the
// directory with the chapter's number as the new prefix.
func (b *Builder) buildDirChapter(ctx context.Context, path, name string, number booktoc.SectionNumber, visited map[string]bool) (*booktoc.Chapter, error) {
	contentPath, err := b.Resolver.Resolve(ctx, path)
	if err != nil {
		return nil, err
	}

	title, err := b.Namer.Name(contentPath, name)
	if err != nil {
		return nil, err
	}

	children, err := b.buildDir(ctx, path, number, false, visited)
	if err != nil {
		return nil, err
	}

	return &booktoc.Chapter{
		Name:        title,
		ContentPath: contentPath,
		Number:      number,
		Children:    children,
	}, nil
}
