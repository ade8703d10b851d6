package booktoc

// Namer determines a chapter's display title.
type Namer interface {
	// Name returns the display title for a chapter backed by the
	// document at contentPath. contentPath may be empty for content-less
	// chapters, in which case fallback (the filesystem stem) is
	// returned. A first line that does not look like a heading is not an
	// error; it also resolves to fallback. An unreadable document is an
	// error.
	Name(contentPath, fallback string) (string, error)
}
