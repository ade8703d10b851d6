package booktoc

import "strings"

// Default configuration values.
const (
	DefaultIndexBaseName = "README"
	DefaultExtension     = ".md"
)

// Config holds the options controlling chapter tree generation. It is
// read once and immutable for the duration of a run.
type Config struct {
	// DeriveTitleFromHeading uses the text after a leading "# " on the
	// first line of a chapter's content document as its title instead of
	// the filename stem.
	DeriveTitleFromHeading bool `json:"deriveTitleFromHeading"`

	// IndexBaseName is the filename stem (without extension) of a
	// directory chapter's content document.
	IndexBaseName string `json:"indexBaseName"`

	// CreateMissingIndex creates a stub index document when a directory
	// lacks one, instead of treating it as an error.
	CreateMissingIndex bool `json:"createMissingIndex"`

	// IgnoreMissingIndex tolerates a missing index document by producing
	// a content-less directory chapter. Only consulted when
	// CreateMissingIndex is false.
	IgnoreMissingIndex bool `json:"ignoreMissingIndex"`

	// Extension is the document extension, including the leading dot.
	// Entries with any other extension are ignored.
	Extension string `json:"extension"`
}

// DefaultConfig returns the configuration used when no options are set:
// strict missing-index policy, README.md index documents, titles from
// filename stems.
func DefaultConfig() Config {
	return Config{
		IndexBaseName: DefaultIndexBaseName,
		Extension:     DefaultExtension,
	}
}

// Validate returns an error if the configuration contains invalid fields.
func (c Config) Validate() error {
	if c.IndexBaseName == "" {
		return Errorf(EINVALID, "index base name required")
	}
	if strings.ContainsAny(c.IndexBaseName, `/\`) {
		return Errorf(EINVALID, "index base name %q must not contain path separators", c.IndexBaseName)
	}
	if c.Extension == "" {
		return Errorf(EINVALID, "document extension required")
	}
	if !strings.HasPrefix(c.Extension, ".") {
		return Errorf(EINVALID, "document extension %q must start with a dot", c.Extension)
	}
	return nil
}

// IndexFileName returns the full filename of a directory's index
// document, e.g. "README.md".
func (c Config) IndexFileName() string {
	return c.IndexBaseName + c.Extension
}
