// Package toml loads booktoc configuration from a TOML file.
package toml

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/ElektraInitiative/booktoc"
)

// DefaultSrc is the book source directory used when the configuration
// file does not name one.
const DefaultSrc = "src"

// File is a loaded configuration file.
type File struct {
	// Src is the book source directory, relative to the working
	// directory unless absolute.
	Src string

	// Config holds the chapter generation options.
	Config booktoc.Config
}

// schema mirrors the on-disk layout. Pointer fields distinguish "absent"
// from "set to the zero value" so file values only override defaults when
// actually present.
type schema struct {
	Src                    *string `toml:"src"`
	DeriveTitleFromHeading *bool   `toml:"derive-title-from-heading"`
	IndexBaseName          *string `toml:"index-base-name"`
	CreateMissingIndex     *bool   `toml:"create-missing-index"`
	IgnoreMissingIndex     *bool   `toml:"ignore-missing-index"`
	Extension              *string `toml:"extension"`
}

// Load reads the configuration file at path. A missing file is not an
// error; it yields the defaults. Unknown keys are rejected so a typo in
// an option name cannot silently fall back to a default.
func Load(path string) (*File, error) {
	f := &File{
		Src:    DefaultSrc,
		Config: booktoc.DefaultConfig(),
	}

	var s schema
	meta, err := toml.DecodeFile(path, &s)
	if errors.Is(err, fs.ErrNotExist) {
		return f, nil
	}
	if err != nil {
		return nil, booktoc.Errorf(booktoc.EINVALID, "cannot parse configuration file %s: %v", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, booktoc.Errorf(booktoc.EINVALID, "unknown configuration key %q in %s", undecoded[0].String(), path)
	}

	if s.Src != nil {
		f.Src = *s.Src
	}
	if s.DeriveTitleFromHeading != nil {
		f.Config.DeriveTitleFromHeading = *s.DeriveTitleFromHeading
	}
	if s.IndexBaseName != nil {
		f.Config.IndexBaseName = *s.IndexBaseName
	}
	if s.CreateMissingIndex != nil {
		f.Config.CreateMissingIndex = *s.CreateMissingIndex
	}
	if s.IgnoreMissingIndex != nil {
		f.Config.IgnoreMissingIndex = *s.IgnoreMissingIndex
	}
	if s.Extension != nil {
		f.Config.Extension = NormalizeExtension(*s.Extension)
	}

	if err := f.Config.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// NormalizeExtension ensures a leading dot, so "md" and ".md" configure
// the same extension.
func NormalizeExtension(ext string) string {
	if ext == "" || strings.HasPrefix(ext, ".") {
		return ext
	}
	return "." + ext
}
