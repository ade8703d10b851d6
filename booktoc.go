// Package booktoc builds a hierarchical table of contents for a
// documentation book by scanning a directory tree of markdown documents,
// replacing a hand-maintained SUMMARY.md with a generated one.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., fs/, toml/, markdown/).
package booktoc
