package fs_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/ElektraInitiative/booktoc"
	"github.com/ElektraInitiative/booktoc/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamer_Name(t *testing.T) {
	t.Parallel()

	derive := booktoc.DefaultConfig()
	derive.DeriveTitleFromHeading = true

	t.Run("returns fallback when derivation is disabled", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "doc.md")
		writeFile(t, path, "# Getting Started\n")

		n := fs.NewNamer(booktoc.DefaultConfig())
		name, err := n.Name(path, "doc")

		require.NoError(t, err)
		assert.Equal(t, "doc", name)
	})

	t.Run("returns fallback when there is no content path", func(t *testing.T) {
		t.Parallel()

		n := fs.NewNamer(derive)
		name, err := n.Name("", "guide")

		require.NoError(t, err)
		assert.Equal(t, "guide", name)
	})

	t.Run("derives the title from a leading heading", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "doc.md")
		writeFile(t, path, "# Getting Started\n\nIntro text.\n")

		n := fs.NewNamer(derive)
		name, err := n.Name(path, "doc")

		require.NoError(t, err)
		assert.Equal(t, "Getting Started", name)
	})

	t.Run("strips a carriage return line terminator", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "doc.md")
		writeFile(t, path, "# Getting Started\r\nbody\r\n")

		n := fs.NewNamer(derive)
		name, err := n.Name(path, "doc")

		require.NoError(t, err)
		assert.Equal(t, "Getting Started", name)
	})

	t.Run("derives a title from a first line longer than 64KB", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("x", 70*1024)
		path := filepath.Join(t.TempDir(), "doc.md")
		writeFile(t, path, "# "+long+"\nbody\n")

		n := fs.NewNamer(derive)
		name, err := n.Name(path, "doc")

		require.NoError(t, err)
		assert.Equal(t, long, name)
	})

	t.Run("falls back on a malformed first line", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name    string
			content string
		}{
			{name: "no heading marker", content: "Getting Started\n"},
			{name: "marker without space", content: "#Getting Started\n"},
			{name: "deeper heading level", content: "## Getting Started\n"},
			{name: "marker without text", content: "# \n"},
			{name: "empty document", content: ""},
		}

		for _, tt := range tests {
			tt := tt
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				path := filepath.Join(t.TempDir(), "doc.md")
				writeFile(t, path, tt.content)

				n := fs.NewNamer(derive)
				name, err := n.Name(path, "doc")

				require.NoError(t, err)
				assert.Equal(t, "doc", name)
			})
		}
	})

	t.Run("unreadable document returns EINTERNAL", func(t *testing.T) {
		t.Parallel()

		missing := filepath.Join(t.TempDir(), "missing.md")

		n := fs.NewNamer(derive)
		_, err := n.Name(missing, "doc")

		require.Error(t, err)
		assert.Equal(t, booktoc.EINTERNAL, booktoc.ErrorCode(err))
		assert.Contains(t, booktoc.ErrorMessage(err), missing)
	})
}
