package markdown_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ElektraInitiative/booktoc"
	"github.com/ElektraInitiative/booktoc/markdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTree(base string) []*booktoc.Chapter {
	return []*booktoc.Chapter{
		{
			Name:        "User Guide",
			ContentPath: filepath.Join(base, "guide", "README.md"),
			Number:      booktoc.SectionNumber{1},
			Children: []*booktoc.Chapter{
				{
					Name:        "Setup",
					ContentPath: filepath.Join(base, "guide", "setup.md"),
					Number:      booktoc.SectionNumber{1, 1},
				},
			},
		},
		{
			Name:        "Intro",
			ContentPath: filepath.Join(base, "intro.md"),
			Number:      booktoc.SectionNumber{2},
		},
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	t.Run("renders a nested list with relative links", func(t *testing.T) {
		t.Parallel()

		got, err := markdown.Format(sampleTree("src"), "src")

		require.NoError(t, err)
		want := "# Summary\n\n" +
			"- [User Guide](guide/README.md)\n" +
			"    - [Setup](guide/setup.md)\n" +
			"- [Intro](intro.md)\n"
		assert.Equal(t, want, got)
	})

	t.Run("renders a content-less chapter as a draft entry", func(t *testing.T) {
		t.Parallel()

		chapters := []*booktoc.Chapter{
			{
				Name:   "Guide",
				Number: booktoc.SectionNumber{1},
				Children: []*booktoc.Chapter{
					{
						Name:        "Setup",
						ContentPath: filepath.Join("src", "guide", "setup.md"),
						Number:      booktoc.SectionNumber{1, 1},
					},
				},
			},
		}

		got, err := markdown.Format(chapters, "src")

		require.NoError(t, err)
		want := "# Summary\n\n" +
			"- [Guide]()\n" +
			"    - [Setup](guide/setup.md)\n"
		assert.Equal(t, want, got)
	})

	t.Run("rejects an invalid chapter", func(t *testing.T) {
		t.Parallel()

		chapters := []*booktoc.Chapter{
			{Name: "", ContentPath: "a.md", Number: booktoc.SectionNumber{1}},
		}

		_, err := markdown.Format(chapters, "src")

		require.Error(t, err)
		assert.Equal(t, booktoc.EINVALID, booktoc.ErrorCode(err))
	})

	t.Run("rejects an invalid nested chapter", func(t *testing.T) {
		t.Parallel()

		chapters := []*booktoc.Chapter{
			{
				Name:   "Guide",
				Number: booktoc.SectionNumber{1},
				Children: []*booktoc.Chapter{
					{Name: "Setup", ContentPath: "guide/setup.md"},
				},
			},
		}

		_, err := markdown.Format(chapters, "src")

		require.Error(t, err)
		assert.Equal(t, booktoc.EINVALID, booktoc.ErrorCode(err))
	})

	t.Run("empty tree renders only the heading", func(t *testing.T) {
		t.Parallel()

		got, err := markdown.Format(nil, "src")

		require.NoError(t, err)
		assert.Equal(t, "# Summary\n\n", got)
	})
}

func TestEmitter_Emit(t *testing.T) {
	t.Parallel()

	t.Run("writes SUMMARY.md to the book source directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()

		e := markdown.NewEmitter(dir)
		err := e.Emit(context.Background(), sampleTree(dir))

		require.NoError(t, err)
		content, err := os.ReadFile(filepath.Join(dir, "SUMMARY.md"))
		require.NoError(t, err)
		assert.Contains(t, string(content), "- [User Guide](guide/README.md)")
		assert.Contains(t, string(content), "    - [Setup](guide/setup.md)")
	})

	t.Run("replaces a stale summary", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		stale := filepath.Join(dir, "SUMMARY.md")
		require.NoError(t, os.WriteFile(stale, []byte("# Summary\n\n- [Old](old.md)\n"), 0644))

		e := markdown.NewEmitter(dir)
		err := e.Emit(context.Background(), nil)

		require.NoError(t, err)
		content, err := os.ReadFile(stale)
		require.NoError(t, err)
		assert.Equal(t, "# Summary\n\n", string(content))
	})

	t.Run("unwritable directory returns EINTERNAL", func(t *testing.T) {
		t.Parallel()

		missing := filepath.Join(t.TempDir(), "nope")

		e := markdown.NewEmitter(missing)
		err := e.Emit(context.Background(), nil)

		require.Error(t, err)
		assert.Equal(t, booktoc.EINTERNAL, booktoc.ErrorCode(err))
	})
}
