package fs

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/ElektraInitiative/booktoc"
)

// Ensure Namer implements booktoc.Namer at compile time.
var _ booktoc.Namer = (*Namer)(nil)

// Namer derives chapter display titles.
type Namer struct {
	cfg booktoc.Config
}

// NewNamer creates a new Namer with the given configuration.
func NewNamer(cfg booktoc.Config) *Namer {
	return &Namer{cfg: cfg}
}

// Name returns the display title for the chapter backed by contentPath.
// When title derivation is enabled it reads only the document's first
// line; if that line is "# <title>" the title is used, otherwise fallback
// is returned. Reading a single line bounds the cost regardless of
// document size.
func (n *Namer) Name(contentPath, fallback string) (string, error) {
	if !n.cfg.DeriveTitleFromHeading || contentPath == "" {
		return fallback, nil
	}

	f, err := os.Open(contentPath)
	if err != nil {
		return "", booktoc.Errorf(booktoc.EINTERNAL, "cannot open %s: %v", contentPath, err)
	}
	defer f.Close()

	// ReadString handles first lines of any length; a Scanner would fail
	// on lines over its token limit.
	line, err := bufio.NewReader(f).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", booktoc.Errorf(booktoc.EINTERNAL, "cannot read %s: %v", contentPath, err)
	}
	line = strings.TrimRight(line, "\r\n")

	title, ok := strings.CutPrefix(line, "# ")
	if !ok {
		return fallback, nil
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return fallback, nil
	}
	return title, nil
}
