package mock

import "github.com/ElektraInitiative/booktoc"

var _ booktoc.Namer = (*Namer)(nil)

// Namer is a mock implementation of booktoc.Namer.
type Namer struct {
	NameFn func(contentPath, fallback string) (string, error)
}

func (n *Namer) Name(contentPath, fallback string) (string, error) {
	return n.NameFn(contentPath, fallback)
}
