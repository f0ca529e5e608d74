package source

import (
	"context"
	_ "embed"
)

//go:embed data/leaderboard.json
var defaultDocument []byte

// EmbeddedFetcher serves the document bundled into the binary.
type EmbeddedFetcher struct{}

// NewEmbedded returns the default fetcher.
func NewEmbedded() *EmbeddedFetcher { return &EmbeddedFetcher{} }

func (*EmbeddedFetcher) Name() string { return NameDefault }

func (*EmbeddedFetcher) Fetch(ctx context.Context) (Payload, error) {
	if err := ctx.Err(); err != nil {
		return Payload{}, err
	}
	return Decode(defaultDocument)
}

// DefaultDocument returns a copy of the bundled JSON.
func DefaultDocument() []byte {
	out := make([]byte, len(defaultDocument))
	copy(out, defaultDocument)
	return out
}
