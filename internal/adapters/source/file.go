package source

import (
	"context"
	"fmt"
	"os"
)

// FileFetcher reads a document from the local filesystem on every fetch.
type FileFetcher struct {
	path string
}

// NewFile returns a fetcher for path.
func NewFile(path string) *FileFetcher { return &FileFetcher{path: path} }

func (*FileFetcher) Name() string { return NameFile }

func (f *FileFetcher) Fetch(ctx context.Context) (Payload, error) {
	if err := ctx.Err(); err != nil {
		return Payload{}, err
	}
	data, err := os.ReadFile(f.path)
	if err != nil {
		return Payload{}, fmt.Errorf("read %s: %w", f.path, err)
	}
	return Decode(data)
}
