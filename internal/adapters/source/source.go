// Package source fetches raw leaderboard documents from the bundled default
// resource, a local file or a remote URL.
package source

import (
	"context"
	"net/http"
	"time"

	"github.com/okian/tierboard/internal/domain/model"
)

// Fetcher names, used as metric labels.
const (
	NameDefault = "default"
	NameHTTP    = "http"
	NameFile    = "file"
)

// Record is one raw player entry. Extra holds every scalar attribute that is
// not one of the four required keys.
type Record struct {
	ID         string
	Name       string
	Points     int64
	LastActive time.Time
	Extra      map[string]model.Value
}

// Payload is a decoded document: the records in source order plus optional
// presentation hints.
type Payload struct {
	Records      []Record
	Presentation model.Presentation
}

// Fetcher retrieves a document. Fetch is the only blocking step of a load.
type Fetcher interface {
	Fetch(ctx context.Context) (Payload, error)
	Name() string
}

// HTTPDoer is the transport capability the remote fetcher needs.
// *http.Client satisfies it.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Descriptor selects a source. The zero value selects the bundled default.
type Descriptor struct {
	URL  string
	Path string
}

// IsDefault reports whether the descriptor selects the bundled resource.
func (d Descriptor) IsDefault() bool { return d.URL == "" && d.Path == "" }
