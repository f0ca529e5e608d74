package source

import (
	"fmt"
	"net/url"
)

// Resolve picks the fetcher for a descriptor: a remote URL wins over a local
// path, and an empty descriptor selects the bundled document.
func Resolve(desc Descriptor, doer HTTPDoer, opts ...HTTPOption) (Fetcher, error) {
	switch {
	case desc.URL != "":
		if err := ValidateURL(desc.URL); err != nil {
			return nil, err
		}
		return NewHTTP(desc.URL, doer, opts...), nil
	case desc.Path != "":
		return NewFile(desc.Path), nil
	default:
		return NewEmbedded(), nil
	}
}

// ValidateURL accepts absolute http and https URLs only.
func ValidateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDescriptor, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q is not an absolute http(s) url", ErrInvalidDescriptor, raw)
	}
	return nil
}
