package ranking

import "golang.org/x/text/language"

// Option configures a Ranker.
type Option func(*Ranker)

// WithLocale sets the collation locale used to break score ties by name.
func WithLocale(tag language.Tag) Option {
	return func(r *Ranker) {
		if tag != language.Und {
			r.locale = tag
		}
	}
}
