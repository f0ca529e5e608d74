// Package i18n translates user-facing strings and formats numbers per language.
// A Translator is an ordinary value; nothing here is process-global.
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Fallback is used when a requested language is not supported.
var Fallback = language.English //nolint:gochecknoglobals // immutable tag

// supported is ordered with the fallback first, as language.Matcher requires.
var supported = []language.Tag{language.English, language.Spanish, language.German} //nolint:gochecknoglobals // immutable

// Translator resolves message keys against the built-in catalog.
type Translator struct {
	catalog *catalog.Builder
	matcher language.Matcher
}

// New builds a Translator over the built-in en, es and de tables.
func New() (*Translator, error) {
	b := catalog.NewBuilder(catalog.Fallback(Fallback))
	for tag, table := range messages {
		for key, msg := range table {
			if err := b.SetString(tag, key, msg); err != nil {
				return nil, fmt.Errorf("catalog %s %s: %w", tag, key, err)
			}
		}
	}
	return &Translator{catalog: b, matcher: language.NewMatcher(supported)}, nil
}

// MustNew is New for static tables that are known to compile.
func MustNew() *Translator {
	t, err := New()
	if err != nil {
		panic(err)
	}
	return t
}

// Supported returns the languages with a full table, fallback first.
func Supported() []language.Tag {
	out := make([]language.Tag, len(supported))
	copy(out, supported)
	return out
}

// Match maps a BCP 47 string such as "de-AT" or "es" to a supported tag.
// Unknown or unparsable input yields Fallback.
func (t *Translator) Match(lang string) language.Tag {
	if lang == "" {
		return Fallback
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return Fallback
	}
	_, idx, conf := t.matcher.Match(tag)
	if conf == language.No {
		return Fallback
	}
	return supported[idx]
}

// Printer returns a message printer for the best supported match of tag.
func (t *Translator) Printer(tag language.Tag) *message.Printer {
	_, idx, conf := t.matcher.Match(tag)
	if conf == language.No {
		idx = 0
	}
	return message.NewPrinter(supported[idx], message.Catalog(t.catalog))
}

// Text translates key. Missing keys render as the key itself.
func (t *Translator) Text(tag language.Tag, key string) string {
	return t.Printer(tag).Sprintf(key)
}

// Number formats n with the language's digit grouping.
func (t *Translator) Number(tag language.Tag, n int64) string {
	return t.Printer(tag).Sprintf("%d", n)
}

// SeniorityName returns the translated name of a level.
func (t *Translator) SeniorityName(tag language.Tag, level string) string {
	return t.Text(tag, SeniorityKey(level))
}

// SeniorityDescription returns the translated description of a level.
func (t *Translator) SeniorityDescription(tag language.Tag, level string) string {
	return t.Text(tag, SeniorityDescKey(level))
}
