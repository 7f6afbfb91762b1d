package wordsource

import "context"

// Layered prefers a local word list file and falls back to the embedded
// corpus for languages without one.
type Layered struct {
	dir      *Dir
	fallback *Embedded
}

// NewLayered builds the default lexical source: local files under root,
// embedded starter lists otherwise.
func NewLayered(root string) *Layered {
	return &Layered{dir: NewDir(root), fallback: NewEmbedded()}
}

// Words returns the local list for a language when a file exists, the
// embedded list otherwise. Read errors propagate so the generator can log
// and move on to another language.
func (l *Layered) Words(ctx context.Context, lang string) ([]string, error) {
	if l.dir.Has(lang) {
		return l.dir.Words(ctx, lang)
	}
	return l.fallback.Words(ctx, lang)
}

// HasLocal reports whether the language is served from a local file.
func (l *Layered) HasLocal(lang string) bool {
	return l.dir.Has(lang)
}
