package username

import (
	"context"
	"errors"
	"math/rand"
	"sort"
	"time"

	"github.com/verte-zerg/lexname/internal/language"
	"github.com/verte-zerg/lexname/internal/model"
)

// ErrNoValidWords indicates that no configured language produced a single
// word passing the filter, so the batch cannot be completed.
var ErrNoValidWords = errors.New("no valid words in any configured language")

// Source provides the word forms known for a language code. Unknown codes
// yield an empty slice, not an error.
type Source interface {
	Words(ctx context.Context, lang string) ([]string, error)
}

// ProgressFunc is called after each completed draw with the 1-based draw
// index and the total batch size.
type ProgressFunc func(done, total int)

// LookupWarnFunc is called when a language lookup fails; the draw is
// retried with another language.
type LookupWarnFunc func(lang string, err error)

// Generator produces batches of formatted usernames.
type Generator struct {
	rnd    *rand.Rand
	source Source

	// valid words per language, cached for the duration of one batch
	cache map[string][]string

	// OnProgress and OnLookupError are optional observer hooks.
	OnProgress    ProgressFunc
	OnLookupError LookupWarnFunc
}

// New returns a Generator seeded with the current time.
func New(source Source) *Generator {
	return NewSeeded(source, time.Now().UnixNano())
}

// NewSeeded returns a Generator with a fixed seed, for reproducible runs.
func NewSeeded(source Source, seed int64) *Generator {
	return &Generator{
		rnd:    rand.New(rand.NewSource(seed)),
		source: source,
	}
}

// Generate produces count usernames drawn from the given languages and
// returns them sorted ascending by username. Languages are chosen uniformly
// with replacement. A draw that lands on a language with no valid words is
// retried with the remaining languages in random order; a draw fails with
// ErrNoValidWords only when every language came up empty.
func (g *Generator) Generate(ctx context.Context, langs []string, count int, style Style) ([]model.Entry, error) {
	if err := language.Validate(langs); err != nil {
		return nil, err
	}
	if style.MinLen <= 0 {
		style.MinLen = DefaultMinLen
	}

	g.cache = make(map[string][]string, len(langs))
	entries := make([]model.Entry, 0, count)
	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		entry, err := g.draw(ctx, langs, style)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
		if g.OnProgress != nil {
			g.OnProgress(i+1, count)
		}
	}
	g.cache = nil

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Username < entries[j].Username
	})
	return entries, nil
}

func (g *Generator) draw(ctx context.Context, langs []string, style Style) (model.Entry, error) {
	// A random permutation keeps the first pick uniform while trying each
	// language at most once.
	for _, idx := range g.rnd.Perm(len(langs)) {
		lang := langs[idx]
		valid, err := g.validWords(ctx, lang, style.MinLen)
		if err != nil {
			if g.OnLookupError != nil {
				g.OnLookupError(lang, err)
			}
			continue
		}
		if len(valid) == 0 {
			continue
		}
		word := valid[g.rnd.Intn(len(valid))]
		return model.Entry{
			Username: Format(g.rnd, word, style),
			LangCode: lang,
			LangName: language.Name(lang),
		}, nil
	}
	return model.Entry{}, ErrNoValidWords
}

func (g *Generator) validWords(ctx context.Context, lang string, minLen int) ([]string, error) {
	if valid, ok := g.cache[lang]; ok {
		return valid, nil
	}
	words, err := g.source.Words(ctx, lang)
	if err != nil {
		return nil, err
	}
	valid := make([]string, 0, len(words))
	for _, word := range words {
		if IsValid(word, minLen) {
			valid = append(valid, word)
		}
	}
	g.cache[lang] = valid
	return valid, nil
}
