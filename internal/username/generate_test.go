package username

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type stubSource struct {
	words map[string][]string
	errs  map[string]error
}

func (s *stubSource) Words(_ context.Context, lang string) ([]string, error) {
	if err, ok := s.errs[lang]; ok {
		return nil, err
	}
	return s.words[lang], nil
}

func TestGenerateCountAndOrder(t *testing.T) {
	source := &stubSource{words: map[string][]string{
		"eng": {"cat", "ox", "wolf", "stone", "river"},
		"spa": {"gato", "sol", "río", "mar"},
	}}
	gen := NewSeeded(source, 1)
	entries, err := gen.Generate(context.Background(), []string{"eng", "spa"}, 40, Style{Case: CaseLower, Number: NumberNone})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 40 {
		t.Fatalf("expected 40 entries, got %d", len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i-1].Username > entries[i].Username {
			t.Fatalf("entries not sorted: %q before %q", entries[i-1].Username, entries[i].Username)
		}
	}
}

func TestGenerateSingleLanguageDrawDomain(t *testing.T) {
	source := &stubSource{words: map[string][]string{
		"eng": {"cat", "ox", "wolf"},
	}}
	gen := NewSeeded(source, 7)
	entries, err := gen.Generate(context.Background(), []string{"eng"}, 100, Style{Case: CaseLower, Number: NumberNone})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, entry := range entries {
		if entry.Username != "cat" && entry.Username != "wolf" {
			t.Fatalf("unexpected username %q (ox is too short, nothing else exists)", entry.Username)
		}
		if entry.LangName != "English" {
			t.Fatalf("expected display name English, got %q", entry.LangName)
		}
	}
}

func TestGenerateAllEmptyFails(t *testing.T) {
	source := &stubSource{words: map[string][]string{}}
	gen := NewSeeded(source, 3)
	_, err := gen.Generate(context.Background(), []string{"eng", "spa", "fra"}, 5, Style{})
	if !errors.Is(err, ErrNoValidWords) {
		t.Fatalf("expected ErrNoValidWords, got %v", err)
	}
}

func TestGenerateRetriesEmptyLanguage(t *testing.T) {
	// One language has no qualifying words; draws must fall through to the
	// other instead of failing.
	source := &stubSource{words: map[string][]string{
		"eng": {"ox", "it"},
		"dan": {"fjord", "strand"},
	}}
	gen := NewSeeded(source, 11)
	entries, err := gen.Generate(context.Background(), []string{"eng", "dan"}, 30, Style{Case: CaseLower, Number: NumberNone})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, entry := range entries {
		if entry.LangCode != "dan" {
			t.Fatalf("expected every draw to come from dan, got %q", entry.LangCode)
		}
	}
}

func TestGenerateSkipsFailingLookup(t *testing.T) {
	source := &stubSource{
		words: map[string][]string{"eng": {"stone", "river"}},
		errs:  map[string]error{"fin": errors.New("corpus unreadable")},
	}
	gen := NewSeeded(source, 5)
	var warned []string
	gen.OnLookupError = func(lang string, _ error) {
		warned = append(warned, lang)
	}
	entries, err := gen.Generate(context.Background(), []string{"eng", "fin"}, 25, Style{Case: CaseLower, Number: NumberNone})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, entry := range entries {
		if entry.LangCode != "eng" {
			t.Fatalf("expected draws only from eng, got %q", entry.LangCode)
		}
	}
	for _, lang := range warned {
		if lang != "fin" {
			t.Fatalf("unexpected warning for %q", lang)
		}
	}
}

func TestGenerateUnknownLanguageFailsFast(t *testing.T) {
	source := &stubSource{words: map[string][]string{"eng": {"stone"}}}
	gen := NewSeeded(source, 1)
	_, err := gen.Generate(context.Background(), []string{"eng", "xyz"}, 5, Style{})
	if err == nil || !strings.Contains(err.Error(), "xyz") {
		t.Fatalf("expected unknown-code error naming xyz, got %v", err)
	}
}

func TestGenerateProgressReported(t *testing.T) {
	source := &stubSource{words: map[string][]string{"eng": {"stone", "river", "cloud"}}}
	gen := NewSeeded(source, 9)
	var seen []int
	gen.OnProgress = func(done, total int) {
		if total != 10 {
			t.Fatalf("expected total 10, got %d", total)
		}
		seen = append(seen, done)
	}
	if _, err := gen.Generate(context.Background(), []string{"eng"}, 10, Style{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(seen) != 10 {
		t.Fatalf("expected 10 progress calls, got %d", len(seen))
	}
	for i, done := range seen {
		if done != i+1 {
			t.Fatalf("progress out of order: call %d reported %d", i, done)
		}
	}
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	words := map[string][]string{
		"eng": {"cat", "wolf", "stone"},
		"dan": {"fjord", "strand", "hav"},
	}
	first, err := NewSeeded(&stubSource{words: words}, 99).
		Generate(context.Background(), []string{"eng", "dan"}, 20, Style{Case: CaseCapitalize, Number: Number2Digit})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := NewSeeded(&stubSource{words: words}, 99).
		Generate(context.Background(), []string{"eng", "dan"}, 20, Style{Case: CaseCapitalize, Number: Number2Digit})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("same seed diverged at %d: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestGenerateCancelled(t *testing.T) {
	source := &stubSource{words: map[string][]string{"eng": {"stone"}}}
	gen := NewSeeded(source, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := gen.Generate(ctx, []string{"eng"}, 5, Style{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
