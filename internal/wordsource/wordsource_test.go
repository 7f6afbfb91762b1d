package wordsource

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/verte-zerg/lexname/internal/language"
	"github.com/verte-zerg/lexname/internal/username"
)

func TestDirWords(t *testing.T) {
	dir := t.TempDir()
	content := "stone\n\n  river  \n# comment\nwolf\n"
	if err := os.WriteFile(filepath.Join(dir, "eng.txt"), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write word list: %v", err)
	}

	source := NewDir(dir)
	words, err := source.Words(context.Background(), "eng")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"stone", "river", "wolf"}
	if len(words) != len(want) {
		t.Fatalf("expected %d words, got %v", len(want), words)
	}
	for i, word := range want {
		if words[i] != word {
			t.Fatalf("expected %q at %d, got %q", word, i, words[i])
		}
	}
	if !source.Has("eng") {
		t.Fatalf("expected Has(eng) to be true")
	}
}

func TestDirMissingFileIsEmpty(t *testing.T) {
	source := NewDir(t.TempDir())
	words, err := source.Words(context.Background(), "spa")
	if err != nil {
		t.Fatalf("missing file must not be an error, got %v", err)
	}
	if len(words) != 0 {
		t.Fatalf("expected empty slice, got %v", words)
	}
	if source.Has("spa") {
		t.Fatalf("expected Has(spa) to be false")
	}
}

func TestEmbeddedCoversAllLanguages(t *testing.T) {
	source := NewEmbedded()
	for _, code := range language.Codes() {
		words, err := source.Words(context.Background(), code)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", code, err)
		}
		if len(words) == 0 {
			t.Fatalf("%s: embedded list is empty", code)
		}
		valid := 0
		for _, word := range words {
			if username.IsValid(word, username.DefaultMinLen) {
				valid++
			}
		}
		if valid == 0 {
			t.Fatalf("%s: no embedded word passes the filter", code)
		}
	}
}

func TestEmbeddedUnknownCodeIsEmpty(t *testing.T) {
	source := NewEmbedded()
	words, err := source.Words(context.Background(), "xxx")
	if err != nil {
		t.Fatalf("unknown code must not be an error, got %v", err)
	}
	if len(words) != 0 {
		t.Fatalf("expected empty slice, got %v", words)
	}
}

func TestLayeredPrefersLocalFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "eng.txt"), []byte("local\n"), 0o644); err != nil {
		t.Fatalf("failed to write word list: %v", err)
	}

	source := NewLayered(dir)
	words, err := source.Words(context.Background(), "eng")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(words) != 1 || words[0] != "local" {
		t.Fatalf("expected the local list, got %v", words)
	}
	if !source.HasLocal("eng") {
		t.Fatalf("expected HasLocal(eng) to be true")
	}

	fallback, err := source.Words(context.Background(), "dan")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fallback) == 0 {
		t.Fatalf("expected embedded fallback for dan")
	}
	if source.HasLocal("dan") {
		t.Fatalf("expected HasLocal(dan) to be false")
	}
}
