// Package wordsource provides lexical sources: per-language word lists
// backed by local files or the embedded starter corpus.
package wordsource

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Dir serves word lists from <root>/<code>.txt, one word per line.
type Dir struct {
	root string
}

// NewDir returns a Dir source rooted at the given directory.
func NewDir(root string) *Dir {
	return &Dir{root: root}
}

// Words reads the word list file for a language. A missing file yields an
// empty slice so unknown codes never fail a batch.
func (d *Dir) Words(_ context.Context, lang string) ([]string, error) {
	path := filepath.Join(d.root, lang+".txt")
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open word list %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list %s: %w", path, err)
	}
	return words, nil
}

// Has reports whether a local word list file exists for the language.
func (d *Dir) Has(lang string) bool {
	_, err := os.Stat(filepath.Join(d.root, lang+".txt"))
	return err == nil
}
