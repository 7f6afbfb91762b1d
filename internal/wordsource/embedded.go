package wordsource

import (
	"bufio"
	"context"
	"embed"
	"os"
	"strings"
)

//go:embed data/*.txt
var dataFS embed.FS

// Embedded serves the starter word lists compiled into the binary. Lists
// intentionally contain short and non-ASCII forms; filtering is the
// generator's job, not the source's.
type Embedded struct{}

// NewEmbedded returns the embedded starter corpus.
func NewEmbedded() *Embedded {
	return &Embedded{}
}

// Words returns the embedded list for a language, or an empty slice for
// codes without one.
func (e *Embedded) Words(_ context.Context, lang string) ([]string, error) {
	file, err := dataFS.Open("data/" + lang + ".txt")
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for embedded data.
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
		return nil, err
	}
	return words, nil
}
