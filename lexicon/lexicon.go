// Package lexicon indexes a flat word list by word length. Each length
// group is a deduplicated, fixed-order pool that slots use as their initial
// candidate domains.
package lexicon

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Lexicon struct {
	name    string
	pools   map[int][]string
	members map[string]struct{}
}

// NewLexicon builds a lexicon from an in-memory word list. Words are
// uppercased and deduplicated; first-seen order within a length group is
// preserved, and that order seeds every slot domain built from the group.
func NewLexicon(name string, words []string) *Lexicon {
	upper := cases.Upper(language.English)
	normalized := lo.FilterMap(words, func(w string, _ int) (string, bool) {
		w = strings.TrimSpace(w)
		return upper.String(w), w != ""
	})
	lex := &Lexicon{
		name:    name,
		pools:   make(map[int][]string),
		members: make(map[string]struct{}),
	}
	for _, w := range lo.Uniq(normalized) {
		lex.pools[len(w)] = append(lex.pools[len(w)], w)
		lex.members[w] = struct{}{}
	}
	return lex
}

// LoadLexicon reads a newline-delimited word list. A missing or unreadable
// file is a configuration error; the caller should not retry.
func LoadLexicon(filename string) (*Lexicon, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("loading word list: %w", err)
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading word list: %w", err)
	}
	return NewLexicon(filepath.Base(filename), words), nil
}

func (lex *Lexicon) Name() string {
	return lex.name
}

// Pool returns the candidate pool for the given word length, or an empty
// slice if no word of that length was loaded. Callers must not mutate the
// returned slice; copy it first.
func (lex *Lexicon) Pool(length int) []string {
	return lex.pools[length]
}

func (lex *Lexicon) HasWord(word string) bool {
	_, ok := lex.members[word]
	return ok
}

// WordCount returns the total number of distinct words across all pools.
func (lex *Lexicon) WordCount() int {
	return len(lex.members)
}
