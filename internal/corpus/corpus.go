// Package corpus provides word frequency tables used to judge how
// expected a word is in ordinary prose.
package corpus

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"sync"
)

//go:embed common_words.json
var commonWordsJSON []byte

// Table maps words to frequency ranks. Rank 1 is the most common word.
type Table struct {
	ranks map[string]int
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the table built from the embedded frequency list.
func Default() *Table {
	defaultOnce.Do(func() {
		var words []string
		if err := json.Unmarshal(commonWordsJSON, &words); err != nil {
			panic(fmt.Sprintf("corpus: embedded word list: %v", err))
		}
		defaultTable = New(words)
	})
	return defaultTable
}

// New builds a table from words ordered most to least frequent. The
// first occurrence wins when a word appears more than once.
func New(words []string) *Table {
	ranks := make(map[string]int, len(words))
	for i, w := range words {
		if _, ok := ranks[w]; ok {
			continue
		}
		ranks[w] = i + 1
	}
	return &Table{ranks: ranks}
}

// Rank returns the 1-based frequency rank of word. The second return
// is false when the word is not ranked.
func (t *Table) Rank(word string) (int, bool) {
	r, ok := t.ranks[word]
	return r, ok
}

// Size returns the number of ranked words.
func (t *Table) Size() int {
	return len(t.ranks)
}

var countPattern = regexp.MustCompile(`[a-z']+`)

// CountWords tallies lowercase word occurrences in text. Quote marks
// that survive the match are trimmed so "'stop'" counts as "stop".
func CountWords(text string) map[string]int {
	counts := make(map[string]int)
	for _, w := range countPattern.FindAllString(strings.ToLower(text), -1) {
		w = strings.Trim(w, "'")
		if w == "" {
			continue
		}
		counts[w]++
	}
	return counts
}
