package metrics

import (
	"strings"

	"essaylens/internal/tokenize"
)

// Repetition measures verbatim reuse of three-word phrases.
type Repetition struct{}

// A repeated-trigram share at or above this reads as fully machine-like recycling.
const repeatedTrigramCap = 0.25

func (r *Repetition) Kind() Kind { return KindRepetition }

func (r *Repetition) Extract(doc *tokenize.Document) MetricResult {
	words := doc.Words
	if len(words) < 3 {
		return MetricResult{Kind: KindRepetition, Value: 0, Raw: 0}
	}
	counts := map[string]int{}
	for i := 0; i+3 <= len(words); i++ {
		counts[strings.Join(words[i:i+3], " ")]++
	}
	repeated := 0
	for _, c := range counts {
		repeated += c - 1
	}
	share := float64(repeated) / float64(len(words)-2)
	return MetricResult{Kind: KindRepetition, Value: clamp01(share / repeatedTrigramCap), Raw: share}
}
