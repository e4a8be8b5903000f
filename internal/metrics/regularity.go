package metrics

import (
	"strings"

	"essaylens/internal/tokenize"
)

// Regularity measures mechanical rhythm. Steady word lengths and a
// steady count of punctuation per sentence => more uniform.
type Regularity struct{}

const (
	wordLenSpreadCap = 3.0
	punctSpreadCap   = 1.5
)

func (r *Regularity) Kind() Kind { return KindRegularity }

func (r *Regularity) Extract(doc *tokenize.Document) MetricResult {
	wordComponent := neutralValue
	wordSD := 0.0
	if len(doc.Words) >= 2 {
		lengths := make([]float64, 0, len(doc.Words))
		for _, w := range doc.Words {
			lengths = append(lengths, float64(len(w)))
		}
		_, wordSD = meanStd(lengths)
		wordComponent = clamp01((wordLenSpreadCap - wordSD) / wordLenSpreadCap)
	}

	punctComponent := neutralValue
	if len(doc.Sentences) >= 2 {
		counts := make([]float64, 0, len(doc.Sentences))
		for _, s := range doc.Sentences {
			counts = append(counts, float64(countPunct(s.Display)))
		}
		_, punctSD := meanStd(counts)
		punctComponent = clamp01((punctSpreadCap - punctSD) / punctSpreadCap)
	}

	value := clamp01(0.55*wordComponent + 0.45*punctComponent)
	return MetricResult{Kind: KindRegularity, Value: value, Raw: wordSD}
}

func countPunct(s string) int {
	return strings.Count(s, ",") + strings.Count(s, ";") + strings.Count(s, ":") + strings.Count(s, "—")
}
