package metrics

import "essaylens/internal/tokenize"

// Diversity measures lexical range with a moving-average type-token
// ratio. A narrow vocabulary scores high.
type Diversity struct{}

const (
	mattrWindow = 100
	mattrStride = 50

	// TTR at or above ttrCeiling reads as fully varied; the score walks
	// toward 1 as the ratio falls across ttrSpan below it.
	ttrCeiling = 0.9
	ttrSpan    = 0.6
)

func (d *Diversity) Kind() Kind { return KindDiversity }

func (d *Diversity) Extract(doc *tokenize.Document) MetricResult {
	if len(doc.Words) == 0 {
		return MetricResult{Kind: KindDiversity, Value: neutralValue, Raw: 0}
	}
	mattr := mattrScore(doc.Words, mattrWindow, mattrStride)
	return MetricResult{Kind: KindDiversity, Value: clamp01((ttrCeiling - mattr) / ttrSpan), Raw: mattr}
}

func mattrScore(words []string, window, stride int) float64 {
	if len(words) == 0 {
		return 0
	}
	if len(words) <= window {
		return typeTokenRatio(words)
	}
	sum := 0.0
	count := 0
	for i := 0; i+window <= len(words); i += stride {
		sum += typeTokenRatio(words[i : i+window])
		count++
	}
	return sum / float64(count)
}

func typeTokenRatio(words []string) float64 {
	seen := map[string]struct{}{}
	for _, w := range words {
		seen[w] = struct{}{}
	}
	return float64(len(seen)) / float64(len(words))
}
