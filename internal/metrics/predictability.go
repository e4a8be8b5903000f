package metrics

import (
	"math"

	"essaylens/internal/corpus"
	"essaylens/internal/tokenize"
)

// Predictability measures how strongly word choice leans on the most
// frequent words of the reference corpus. Machine text keeps to the
// beaten path; human text wanders off it more often.
type Predictability struct {
	Table *corpus.Table
}

func (p *Predictability) Kind() Kind { return KindPredictability }

func (p *Predictability) Extract(doc *tokenize.Document) MetricResult {
	if len(doc.Words) == 0 || p.Table == nil || p.Table.Size() == 0 {
		return MetricResult{Kind: KindPredictability, Value: neutralValue, Raw: 0}
	}
	denom := math.Log(float64(p.Table.Size() + 1))
	sum := 0.0
	for _, w := range doc.Words {
		rank, ok := p.Table.Rank(w)
		if !ok {
			// Words outside the corpus contribute zero expectedness.
			continue
		}
		sum += 1.0 - math.Log(float64(rank))/denom
	}
	mean := sum / float64(len(doc.Words))
	value := sigmoid(6.0 * (mean - 0.5))
	return MetricResult{Kind: KindPredictability, Value: value, Raw: mean}
}
