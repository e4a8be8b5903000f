// Package metrics scores stylometric signals over a tokenized passage.
// Every extractor reports a value in [0,1] where higher reads more
// machine-like, alongside the raw measurement it was derived from.
package metrics

import (
	"math"

	"essaylens/internal/corpus"
	"essaylens/internal/tokenize"
)

// Kind identifies one stylometric signal.
type Kind string

const (
	KindPredictability Kind = "predictability"
	KindBurstiness     Kind = "burstiness"
	KindDiversity      Kind = "diversity"
	KindRepetition     Kind = "repetition"
	KindRegularity     Kind = "regularity"
)

// Kinds returns every metric kind in canonical report order.
func Kinds() []Kind {
	return []Kind{
		KindPredictability,
		KindBurstiness,
		KindDiversity,
		KindRepetition,
		KindRegularity,
	}
}

// MetricResult is one scored signal.
type MetricResult struct {
	Kind  Kind    `json:"kind"`
	Value float64 `json:"value"`
	Raw   float64 `json:"raw"`
}

// Extractor scores one signal over a tokenized document.
type Extractor interface {
	Kind() Kind
	Extract(doc *tokenize.Document) MetricResult
}

// Extractors returns the full extractor set in canonical order.
func Extractors(table *corpus.Table) []Extractor {
	return []Extractor{
		&Predictability{Table: table},
		&Burstiness{},
		&Diversity{},
		&Repetition{},
		&Regularity{},
	}
}

// neutralValue is reported when a passage is too short to measure a signal.
const neutralValue = 0.5

func meanStd(values []float64) (mean, sd float64) {
	if len(values) == 0 {
		return 0, 0
	}
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))
	if len(values) == 1 {
		return mean, 0
	}
	variance := 0.0
	for _, v := range values {
		d := v - mean
		variance += d * d
	}
	variance /= float64(len(values))
	return mean, math.Sqrt(variance)
}

func sigmoid(z float64) float64 {
	return 1.0 / (1.0 + math.Exp(-z))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
