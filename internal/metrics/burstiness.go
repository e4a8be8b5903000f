package metrics

import "essaylens/internal/tokenize"

// Burstiness measures how evenly sentence lengths run. Human prose
// mixes short and long sentences; machine text keeps an even cadence,
// so low variation scores high here.
type Burstiness struct{}

// Length variation at or above this coefficient reads as fully human cadence.
const typicalLengthCV = 0.8

func (b *Burstiness) Kind() Kind { return KindBurstiness }

func (b *Burstiness) Extract(doc *tokenize.Document) MetricResult {
	if len(doc.Sentences) < 2 {
		return MetricResult{Kind: KindBurstiness, Value: neutralValue, Raw: 0}
	}
	lengths := make([]float64, 0, len(doc.Sentences))
	for _, s := range doc.Sentences {
		lengths = append(lengths, float64(len(s.Words)))
	}
	mean, sd := meanStd(lengths)
	cv := 0.0
	if mean > 0 {
		cv = sd / mean
	}
	return MetricResult{Kind: KindBurstiness, Value: 1.0 - clamp01(cv/typicalLengthCV), Raw: cv}
}
