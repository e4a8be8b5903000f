// Package detect folds stylometric signals into a single likelihood
// score that a passage was machine generated.
package detect

import (
	"fmt"
	"math"

	"essaylens/internal/corpus"
	"essaylens/internal/metrics"
	"essaylens/internal/tokenize"
)

// Confidence labels how tightly the individual signals agree.
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// ConfidenceThresholds carve the spread of metric values into bands.
// Spread below HighBelow reads as high confidence, spread above
// LowAbove as low, anything between as medium.
type ConfidenceThresholds struct {
	HighBelow float64
	LowAbove  float64
}

// Options configure scoring.
type Options struct {
	Weights    map[metrics.Kind]float64
	Confidence ConfidenceThresholds
	Salience   float64
}

// DefaultOptions returns the stock scoring configuration.
func DefaultOptions() Options {
	return Options{
		Weights: map[metrics.Kind]float64{
			metrics.KindPredictability: 0.25,
			metrics.KindBurstiness:     0.20,
			metrics.KindDiversity:      0.20,
			metrics.KindRepetition:     0.20,
			metrics.KindRegularity:     0.15,
		},
		Confidence: ConfidenceThresholds{HighBelow: 0.15, LowAbove: 0.30},
		Salience:   0.12,
	}
}

// ConfigurationError reports unusable scoring options.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "configuration: " + e.Reason
}

const (
	weightTolerance = 1e-6
	verdictMidpoint = 50.0
)

// Result is the full report for one passage.
type Result struct {
	Score           float64                `json:"score"`
	Confidence      Confidence             `json:"confidence"`
	LikelyGenerated bool                   `json:"likelyGenerated"`
	WordCount       int                    `json:"wordCount"`
	SentenceCount   int                    `json:"sentenceCount"`
	Metrics         []metrics.MetricResult `json:"metrics"`
	Flags           []Explanation          `json:"flags"`
}

// Engine runs every extractor over a passage and folds the results
// into a Result.
type Engine struct {
	extractors []metrics.Extractor
	opts       Options
}

// NewEngine validates opts and builds an engine over table. A nil
// table falls back to the embedded corpus.
func NewEngine(table *corpus.Table, opts Options) (*Engine, error) {
	if table == nil {
		table = corpus.Default()
	}
	if err := validateOptions(opts); err != nil {
		return nil, err
	}
	return &Engine{extractors: metrics.Extractors(table), opts: opts}, nil
}

// Detect scores text. It returns a *tokenize.InvalidInputError when
// the passage has nothing to measure.
func (e *Engine) Detect(text string) (*Result, error) {
	doc, err := tokenize.Tokenize(text)
	if err != nil {
		return nil, err
	}
	results := make([]metrics.MetricResult, 0, len(e.extractors))
	for _, ex := range e.extractors {
		results = append(results, ex.Extract(doc))
	}
	res := e.aggregate(results)
	res.WordCount = len(doc.Words)
	res.SentenceCount = len(doc.Sentences)
	return res, nil
}

func (e *Engine) aggregate(results []metrics.MetricResult) *Result {
	sum := 0.0
	mean := 0.0
	for _, r := range results {
		sum += e.opts.Weights[r.Kind] * r.Value
		mean += r.Value
	}
	mean /= float64(len(results))

	// Population spread of the normalized values. Signals that agree
	// make the verdict trustworthy regardless of which way they point.
	variance := 0.0
	for _, r := range results {
		d := r.Value - mean
		variance += d * d
	}
	spread := math.Sqrt(variance / float64(len(results)))

	confidence := ConfidenceMedium
	switch {
	case spread < e.opts.Confidence.HighBelow:
		confidence = ConfidenceHigh
	case spread > e.opts.Confidence.LowAbove:
		confidence = ConfidenceLow
	}

	score := 100.0 * sum
	return &Result{
		Score:           score,
		Confidence:      confidence,
		LikelyGenerated: score > verdictMidpoint,
		Metrics:         results,
		Flags:           e.explain(results),
	}
}

func validateOptions(opts Options) error {
	kinds := metrics.Kinds()
	if len(opts.Weights) != len(kinds) {
		return &ConfigurationError{Reason: fmt.Sprintf("expected %d metric weights, got %d", len(kinds), len(opts.Weights))}
	}
	sum := 0.0
	for _, kind := range kinds {
		w, ok := opts.Weights[kind]
		if !ok {
			return &ConfigurationError{Reason: fmt.Sprintf("missing weight for %s", kind)}
		}
		if w < 0 {
			return &ConfigurationError{Reason: fmt.Sprintf("negative weight for %s", kind)}
		}
		sum += w
	}
	if math.Abs(sum-1.0) > weightTolerance {
		return &ConfigurationError{Reason: fmt.Sprintf("weights sum to %.6f, want 1.0", sum)}
	}
	if opts.Salience < 0 || opts.Salience > 1 {
		return &ConfigurationError{Reason: fmt.Sprintf("salience %.3f outside [0,1]", opts.Salience)}
	}
	if opts.Confidence.HighBelow <= 0 || opts.Confidence.LowAbove <= opts.Confidence.HighBelow {
		return &ConfigurationError{Reason: "confidence thresholds must satisfy 0 < high-below < low-above"}
	}
	return nil
}
