package detect

import (
	"fmt"
	"sort"

	"essaylens/internal/metrics"
)

// Explanation is one plain-language flag attached to a Result. The
// wording targets a reader grading essays, not a statistician.
type Explanation struct {
	Label        string       `json:"label"`
	Metric       metrics.Kind `json:"metric"`
	Rationale    string       `json:"rationale"`
	Contribution float64      `json:"contribution"`
}

// explain flags every metric whose weighted contribution clears the
// salience threshold, strongest first. Ties keep canonical metric order.
func (e *Engine) explain(results []metrics.MetricResult) []Explanation {
	priority := map[metrics.Kind]int{}
	for i, kind := range metrics.Kinds() {
		priority[kind] = i
	}

	flags := []Explanation{}
	for _, r := range results {
		contribution := e.opts.Weights[r.Kind] * r.Value
		if contribution <= e.opts.Salience {
			continue
		}
		flags = append(flags, Explanation{
			Label:        flagLabel(r.Kind),
			Metric:       r.Kind,
			Rationale:    flagRationale(r),
			Contribution: contribution,
		})
	}

	sort.SliceStable(flags, func(i, j int) bool {
		if flags[i].Contribution != flags[j].Contribution {
			return flags[i].Contribution > flags[j].Contribution
		}
		return priority[flags[i].Metric] < priority[flags[j].Metric]
	})
	return flags
}

func flagLabel(kind metrics.Kind) string {
	switch kind {
	case metrics.KindPredictability:
		return "Highly predictable wording"
	case metrics.KindBurstiness:
		return "Uniform sentence rhythm"
	case metrics.KindDiversity:
		return "Narrow vocabulary"
	case metrics.KindRepetition:
		return "Repeated phrasing"
	case metrics.KindRegularity:
		return "Mechanical regularity"
	default:
		return string(kind)
	}
}

func flagRationale(r metrics.MetricResult) string {
	switch r.Kind {
	case metrics.KindPredictability:
		return fmt.Sprintf("Word choices track the most common patterns of everyday prose (mean expectedness %.3f).", r.Raw)
	case metrics.KindBurstiness:
		return fmt.Sprintf("Sentence lengths barely vary (variation coefficient %.3f).", r.Raw)
	case metrics.KindDiversity:
		return fmt.Sprintf("The passage leans on a small vocabulary (moving type-token ratio %.3f).", r.Raw)
	case metrics.KindRepetition:
		return fmt.Sprintf("Three-word phrases repeat verbatim (repeated share %.3f).", r.Raw)
	case metrics.KindRegularity:
		return fmt.Sprintf("Word lengths and punctuation keep a steady beat (length spread %.3f).", r.Raw)
	default:
		return ""
	}
}
