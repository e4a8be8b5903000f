package detect

import (
	"strings"
	"testing"

	"essaylens/internal/metrics"
)

func TestExplainOrdersFlagsByContribution(t *testing.T) {
	engine := newTestEngine(t)

	// predictability 0.25, repetition 0.18, regularity 0.15; the rest
	// fall below the salience threshold.
	flags := engine.explain(fabricated([]float64{1.0, 0.3, 0.0, 0.9, 1.0}))

	want := []metrics.Kind{metrics.KindPredictability, metrics.KindRepetition, metrics.KindRegularity}
	if len(flags) != len(want) {
		t.Fatalf("expected %d flags, got %d: %+v", len(want), len(flags), flags)
	}
	for i, kind := range want {
		if flags[i].Metric != kind {
			t.Fatalf("expected flag %d to be %s, got %s", i, kind, flags[i].Metric)
		}
	}
	for i := 1; i < len(flags); i++ {
		if flags[i].Contribution > flags[i-1].Contribution {
			t.Fatalf("flags not sorted by contribution: %+v", flags)
		}
	}
}

func TestExplainBreaksTiesInCanonicalOrder(t *testing.T) {
	engine := newTestEngine(t)

	// burstiness and repetition share weight 0.20 and value 0.9, so
	// their contributions tie exactly.
	flags := engine.explain(fabricated([]float64{0.0, 0.9, 0.0, 0.9, 0.0}))

	if len(flags) != 2 {
		t.Fatalf("expected 2 flags, got %d: %+v", len(flags), flags)
	}
	if flags[0].Metric != metrics.KindBurstiness || flags[1].Metric != metrics.KindRepetition {
		t.Fatalf("expected tie to break canonically, got %s then %s", flags[0].Metric, flags[1].Metric)
	}
}

func TestExplainReturnsEmptySliceWhenNothingSalient(t *testing.T) {
	engine := newTestEngine(t)
	flags := engine.explain(fabricated([]float64{0.1, 0.1, 0.1, 0.1, 0.1}))
	if flags == nil {
		t.Fatal("expected an empty slice, got nil")
	}
	if len(flags) != 0 {
		t.Fatalf("expected no flags, got %+v", flags)
	}
}

func TestExplainThresholdIsStrict(t *testing.T) {
	opts := DefaultOptions()
	opts.Salience = 0.20
	engine, err := NewEngine(nil, opts)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	// burstiness contributes exactly 0.20, which must not clear a 0.20
	// threshold; predictability contributes 0.25 and must.
	flags := engine.explain(fabricated([]float64{1.0, 1.0, 0.0, 0.0, 0.0}))
	if len(flags) != 1 {
		t.Fatalf("expected 1 flag, got %d: %+v", len(flags), flags)
	}
	if flags[0].Metric != metrics.KindPredictability {
		t.Fatalf("expected predictability flag, got %s", flags[0].Metric)
	}
}

func TestFlagWordingCoversEveryMetric(t *testing.T) {
	for _, kind := range metrics.Kinds() {
		if flagLabel(kind) == "" {
			t.Fatalf("missing label for %s", kind)
		}
		rationale := flagRationale(metrics.MetricResult{Kind: kind, Value: 1, Raw: 0.64})
		if rationale == "" {
			t.Fatalf("missing rationale for %s", kind)
		}
		if !strings.Contains(rationale, "0.640") {
			t.Fatalf("expected rationale for %s to cite the raw measurement, got %q", kind, rationale)
		}
	}
}
