package metrics

import (
	"math"
	"strings"
	"testing"

	"essaylens/internal/corpus"
	"essaylens/internal/tokenize"
)

func TestExtractorsCanonicalOrder(t *testing.T) {
	extractors := Extractors(corpus.Default())
	kinds := Kinds()
	if len(extractors) != len(kinds) {
		t.Fatalf("expected %d extractors, got %d", len(kinds), len(extractors))
	}
	for i, ex := range extractors {
		if ex.Kind() != kinds[i] {
			t.Fatalf("expected extractor %d to be %s, got %s", i, kinds[i], ex.Kind())
		}
	}
}

func TestPredictabilityCommonVersusRareWords(t *testing.T) {
	table := corpus.New([]string{"the", "cat", "sat"})
	ex := &Predictability{Table: table}

	common := ex.Extract(mustDoc(t, "the the the."))
	if common.Value < 0.9 {
		t.Fatalf("expected high predictability for top-ranked words, got %.3f", common.Value)
	}
	if !approxEqual(common.Raw, 1.0) {
		t.Fatalf("expected mean expectedness 1.0 for rank-1 words, got %.6f", common.Raw)
	}

	rare := ex.Extract(mustDoc(t, "zebra quagga wombat."))
	if rare.Value > 0.1 {
		t.Fatalf("expected low predictability for unranked words, got %.3f", rare.Value)
	}
	if !approxEqual(rare.Raw, 0.0) {
		t.Fatalf("expected zero expectedness for unranked words, got %.6f", rare.Raw)
	}

	if common.Value <= rare.Value {
		t.Fatalf("expected common prose to outrank rare prose, got %.3f vs %.3f", common.Value, rare.Value)
	}
}

func TestPredictabilityNeutralOnEmptyTable(t *testing.T) {
	ex := &Predictability{Table: corpus.New(nil)}
	res := ex.Extract(mustDoc(t, "anything at all."))
	if !approxEqual(res.Value, 0.5) {
		t.Fatalf("expected neutral value for empty table, got %.3f", res.Value)
	}
}

func TestBurstinessNeutralForSingleSentence(t *testing.T) {
	ex := &Burstiness{}
	res := ex.Extract(mustDoc(t, "The cat sat on the mat."))
	if !approxEqual(res.Value, 0.5) {
		t.Fatalf("expected neutral burstiness for one sentence, got %.3f", res.Value)
	}
}

func TestBurstinessUniformCadenceScoresHigh(t *testing.T) {
	ex := &Burstiness{}

	uniform := ex.Extract(mustDoc(t, "One two three four five. Six seven eight nine ten. Alpha beta gamma delta epsilon."))
	if uniform.Value < 0.99 {
		t.Fatalf("expected maximal score for even sentence lengths, got %.3f", uniform.Value)
	}

	varied := ex.Extract(mustDoc(t, "Go now. The committee deliberated for nine long additional hours yesterday. Nobody ever knew."))
	if varied.Value > 0.3 {
		t.Fatalf("expected low score for varied sentence lengths, got %.3f", varied.Value)
	}
	if uniform.Value <= varied.Value {
		t.Fatalf("expected uniform cadence to outrank varied cadence, got %.3f vs %.3f", uniform.Value, varied.Value)
	}
}

func TestDiversityNarrowVocabularyScoresHigh(t *testing.T) {
	ex := &Diversity{}

	repeated := ex.Extract(mustDoc(t, "the cat sat. the cat sat. the cat sat."))
	if repeated.Value < 0.9 {
		t.Fatalf("expected high score for a three-word vocabulary, got %.3f", repeated.Value)
	}

	distinct := ex.Extract(mustDoc(t, "alpha bravo charlie delta echo foxtrot golf hotel india."))
	if !approxEqual(distinct.Value, 0.0) {
		t.Fatalf("expected zero score when every word is distinct, got %.3f", distinct.Value)
	}
}

func TestDiversityMovingWindowOnLongText(t *testing.T) {
	ex := &Diversity{}
	text := strings.TrimSpace(strings.Repeat("alpha bravo charlie delta echo foxtrot golf hotel india juliet. ", 15))
	res := ex.Extract(mustDoc(t, text))
	if !approxEqual(res.Raw, 0.1) {
		t.Fatalf("expected moving-average TTR 0.1 over the cycled vocabulary, got %.6f", res.Raw)
	}
	if !approxEqual(res.Value, 1.0) {
		t.Fatalf("expected saturated score, got %.3f", res.Value)
	}
}

func TestRepetitionZeroWithoutRepeatedPhrases(t *testing.T) {
	ex := &Repetition{}
	res := ex.Extract(mustDoc(t, "alpha beta gamma delta epsilon."))
	if !approxEqual(res.Value, 0.0) || !approxEqual(res.Raw, 0.0) {
		t.Fatalf("expected zero repetition, got value=%.3f raw=%.3f", res.Value, res.Raw)
	}
}

func TestRepetitionGrowsWithRepeatedPhrases(t *testing.T) {
	ex := &Repetition{}

	base := ex.Extract(mustDoc(t, "one two three four five six seven eight nine ten."))
	extended := ex.Extract(mustDoc(t, "one two three four five six seven eight nine ten. one two three four five."))
	if extended.Value <= base.Value {
		t.Fatalf("expected repeated phrases to raise the score, got %.3f vs %.3f", extended.Value, base.Value)
	}

	saturated := ex.Extract(mustDoc(t, "the cat sat. the cat sat. the cat sat."))
	if !approxEqual(saturated.Value, 1.0) {
		t.Fatalf("expected saturated score for a fully recycled passage, got %.3f", saturated.Value)
	}
}

func TestRepetitionNeutralBelowThreeWords(t *testing.T) {
	ex := &Repetition{}
	res := ex.Extract(mustDoc(t, "too short."))
	if !approxEqual(res.Value, 0.0) {
		t.Fatalf("expected zero score below trigram length, got %.3f", res.Value)
	}
}

func TestRegularityUniformRhythmScoresHigh(t *testing.T) {
	ex := &Regularity{}

	uniform := ex.Extract(mustDoc(t, "aaa bbb ccc. ddd eee fff."))
	if uniform.Value < 0.99 {
		t.Fatalf("expected maximal score for identical word lengths, got %.3f", uniform.Value)
	}

	varied := ex.Extract(mustDoc(t, "I extraordinarily am. No, consequential brevity here?"))
	if varied.Value > 0.35 {
		t.Fatalf("expected low score for erratic rhythm, got %.3f", varied.Value)
	}
	if uniform.Value <= varied.Value {
		t.Fatalf("expected uniform rhythm to outrank erratic rhythm, got %.3f vs %.3f", uniform.Value, varied.Value)
	}
}

func TestRegularityNeutralComponentsForTinyInput(t *testing.T) {
	ex := &Regularity{}
	res := ex.Extract(mustDoc(t, "Hello."))
	if !approxEqual(res.Value, 0.5) {
		t.Fatalf("expected neutral score for a one-word passage, got %.3f", res.Value)
	}
}

func TestAllValuesStayWithinUnitRange(t *testing.T) {
	texts := []string{
		"Hello.",
		"The quick brown fox jumps over the lazy dog. " + strings.TrimSpace(strings.Repeat("The quick brown fox jumps over the lazy dog. ", 2)),
		"Go now. The committee deliberated for nine long additional hours yesterday. Nobody ever knew.",
		strings.TrimSpace(strings.Repeat("alpha bravo charlie delta echo foxtrot golf hotel india juliet. ", 15)),
	}
	extractors := Extractors(corpus.Default())
	for _, text := range texts {
		doc := mustDoc(t, text)
		for _, ex := range extractors {
			res := ex.Extract(doc)
			if res.Value < 0 || res.Value > 1 {
				t.Fatalf("%s produced value %.6f outside [0,1]", ex.Kind(), res.Value)
			}
		}
	}
}

func TestMeanStdPopulation(t *testing.T) {
	mean, sd := meanStd([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if !approxEqual(mean, 5.0) {
		t.Fatalf("expected mean 5.0, got %.6f", mean)
	}
	if !approxEqual(sd, 2.0) {
		t.Fatalf("expected population sd 2.0, got %.6f", sd)
	}
}

func mustDoc(t *testing.T, text string) *tokenize.Document {
	t.Helper()
	doc, err := tokenize.Tokenize(text)
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	return doc
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
