// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import (
	"math"
	"reflect"
	"testing"

	"pgregory.net/rapid"

	"github.com/cibinnnnnn/medconnect/pkg/types"
)

// TestAnalysisInvariantsProperty checks the structural guarantees of
// AnalyzeSymptoms over arbitrary free-text input.
func TestAnalysisInvariantsProperty(t *testing.T) {
	analyzer := testAnalyzer(t)

	rapid.Check(t, func(rt *rapid.T) {
		text := rapid.StringMatching(`[a-zA-Z ,.!0-9]{0,120}`).Draw(rt, "text")
		age := rapid.IntRange(0, 110).Draw(rt, "age")

		result := analyzer.AnalyzeSymptoms(types.SymptomQuery{Text: text, Age: age})

		if result.Specialization == "" {
			rt.Fatalf("empty specialization for %q", text)
		}
		if result.Confidence < 0 || result.Confidence > 1 {
			rt.Fatalf("confidence %v out of [0,1] for %q", result.Confidence, text)
		}
		if math.Round(result.Confidence*100)/100 != result.Confidence {
			rt.Fatalf("confidence %v not rounded to two decimals", result.Confidence)
		}
		switch result.Severity {
		case types.SeverityLow, types.SeverityModerate, types.SeverityHigh:
		default:
			rt.Fatalf("unexpected severity %q", result.Severity)
		}
		if len(result.MatchedSymptoms) > 3 {
			rt.Fatalf("%d matched symptoms, want at most 3", len(result.MatchedSymptoms))
		}
		if len(result.AlternativeSpecializations) > 3 {
			rt.Fatalf("%d alternatives, want at most 3", len(result.AlternativeSpecializations))
		}
		for _, alt := range result.AlternativeSpecializations {
			if alt == result.Specialization {
				rt.Fatalf("alternative %q duplicates primary specialization", alt)
			}
		}
		if len(result.Recommendations) == 0 {
			rt.Fatalf("no recommendations for %q", text)
		}
	})
}

// TestAnalysisDeterministicProperty confirms that analyzing the same
// query twice yields the same result.
func TestAnalysisDeterministicProperty(t *testing.T) {
	analyzer := testAnalyzer(t)

	rapid.Check(t, func(rt *rapid.T) {
		query := types.SymptomQuery{
			Text: rapid.StringMatching(`[a-z ]{0,80}`).Draw(rt, "text"),
			Age:  rapid.IntRange(0, 110).Draw(rt, "age"),
		}

		first := analyzer.AnalyzeSymptoms(query)
		second := analyzer.AnalyzeSymptoms(query)
		if !reflect.DeepEqual(first, second) {
			rt.Fatalf("results differ for %q:\n%+v\n%+v", query.Text, first, second)
		}
	})
}

// TestConfidenceBoundsProperty exercises the confidence formula over
// arbitrary similarity vectors.
func TestConfidenceBoundsProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 12).Draw(rt, "candidates")
		sims := make([]float64, n)
		for i := range sims {
			sims[i] = rapid.Float64Range(0, 1).Draw(rt, "sim")
		}
		// The analyzer feeds similarities ranked best-first.
		for i := 1; i < len(sims); i++ {
			if sims[i] > sims[i-1] {
				sims[i] = sims[i-1]
			}
		}

		got := confidenceScore(sims)
		if got < 0 || got > 1 {
			rt.Fatalf("confidence %v out of [0,1] for %v", got, sims)
		}
		if math.Round(got*100)/100 != got {
			rt.Fatalf("confidence %v not rounded to two decimals", got)
		}
		if got > math.Round(math.Min(sims[0]*1.2, 1)*100)/100 {
			rt.Fatalf("confidence %v exceeds cap for top similarity %v", got, sims[0])
		}
		if sims[0] > 0.3 && got < 0.3 {
			rt.Fatalf("confidence %v below floor for top similarity %v", got, sims[0])
		}
	})
}
