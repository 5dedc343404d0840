package analyze

import (
	"reflect"
	"testing"

	"github.com/cibinnnnnn/medconnect/internal/knowledge"
	"github.com/cibinnnnnn/medconnect/pkg/types"
)

func testAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	base, err := knowledge.Load("")
	if err != nil {
		t.Fatalf("loading knowledge base: %v", err)
	}
	analyzer, err := New(base)
	if err != nil {
		t.Fatalf("building analyzer: %v", err)
	}
	return analyzer
}

func TestChestPainClassifiesAsCardiology(t *testing.T) {
	analyzer := testAnalyzer(t)

	result := analyzer.AnalyzeSymptoms(types.SymptomQuery{
		Text: "I have chest pain and heart palpitations",
	})

	if result.Specialization != "cardiology" {
		t.Errorf("specialization = %q, want cardiology", result.Specialization)
	}
	if result.Severity != types.SeverityLow {
		t.Errorf("severity = %q, want low (no urgency keyword present)", result.Severity)
	}
	if result.Confidence < 0.3 {
		t.Errorf("confidence = %v, want >= 0.3 for a strong match", result.Confidence)
	}
	if len(result.MatchedSymptoms) == 0 || len(result.MatchedSymptoms) > 3 {
		t.Errorf("matched symptoms = %v, want 1..3 entries", result.MatchedSymptoms)
	}
}

func TestSevereSymptomsAreHighSeverity(t *testing.T) {
	analyzer := testAnalyzer(t)

	result := analyzer.AnalyzeSymptoms(types.SymptomQuery{
		Text: "severe chest pain, I cannot breathe",
	})

	if result.Severity != types.SeverityHigh {
		t.Fatalf("severity = %q, want high", result.Severity)
	}
	if len(result.Recommendations) == 0 {
		t.Fatal("no recommendations")
	}
	if result.Recommendations[0] != "Your symptoms suggest urgent medical attention may be needed." {
		t.Errorf("recommendations[0] = %q, want urgent-care wording", result.Recommendations[0])
	}
}

func TestEmptyInputFallback(t *testing.T) {
	analyzer := testAnalyzer(t)

	for _, text := range []string{"", "   ", "?!?!", "I have a the and"} {
		result := analyzer.AnalyzeSymptoms(types.SymptomQuery{Text: text})

		if result.Specialization != knowledge.FallbackSpecialization {
			t.Errorf("AnalyzeSymptoms(%q).Specialization = %q, want fallback", text, result.Specialization)
		}
		if result.Confidence != 0.5 {
			t.Errorf("AnalyzeSymptoms(%q).Confidence = %v, want 0.5", text, result.Confidence)
		}
		if result.Severity != types.SeverityLow {
			t.Errorf("AnalyzeSymptoms(%q).Severity = %q, want low", text, result.Severity)
		}
		if len(result.Recommendations) != 1 {
			t.Errorf("AnalyzeSymptoms(%q) recommendations = %v, want a single guidance line", text, result.Recommendations)
		}
	}
}

func TestNoMatchFallback(t *testing.T) {
	analyzer := testAnalyzer(t)

	result := analyzer.AnalyzeSymptoms(types.SymptomQuery{Text: "xyzzy plugh quux"})

	if result.Specialization != knowledge.FallbackSpecialization {
		t.Errorf("specialization = %q, want fallback", result.Specialization)
	}
	if result.Confidence != 0.2 {
		t.Errorf("confidence = %v, want 0.2 for zero similarity", result.Confidence)
	}
	if len(result.MatchedSymptoms) != 0 {
		t.Errorf("matched symptoms = %v, want none", result.MatchedSymptoms)
	}
	if len(result.AlternativeSpecializations) != 0 {
		t.Errorf("alternatives = %v, want none", result.AlternativeSpecializations)
	}
}

// Analyzing a phrase that appears verbatim under exactly one
// specialization must classify as that specialization with a usable
// confidence.
func TestKnowledgeBaseRoundTrip(t *testing.T) {
	analyzer := testAnalyzer(t)

	tests := []struct {
		phrase string
		want   string
	}{
		{"angina", "cardiology"},
		{"migraine", "neurology"},
		{"knee pain", "orthopedics"},
		{"psoriasis", "dermatology"},
		{"indigestion", "gastroenterology"},
		{"asthma", "pulmonology"},
		{"tinnitus", "ent"},
		{"glaucoma", "ophthalmology"},
		{"menopause", "gynecology"},
		{"vaccination", "pediatrics"},
		{"insomnia", "psychiatry"},
		{"malaise", "general_medicine"},
	}

	for _, tt := range tests {
		result := analyzer.AnalyzeSymptoms(types.SymptomQuery{Text: tt.phrase})
		if result.Specialization != tt.want {
			t.Errorf("AnalyzeSymptoms(%q).Specialization = %q, want %q", tt.phrase, result.Specialization, tt.want)
		}
		if result.Confidence < 0.3 {
			t.Errorf("AnalyzeSymptoms(%q).Confidence = %v, want >= 0.3", tt.phrase, result.Confidence)
		}
	}
}

func TestAnalyzeIsIdempotent(t *testing.T) {
	analyzer := testAnalyzer(t)

	query := types.SymptomQuery{Text: "persistent headache and dizziness", Age: 40}
	first := analyzer.AnalyzeSymptoms(query)
	second := analyzer.AnalyzeSymptoms(query)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("results differ across identical calls:\n%+v\n%+v", first, second)
	}
}

func TestAlternativesExcludePrimaryAndDuplicates(t *testing.T) {
	analyzer := testAnalyzer(t)

	result := analyzer.AnalyzeSymptoms(types.SymptomQuery{
		Text: "heartburn and acid reflux with stomach pain",
	})

	seen := map[string]bool{result.Specialization: true}
	for _, alt := range result.AlternativeSpecializations {
		if seen[alt] {
			t.Errorf("alternative %q duplicates the primary or another alternative", alt)
		}
		seen[alt] = true
	}
	if len(result.AlternativeSpecializations) > 3 {
		t.Errorf("alternatives = %v, want at most 3", result.AlternativeSpecializations)
	}
}

func TestRecommendationOrder(t *testing.T) {
	analyzer := testAnalyzer(t)

	tests := []struct {
		name      string
		query     types.SymptomQuery
		wantFirst string
		wantLast  string
		wantLen   int
	}{
		{
			name:      "moderate severity with minor age line",
			query:     types.SymptomQuery{Text: "persistent migraine", Age: 12},
			wantFirst: "Your symptoms require medical attention soon.",
			wantLast:  "As this is for a minor, parental/guardian presence is recommended.",
			wantLen:   4,
		},
		{
			name:      "low severity with senior age line",
			query:     types.SymptomQuery{Text: "mild knee pain", Age: 70},
			wantFirst: "Your symptoms can typically be managed with a routine consultation.",
			wantLast:  "Given your age, regular health monitoring is advisable.",
			wantLen:   4,
		},
		{
			name:      "no age line for adults",
			query:     types.SymptomQuery{Text: "mild knee pain", Age: 30},
			wantFirst: "Your symptoms can typically be managed with a routine consultation.",
			wantLast:  "Apply ice/heat as appropriate and avoid aggravating movements.",
			wantLen:   3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := analyzer.AnalyzeSymptoms(tt.query)
			if len(result.Recommendations) != tt.wantLen {
				t.Fatalf("recommendations = %v, want %d lines", result.Recommendations, tt.wantLen)
			}
			if result.Recommendations[0] != tt.wantFirst {
				t.Errorf("first line = %q, want %q", result.Recommendations[0], tt.wantFirst)
			}
			last := result.Recommendations[len(result.Recommendations)-1]
			if last != tt.wantLast {
				t.Errorf("last line = %q, want %q", last, tt.wantLast)
			}
		})
	}
}
