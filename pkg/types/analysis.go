// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the shared data records exchanged between the triage
// engine, the allocation engine, and the workflows that consume them.
package types

// Severity is the coarse urgency tier assigned to a symptom description.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityModerate Severity = "moderate"
	SeverityHigh     Severity = "high"
)

// Gender is an optional patient attribute carried through analysis.
type Gender string

const (
	GenderFemale Gender = "female"
	GenderMale   Gender = "male"
	GenderOther  Gender = "other"
)

// SymptomQuery is one symptom-analysis request. Age and Gender are
// optional; zero values mean "not provided".
type SymptomQuery struct {
	// Text is the patient's free-text symptom description.
	Text string `json:"text" yaml:"text"`

	// Age is the patient's age in years. Zero means unknown.
	Age int `json:"age,omitempty" yaml:"age,omitempty"`

	// Gender is the patient's gender, if provided.
	Gender Gender `json:"gender,omitempty" yaml:"gender,omitempty"`
}

// AnalysisResult is the outcome of analyzing one symptom description.
// It is produced once per query and never mutated afterwards.
type AnalysisResult struct {
	// Specialization is the recommended medical specialization
	// (e.g. "cardiology"), always present; falls back to general
	// medicine for unanalyzable input.
	Specialization string `json:"specialization" yaml:"specialization"`

	// Severity is the urgency tier derived from keyword matching.
	Severity Severity `json:"severity" yaml:"severity"`

	// Confidence is the calibrated classifier certainty in [0,1],
	// rounded to two decimals. Distinct from raw similarity.
	Confidence float64 `json:"confidence" yaml:"confidence"`

	// MatchedSymptoms lists up to three knowledge-base phrases whose
	// similarity exceeded the adaptive match threshold.
	MatchedSymptoms []string `json:"matched_symptoms" yaml:"matched_symptoms"`

	// Recommendations is deterministic advice text: severity lines
	// first, then specialization advice, then an age line if relevant.
	Recommendations []string `json:"recommendations" yaml:"recommendations"`

	// AlternativeSpecializations lists up to three runner-up
	// specializations, deduplicated, excluding the primary.
	AlternativeSpecializations []string `json:"alternative_specializations" yaml:"alternative_specializations"`
}
