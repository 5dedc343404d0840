// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import "github.com/cibinnnnnn/medconnect/pkg/types"

// recommend builds the deterministic advice list: two severity lines,
// one specialization self-care line when the table has one, and one age
// line for minors and seniors. The order is fixed.
func (a *Analyzer) recommend(specialization string, severity types.Severity, age int) []string {
	var recs []string

	switch severity {
	case types.SeverityHigh:
		recs = append(recs,
			"Your symptoms suggest urgent medical attention may be needed.",
			"Please visit the emergency department or book an immediate consultation.")
	case types.SeverityModerate:
		recs = append(recs,
			"Your symptoms require medical attention soon.",
			"Please book an appointment within the next 1-2 days.")
	default:
		recs = append(recs,
			"Your symptoms can typically be managed with a routine consultation.",
			"Book an appointment at your convenience.")
	}

	if advice, ok := a.base.AdviceFor(specialization); ok {
		recs = append(recs, advice)
	}

	switch {
	case age > 0 && age < 18:
		recs = append(recs, "As this is for a minor, parental/guardian presence is recommended.")
	case age > 65:
		recs = append(recs, "Given your age, regular health monitoring is advisable.")
	}

	return recs
}
