// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/cibinnnnnn/medconnect/pkg/types"
)

// severityAssessor classifies urgency from keyword presence. It runs
// over the raw symptom text, not the stopword-stripped form, because
// urgency wording ("cannot breathe") would not survive normalization.
type severityAssessor struct {
	high     []*regexp.Regexp
	moderate []*regexp.Regexp
}

func newSeverityAssessor(highKeywords, moderateKeywords []string) (*severityAssessor, error) {
	high, err := compileKeywords(highKeywords)
	if err != nil {
		return nil, err
	}
	moderate, err := compileKeywords(moderateKeywords)
	if err != nil {
		return nil, err
	}
	return &severityAssessor{high: high, moderate: moderate}, nil
}

// compileKeywords builds one whole-word, case-insensitive pattern per
// keyword. Multi-word keywords match as a phrase.
func compileKeywords(keywords []string) ([]*regexp.Regexp, error) {
	patterns := make([]*regexp.Regexp, 0, len(keywords))
	for _, kw := range keywords {
		re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(kw) + `\b`)
		if err != nil {
			return nil, fmt.Errorf("keyword %q: %w", kw, err)
		}
		patterns = append(patterns, re)
	}
	return patterns, nil
}

// Assess returns the urgency tier for text. The high tier is checked
// before the moderate tier; the default is low.
func (s *severityAssessor) Assess(text string) types.Severity {
	lowered := strings.ToLower(text)

	for _, re := range s.high {
		if re.MatchString(lowered) {
			return types.SeverityHigh
		}
	}
	for _, re := range s.moderate {
		if re.MatchString(lowered) {
			return types.SeverityModerate
		}
	}
	return types.SeverityLow
}
