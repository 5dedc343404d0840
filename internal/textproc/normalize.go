// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package textproc cleans free-text symptom descriptions before
// vector-space matching.
package textproc

import (
	"strings"
)

// Stopworder reports whether a token should be dropped during
// normalization. *knowledge.Base implements it.
type Stopworder interface {
	IsStopword(token string) bool
}

// Normalize lowercases text, strips every character outside [a-z0-9 ],
// tokenizes on whitespace, and drops stopwords. It returns the empty
// string for input that is entirely stopwords or punctuation, which is
// the classifier's degenerate-input signal.
func Normalize(text string, stopwords Stopworder) string {
	lowered := strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '\t', r == '\n', r == '\r':
			b.WriteByte(' ')
		}
	}

	tokens := strings.Fields(b.String())
	kept := tokens[:0]
	for _, tok := range tokens {
		if stopwords != nil && stopwords.IsStopword(tok) {
			continue
		}
		kept = append(kept, tok)
	}

	return strings.Join(kept, " ")
}
