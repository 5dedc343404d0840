// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package analyze maps free-text symptom descriptions to a medical
// specialization, a severity tier, a calibrated confidence score, and
// deterministic advice text.
//
// The classifier is vector-space similarity search over the knowledge
// base corpus: the query is normalized, embedded under the fitted
// TF-IDF index, and compared to every corpus phrase. Severity is an
// independent keyword classifier over the raw text.
package analyze

import (
	"fmt"
	"sort"

	"github.com/cibinnnnnn/medconnect/internal/knowledge"
	"github.com/cibinnnnnn/medconnect/internal/textproc"
	"github.com/cibinnnnnn/medconnect/internal/vectorize"
	"github.com/cibinnnnnn/medconnect/pkg/types"
)

const (
	// topCandidates bounds the ranked candidate list per query.
	topCandidates = 5

	// maxMatchedSymptoms caps the matched phrases reported back.
	maxMatchedSymptoms = 3

	// maxAlternatives caps the alternative specializations reported.
	maxAlternatives = 3

	// alternativeMinSimilarity is the similarity a runner-up candidate
	// needs to be offered as an alternative specialization.
	alternativeMinSimilarity = 0.2

	// repetitionBoost multiplies a specialization's aggregate score
	// when it is supported by more than one matched phrase.
	repetitionBoost = 1.1
)

// candidate is one ranked corpus match for a query.
type candidate struct {
	specialization string
	phrase         string
	similarity     float64
}

// Analyzer is the symptom classifier. Built once at startup from the
// knowledge base; immutable and safe for concurrent use.
type Analyzer struct {
	base     *knowledge.Base
	index    *vectorize.Index
	texts    []string
	labels   []string
	severity *severityAssessor
}

// New fits the TF-IDF index over the knowledge base corpus and compiles
// the severity keyword patterns.
func New(base *knowledge.Base) (*Analyzer, error) {
	texts, labels := base.Corpus()

	index, err := vectorize.Fit(texts)
	if err != nil {
		return nil, fmt.Errorf("fitting symptom index: %w", err)
	}

	assessor, err := newSeverityAssessor(base.HighUrgencyKeywords, base.ModerateUrgencyKeywords)
	if err != nil {
		return nil, fmt.Errorf("compiling urgency keywords: %w", err)
	}

	return &Analyzer{
		base:     base,
		index:    index,
		texts:    texts,
		labels:   labels,
		severity: assessor,
	}, nil
}

// AnalyzeSymptoms classifies one symptom description. It never fails:
// degenerate input yields a well-formed low-confidence fallback result.
func (a *Analyzer) AnalyzeSymptoms(query types.SymptomQuery) types.AnalysisResult {
	normalized := textproc.Normalize(query.Text, a.base)
	if normalized == "" {
		return types.AnalysisResult{
			Specialization:  knowledge.FallbackSpecialization,
			Severity:        types.SeverityLow,
			Confidence:      0.5,
			Recommendations: []string{"Please provide more details about your symptoms."},
		}
	}

	candidates, matched := a.match(normalized)
	severity := a.severity.Assess(query.Text)

	spec := knowledge.FallbackSpecialization
	confidence := 0.2 // zero similarity to the whole corpus
	var alternatives []string

	if len(candidates) > 0 && candidates[0].similarity > 0 {
		spec, alternatives = decide(candidates)

		sims := make([]float64, len(candidates))
		for i, c := range candidates {
			sims[i] = c.similarity
		}
		confidence = confidenceScore(sims)
	}

	return types.AnalysisResult{
		Specialization:             spec,
		Severity:                   severity,
		Confidence:                 confidence,
		MatchedSymptoms:            matched,
		Recommendations:            a.recommend(spec, severity, query.Age),
		AlternativeSpecializations: alternatives,
	}
}

// match embeds the normalized query and returns the top candidates by
// cosine similarity, plus the corpus phrases above the adaptive match
// threshold. The threshold scales with the strongest match instead of
// using a fixed cutoff.
func (a *Analyzer) match(normalized string) ([]candidate, []string) {
	sims := a.index.Similarities(normalized)

	ranked := make([]candidate, len(sims))
	for i, sim := range sims {
		ranked[i] = candidate{
			specialization: a.labels[i],
			phrase:         a.texts[i],
			similarity:     sim,
		}
	}
	sortCandidates(ranked)

	if len(ranked) > topCandidates {
		ranked = ranked[:topCandidates]
	}

	var maxSim float64
	if len(ranked) > 0 {
		maxSim = ranked[0].similarity
	}
	threshold := maxSim * 0.3
	if threshold < 0.1 {
		threshold = 0.1
	}

	var matched []string
	for _, c := range ranked {
		if c.similarity > threshold && len(matched) < maxMatchedSymptoms {
			matched = append(matched, c.phrase)
		}
	}

	return ranked, matched
}

// decide aggregates the ranked candidates into a primary specialization
// and ordered alternatives. Per-specialization similarity sums get a
// repetition boost when multiple phrases support the same field, so a
// specialization backed by several moderate matches can beat a single
// strong outlier.
func decide(candidates []candidate) (string, []string) {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, c := range candidates {
		sums[c.specialization] += c.similarity
		counts[c.specialization]++
	}

	var best string
	var bestScore float64
	for _, c := range candidates { // rank order keeps ties deterministic
		score := sums[c.specialization]
		if counts[c.specialization] > 1 {
			score *= repetitionBoost
		}
		if best == "" || score > bestScore {
			best = c.specialization
			bestScore = score
		}
	}

	var alternatives []string
	seen := map[string]struct{}{best: {}}
	for i := 1; i < len(candidates) && i < 4; i++ {
		c := candidates[i]
		if _, dup := seen[c.specialization]; dup {
			continue
		}
		if c.similarity > alternativeMinSimilarity && len(alternatives) < maxAlternatives {
			alternatives = append(alternatives, c.specialization)
			seen[c.specialization] = struct{}{}
		}
	}

	return best, alternatives
}

// sortCandidates orders by similarity descending, keeping corpus order
// for equal similarities.
func sortCandidates(cs []candidate) {
	sort.SliceStable(cs, func(i, j int) bool {
		return cs[i].similarity > cs[j].similarity
	})
}
