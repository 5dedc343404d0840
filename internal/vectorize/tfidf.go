// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package vectorize builds a fixed-vocabulary TF-IDF index over the
// symptom corpus and scores queries against it with cosine similarity.
//
// The index is fitted once over the knowledge base at startup and is
// immutable afterwards; analysis calls share it read-only.
package vectorize

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	// maxFeatures caps the vocabulary size. When the corpus produces
	// more features, the most frequent ones are kept.
	maxFeatures = 1000

	// minTokenLen drops single-character tokens during feature
	// extraction.
	minTokenLen = 2
)

// asciiFold decomposes accented characters and removes the combining
// marks, leaving their ASCII base letters.
var asciiFold = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))

// sparse is a sparse feature vector keyed by vocabulary column.
type sparse map[int]float64

// Index is a fitted TF-IDF model plus the weighted corpus vectors.
type Index struct {
	vocab map[string]int
	idf   []float64
	docs  []sparse
}

// Fit builds an Index over texts: case-folded, accent-stripped 1- and
// 2-gram features, smoothed inverse-document-frequency weighting, and
// L2-normalized document vectors. It fails only when the corpus yields
// no extractable tokens at all, which is a configuration error.
func Fit(texts []string) (*Index, error) {
	type featureStat struct {
		term  string
		count int
		df    int
	}

	stats := make(map[string]*featureStat)
	docFeatures := make([]map[string]int, len(texts))

	for i, text := range texts {
		counts := featureCounts(text)
		docFeatures[i] = counts
		for term, n := range counts {
			st, ok := stats[term]
			if !ok {
				st = &featureStat{term: term}
				stats[term] = st
			}
			st.count += n
			st.df++
		}
	}

	if len(stats) == 0 {
		return nil, fmt.Errorf("corpus of %d texts produced no extractable tokens", len(texts))
	}

	ordered := make([]*featureStat, 0, len(stats))
	for _, st := range stats {
		ordered = append(ordered, st)
	}
	if len(ordered) > maxFeatures {
		sort.Slice(ordered, func(i, j int) bool {
			if ordered[i].count != ordered[j].count {
				return ordered[i].count > ordered[j].count
			}
			return ordered[i].term < ordered[j].term
		})
		ordered = ordered[:maxFeatures]
	}
	// Stable column order regardless of how features were selected.
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].term < ordered[j].term })

	idx := &Index{
		vocab: make(map[string]int, len(ordered)),
		idf:   make([]float64, len(ordered)),
	}
	n := float64(len(texts))
	for col, st := range ordered {
		idx.vocab[st.term] = col
		idx.idf[col] = math.Log((1+n)/(1+float64(st.df))) + 1
	}

	idx.docs = make([]sparse, len(texts))
	for i, counts := range docFeatures {
		idx.docs[i] = idx.weigh(counts)
	}

	return idx, nil
}

// DocCount returns the number of corpus documents in the index.
func (idx *Index) DocCount() int {
	return len(idx.docs)
}

// VocabSize returns the fitted vocabulary size.
func (idx *Index) VocabSize() int {
	return len(idx.vocab)
}

// Similarities embeds text under the fitted model and returns its
// cosine similarity to every corpus document, in corpus order. Values
// are in [0,1] since all weights are non-negative.
func (idx *Index) Similarities(text string) []float64 {
	query := idx.weigh(featureCounts(text))

	sims := make([]float64, len(idx.docs))
	if len(query) == 0 {
		return sims
	}
	for i, doc := range idx.docs {
		sims[i] = dot(query, doc)
	}
	return sims
}

// weigh converts raw feature counts into an L2-normalized TF-IDF vector.
// Features outside the fitted vocabulary are ignored.
func (idx *Index) weigh(counts map[string]int) sparse {
	vec := make(sparse)
	var sumSq float64
	for term, n := range counts {
		col, ok := idx.vocab[term]
		if !ok {
			continue
		}
		w := float64(n) * idx.idf[col]
		vec[col] = w
		sumSq += w * w
	}
	if sumSq > 0 {
		length := math.Sqrt(sumSq)
		for col := range vec {
			vec[col] /= length
		}
	}
	return vec
}

func dot(a, b sparse) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var sum float64
	for col, w := range a {
		sum += w * b[col]
	}
	return sum
}

// featureCounts extracts 1-gram and 2-gram features from text and
// counts occurrences.
func featureCounts(text string) map[string]int {
	tokens := tokenize(text)
	counts := make(map[string]int, len(tokens)*2)
	for i, tok := range tokens {
		counts[tok]++
		if i+1 < len(tokens) {
			counts[tok+" "+tokens[i+1]]++
		}
	}
	return counts
}

// tokenize case-folds, strips accents to ASCII, and extracts maximal
// alphanumeric runs of at least minTokenLen characters.
func tokenize(text string) []string {
	folded, _, err := transform.String(asciiFold, strings.ToLower(text))
	if err != nil {
		folded = strings.ToLower(text)
	}

	var tokens []string
	var b strings.Builder
	flush := func() {
		if b.Len() >= minTokenLen {
			tokens = append(tokens, b.String())
		}
		b.Reset()
	}
	for _, r := range folded {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			continue
		}
		flush()
	}
	flush()
	return tokens
}
