package vectorize

import (
	"fmt"
	"math"
	"testing"
)

func mustFit(t *testing.T, texts []string) *Index {
	t.Helper()
	idx, err := Fit(texts)
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	return idx
}

func TestFitRejectsUntokenizableCorpus(t *testing.T) {
	if _, err := Fit([]string{"!!", "??", "a"}); err == nil {
		t.Fatal("Fit accepted a corpus with no extractable tokens")
	}
	if _, err := Fit(nil); err == nil {
		t.Fatal("Fit accepted an empty corpus")
	}
}

func TestExactPhraseSimilarity(t *testing.T) {
	idx := mustFit(t, []string{"chest pain", "headache", "skin rash"})

	sims := idx.Similarities("chest pain")
	if math.Abs(sims[0]-1.0) > 1e-9 {
		t.Errorf("similarity to identical phrase = %v, want 1.0", sims[0])
	}
	if sims[1] != 0 {
		t.Errorf("similarity to unrelated phrase = %v, want 0", sims[1])
	}
	if sims[2] != 0 {
		t.Errorf("similarity to unrelated phrase = %v, want 0", sims[2])
	}
}

func TestSimilarityRange(t *testing.T) {
	idx := mustFit(t, []string{"chest pain", "heart pain", "knee pain", "eye pain"})

	for _, query := range []string{"pain", "chest pain", "severe knee pain", "unrelated words"} {
		for i, sim := range idx.Similarities(query) {
			if sim < 0 || sim > 1+1e-9 {
				t.Errorf("Similarities(%q)[%d] = %v, out of [0,1]", query, i, sim)
			}
		}
	}
}

func TestSharedTermsScoreHigher(t *testing.T) {
	idx := mustFit(t, []string{"chest pain", "stomach pain"})

	sims := idx.Similarities("chest pain and pressure")
	if sims[0] <= sims[1] {
		t.Errorf("chest query: chest pain = %v should outrank stomach pain = %v", sims[0], sims[1])
	}
}

func TestUnknownVocabularyIsZero(t *testing.T) {
	idx := mustFit(t, []string{"chest pain"})

	for i, sim := range idx.Similarities("zzz qqq") {
		if sim != 0 {
			t.Errorf("unknown-vocabulary query: sims[%d] = %v, want 0", i, sim)
		}
	}
}

func TestAccentStripping(t *testing.T) {
	idx := mustFit(t, []string{"migrane attack"})

	sims := idx.Similarities("migräne attack")
	if math.Abs(sims[0]-1.0) > 1e-9 {
		t.Errorf("accent-folded similarity = %v, want 1.0", sims[0])
	}
}

func TestSingleCharacterTokensDropped(t *testing.T) {
	idx := mustFit(t, []string{"b vitamin deficiency"})

	if idx.VocabSize() == 0 {
		t.Fatal("no vocabulary")
	}
	// "b" is below the minimum token length; only "vitamin",
	// "deficiency" and their bigram should be features.
	if got := idx.VocabSize(); got != 3 {
		t.Errorf("VocabSize = %d, want 3", got)
	}
}

func TestVocabularyCap(t *testing.T) {
	texts := make([]string, 600)
	for i := range texts {
		texts[i] = fmt.Sprintf("term%04d term%04d", 2*i, 2*i+1)
	}
	idx := mustFit(t, texts)

	// 1200 unigrams plus 600 distinct bigrams exceed the cap.
	if got := idx.VocabSize(); got != 1000 {
		t.Errorf("VocabSize = %d, want 1000", got)
	}
	if got := idx.DocCount(); got != 600 {
		t.Errorf("DocCount = %d, want 600", got)
	}
}

func TestBigramsDistinguishWordOrder(t *testing.T) {
	idx := mustFit(t, []string{"back pain", "pain back relief"})

	sims := idx.Similarities("back pain")
	if sims[0] <= sims[1] {
		t.Errorf("bigram match should outrank reversed order: %v vs %v", sims[0], sims[1])
	}
}
