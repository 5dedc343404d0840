// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package knowledge loads and validates the medical knowledge base: the
// specialization symptom corpus, urgency keyword tiers, advice and
// related-specialization tables, and the normalizer stopword list.
//
// The knowledge base is a versioned YAML document so the medical content
// can be audited and extended without touching scoring code. A default
// document is embedded in the binary; deployments may override it with
// their own file. A Base is immutable once loaded and safe for unlimited
// concurrent readers.
package knowledge

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

// FallbackSpecialization is the classification target used when input
// cannot be analyzed or matches nothing in the corpus.
const FallbackSpecialization = "general_medicine"

//go:embed knowledge.yaml
var defaultDocument []byte

// SpecializationEntry maps one specialization to its canonical symptom
// phrases. Entries keep their document order.
type SpecializationEntry struct {
	Name     string   `yaml:"name"`
	Symptoms []string `yaml:"symptoms"`
}

// Base is the loaded knowledge base.
type Base struct {
	// Version is the document version, bumped on content edits.
	Version int `yaml:"version"`

	// Specializations is the ordered symptom corpus.
	Specializations []SpecializationEntry `yaml:"specializations"`

	// HighUrgencyKeywords and ModerateUrgencyKeywords are the ordered
	// severity keyword tiers, matched as whole words.
	HighUrgencyKeywords     []string `yaml:"high_urgency_keywords"`
	ModerateUrgencyKeywords []string `yaml:"moderate_urgency_keywords"`

	// SpecializationAdvice maps a specialization to one self-care line.
	SpecializationAdvice map[string]string `yaml:"specialization_advice"`

	// RelatedSpecializations maps a required specialization to the
	// specializations accepted as related matches.
	RelatedSpecializations map[string][]string `yaml:"related_specializations"`

	// Stopwords is the normalizer's stopword list.
	Stopwords []string `yaml:"stopwords"`

	stopwordSet map[string]struct{}
}

// Load reads a knowledge base from path, or the embedded default when
// path is empty. The document is validated before use.
func Load(path string) (*Base, error) {
	data := defaultDocument
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading knowledge base: %w", err)
		}
	}

	var base Base
	if err := yaml.Unmarshal(data, &base); err != nil {
		return nil, fmt.Errorf("parsing knowledge base: %w", err)
	}

	if err := base.validate(); err != nil {
		return nil, fmt.Errorf("invalid knowledge base: %w", err)
	}

	// An empty corpus would leave the classifier with nothing to index.
	// Inject the general-medicine fallback so the index is never empty.
	if len(base.Specializations) == 0 {
		base.Specializations = []SpecializationEntry{
			{Name: FallbackSpecialization, Symptoms: []string{"general medicine"}},
		}
	}

	base.stopwordSet = make(map[string]struct{}, len(base.Stopwords))
	for _, w := range base.Stopwords {
		base.stopwordSet[w] = struct{}{}
	}

	return &base, nil
}

func (b *Base) validate() error {
	if b.Version < 1 {
		return fmt.Errorf("version must be >= 1, got %d", b.Version)
	}

	names := make(map[string]struct{}, len(b.Specializations))
	for _, entry := range b.Specializations {
		if entry.Name == "" {
			return fmt.Errorf("specialization with empty name")
		}
		if _, ok := names[entry.Name]; ok {
			return fmt.Errorf("duplicate specialization %q", entry.Name)
		}
		names[entry.Name] = struct{}{}

		if len(entry.Symptoms) == 0 {
			return fmt.Errorf("specialization %q has no symptom phrases", entry.Name)
		}
		for _, s := range entry.Symptoms {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("specialization %q has an empty symptom phrase", entry.Name)
			}
		}
	}

	for tier, keywords := range map[string][]string{
		"high_urgency_keywords":     b.HighUrgencyKeywords,
		"moderate_urgency_keywords": b.ModerateUrgencyKeywords,
	} {
		for _, kw := range keywords {
			if strings.TrimSpace(kw) == "" {
				return fmt.Errorf("%s contains an empty keyword", tier)
			}
		}
	}

	for spec := range b.SpecializationAdvice {
		if _, ok := names[spec]; !ok && len(names) > 0 {
			return fmt.Errorf("specialization_advice references unknown specialization %q", spec)
		}
	}
	for spec, related := range b.RelatedSpecializations {
		if _, ok := names[spec]; !ok && len(names) > 0 {
			return fmt.Errorf("related_specializations references unknown specialization %q", spec)
		}
		for _, r := range related {
			if strings.TrimSpace(r) == "" {
				return fmt.Errorf("related_specializations[%q] contains an empty entry", spec)
			}
		}
	}

	return nil
}

// Corpus flattens the knowledge base into parallel phrase and label
// slices for index fitting.
func (b *Base) Corpus() (texts, labels []string) {
	for _, entry := range b.Specializations {
		for _, symptom := range entry.Symptoms {
			texts = append(texts, symptom)
			labels = append(labels, entry.Name)
		}
	}
	return texts, labels
}

// AdviceFor returns the self-care advice line for a specialization.
// The second return is false when the table has no entry.
func (b *Base) AdviceFor(specialization string) (string, bool) {
	advice, ok := b.SpecializationAdvice[specialization]
	return advice, ok
}

// IsRelated reports whether doctorSpec is an accepted related
// specialization for requiredSpec.
func (b *Base) IsRelated(requiredSpec, doctorSpec string) bool {
	for _, r := range b.RelatedSpecializations[requiredSpec] {
		if r == doctorSpec {
			return true
		}
	}
	return false
}

// IsStopword reports whether token is in the stopword list.
func (b *Base) IsStopword(token string) bool {
	_, ok := b.stopwordSet[token]
	return ok
}
