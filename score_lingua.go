package cryptobreak

import (
	"unicode/utf8"

	"github.com/pemistahl/lingua-go"
)

// LanguageScorer rates text by the confidence of a lingua language detector
// that the text is written in the target language. It is much slower than
// FrequencyScorer.
type LanguageScorer struct {
	target   lingua.Language
	detector lingua.LanguageDetector
}

// NewLanguageScorer builds a detector choosing between target and others.
// With no others given, a handful of common European languages are used as
// the alternatives.
func NewLanguageScorer(target lingua.Language, others ...lingua.Language) *LanguageScorer {
	if len(others) == 0 {
		others = []lingua.Language{lingua.French, lingua.German, lingua.Spanish}
	}
	languages := append([]lingua.Language{target}, others...)
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(languages...).
		Build()
	return &LanguageScorer{target: target, detector: detector}
}

// Score implements Scorer. The result is in [0, 1].
func (s *LanguageScorer) Score(text []byte) (float64, error) {
	if !utf8.Valid(text) {
		return 0, ErrNotText
	}
	return s.detector.ComputeLanguageConfidence(string(text), s.target), nil
}
