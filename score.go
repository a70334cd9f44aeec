package cryptobreak

import (
	"errors"
	"io"
	"unicode/utf8"
)

// ErrNotText is returned by a Scorer when the candidate is not valid UTF-8.
var ErrNotText = errors.New("cryptobreak: candidate is not valid text")

// ErrNoLetters is returned by NewCorpusScorer for a corpus without a-z.
var ErrNoLetters = errors.New("cryptobreak: corpus has no letters")

// Scorer rates how much a candidate plaintext looks like natural language.
// Higher is better. Candidates that cannot be read as text at all are
// reported with ErrNotText instead of a score.
type Scorer interface {
	Score(text []byte) (float64, error)
}

// englishFrequencies are the relative letter frequencies of English text,
// plus the space character.
var englishFrequencies = map[rune]float64{
	'a': 0.08167, 'b': 0.01492, 'c': 0.02782, 'd': 0.04253, 'e': 0.12702,
	'f': 0.02228, 'g': 0.02015, 'h': 0.06094, 'i': 0.06966, 'j': 0.00153,
	'k': 0.00772, 'l': 0.04025, 'm': 0.02406, 'n': 0.06749, 'o': 0.07507,
	'p': 0.01929, 'q': 0.00095, 'r': 0.05987, 's': 0.06327, 't': 0.09056,
	'u': 0.02758, 'v': 0.00978, 'w': 0.02360, 'x': 0.00150, 'y': 0.01974,
	'z': 0.00074, ' ': 0.13000,
}

// FrequencyScorer sums per-letter weights over a text. Only letters (case
// folded) and the space contribute; everything else scores zero.
type FrequencyScorer struct {
	weights map[rune]float64
}

// EnglishScorer returns a FrequencyScorer using English letter frequencies.
func EnglishScorer() *FrequencyScorer {
	return &FrequencyScorer{weights: englishFrequencies}
}

// NewCorpusScorer builds the letter weights from a sample of text similar to
// the expected plaintext.
func NewCorpusScorer(r io.Reader) (*FrequencyScorer, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(buf) {
		return nil, ErrNotText
	}

	var total, letters float64
	m := make(map[rune]float64)
	for _, r := range string(buf) {
		if r, ok := fold(r); ok {
			m[r]++
			total++
			if r != ' ' {
				letters++
			}
		}
	}
	if letters == 0 {
		return nil, ErrNoLetters
	}
	for k, v := range m {
		m[k] = v / total
	}
	return &FrequencyScorer{weights: m}, nil
}

// Score implements Scorer.
func (s *FrequencyScorer) Score(text []byte) (float64, error) {
	if !utf8.Valid(text) {
		return 0, ErrNotText
	}
	var score float64
	for _, r := range string(text) {
		if r, ok := fold(r); ok {
			score += s.weights[r]
		}
	}
	return score, nil
}

// fold lower-cases ASCII letters and reports whether r is a scoring symbol.
func fold(r rune) (rune, bool) {
	switch {
	case r >= 'a' && r <= 'z', r == ' ':
		return r, true
	case r >= 'A' && r <= 'Z':
		return r + ('a' - 'A'), true
	}
	return r, false
}

// ProductScorer multiplies the scores of several scorers, so a candidate
// has to do well under all of them. Any error is returned as is.
type ProductScorer []Scorer

func (p ProductScorer) Score(text []byte) (float64, error) {
	score := 1.0
	for _, s := range p {
		v, err := s.Score(text)
		if err != nil {
			return 0, err
		}
		score *= v
	}
	return score, nil
}
