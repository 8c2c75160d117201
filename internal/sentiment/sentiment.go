// Package sentiment provides headline polarity scoring. The engine only
// depends on the Scorer interface; the bundled lexicon scorer is a
// self-contained default so the service runs without an external model.
package sentiment

import (
	"math"
	"strings"
)

// Scorer produces a polarity score in [-1, 1] for a piece of text.
type Scorer interface {
	Score(text string) float64
}

// ScorerFunc adapts a plain function to the Scorer interface.
type ScorerFunc func(text string) float64

func (f ScorerFunc) Score(text string) float64 { return f(text) }

// valence maps lower-cased tokens to raw intensity in roughly [-4, 4],
// skewed toward the vocabulary of financial headlines.
var valence = map[string]float64{
	"beat":          2.4,
	"beats":         2.4,
	"strong":        2.0,
	"growth":        1.9,
	"profit":        2.1,
	"profits":       2.1,
	"profitable":    2.2,
	"record":        1.8,
	"surge":         2.6,
	"surges":        2.6,
	"soar":          2.8,
	"soars":         2.8,
	"rally":         2.2,
	"rallies":       2.2,
	"gain":          1.7,
	"gains":         1.7,
	"upgrade":       2.0,
	"upgraded":      2.0,
	"outperform":    2.1,
	"bullish":       2.3,
	"boom":          2.4,
	"success":       2.0,
	"successful":    2.0,
	"win":           1.9,
	"wins":          1.9,
	"dividend":      1.2,
	"buyback":       1.4,
	"expand":        1.3,
	"expands":       1.3,
	"expansion":     1.3,
	"recovery":      1.5,
	"rebound":       1.6,
	"rebounds":      1.6,
	"optimistic":    1.8,
	"improve":       1.6,
	"improves":      1.6,
	"improved":      1.6,
	"positive":      1.7,
	"loss":          -2.2,
	"losses":        -2.2,
	"miss":          -1.9,
	"misses":        -1.9,
	"missed":        -1.9,
	"warn":          -1.8,
	"warns":         -1.8,
	"warning":       -1.8,
	"decline":       -1.7,
	"declines":      -1.7,
	"drop":          -1.8,
	"drops":         -1.8,
	"plunge":        -2.8,
	"plunges":       -2.8,
	"crash":         -3.1,
	"crashes":       -3.1,
	"fall":          -1.6,
	"falls":         -1.6,
	"tumble":        -2.3,
	"tumbles":       -2.3,
	"slump":         -2.2,
	"slumps":        -2.2,
	"weak":          -1.7,
	"bearish":       -2.3,
	"downgrade":     -2.0,
	"downgraded":    -2.0,
	"lawsuit":       -2.1,
	"sue":           -2.0,
	"sues":          -2.0,
	"fraud":         -3.2,
	"probe":         -1.8,
	"investigation": -1.8,
	"bankruptcy":    -3.5,
	"bankrupt":      -3.5,
	"default":       -3.0,
	"defaults":      -3.0,
	"debt":          -1.4,
	"restructuring": -1.9,
	"liquidation":   -3.0,
	"layoff":        -2.2,
	"layoffs":       -2.2,
	"cut":           -1.3,
	"cuts":          -1.3,
	"recall":        -1.8,
	"fine":          -1.5,
	"fined":         -1.7,
	"penalty":       -1.8,
	"risk":          -1.2,
	"fear":          -1.9,
	"fears":         -1.9,
	"crisis":        -2.7,
	"negative":      -1.7,
}

// negators flip the sign of the following sentiment-bearing token.
var negators = map[string]bool{
	"not":     true,
	"no":      true,
	"never":   true,
	"without": true,
	"fails":   true,
	"fail":    true,
}

// negationScale dampens a flipped valence; "not strong" is negative but
// weaker than "weak".
const negationScale = 0.74

// LexiconScorer scores text against the built-in valence lexicon with
// simple negation handling. Safe for concurrent use: the lexicon is
// read-only after construction.
type LexiconScorer struct {
	lexicon map[string]float64
}

// NewLexiconScorer returns a scorer backed by the built-in lexicon.
func NewLexiconScorer() *LexiconScorer {
	return &LexiconScorer{lexicon: valence}
}

// Score computes a normalized polarity in [-1, 1] for the given text.
// Text with no sentiment-bearing tokens scores exactly 0.
func (s *LexiconScorer) Score(text string) float64 {
	tokens := tokenize(text)

	total := 0.0
	negated := false
	for _, tok := range tokens {
		if negators[tok] {
			negated = true
			continue
		}
		v, ok := s.lexicon[tok]
		if !ok {
			continue
		}
		if negated {
			v = -v * negationScale
			negated = false
		}
		total += v
	}
	return normalize(total)
}

func tokenize(text string) []string {
	lower := strings.ToLower(text)
	return strings.FieldsFunc(lower, func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9') && r != '\''
	})
}

// normalize squashes the summed valence into [-1, 1]. The constant follows
// the usual compound-score normalization x / sqrt(x^2 + 15).
func normalize(total float64) float64 {
	if total == 0 {
		return 0
	}
	n := total / math.Sqrt(total*total+15)
	if n > 1 {
		return 1
	}
	if n < -1 {
		return -1
	}
	return n
}
