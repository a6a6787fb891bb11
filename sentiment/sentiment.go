// Package sentiment scores the polarity and subjectivity of English text
// with VADER: a valence lexicon, booster and dampener words, negation,
// capitalization and punctuation emphasis, and a "but" shift.
package sentiment

import (
	"math"
	"strings"
	"sync"

	"github.com/jonreiter/govader"
	"gonum.org/v1/gonum/floats/scalar"
)

// Scores is the sentiment of one text. Polarity ranges from -1 (negative)
// to 1 (positive), subjectivity from 0 (objective) to 1 (subjective).
type Scores struct {
	Polarity     float64 `json:"polarity"`
	Subjectivity float64 `json:"subjectivity"`
}

var (
	analyzerOnce sync.Once
	analyzer     *govader.SentimentIntensityAnalyzer
)

// vader loads the lexicon once; the analyzer is read-only afterwards and
// shared by every worker.
func vader() *govader.SentimentIntensityAnalyzer {
	analyzerOnce.Do(func() {
		analyzer = govader.NewSentimentIntensityAnalyzer()
	})
	return analyzer
}

// Analyze scores text. Polarity is the normalized VADER compound score.
// Subjectivity is the share of the text carrying any valence, positive or
// negative. A text without words is neutral and objective.
func Analyze(text string) Scores {
	if len(strings.Fields(text)) == 0 {
		return Scores{}
	}
	s := vader().PolarityScores(text)
	return Scores{
		Polarity:     finite(clamp(s.Compound, -1, 1)),
		Subjectivity: finite(clamp(scalar.Round(s.Positive+s.Negative, 3), 0, 1)),
	}
}

// Polarity returns the polarity of text in [-1, 1].
func Polarity(text string) float64 { return Analyze(text).Polarity }

// Subjectivity returns the subjectivity of text in [0, 1].
func Subjectivity(text string) float64 { return Analyze(text).Subjectivity }

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
