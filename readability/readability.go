// Package readability computes the standard readability indices of a text:
// SMOG, Flesch reading ease, Gunning fog, and the word counts they are
// built on.
package readability

import (
	_ "embed"
	"math"
	"strings"
	"sync"

	"github.com/jdkato/prose/summarize"
	"gonum.org/v1/gonum/floats/scalar"
)

// Scores holds every index computed for one text.
type Scores struct {
	SMOGIndex         float64 `json:"smog_index"`
	FleschReadingEase float64 `json:"flesch_reading_ease"`
	GunningFog        float64 `json:"gunning_fog"`
	LexiconCount      int     `json:"lexicon_count"`
	DifficultWords    int     `json:"difficult_words"`
}

//go:embed easy_words.txt
var easyWordsRaw string

var (
	easyOnce  sync.Once
	easyWords map[string]struct{}
)

func isEasy(word string) bool {
	easyOnce.Do(func() {
		easyWords = make(map[string]struct{})
		for _, w := range strings.Fields(easyWordsRaw) {
			easyWords[w] = struct{}{}
		}
	})
	_, ok := easyWords[word]
	return ok
}

// LexiconCount returns the number of words once punctuation is removed.
func LexiconCount(text string) int {
	return len(Words(text))
}

// DifficultWords counts distinct words of two or more syllables that are not
// on the familiar word list.
func DifficultWords(text string) int {
	seen := make(map[string]struct{})
	for _, w := range Words(text) {
		f := fold(w)
		if f == "" || isEasy(f) || summarize.Syllables(f) < 2 {
			continue
		}
		seen[f] = struct{}{}
	}
	return len(seen)
}

// Analyze computes all indices of text. Sentence, word and syllable counts
// and the three grade formulas come from prose's summarize package; SMOG is
// left at zero below three sentences, where the formula is not defined. An
// empty text yields zero scores.
func Analyze(text string) Scores {
	words := Words(text)
	if len(words) == 0 {
		return Scores{}
	}

	doc := summarize.NewDocument(text)
	sc := Scores{
		FleschReadingEase: round2(doc.FleschReadingEase()),
		GunningFog:        round2(doc.GunningFog()),
		LexiconCount:      len(words),
		DifficultWords:    DifficultWords(text),
	}
	if doc.NumSentences >= 3 {
		sc.SMOGIndex = round2(doc.SMOG())
	}
	return sc
}

func SMOGIndex(text string) float64         { return Analyze(text).SMOGIndex }
func FleschReadingEase(text string) float64 { return Analyze(text).FleschReadingEase }
func GunningFog(text string) float64        { return Analyze(text).GunningFog }

// round2 rounds to two decimals; undefined results read as zero.
func round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return scalar.Round(v, 2)
}
