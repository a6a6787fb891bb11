package readability

import (
	"testing"

	"github.com/jdkato/prose/summarize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	plainText = "The cat sat on the mat. The dog ran to the park. We all went home together."
	denseText = "Constitutional governments necessarily institutionalize deliberative representation. " +
		"Administrative accountability presupposes transparent legislative communication. " +
		"Intergovernmental cooperation facilitates economic modernization internationally."
)

func TestWordsStripPunctuation(t *testing.T) {
	assert.Equal(t, []string{"We", "dont", "stop", "now"}, Words("We don't -- stop, now!"))
	assert.Empty(t, Words("  \t "))
}

func TestLexiconCount(t *testing.T) {
	assert.Equal(t, 3, LexiconCount("The cat sat."))
	assert.Equal(t, 0, LexiconCount(""))
}

func TestFold(t *testing.T) {
	assert.Equal(t, "election", fold("Élection,"))
	assert.Equal(t, "dont", fold("Don't"))
}

func TestDifficultWords(t *testing.T) {
	text := "The government considered extraordinary legislation. The government did agree."
	// agree is familiar, government counts once
	assert.Equal(t, 4, DifficultWords(text))
	assert.Zero(t, DifficultWords(plainText))
}

func TestAnalyzeMatchesSummarize(t *testing.T) {
	sc := Analyze(plainText)
	doc := summarize.NewDocument(plainText)
	require.GreaterOrEqual(t, doc.NumSentences, 3.0)

	assert.Equal(t, 17, sc.LexiconCount)
	assert.Equal(t, 0, sc.DifficultWords)
	assert.InDelta(t, doc.FleschReadingEase(), sc.FleschReadingEase, 0.005)
	assert.InDelta(t, doc.GunningFog(), sc.GunningFog, 0.005)
	assert.InDelta(t, doc.SMOG(), sc.SMOGIndex, 0.005)

	assert.Equal(t, sc.SMOGIndex, SMOGIndex(plainText))
	assert.Equal(t, sc.FleschReadingEase, FleschReadingEase(plainText))
	assert.Equal(t, sc.GunningFog, GunningFog(plainText))
}

func TestAnalyzeOrdersTexts(t *testing.T) {
	plain, dense := Analyze(plainText), Analyze(denseText)

	assert.Greater(t, plain.FleschReadingEase, dense.FleschReadingEase)
	assert.Less(t, plain.GunningFog, dense.GunningFog)
	assert.Less(t, plain.SMOGIndex, dense.SMOGIndex)
	assert.Greater(t, dense.DifficultWords, 10)
}

func TestAnalyzeShortTextHasNoSMOG(t *testing.T) {
	sc := Analyze("Four score and seven years ago our fathers brought forth a new nation.")
	assert.Zero(t, sc.SMOGIndex)
	assert.NotZero(t, sc.FleschReadingEase)
}

func TestAnalyzeEmpty(t *testing.T) {
	assert.Equal(t, Scores{}, Analyze(""))
	assert.Equal(t, Scores{}, Analyze(" ... "))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 4.62, round2(4.6183))
	assert.Zero(t, round2(0.0/zero()))
}

func zero() float64 { return 0 }
