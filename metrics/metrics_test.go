package metrics

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/speech-analytics/speechcharts/readability"
	"github.com/speech-analytics/speechcharts/sentiment"
)

func TestLexicalVariety(t *testing.T) {
	tests := []struct {
		text string
		want float64
	}{
		{"a a b", 200.0 / 3},
		{"a b c", 100},
		{"a\ta\n a   a", 25},
		{"The the", 100}, // case-sensitive
	}
	for _, tt := range tests {
		got, err := LexicalVariety(tt.text)
		require.NoError(t, err)
		assert.InDelta(t, tt.want, got, 1e-9, tt.text)
	}
}

func TestLexicalVarietyEmpty(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := LexicalVariety(text)
		assert.ErrorIs(t, err, ErrEmptyDocument)
	}
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "SMOG_index.png", Definition{Name: "SMOG index"}.FileName())
	assert.Equal(t, "Number_of_words.png", Definition{Name: "Number of words"}.FileName())
	assert.Equal(t, "Polarity.png", Definition{Name: "Polarity"}.FileName())
}

type fakeSentiment struct{ err error }

func (f fakeSentiment) Sentiment(context.Context, string) (sentiment.Scores, error) {
	return sentiment.Scores{Polarity: -0.25, Subjectivity: 0.75}, f.err
}

type fakeReadability struct{}

func (fakeReadability) Readability(context.Context, string) (readability.Scores, error) {
	return readability.Scores{
		SMOGIndex:         1,
		FleschReadingEase: 2,
		GunningFog:        3,
		LexiconCount:      4,
		DifficultWords:    5,
	}, nil
}

func TestResolve(t *testing.T) {
	p := Providers{Sentiment: fakeSentiment{}, Readability: fakeReadability{}}
	want := map[string]float64{
		KindPolarity:          -0.25,
		KindSubjectivity:      0.75,
		KindSMOGIndex:         1,
		KindFleschReadingEase: 2,
		KindGunningFog:        3,
		KindLexiconCount:      4,
		KindDifficultWords:    5,
		KindLexicalVariety:    100,
	}
	require.Len(t, Kinds(), len(want))

	for _, kind := range Kinds() {
		fn, err := p.Resolve(kind)
		require.NoError(t, err, kind)
		got, err := fn(context.Background(), "a b c")
		require.NoError(t, err, kind)
		assert.Equal(t, want[kind], got, kind)
		assert.NotEmpty(t, Describe(kind))
	}
}

func TestResolveErrors(t *testing.T) {
	_, err := Builtin().Resolve("sarcasm")
	assert.Error(t, err)

	_, err = Providers{}.Resolve(KindPolarity)
	assert.Error(t, err)
	_, err = Providers{}.Resolve(KindGunningFog)
	assert.Error(t, err)

	// lexical variety needs no provider
	_, err = Providers{}.Resolve(KindLexicalVariety)
	assert.NoError(t, err)
}

func TestProviderErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	fn, err := Providers{Sentiment: fakeSentiment{err: boom}}.Resolve(KindPolarity)
	require.NoError(t, err)
	_, err = fn(context.Background(), "x")
	assert.ErrorIs(t, err, boom)
}

func TestBuiltinProviders(t *testing.T) {
	fn, err := Builtin().Resolve(KindLexiconCount)
	require.NoError(t, err)
	n, err := fn(context.Background(), "The cat sat.")
	require.NoError(t, err)
	assert.Equal(t, 3.0, n)

	fn, err = Builtin().Resolve(KindPolarity)
	require.NoError(t, err)
	p, err := fn(context.Background(), "a good day")
	require.NoError(t, err)
	assert.Greater(t, p, 0.0)
}
