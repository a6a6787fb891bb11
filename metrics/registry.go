package metrics

import (
	"context"
	"fmt"
	"sort"

	"github.com/speech-analytics/speechcharts/readability"
	"github.com/speech-analytics/speechcharts/sentiment"
)

// Metric kinds understood by the registry.
const (
	KindPolarity          = "polarity"
	KindSubjectivity      = "subjectivity"
	KindSMOGIndex         = "smog_index"
	KindFleschReadingEase = "flesch_reading_ease"
	KindGunningFog        = "gunning_fog"
	KindLexiconCount      = "lexicon_count"
	KindDifficultWords    = "difficult_words"
	KindLexicalVariety    = "lexical_variety"
)

var kindDescriptions = map[string]string{
	KindPolarity:          "sentiment polarity, -1 negative to 1 positive",
	KindSubjectivity:      "sentiment subjectivity, 0 objective to 1 subjective",
	KindSMOGIndex:         "SMOG readability grade",
	KindFleschReadingEase: "Flesch reading ease score",
	KindGunningFog:        "Gunning fog grade",
	KindLexiconCount:      "number of words",
	KindDifficultWords:    "number of distinct difficult words",
	KindLexicalVariety:    "type-token ratio as a percentage",
}

// Kinds lists every known metric kind in alphabetical order.
func Kinds() []string {
	out := make([]string, 0, len(kindDescriptions))
	for k := range kindDescriptions {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Describe returns a one-line description of kind, or "" if it is unknown.
func Describe(kind string) string { return kindDescriptions[kind] }

// Providers are the collaborators metric kinds are computed with.
type Providers struct {
	Sentiment   SentimentAnalyzer
	Readability ReadabilityScorer
}

// Builtin returns providers that need no external service.
func Builtin() Providers {
	return Providers{Sentiment: BuiltinSentiment{}, Readability: BuiltinReadability{}}
}

// Resolve returns the compute function of kind.
func (p Providers) Resolve(kind string) (ComputeFunc, error) {
	switch kind {
	case KindPolarity, KindSubjectivity:
		if p.Sentiment == nil {
			return nil, fmt.Errorf("metric kind %q needs a sentiment provider", kind)
		}
	case KindSMOGIndex, KindFleschReadingEase, KindGunningFog, KindLexiconCount, KindDifficultWords:
		if p.Readability == nil {
			return nil, fmt.Errorf("metric kind %q needs a readability provider", kind)
		}
	}

	sent := func(pick func(sentiment.Scores) float64) ComputeFunc {
		return func(ctx context.Context, text string) (float64, error) {
			sc, err := p.Sentiment.Sentiment(ctx, text)
			if err != nil {
				return 0, err
			}
			return pick(sc), nil
		}
	}
	read := func(pick func(readability.Scores) float64) ComputeFunc {
		return func(ctx context.Context, text string) (float64, error) {
			sc, err := p.Readability.Readability(ctx, text)
			if err != nil {
				return 0, err
			}
			return pick(sc), nil
		}
	}

	switch kind {
	case KindPolarity:
		return sent(func(s sentiment.Scores) float64 { return s.Polarity }), nil
	case KindSubjectivity:
		return sent(func(s sentiment.Scores) float64 { return s.Subjectivity }), nil
	case KindSMOGIndex:
		return read(func(r readability.Scores) float64 { return r.SMOGIndex }), nil
	case KindFleschReadingEase:
		return read(func(r readability.Scores) float64 { return r.FleschReadingEase }), nil
	case KindGunningFog:
		return read(func(r readability.Scores) float64 { return r.GunningFog }), nil
	case KindLexiconCount:
		return read(func(r readability.Scores) float64 { return float64(r.LexiconCount) }), nil
	case KindDifficultWords:
		return read(func(r readability.Scores) float64 { return float64(r.DifficultWords) }), nil
	case KindLexicalVariety:
		return func(_ context.Context, text string) (float64, error) {
			return LexicalVariety(text)
		}, nil
	}
	return nil, fmt.Errorf("unknown metric kind %q", kind)
}
