package metrics

import (
	"context"

	"github.com/speech-analytics/speechcharts/clients"
	"github.com/speech-analytics/speechcharts/readability"
	"github.com/speech-analytics/speechcharts/sentiment"
)

// SentimentAnalyzer scores the polarity and subjectivity of a text.
type SentimentAnalyzer interface {
	Sentiment(ctx context.Context, text string) (sentiment.Scores, error)
}

// ReadabilityScorer computes the readability indices of a text.
type ReadabilityScorer interface {
	Readability(ctx context.Context, text string) (readability.Scores, error)
}

// BuiltinSentiment runs the in-process VADER analyzer.
type BuiltinSentiment struct{}

func (BuiltinSentiment) Sentiment(_ context.Context, text string) (sentiment.Scores, error) {
	return sentiment.Analyze(text), nil
}

// BuiltinReadability runs the in-process prose readability formulas.
type BuiltinReadability struct{}

func (BuiltinReadability) Readability(_ context.Context, text string) (readability.Scores, error) {
	return readability.Analyze(text), nil
}

// ServiceSentiment asks a sentiment service over HTTP.
type ServiceSentiment struct {
	HTTP *clients.HTTP
	URL  string
}

func (s ServiceSentiment) Sentiment(ctx context.Context, text string) (sentiment.Scores, error) {
	resp, err := s.HTTP.Sentiment(ctx, s.URL, text)
	if err != nil {
		return sentiment.Scores{}, err
	}
	return sentiment.Scores{Polarity: resp.Polarity, Subjectivity: resp.Subjectivity}, nil
}

// ServiceReadability asks a readability service over HTTP.
type ServiceReadability struct {
	HTTP *clients.HTTP
	URL  string
}

func (s ServiceReadability) Readability(ctx context.Context, text string) (readability.Scores, error) {
	resp, err := s.HTTP.Readability(ctx, s.URL, text)
	if err != nil {
		return readability.Scores{}, err
	}
	return readability.Scores{
		SMOGIndex:         resp.SMOGIndex,
		FleschReadingEase: resp.FleschReadingEase,
		GunningFog:        resp.GunningFog,
		LexiconCount:      resp.LexiconCount,
		DifficultWords:    resp.DifficultWords,
	}, nil
}
