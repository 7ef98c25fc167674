package classifier

import (
	"context"
	"fmt"

	"github.com/mindmate/mindmate/internal/domain"
)

// Result holds both classification outputs for one piece of text.
type Result struct {
	Sentiment domain.Score
	Emotion   domain.Score
}

// Classifier turns raw journal text into a sentiment and a dominant
// emotion, each with a confidence in [0,1]. Implementations must be
// safe for concurrent use and must return labels from the closed
// vocabularies in the domain package. Classification may be slow
// (model inference); callers bound it with the context.
type Classifier interface {
	Classify(ctx context.Context, text string) (Result, error)
}

// validate checks a result against the closed vocabularies and score range.
func validate(r Result) error {
	if !domain.ValidSentiment(r.Sentiment.Label) {
		return fmt.Errorf("sentiment %q: %w", r.Sentiment.Label, domain.ErrUnknownLabel)
	}
	if !domain.ValidEmotion(r.Emotion.Label) {
		return fmt.Errorf("emotion %q: %w", r.Emotion.Label, domain.ErrUnknownLabel)
	}
	if r.Sentiment.Score < 0 || r.Sentiment.Score > 1 || r.Emotion.Score < 0 || r.Emotion.Score > 1 {
		return fmt.Errorf("confidence out of range: sentiment=%f emotion=%f", r.Sentiment.Score, r.Emotion.Score)
	}
	return nil
}
