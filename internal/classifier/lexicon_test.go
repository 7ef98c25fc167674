package classifier

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindmate/mindmate/internal/domain"
)

func TestLexicon_LabelsAndScoresAreValid(t *testing.T) {
	clf := NewLexicon()
	ctx := context.Background()

	texts := []string{
		"I feel great today",
		"I am so sad and lonely",
		"this made me furious",
		"I'm scared about tomorrow",
		"what a gross situation",
		"wow, that was unexpected",
		"went to the store and bought bread",
	}

	for _, text := range texts {
		result, err := clf.Classify(ctx, text)
		require.NoError(t, err, text)
		assert.True(t, domain.ValidSentiment(result.Sentiment.Label), text)
		assert.True(t, domain.ValidEmotion(result.Emotion.Label), text)
		assert.GreaterOrEqual(t, result.Sentiment.Score, 0.0)
		assert.LessOrEqual(t, result.Sentiment.Score, 1.0)
		assert.GreaterOrEqual(t, result.Emotion.Score, 0.0)
		assert.LessOrEqual(t, result.Emotion.Score, 1.0)
	}
}

func TestLexicon_KeywordsDriveTheLabel(t *testing.T) {
	clf := NewLexicon()
	ctx := context.Background()

	cases := []struct {
		text      string
		emotion   string
		sentiment string
	}{
		{"I feel great today", domain.EmotionJoy, domain.SentimentPositive},
		{"I cried all night, so sad", domain.EmotionSadness, domain.SentimentNegative},
		{"absolutely furious and mad", domain.EmotionAnger, domain.SentimentNegative},
		{"anxious and worried about it", domain.EmotionFear, domain.SentimentNegative},
		{"nothing much happened", domain.EmotionNeutral, domain.SentimentNeutral},
	}

	for _, tc := range cases {
		result, err := clf.Classify(ctx, tc.text)
		require.NoError(t, err, tc.text)
		assert.Equal(t, tc.emotion, result.Emotion.Label, tc.text)
		assert.Equal(t, tc.sentiment, result.Sentiment.Label, tc.text)
	}
}

func TestLexicon_Deterministic(t *testing.T) {
	clf := NewLexicon()
	ctx := context.Background()

	first, err := clf.Classify(ctx, "happy but also worried")
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := clf.Classify(ctx, "happy but also worried")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
