package classifier

import (
	"context"
	"strings"
	"unicode"

	"github.com/mindmate/mindmate/internal/domain"
)

// emotionWords is a small keyword lexicon per emotion. Matching is
// whole-word on lowercased input.
var emotionWords = map[string][]string{
	domain.EmotionJoy:      {"happy", "great", "glad", "joy", "joyful", "love", "loved", "wonderful", "excited", "amazing", "grateful", "proud"},
	domain.EmotionSadness:  {"sad", "down", "unhappy", "lonely", "miserable", "cry", "cried", "crying", "grief", "hopeless", "lost"},
	domain.EmotionAnger:    {"angry", "mad", "furious", "annoyed", "irritated", "rage", "hate", "frustrated"},
	domain.EmotionFear:     {"afraid", "scared", "anxious", "worried", "nervous", "fear", "terrified", "panic"},
	domain.EmotionDisgust:  {"disgusted", "disgusting", "gross", "sick", "awful", "revolting"},
	domain.EmotionSurprise: {"surprised", "surprising", "shocked", "unexpected", "wow", "sudden"},
}

// emotionSentiment maps each emotion onto its sentiment polarity.
var emotionSentiment = map[string]string{
	domain.EmotionJoy:      domain.SentimentPositive,
	domain.EmotionSurprise: domain.SentimentPositive,
	domain.EmotionSadness:  domain.SentimentNegative,
	domain.EmotionAnger:    domain.SentimentNegative,
	domain.EmotionFear:     domain.SentimentNegative,
	domain.EmotionDisgust:  domain.SentimentNegative,
	domain.EmotionNeutral:  domain.SentimentNeutral,
}

// Lexicon is a deterministic keyword-based classifier. It needs no
// network access and exists for local development and as a stand-in
// when no model token is configured.
type Lexicon struct{}

// NewLexicon creates the keyword classifier.
func NewLexicon() *Lexicon {
	return &Lexicon{}
}

// Classify scores each emotion by keyword hits and returns the winner,
// falling back to neutral when nothing matches. Sentiment follows the
// winning emotion's polarity.
func (l *Lexicon) Classify(_ context.Context, text string) (Result, error) {
	words := tokenize(text)

	hits := make(map[string]int)
	for _, w := range words {
		for emotion, keywords := range emotionWords {
			for _, kw := range keywords {
				if w == kw {
					hits[emotion]++
				}
			}
		}
	}

	// Stable argmax: iterate the vocabulary in fixed order so ties are
	// deterministic.
	winner := domain.EmotionNeutral
	best := 0
	for _, emotion := range domain.Emotions() {
		if hits[emotion] > best {
			winner = emotion
			best = hits[emotion]
		}
	}

	score := 0.5 + 0.1*float64(best)
	if best == 0 {
		score = 0.6
	}
	if score > 0.95 {
		score = 0.95
	}

	result := Result{
		Sentiment: domain.Score{Label: emotionSentiment[winner], Score: score},
		Emotion:   domain.Score{Label: winner, Score: score},
	}
	if err := validate(result); err != nil {
		return Result{}, err
	}
	return result, nil
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}
