package domain

import "time"

// Score pairs a classification label with the classifier's confidence in [0,1].
type Score struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// JournalEntry represents one stored journal submission with its
// classification results. Entries are immutable once appended.
type JournalEntry struct {
	ID          int64     `json:"id"`
	Text        string    `json:"text"`
	Sentiment   Score     `json:"sentiment"`
	Emotion     Score     `json:"emotion"`
	Affirmation string    `json:"affirmation"`
	Timestamp   time.Time `json:"timestamp"`
}

// Sentiment labels form a closed vocabulary.
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// Emotion labels form a closed vocabulary matching the emotion model's
// output classes.
const (
	EmotionAnger    = "anger"
	EmotionDisgust  = "disgust"
	EmotionFear     = "fear"
	EmotionJoy      = "joy"
	EmotionNeutral  = "neutral"
	EmotionSadness  = "sadness"
	EmotionSurprise = "surprise"
)

var validSentiments = map[string]bool{
	SentimentPositive: true,
	SentimentNegative: true,
	SentimentNeutral:  true,
}

var validEmotions = map[string]bool{
	EmotionAnger:    true,
	EmotionDisgust:  true,
	EmotionFear:     true,
	EmotionJoy:      true,
	EmotionNeutral:  true,
	EmotionSadness:  true,
	EmotionSurprise: true,
}

// ValidSentiment reports whether label is a member of the sentiment vocabulary.
func ValidSentiment(label string) bool {
	return validSentiments[label]
}

// ValidEmotion reports whether label is a member of the emotion vocabulary.
func ValidEmotion(label string) bool {
	return validEmotions[label]
}

// Emotions returns the emotion vocabulary in a stable order.
func Emotions() []string {
	return []string{
		EmotionAnger,
		EmotionDisgust,
		EmotionFear,
		EmotionJoy,
		EmotionNeutral,
		EmotionSadness,
		EmotionSurprise,
	}
}

// Sentiments returns the sentiment vocabulary in a stable order.
func Sentiments() []string {
	return []string{SentimentPositive, SentimentNegative, SentimentNeutral}
}
