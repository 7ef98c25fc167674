// Package affirmation maps emotion labels to encouraging messages.
package affirmation

import (
	"fmt"

	"github.com/mindmate/mindmate/internal/domain"
)

// messages is total over the emotion vocabulary; a missing key is a
// programming error caught by tests.
var messages = map[string]string{
	domain.EmotionJoy:      "Hold onto this feeling — you earned it.",
	domain.EmotionSadness:  "It's okay to feel heavy today. Be gentle with yourself.",
	domain.EmotionAnger:    "Your feelings are valid. Take a breath; you are in control.",
	domain.EmotionFear:     "You have faced hard things before, and you will again.",
	domain.EmotionDisgust:  "You deserve surroundings that feel right. Trust your instincts.",
	domain.EmotionSurprise: "Life keeps you on your toes — you are handling it well.",
	domain.EmotionNeutral:  "We're here for you. You're not alone.",
}

// Select returns the affirmation for an emotion label. The label must
// come from the closed emotion vocabulary; anything else is an error.
func Select(emotionLabel string) (string, error) {
	msg, ok := messages[emotionLabel]
	if !ok {
		return "", fmt.Errorf("affirmation for %q: %w", emotionLabel, domain.ErrUnknownLabel)
	}
	return msg, nil
}
