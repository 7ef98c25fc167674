package journal

import (
	"fmt"
	"sort"

	"github.com/mindmate/mindmate/internal/domain"
)

// TimelinePoint is one day's entry count.
type TimelinePoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// Insights summarizes the full entry set: sparse per-label counts and a
// per-day timeline sorted ascending by date.
type Insights struct {
	EmotionCounts   map[string]int  `json:"emotion_counts"`
	SentimentCounts map[string]int  `json:"sentiment_counts"`
	Timeline        []TimelinePoint `json:"timeline"`
}

// Aggregate computes insights over entries. Labels outside the closed
// vocabularies indicate corrupt data and fail the aggregation rather
// than being dropped.
func Aggregate(entries []domain.JournalEntry) (Insights, error) {
	ins := Insights{
		EmotionCounts:   make(map[string]int),
		SentimentCounts: make(map[string]int),
		Timeline:        []TimelinePoint{},
	}

	perDay := make(map[string]int)
	for _, e := range entries {
		if !domain.ValidEmotion(e.Emotion.Label) {
			return Insights{}, fmt.Errorf("entry %d emotion %q: %w", e.ID, e.Emotion.Label, domain.ErrUnknownLabel)
		}
		if !domain.ValidSentiment(e.Sentiment.Label) {
			return Insights{}, fmt.Errorf("entry %d sentiment %q: %w", e.ID, e.Sentiment.Label, domain.ErrUnknownLabel)
		}
		ins.EmotionCounts[e.Emotion.Label]++
		ins.SentimentCounts[e.Sentiment.Label]++
		perDay[e.Timestamp.UTC().Format(dateLayout)]++
	}

	for date, count := range perDay {
		ins.Timeline = append(ins.Timeline, TimelinePoint{Date: date, Count: count})
	}
	// ISO dates sort lexicographically in chronological order.
	sort.Slice(ins.Timeline, func(i, j int) bool {
		return ins.Timeline[i].Date < ins.Timeline[j].Date
	})

	return ins, nil
}
