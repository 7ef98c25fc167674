package journal

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindmate/mindmate/internal/classifier"
	"github.com/mindmate/mindmate/internal/domain"
	"github.com/mindmate/mindmate/internal/logger"
)

// memStore is an in-memory Store for service tests.
type memStore struct {
	mu      sync.Mutex
	nextID  int64
	entries []domain.JournalEntry
}

func (m *memStore) Append(_ context.Context, e domain.JournalEntry) (domain.JournalEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	e.ID = m.nextID
	e.Timestamp = time.Now().UTC()
	m.entries = append(m.entries, e)
	return e, nil
}

func (m *memStore) ListAll(_ context.Context) ([]domain.JournalEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.JournalEntry, len(m.entries))
	copy(out, m.entries)
	return out, nil
}

func (m *memStore) GetByID(_ context.Context, id int64) (domain.JournalEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return domain.JournalEntry{}, domain.ErrNotFound
}

func (m *memStore) DeleteByID(_ context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, e := range m.entries {
		if e.ID == id {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// stubClassifier returns a fixed result or error.
type stubClassifier struct {
	result classifier.Result
	err    error
}

func (s stubClassifier) Classify(context.Context, string) (classifier.Result, error) {
	return s.result, s.err
}

func joyClassifier() stubClassifier {
	return stubClassifier{result: classifier.Result{
		Sentiment: domain.Score{Label: domain.SentimentPositive, Score: 0.88},
		Emotion:   domain.Score{Label: domain.EmotionJoy, Score: 0.92},
	}}
}

func newTestService(st Store, clf classifier.Classifier) *Service {
	return New(st, clf, 0, logger.Nop())
}

func TestSubmit_CreatesFullyPopulatedEntry(t *testing.T) {
	st := &memStore{}
	svc := newTestService(st, joyClassifier())

	entry, err := svc.Submit(context.Background(), "I feel great today")
	require.NoError(t, err)

	assert.Equal(t, int64(1), entry.ID)
	assert.Equal(t, "I feel great today", entry.Text)
	assert.True(t, domain.ValidSentiment(entry.Sentiment.Label))
	assert.True(t, domain.ValidEmotion(entry.Emotion.Label))
	assert.GreaterOrEqual(t, entry.Sentiment.Score, 0.0)
	assert.LessOrEqual(t, entry.Sentiment.Score, 1.0)
	assert.GreaterOrEqual(t, entry.Emotion.Score, 0.0)
	assert.LessOrEqual(t, entry.Emotion.Score, 1.0)
	assert.NotEmpty(t, entry.Affirmation)
	assert.False(t, entry.Timestamp.IsZero())
}

func TestSubmit_TrimsAndRejectsEmptyText(t *testing.T) {
	st := &memStore{}
	svc := newTestService(st, joyClassifier())

	for _, text := range []string{"", "   ", "\n\t "} {
		_, err := svc.Submit(context.Background(), text)
		assert.ErrorIs(t, err, domain.ErrEmptyText)
	}

	all, err := st.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestSubmit_ClassifierFailurePersistsNothing(t *testing.T) {
	st := &memStore{}
	svc := newTestService(st, stubClassifier{err: errors.New("model unavailable")})

	_, err := svc.Submit(context.Background(), "some text")

	var clfErr *domain.ClassificationError
	require.ErrorAs(t, err, &clfErr)

	all, listErr := st.ListAll(context.Background())
	require.NoError(t, listErr)
	assert.Empty(t, all)
}

// slowClassifier blocks until the context is done.
type slowClassifier struct{}

func (slowClassifier) Classify(ctx context.Context, _ string) (classifier.Result, error) {
	<-ctx.Done()
	return classifier.Result{}, ctx.Err()
}

func TestSubmit_StalledClassificationIsBoundedByTimeout(t *testing.T) {
	st := &memStore{}
	svc := New(st, slowClassifier{}, 10*time.Millisecond, logger.Nop())

	_, err := svc.Submit(context.Background(), "some text")

	var clfErr *domain.ClassificationError
	require.ErrorAs(t, err, &clfErr)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	all, listErr := st.ListAll(context.Background())
	require.NoError(t, listErr)
	assert.Empty(t, all)
}

func TestDelete_RemovesExactlyThatEntry(t *testing.T) {
	st := &memStore{}
	svc := newTestService(st, joyClassifier())
	ctx := context.Background()

	first, err := svc.Submit(ctx, "first")
	require.NoError(t, err)
	second, err := svc.Submit(ctx, "second")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, first.ID))

	entries, err := svc.History(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, second.ID, entries[0].ID)
	assert.Equal(t, "second", entries[0].Text)

	// Second delete reports not-found.
	assert.ErrorIs(t, svc.Delete(ctx, first.ID), domain.ErrNotFound)
}

func TestJournalLifecycle(t *testing.T) {
	st := &memStore{}
	svc := newTestService(st, joyClassifier())
	ctx := context.Background()

	entry, err := svc.Submit(ctx, "I feel great today")
	require.NoError(t, err)
	assert.Equal(t, domain.EmotionJoy, entry.Emotion.Label)
	assert.Equal(t, domain.SentimentPositive, entry.Sentiment.Label)

	ins, err := svc.Insights(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, ins.EmotionCounts[domain.EmotionJoy])

	entries, err := svc.History(ctx, Filter{Emotion: domain.EmotionJoy})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entry.ID, entries[0].ID)

	require.NoError(t, svc.Delete(ctx, entry.ID))

	entries, err = svc.History(ctx, Filter{})
	require.NoError(t, err)
	assert.Empty(t, entries)

	ins, err = svc.Insights(ctx)
	require.NoError(t, err)
	assert.Empty(t, ins.EmotionCounts)
	assert.Empty(t, ins.Timeline)
}
