// Package journal implements the core pipeline: classify submitted
// text, store the resulting entry, and serve filtered history and
// aggregate insights over the stored set.
package journal

import (
	"context"
	"strings"
	"time"

	"github.com/mindmate/mindmate/internal/affirmation"
	"github.com/mindmate/mindmate/internal/classifier"
	"github.com/mindmate/mindmate/internal/domain"
	"github.com/mindmate/mindmate/internal/logger"
)

// Store is the persistence seam the service depends on.
type Store interface {
	Append(ctx context.Context, entry domain.JournalEntry) (domain.JournalEntry, error)
	ListAll(ctx context.Context) ([]domain.JournalEntry, error)
	GetByID(ctx context.Context, id int64) (domain.JournalEntry, error)
	DeleteByID(ctx context.Context, id int64) (bool, error)
}

// Service orchestrates the classifier, affirmation selection, and the
// entry store into the externally observable operations.
type Service struct {
	store   Store
	clf     classifier.Classifier
	timeout time.Duration
	log     *logger.Logger
}

// New wires a Service. timeout bounds a single classification call;
// zero disables the bound.
func New(store Store, clf classifier.Classifier, timeout time.Duration, log *logger.Logger) *Service {
	return &Service{store: store, clf: clf, timeout: timeout, log: log}
}

// Submit validates text, classifies it, and appends a fully populated
// entry. Nothing is persisted when classification fails. The slow
// classification step runs before the short, lock-protected append.
func (s *Service) Submit(ctx context.Context, text string) (domain.JournalEntry, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.JournalEntry{}, domain.ErrEmptyText
	}

	clfCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		clfCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	result, err := s.clf.Classify(clfCtx, text)
	if err != nil {
		return domain.JournalEntry{}, domain.NewClassificationError(err)
	}

	msg, err := affirmation.Select(result.Emotion.Label)
	if err != nil {
		return domain.JournalEntry{}, domain.NewClassificationError(err)
	}

	entry, err := s.store.Append(ctx, domain.JournalEntry{
		Text:        text,
		Sentiment:   result.Sentiment,
		Emotion:     result.Emotion,
		Affirmation: msg,
	})
	if err != nil {
		return domain.JournalEntry{}, err
	}

	s.log.Info("entry created",
		"id", entry.ID,
		"sentiment", entry.Sentiment.Label,
		"emotion", entry.Emotion.Label,
	)

	return entry, nil
}

// History returns stored entries filtered per f, newest first.
func (s *Service) History(ctx context.Context, f Filter) ([]domain.JournalEntry, error) {
	entries, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return Query(entries, f), nil
}

// Get retrieves a single entry by id.
func (s *Service) Get(ctx context.Context, id int64) (domain.JournalEntry, error) {
	return s.store.GetByID(ctx, id)
}

// Delete removes an entry permanently. An unknown id returns
// domain.ErrNotFound; the store is left untouched either way.
func (s *Service) Delete(ctx context.Context, id int64) error {
	existed, err := s.store.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if !existed {
		return domain.ErrNotFound
	}
	s.log.Info("entry deleted", "id", id)
	return nil
}

// Insights aggregates the full current store.
func (s *Service) Insights(ctx context.Context) (Insights, error) {
	entries, err := s.store.ListAll(ctx)
	if err != nil {
		return Insights{}, err
	}
	return Aggregate(entries)
}
