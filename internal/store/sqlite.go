package store

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/mindmate/mindmate/internal/domain"
)

//go:embed schema.sql
var schema string

// Store persists journal entries in SQLite. AUTOINCREMENT ids are
// strictly increasing and never reused, even after deletes. Structural
// mutations are serialized through mu; reads need no locking because
// entries are immutable once appended.
type Store struct {
	mu sync.Mutex
	db *sql.DB
}

// New opens (or creates) the database at dbPath and initializes the schema.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Append assigns the next id and the creation timestamp, stores the
// entry, and returns it fully populated. The timestamp is assigned
// under the mutation lock so creation order matches chronological order.
func (s *Store) Append(ctx context.Context, entry domain.JournalEntry) (domain.JournalEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry.Timestamp = time.Now().UTC()

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO journal_entries
		(text, sentiment_label, sentiment_score, emotion_label, emotion_score, affirmation, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.Text,
		entry.Sentiment.Label, entry.Sentiment.Score,
		entry.Emotion.Label, entry.Emotion.Score,
		entry.Affirmation,
		entry.Timestamp,
	)
	if err != nil {
		return domain.JournalEntry{}, fmt.Errorf("insert entry: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.JournalEntry{}, fmt.Errorf("entry id: %w", err)
	}
	entry.ID = id

	return entry, nil
}

// ListAll returns every entry in insertion order.
func (s *Store) ListAll(ctx context.Context) ([]domain.JournalEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, text, sentiment_label, sentiment_score, emotion_label, emotion_score, affirmation, created_at
		FROM journal_entries ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.JournalEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	return entries, nil
}

// GetByID retrieves a single entry, returning domain.ErrNotFound when
// no entry has that id.
func (s *Store) GetByID(ctx context.Context, id int64) (domain.JournalEntry, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, text, sentiment_label, sentiment_score, emotion_label, emotion_score, affirmation, created_at
		FROM journal_entries WHERE id = ?`, id)

	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.JournalEntry{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.JournalEntry{}, err
	}

	return e, nil
}

// DeleteByID removes an entry permanently and reports whether it
// existed. Deleting an unknown id is not an error.
func (s *Store) DeleteByID(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `DELETE FROM journal_entries WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete entry: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete entry: %w", err)
	}

	return n > 0, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(s scanner) (domain.JournalEntry, error) {
	var e domain.JournalEntry
	err := s.Scan(
		&e.ID,
		&e.Text,
		&e.Sentiment.Label, &e.Sentiment.Score,
		&e.Emotion.Label, &e.Emotion.Score,
		&e.Affirmation,
		&e.Timestamp,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.JournalEntry{}, err
		}
		return domain.JournalEntry{}, fmt.Errorf("scan entry: %w", err)
	}
	return e, nil
}
