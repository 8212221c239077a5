package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/deepwork/internal/db"
	"github.com/alexanderramin/deepwork/internal/domain"
	"github.com/google/uuid"
)

// SQLiteJournalRepo implements JournalRepo using a SQLite database.
type SQLiteJournalRepo struct {
	db db.DBTX
}

// NewSQLiteJournalRepo creates a new SQLiteJournalRepo.
func NewSQLiteJournalRepo(conn db.DBTX) *SQLiteJournalRepo {
	return &SQLiteJournalRepo{db: conn}
}

// SaveEntry upserts the user's tacit-context journal.
func (r *SQLiteJournalRepo) SaveEntry(ctx context.Context, userID, text string) (*domain.JournalEntry, error) {
	e := &domain.JournalEntry{
		ID:        "journal_" + uuid.New().String(),
		Text:      text,
		Timestamp: time.Now().UTC(),
	}

	query := `INSERT INTO journal_entries (user_id, id, text, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			id = excluded.id,
			text = excluded.text,
			created_at = excluded.created_at`
	_, err := r.db.ExecContext(ctx, query,
		userID, e.ID, e.Text, e.Timestamp.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("saving journal entry: %w", err)
	}
	return e, nil
}

// GetPrivate returns the user's journal entry, or ErrNotFound.
func (r *SQLiteJournalRepo) GetPrivate(ctx context.Context, userID string) (*domain.JournalEntry, error) {
	query := `SELECT id, text, created_at FROM journal_entries WHERE user_id = ?`
	row := r.db.QueryRowContext(ctx, query, userID)

	var e domain.JournalEntry
	var createdAt string
	if err := row.Scan(&e.ID, &e.Text, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("journal entry: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning journal entry: %w", err)
	}

	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing journal timestamp: %w", err)
	}
	e.Timestamp = t
	return &e, nil
}
