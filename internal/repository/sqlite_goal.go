package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/deepwork/internal/db"
	"github.com/alexanderramin/deepwork/internal/domain"
	"github.com/google/uuid"
)

// SQLiteGoalRepo implements GoalRepo using a SQLite database.
type SQLiteGoalRepo struct {
	db db.DBTX
}

// NewSQLiteGoalRepo creates a new SQLiteGoalRepo.
func NewSQLiteGoalRepo(conn db.DBTX) *SQLiteGoalRepo {
	return &SQLiteGoalRepo{db: conn}
}

// SaveGoal upserts the user's current goal. Each user holds exactly one
// current goal; locking a new plan replaces the previous record.
func (r *SQLiteGoalRepo) SaveGoal(ctx context.Context, userID, text string) (*domain.Goal, error) {
	g := &domain.Goal{
		ID:     "goal_" + uuid.New().String(),
		Text:   text,
		Status: domain.GoalInProgress,
	}

	query := `INSERT INTO goals (user_id, id, text, status, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			id = excluded.id,
			text = excluded.text,
			status = excluded.status,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query, userID, g.ID, g.Text, string(g.Status), nowUTC())
	if err != nil {
		return nil, fmt.Errorf("saving goal: %w", err)
	}
	return g, nil
}
