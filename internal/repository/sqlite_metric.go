package repository

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/alexanderramin/deepwork/internal/db"
	"github.com/alexanderramin/deepwork/internal/domain"
	"github.com/google/uuid"
)

// SQLiteMetricRepo implements MetricRepo using a SQLite database.
// The completion rate is sampled uniformly in [0.85, 0.95) per call,
// standing in for the externally-computed rate of the real metric service.
type SQLiteMetricRepo struct {
	db   db.DBTX
	rand *rand.Rand
}

// NewSQLiteMetricRepo creates a new SQLiteMetricRepo.
// A nil source uses the default shared source.
func NewSQLiteMetricRepo(conn db.DBTX, src rand.Source) *SQLiteMetricRepo {
	r := &SQLiteMetricRepo{db: conn}
	if src != nil {
		r.rand = rand.New(src)
	}
	return r
}

// LogPerformance inserts a metric row and returns the sampled completion rate.
func (r *SQLiteMetricRepo) LogPerformance(ctx context.Context, userID string, skill domain.MicroSkill, success bool) (*domain.MetricResult, error) {
	rate := 0.85 + 0.10*r.float64()

	query := `INSERT INTO performance_metrics (id, user_id, skill_id, success, completion_rate, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		"metric_"+uuid.New().String(), userID, skill.ID, boolToInt(success), rate, nowUTC())
	if err != nil {
		return nil, fmt.Errorf("logging performance metric: %w", err)
	}

	return &domain.MetricResult{Status: "logged", CompletionRate: rate}, nil
}

func (r *SQLiteMetricRepo) float64() float64 {
	if r.rand != nil {
		return r.rand.Float64()
	}
	return rand.Float64()
}
