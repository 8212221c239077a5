package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/deepwork/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// GoalRepo persists the current big-rock goal per user.
type GoalRepo interface {
	SaveGoal(ctx context.Context, userID, text string) (*domain.Goal, error)
}

// JournalRepo persists the private tacit-context journal per user.
type JournalRepo interface {
	SaveEntry(ctx context.Context, userID, text string) (*domain.JournalEntry, error)
	GetPrivate(ctx context.Context, userID string) (*domain.JournalEntry, error)
}

// MetricRepo logs skill-application outcomes. The returned completion rate
// is sampled by the store and is opaque to callers.
type MetricRepo interface {
	LogPerformance(ctx context.Context, userID string, skill domain.MicroSkill, success bool) (*domain.MetricResult, error)
}
