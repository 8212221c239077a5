package repository

import (
	"context"
	"math/rand"
	"testing"

	"github.com/alexanderramin/deepwork/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricRepo_LogPerformance(t *testing.T) {
	conn := setupDB(t)
	repo := NewSQLiteMetricRepo(conn, rand.NewSource(1))
	ctx := context.Background()

	res, err := repo.LogPerformance(ctx, "pm_abc", domain.SkillPlayingToWin, true)
	require.NoError(t, err)
	assert.Equal(t, "logged", res.Status)
	assert.GreaterOrEqual(t, res.CompletionRate, 0.85)
	assert.Less(t, res.CompletionRate, 0.95)

	var count int
	row := conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM performance_metrics WHERE skill_id = ?`,
		domain.SkillPlayingToWin.ID)
	require.NoError(t, row.Scan(&count))
	assert.Equal(t, 1, count)
}

func TestMetricRepo_RateAlwaysInRange(t *testing.T) {
	conn := setupDB(t)
	repo := NewSQLiteMetricRepo(conn, rand.NewSource(42))
	ctx := context.Background()

	for i := 0; i < 50; i++ {
		res, err := repo.LogPerformance(ctx, "pm_abc", domain.SkillMarketSizing, true)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, res.CompletionRate, 0.85)
		assert.Less(t, res.CompletionRate, 0.95)
	}
}
