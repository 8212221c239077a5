package scoring

import (
	"strings"
	"testing"

	"github.com/alexanderramin/deepwork/internal/domain"
	"github.com/stretchr/testify/assert"
)

func tasksWithout(n int) []domain.Task {
	tasks := make([]domain.Task, n)
	for i := range tasks {
		tasks[i] = domain.Task{ID: "t", Text: "task"}
	}
	return tasks
}

func tasksWith(n int) []domain.Task {
	tasks := tasksWithout(n)
	tasks[0].BigRock = true
	return tasks
}

func TestFocusScore_NoBigRock(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 50},
		{1, 40},
		{4, 10},
		{5, 0},
		{6, 0},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, FocusScore(tasksWithout(tc.n)), "n=%d", tc.n)
	}
}

func TestFocusScore_WithBigRock(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{1, 100},
		{2, 90},
		{4, 70},
		{7, 40},
		{10, 10},
		{11, 0},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, FocusScore(tasksWith(tc.n)), "n=%d", tc.n)
	}
}

func TestLearningScore(t *testing.T) {
	assert.Equal(t, 0, LearningScore(nil))

	acts := []domain.LearningActivity{
		{ID: "a", Completed: true},
		{ID: "b"},
	}
	assert.Equal(t, 50, LearningScore(acts))

	acts = append(acts, domain.LearningActivity{ID: "c"})
	assert.Equal(t, 33, LearningScore(acts), "1/3 rounds to 33")
}

func TestContextFill(t *testing.T) {
	assert.Equal(t, 0, ContextFill(""))
	assert.Equal(t, 5, ContextFill(strings.Repeat("x", 25)))
	assert.Equal(t, 100, ContextFill(strings.Repeat("x", 500)))
	assert.Equal(t, 100, ContextFill(strings.Repeat("x", 1000)), "clamped above target")
}

func TestContextFill_CountsRunesNotBytes(t *testing.T) {
	assert.Equal(t, 5, ContextFill(strings.Repeat("é", 25)))
	assert.Equal(t, ContextFill(strings.Repeat("x", 25)), ContextFill(strings.Repeat("世", 25)))
}

func TestScoreBand(t *testing.T) {
	assert.Equal(t, BandGood, ScoreBand(100))
	assert.Equal(t, BandGood, ScoreBand(81))
	assert.Equal(t, BandMedium, ScoreBand(80), "boundary is exclusive")
	assert.Equal(t, BandMedium, ScoreBand(51))
	assert.Equal(t, BandLow, ScoreBand(50), "boundary is exclusive")
	assert.Equal(t, BandLow, ScoreBand(0))
}
