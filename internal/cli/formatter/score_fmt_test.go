package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderScoreBar_Fill(t *testing.T) {
	tests := []struct {
		name   string
		score  int
		width  int
		filled int
	}{
		{"empty", 0, 6, 0},
		{"half", 50, 6, 3},
		{"full", 100, 6, 6},
		{"clamped high", 140, 6, 6},
		{"clamped low", -10, 6, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := RenderScoreBar(tt.score, tt.width)
			assert.Equal(t, tt.filled, strings.Count(out, filledBlock))
			assert.Equal(t, tt.width-tt.filled, strings.Count(out, emptyBlock))
		})
	}
}

func TestScoreSummary_ContainsAllThreeMetrics(t *testing.T) {
	out := ScoreSummary(70, 0, 42)
	assert.Contains(t, out, "Focus")
	assert.Contains(t, out, "Learning")
	assert.Contains(t, out, "Context")
	assert.Contains(t, out, "70")
	assert.Contains(t, out, "42")
}
