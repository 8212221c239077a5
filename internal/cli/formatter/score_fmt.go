package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/deepwork/internal/scoring"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderScoreBar renders a score bar like [████░░░░] 70, colored by the
// score's display band.
func RenderScoreBar(score, width int) string {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	if width < 2 {
		width = 2
	}

	filled := score * width / 100
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := BandStyle(scoring.ScoreBand(score))
	return fmt.Sprintf("[%s] %d", style.Render(bar), score)
}

// ScoreSummary renders the three header metrics on one line.
func ScoreSummary(focus, learning, contextFill int) string {
	return strings.Join([]string{
		Dim("Focus ") + RenderScoreBar(focus, 6),
		Dim("Learning ") + RenderScoreBar(learning, 6),
		Dim("Context ") + RenderScoreBar(contextFill, 6),
	}, Dim("  │  "))
}
