// Package scoring computes the three header metrics from current plan state.
// All functions are pure and recomputed on every state change; the formulas
// are fixed heuristics, not tunables.
package scoring

import (
	"math"
	"unicode/utf8"

	"github.com/alexanderramin/deepwork/internal/domain"
)

// journalTarget is the journal length (in characters) that counts as a
// fully-filled context meter.
const journalTarget = 500

// FocusScore measures the quality of the daily plan on a 0-100 scale.
// A plan without a big rock starts at 50 and loses 10 per task; a plan with
// one starts at 70 plus 10 for every task under four, clamped to [0, 100].
func FocusScore(tasks []domain.Task) int {
	n := len(tasks)
	hasBigRock := false
	for _, t := range tasks {
		if t.BigRock {
			hasBigRock = true
			break
		}
	}
	if !hasBigRock {
		return max(0, 50-10*n)
	}
	return clamp(70+10*(4-n), 0, 100)
}

// LearningScore is the percentage of learning activities completed,
// rounded to the nearest integer. An empty list scores zero.
func LearningScore(activities []domain.LearningActivity) int {
	total := len(activities)
	if total == 0 {
		return 0
	}
	completed := 0
	for _, a := range activities {
		if a.Completed {
			completed++
		}
	}
	return int(math.Round(100 * float64(completed) / float64(total)))
}

// ContextFill normalizes journal length against journalTarget, capped at
// 100. Length is counted in runes so multibyte text fills the meter at the
// same pace as ASCII.
func ContextFill(journal string) int {
	n := utf8.RuneCountInString(journal)
	pct := int(math.Round(100 * float64(n) / float64(journalTarget)))
	return min(100, pct)
}

// Band is the three-way display classification of a score.
type Band string

const (
	BandGood   Band = "good"
	BandMedium Band = "medium"
	BandLow    Band = "low"
)

// ScoreBand classifies a score for display: >80 good, >50 medium, else low.
func ScoreBand(score int) Band {
	switch {
	case score > 80:
		return BandGood
	case score > 50:
		return BandMedium
	default:
		return BandLow
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
