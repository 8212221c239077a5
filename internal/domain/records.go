package domain

import "time"

// GoalStatus is the lifecycle state of a persisted goal.
type GoalStatus string

const (
	GoalInProgress GoalStatus = "in-progress"
	GoalCompleted  GoalStatus = "completed"
)

// Goal is the persisted record of a locked-in big-rock task.
type Goal struct {
	ID     string
	Text   string
	Status GoalStatus
}

// JournalEntry is the persisted tacit-context journal for a user.
type JournalEntry struct {
	ID        string
	Text      string
	Timestamp time.Time
}

// MetricResult is what the metric gateway returns when logging a skill
// application. CompletionRate is sampled by the gateway in [0.85, 0.95)
// and must be treated as untrusted external data.
type MetricResult struct {
	Status         string
	CompletionRate float64
}
