package domain

// SourceType identifies the external system a task was pulled from.
type SourceType string

const (
	SourceJira   SourceType = "jira"
	SourceGDoc   SourceType = "gdoc"
	SourceSlack  SourceType = "slack"
	SourceManual SourceType = "manual"
)

// TaskSource is the provenance of an imported task. Immutable once attached;
// used only for a clickable link next to the task.
type TaskSource struct {
	Type       SourceType
	Identifier string
	Link       string
}

// Task is one entry in the daily plan. At most one task in a plan may have
// BigRock set; reassigning the big rock clears the flag everywhere else.
type Task struct {
	ID        string
	Text      string
	BigRock   bool
	Completed bool
	Source    *TaskSource
}

// BigRockText returns the text of the big-rock task, or "" when no task
// carries the flag.
func BigRockText(tasks []Task) string {
	for _, t := range tasks {
		if t.BigRock {
			return t.Text
		}
	}
	return ""
}

// InitialTasks returns the fixed starter plan a fresh session begins with.
// The first task is the pre-selected big rock.
func InitialTasks() []Task {
	return []Task{
		{
			ID:      "task_1",
			Text:    "Develop a pitch deck for the 'Quick Share' feature based on Competitor X's announcement.",
			BigRock: true,
			Source:  &TaskSource{Type: SourceJira, Identifier: "PROD-123", Link: "#"},
		},
		{ID: "task_2", Text: "Sync with design on Q3 roadmap"},
		{
			ID:     "task_3",
			Text:   "Review final UXR findings for checkout flow",
			Source: &TaskSource{Type: SourceGDoc, Identifier: "UXR Findings", Link: "#"},
		},
		{ID: "task_4", Text: "Prep for weekly business review"},
	}
}
