package domain

// ActivityType classifies a suggested learning activity.
type ActivityType string

const (
	ActivityVideo    ActivityType = "video"
	ActivityArticle  ActivityType = "article"
	ActivityRolePlay ActivityType = "role-play"
)

// LearningActivity is a suggested learning moment derived from the big-rock
// task text. The whole list is regenerated (replaced, not merged) whenever
// that text changes; only the Completed flag is user-mutable.
type LearningActivity struct {
	ID        string
	Type      ActivityType
	Title     string
	Completed bool
	Link      string
}
