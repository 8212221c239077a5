package domain

// Stage is the position of a daily plan in the coaching workflow.
// Values are ordinal: comparisons like stage >= StageDeepWorkDelegation
// gate UI affordances and select the available delegation action.
type Stage int

const (
	StageGoalInitiation Stage = iota + 1 // goal not set
	StageContextCapture                  // goal set, ready for journal
	StageDeepWorkDelegation              // plan locked, ready to delegate
	StageReviewAndIteration              // first draft done, ready for feedback
	StageTaskCompletion                  // second draft done, ready for approval
	StageCompleted                       // approved and finished
)

func (s Stage) String() string {
	switch s {
	case StageGoalInitiation:
		return "goal_initiation"
	case StageContextCapture:
		return "context_capture"
	case StageDeepWorkDelegation:
		return "deep_work_delegation"
	case StageReviewAndIteration:
		return "review_and_iteration"
	case StageTaskCompletion:
		return "task_completion"
	case StageCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Editable reports whether the plan (tasks and journal) may still be changed.
func (s Stage) Editable() bool {
	return s == StageGoalInitiation
}

// Delegatable reports whether a delegation action exists at this stage.
func (s Stage) Delegatable() bool {
	return s >= StageDeepWorkDelegation && s <= StageTaskCompletion
}
