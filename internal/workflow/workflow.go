// Package workflow implements the coaching state machine: a daily plan built
// around one big-rock task walks an ordered stage sequence from goal capture
// through scripted AI delegation to completion. The workflow owns all plan
// state; the TUI renders snapshots and invokes operations.
package workflow

import (
	"errors"
	"sync"

	"github.com/alexanderramin/deepwork/internal/domain"
	"github.com/alexanderramin/deepwork/internal/generation"
	"github.com/alexanderramin/deepwork/internal/llm"
	"github.com/alexanderramin/deepwork/internal/repository"
	"github.com/google/uuid"
)

// Mode selects which agent surface is active in the side panel.
type Mode string

const (
	ModeDelegate  Mode = "delegate"
	ModeAssistant Mode = "assistant"
)

var (
	// ErrPlanIncomplete rejects a lock while the journal or the big-rock
	// task text is empty.
	ErrPlanIncomplete = errors.New("plan incomplete: journal and big-rock task are required")

	// ErrPlanLocked rejects plan edits after the plan is locked.
	ErrPlanLocked = errors.New("plan is locked")

	// ErrBusy rejects an action while a previous request for the same
	// surface is still in flight (single-flight guard).
	ErrBusy = errors.New("request already in flight")

	// ErrNoDelegation means no delegation action exists at the current stage.
	ErrNoDelegation = errors.New("no delegation action at this stage")
)

const genericInstruction = "You are a world-class Product Manager co-pilot. " +
	"Help the user plan their day and answer general questions about product management."

// Workflow is the single mutable session state. All methods are safe for
// concurrent use; long-running operations (LockPlan, Delegate,
// SendAssistant) are meant to run on their own goroutine and report
// progress through the listener.
type Workflow struct {
	userID   string
	goals    repository.GoalRepo
	journal  repository.JournalRepo
	metrics  repository.MetricRepo
	gateway  llm.Gateway
	delays   Delays
	listener func(Event)

	mu            sync.Mutex
	epoch         uint64 // bumped on Reset; stale in-flight work is discarded
	stage         domain.Stage
	tasks         []domain.Task
	activities    []domain.LearningActivity
	journalText   string
	feed          []domain.FeedEntry
	history       []domain.AssistantMessage
	session       llm.Session
	mode          Mode
	panelOpen     bool
	locking       bool
	delegating    bool
	assistantBusy bool
}

// Option configures a Workflow during construction.
type Option func(*Workflow)

// WithDelays overrides the scripted pacing delays (zero for tests).
func WithDelays(d Delays) Option {
	return func(w *Workflow) { w.delays = d }
}

// WithListener registers the event listener.
func WithListener(fn func(Event)) Option {
	return func(w *Workflow) { w.listener = fn }
}

// New creates a Workflow in its initial state: stage GoalInitiation, the
// fixed starter plan, an empty journal, and a generic agent session.
func New(userID string, goals repository.GoalRepo, journal repository.JournalRepo,
	metrics repository.MetricRepo, gateway llm.Gateway, opts ...Option) *Workflow {

	w := &Workflow{
		userID:  userID,
		goals:   goals,
		journal: journal,
		metrics: metrics,
		gateway: gateway,
		delays:  DefaultDelays(),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.applyInitialState()
	return w
}

// applyInitialState loads the starter plan. Caller must not hold the mutex.
func (w *Workflow) applyInitialState() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.stage = domain.StageGoalInitiation
	w.tasks = domain.InitialTasks()
	w.activities = generation.LearningActivities(domain.BigRockText(w.tasks))
	w.journalText = ""
	w.feed = nil
	w.history = nil
	w.mode = ModeAssistant
	w.panelOpen = true
	w.locking = false
	w.delegating = false
	w.assistantBusy = false
	w.session = w.gateway.NewSession(genericInstruction)
}

// Reset restores the initial state from any stage, abandoning in-flight
// work, and establishes a fresh generic agent session. This is the universal
// recovery path.
func (w *Workflow) Reset() {
	w.mu.Lock()
	w.epoch++
	w.mu.Unlock()

	w.applyInitialState()
	w.emit(Event{Kind: EventStageChanged, Stage: domain.StageGoalInitiation})
}

// ── plan editing (stage GoalInitiation only) ─────────────────────────────────

// UpdateTaskText changes a task's text. Editing the big-rock task
// regenerates the learning-activity list wholesale.
func (w *Workflow) UpdateTaskText(id, text string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.stage.Editable() {
		return ErrPlanLocked
	}
	for i := range w.tasks {
		if w.tasks[i].ID == id {
			w.tasks[i].Text = text
			if w.tasks[i].BigRock {
				w.activities = generation.LearningActivities(text)
			}
			return nil
		}
	}
	return nil
}

// AddTask appends a task to the plan.
func (w *Workflow) AddTask(text string, source *domain.TaskSource) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.stage.Editable() {
		return ErrPlanLocked
	}
	w.tasks = append(w.tasks, domain.Task{
		ID:     "task_" + uuid.New().String(),
		Text:   text,
		Source: source,
	})
	return nil
}

// RemoveTask deletes a task. Removing the big rock clears the activity list.
func (w *Workflow) RemoveTask(id string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.stage.Editable() {
		return ErrPlanLocked
	}
	for i := range w.tasks {
		if w.tasks[i].ID == id {
			wasBigRock := w.tasks[i].BigRock
			w.tasks = append(w.tasks[:i], w.tasks[i+1:]...)
			if wasBigRock {
				w.activities = nil
			}
			return nil
		}
	}
	return nil
}

// ToggleTask flips a task's completion flag. Allowed at any stage.
func (w *Workflow) ToggleTask(id string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for i := range w.tasks {
		if w.tasks[i].ID == id {
			w.tasks[i].Completed = !w.tasks[i].Completed
			return
		}
	}
}

// SetBigRock marks one task as the day's priority. The choice is exclusive:
// the flag is cleared on every other task. Regenerates the activity list
// from the new big rock's text.
func (w *Workflow) SetBigRock(id string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.stage.Editable() {
		return ErrPlanLocked
	}
	text := ""
	for i := range w.tasks {
		w.tasks[i].BigRock = w.tasks[i].ID == id
		if w.tasks[i].BigRock {
			text = w.tasks[i].Text
		}
	}
	w.activities = generation.LearningActivities(text)
	return nil
}

// SetJournal replaces the journal text.
func (w *Workflow) SetJournal(text string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.stage.Editable() {
		return ErrPlanLocked
	}
	w.journalText = text
	return nil
}

// ToggleActivity flips a learning activity's completion flag.
func (w *Workflow) ToggleActivity(id string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for i := range w.activities {
		if w.activities[i].ID == id {
			w.activities[i].Completed = !w.activities[i].Completed
			return
		}
	}
}

// SetMode switches the agent panel surface. Delegate mode is only reachable
// once the plan is locked.
func (w *Workflow) SetMode(m Mode) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if m == ModeDelegate && w.stage < domain.StageDeepWorkDelegation {
		return
	}
	w.mode = m
}

// SetPanelOpen records the side-panel visibility.
func (w *Workflow) SetPanelOpen(open bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.panelOpen = open
}

// ── snapshots ────────────────────────────────────────────────────────────────

func (w *Workflow) Stage() domain.Stage {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stage
}

func (w *Workflow) Tasks() []domain.Task {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]domain.Task, len(w.tasks))
	copy(out, w.tasks)
	return out
}

func (w *Workflow) Activities() []domain.LearningActivity {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]domain.LearningActivity, len(w.activities))
	copy(out, w.activities)
	return out
}

func (w *Workflow) Journal() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.journalText
}

func (w *Workflow) BigRockText() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return domain.BigRockText(w.tasks)
}

// Feed returns a snapshot of the delegate transcript.
func (w *Workflow) Feed() []domain.FeedEntry {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]domain.FeedEntry, len(w.feed))
	copy(out, w.feed)
	return out
}

// History returns a snapshot of the assistant chat.
func (w *Workflow) History() []domain.AssistantMessage {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]domain.AssistantMessage, len(w.history))
	copy(out, w.history)
	return out
}

func (w *Workflow) Mode() Mode {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.mode
}

func (w *Workflow) PanelOpen() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.panelOpen
}

func (w *Workflow) Delegating() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.delegating
}

func (w *Workflow) AssistantBusy() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.assistantBusy
}

// CanLock reports whether the lock-plan guards pass: non-empty journal and
// a big-rock task with non-empty text.
func (w *Workflow) CanLock() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.journalText != "" && domain.BigRockText(w.tasks) != ""
}

// Prompts returns suggested assistant openers for the current state.
func (w *Workflow) Prompts() []string {
	w.mu.Lock()
	big := domain.BigRockText(w.tasks)
	stage := w.stage
	w.mu.Unlock()
	return generation.ContextualPrompts(big, stage)
}

// ── shared mutation helpers ──────────────────────────────────────────────────

// appendFeed appends an entry and notifies the listener, unless the epoch
// moved on (a Reset happened while the caller was working).
func (w *Workflow) appendFeed(epoch uint64, e domain.FeedEntry) bool {
	w.mu.Lock()
	if w.epoch != epoch {
		w.mu.Unlock()
		return false
	}
	w.feed = append(w.feed, e)
	w.mu.Unlock()
	w.emit(Event{Kind: EventFeedAppended, Entry: e})
	return true
}

// setStage transitions to the given stage under the same epoch rule.
func (w *Workflow) setStage(epoch uint64, s domain.Stage) bool {
	w.mu.Lock()
	if w.epoch != epoch {
		w.mu.Unlock()
		return false
	}
	w.stage = s
	w.mu.Unlock()
	w.emit(Event{Kind: EventStageChanged, Stage: s})
	return true
}

func (w *Workflow) currentEpoch() uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.epoch
}
