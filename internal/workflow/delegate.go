package workflow

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/deepwork/internal/domain"
)

// Delays paces the scripted delegation so the feed reads like live agent
// work. Zero values make the script run instantly (tests).
type Delays struct {
	Status time.Duration // pause after a status line
	Draft  time.Duration // pause before a draft lands
}

// DefaultDelays returns the interactive pacing.
func DefaultDelays() Delays {
	return Delays{Status: 1500 * time.Millisecond, Draft: 2500 * time.Millisecond}
}

const (
	statusAccessingContext = "Understood. Accessing proprietary context from your journal..."
	statusRefining         = "Acknowledged. Incorporating feedback to refine market sizing..."
	statusClosingLoop      = "Final draft approved. Logging performance metrics and closing the context loop..."
	successText            = "Task Complete!"

	draftOneTitle = "DRAFT: Value Prop & Opportunity Summary"
	draftOneBody  = "**Value Proposition:** For users struggling with cumbersome sharing options, " +
		"'Quick Share' provides a one-click method to distribute content, increasing engagement " +
		"by 30% unlike Competitor X's multi-step process.\n\n**Opportunity Summary:** The market " +
		"for simplified content sharing is estimated at $500M. With current usage down 25%, " +
		"'Quick Share' can recapture lost users and open a new revenue stream. Initial market " +
		"sizing is based on existing user data."

	draftTwoTitle = "REVISED DRAFT: Reflecting New API Model"
	draftTwoBody  = "**Value Proposition:** For users struggling with cumbersome sharing options, " +
		"'Quick Share' provides a one-click method to distribute content, increasing engagement " +
		"by 30% unlike Competitor X's multi-step process.\n\n**Opportunity Summary:** The market " +
		"for simplified content sharing is estimated at $500M. With current usage down 25%, " +
		"'Quick Share' can recapture lost users and open a new revenue stream. **Updated market " +
		"sizing reflects the new API pricing model, projecting a 15% increase in TAM to $575M.**"
)

func lockedInstruction(bigRock, journal string) string {
	return fmt.Sprintf("You are a world-class Product Manager co-pilot. The user's primary goal "+
		"for the day (their \"Big Rock Task\") is: %q. Their private, tacit context is: %q. "+
		"Your role is to act as an expert sounding board and assistant. Help them think deeply, "+
		"challenge their assumptions, and provide insightful information related to their task. "+
		"Be concise, helpful, and format your responses with markdown where appropriate.",
		bigRock, journal)
}

// LockPlan commits the plan: the goal and journal are persisted, the agent
// session is rebuilt around them, the assistant history is cleared, and the
// workflow advances to DeepWorkDelegation. Either store failure aborts the
// lock before any state transition, so the action can simply be retried.
func (w *Workflow) LockPlan(ctx context.Context) error {
	w.mu.Lock()
	if w.locking {
		w.mu.Unlock()
		return ErrBusy
	}
	if w.stage != domain.StageGoalInitiation {
		w.mu.Unlock()
		return ErrPlanLocked
	}
	bigRock := domain.BigRockText(w.tasks)
	journal := w.journalText
	if bigRock == "" || journal == "" {
		w.mu.Unlock()
		return ErrPlanIncomplete
	}
	w.locking = true
	epoch := w.epoch
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.locking = false
		w.mu.Unlock()
	}()

	if _, err := w.goals.SaveGoal(ctx, w.userID, bigRock); err != nil {
		err = fmt.Errorf("saving goal: %w", err)
		w.emit(Event{Kind: EventFailed, Err: err})
		return err
	}
	if _, err := w.journal.SaveEntry(ctx, w.userID, journal); err != nil {
		err = fmt.Errorf("saving journal: %w", err)
		w.emit(Event{Kind: EventFailed, Err: err})
		return err
	}

	session := w.gateway.NewSession(lockedInstruction(bigRock, journal))

	w.mu.Lock()
	if w.epoch != epoch {
		w.mu.Unlock()
		return nil
	}
	w.session = session
	w.history = nil
	w.mode = ModeDelegate
	w.mu.Unlock()
	w.emit(Event{Kind: EventAssistantUpdated})

	w.setStage(epoch, domain.StageDeepWorkDelegation)
	return nil
}

// Delegate runs the scripted agent step for the current stage, appending to
// the feed as it goes and advancing the stage when the step completes. Only
// one delegation runs at a time. A store failure aborts the step with the
// stage unchanged; retrying re-runs the whole step.
func (w *Workflow) Delegate(ctx context.Context) error {
	w.mu.Lock()
	if w.delegating {
		w.mu.Unlock()
		return ErrBusy
	}
	if !w.stage.Delegatable() {
		w.mu.Unlock()
		return ErrNoDelegation
	}
	stage := w.stage
	epoch := w.epoch
	w.delegating = true
	w.mode = ModeDelegate
	w.panelOpen = true
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.delegating = false
		w.mu.Unlock()
	}()

	switch stage {
	case domain.StageDeepWorkDelegation:
		return w.runDraftStep(ctx, epoch, statusAccessingContext,
			domain.SkillPlayingToWin,
			domain.DraftEntry{Title: draftOneTitle, Content: draftOneBody},
			domain.StageReviewAndIteration, true)
	case domain.StageReviewAndIteration:
		return w.runDraftStep(ctx, epoch, statusRefining,
			domain.SkillMarketSizing,
			domain.DraftEntry{Title: draftTwoTitle, Content: draftTwoBody},
			domain.StageTaskCompletion, false)
	case domain.StageTaskCompletion:
		return w.runCompletionStep(ctx, epoch)
	default:
		return ErrNoDelegation
	}
}

// runDraftStep plays the status / nudge / draft sequence and advances the
// stage. The first step re-reads the private journal to prove the stored
// context is reachable before any drafting happens.
func (w *Workflow) runDraftStep(ctx context.Context, epoch uint64, status string,
	skill domain.MicroSkill, draft domain.DraftEntry, next domain.Stage, readJournal bool) error {

	if !w.appendFeed(epoch, domain.AgentEntry{Text: status}) {
		return nil
	}
	if readJournal {
		if _, err := w.journal.GetPrivate(ctx, w.userID); err != nil {
			err = fmt.Errorf("reading journal: %w", err)
			w.emit(Event{Kind: EventFailed, Err: err})
			return err
		}
	}
	if err := w.sleep(ctx, w.delays.Status); err != nil {
		return err
	}
	if !w.appendFeed(epoch, domain.NudgeEntry{Skill: skill}) {
		return nil
	}
	if err := w.sleep(ctx, w.delays.Draft); err != nil {
		return err
	}
	if !w.appendFeed(epoch, draft) {
		return nil
	}
	w.setStage(epoch, next)
	return nil
}

// runCompletionStep logs both skill outcomes and closes the loop with a
// success card carrying the first log's completion rate.
func (w *Workflow) runCompletionStep(ctx context.Context, epoch uint64) error {
	if !w.appendFeed(epoch, domain.AgentEntry{Text: statusClosingLoop}) {
		return nil
	}
	first, err := w.metrics.LogPerformance(ctx, w.userID, domain.SkillPlayingToWin, true)
	if err != nil {
		err = fmt.Errorf("logging metric: %w", err)
		w.emit(Event{Kind: EventFailed, Err: err})
		return err
	}
	if _, err := w.metrics.LogPerformance(ctx, w.userID, domain.SkillMarketSizing, true); err != nil {
		err = fmt.Errorf("logging metric: %w", err)
		w.emit(Event{Kind: EventFailed, Err: err})
		return err
	}
	if err := w.sleep(ctx, w.delays.Status); err != nil {
		return err
	}
	if !w.appendFeed(epoch, domain.SuccessEntry{Text: successText, TCR: first.CompletionRate}) {
		return nil
	}
	w.setStage(epoch, domain.StageCompleted)
	return nil
}

func (w *Workflow) sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
