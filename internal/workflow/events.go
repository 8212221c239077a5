package workflow

import "github.com/alexanderramin/deepwork/internal/domain"

// EventKind identifies what changed inside the workflow.
type EventKind int

const (
	// EventFeedAppended carries a new delegate-feed entry.
	EventFeedAppended EventKind = iota
	// EventAssistantUpdated signals the assistant history changed
	// (new turn, or the streaming tail grew).
	EventAssistantUpdated
	// EventStageChanged carries the new stage after a transition.
	EventStageChanged
	// EventFailed carries a gateway error; the triggering action was
	// aborted and may be retried.
	EventFailed
)

// Event is published to the registered listener after each observable
// mutation, so a UI can render progressively while a delegation script or
// response stream runs.
type Event struct {
	Kind  EventKind
	Entry domain.FeedEntry // EventFeedAppended
	Stage domain.Stage     // EventStageChanged
	Err   error            // EventFailed
}

// emit invokes the listener, if any. Called without holding the mutex;
// listeners must not call back into the workflow synchronously.
func (w *Workflow) emit(e Event) {
	if w.listener != nil {
		w.listener(e)
	}
}
