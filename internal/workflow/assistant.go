package workflow

import (
	"context"
	"io"

	"github.com/alexanderramin/deepwork/internal/domain"
)

// assistantApology replaces a turn whose delivery failed. The failure is not
// fatal: the chat stays usable and the user can try again.
const assistantApology = "Sorry, I encountered an error. Please try again."

// SendAssistant submits a user message to the active agent session and
// streams the reply into the history tail, emitting EventAssistantUpdated as
// chunks arrive. On any delivery failure the model turn is replaced with a
// fixed apology and the call still returns nil.
func (w *Workflow) SendAssistant(ctx context.Context, text string) error {
	if text == "" {
		return nil
	}

	w.mu.Lock()
	if w.assistantBusy {
		w.mu.Unlock()
		return ErrBusy
	}
	w.assistantBusy = true
	w.history = append(w.history,
		domain.AssistantMessage{Role: domain.RoleUser, Content: text},
		domain.AssistantMessage{Role: domain.RoleModel, Content: ""},
	)
	session := w.session
	epoch := w.epoch
	w.mu.Unlock()
	w.emit(Event{Kind: EventAssistantUpdated})

	defer func() {
		w.mu.Lock()
		w.assistantBusy = false
		w.mu.Unlock()
	}()

	stream, err := session.Send(ctx, text)
	if err != nil {
		w.replaceAssistantTail(epoch, assistantApology)
		w.emit(Event{Kind: EventFailed, Err: err})
		return nil
	}

	for {
		chunk, err := stream.Recv()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			w.replaceAssistantTail(epoch, assistantApology)
			w.emit(Event{Kind: EventFailed, Err: err})
			return nil
		}
		w.appendAssistantTail(epoch, chunk)
	}
}

// appendAssistantTail grows the streaming model turn.
func (w *Workflow) appendAssistantTail(epoch uint64, chunk string) {
	w.mu.Lock()
	if w.epoch != epoch || len(w.history) == 0 {
		w.mu.Unlock()
		return
	}
	last := &w.history[len(w.history)-1]
	if last.Role == domain.RoleModel {
		last.Content += chunk
	}
	w.mu.Unlock()
	w.emit(Event{Kind: EventAssistantUpdated})
}

// replaceAssistantTail overwrites the streaming model turn wholesale,
// discarding any partial content.
func (w *Workflow) replaceAssistantTail(epoch uint64, content string) {
	w.mu.Lock()
	if w.epoch != epoch || len(w.history) == 0 {
		w.mu.Unlock()
		return
	}
	last := &w.history[len(w.history)-1]
	if last.Role == domain.RoleModel {
		last.Content = content
	}
	w.mu.Unlock()
	w.emit(Event{Kind: EventAssistantUpdated})
}
