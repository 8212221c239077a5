package llm

import (
	"fmt"
	"io"
	"time"
)

// ChatCallEvent records metadata about a single chat exchange.
type ChatCallEvent struct {
	Model     string
	LatencyMs int64
	Chunks    int
	Success   bool
	ErrorCode string
}

// Observer receives events about chat calls for logging and metrics.
type Observer interface {
	OnCallComplete(event ChatCallEvent)
}

// LogObserver writes chat call events to an io.Writer.
type LogObserver struct {
	w io.Writer
}

// NewLogObserver creates an Observer that logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnCallComplete(event ChatCallEvent) {
	ts := time.Now().UTC().Format(time.RFC3339)
	status := "ok"
	if !event.Success {
		status = "err:" + event.ErrorCode
	}
	fmt.Fprintf(o.w, "[%s] chat_call model=%s latency_ms=%d chunks=%d status=%s\n",
		ts, event.Model, event.LatencyMs, event.Chunks, status)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(ChatCallEvent) {}
