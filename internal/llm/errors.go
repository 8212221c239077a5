package llm

import "errors"

var (
	// ErrUnavailable indicates the Ollama server is unreachable.
	ErrUnavailable = errors.New("ollama server unavailable")

	// ErrTimeout indicates the chat request exceeded the configured timeout.
	ErrTimeout = errors.New("chat request timed out")

	// ErrStreamClosed indicates Recv was called after the stream ended
	// or was torn down by an earlier error.
	ErrStreamClosed = errors.New("chat stream closed")
)
