package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// Stream is a finite, non-restartable sequence of response text chunks.
// Recv returns io.EOF once the response is complete. Chunks arrive in
// strict order; callers append them to a single growing message.
type Stream interface {
	Recv() (string, error)
}

// Session is a stateful chat conversation. The system instruction is fixed
// at creation; each Send records the user turn and, once the stream drains,
// the accumulated model turn.
type Session interface {
	Send(ctx context.Context, text string) (Stream, error)
}

// Gateway creates chat sessions. The workflow replaces its session on every
// plan lock and reset.
type Gateway interface {
	NewSession(systemInstruction string) Session
}

// OllamaGateway implements Gateway against the Ollama /api/chat endpoint.
type OllamaGateway struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewOllamaGateway creates a Gateway that talks to a local Ollama instance.
func NewOllamaGateway(cfg Config, observer Observer) *OllamaGateway {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &OllamaGateway{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

func (g *OllamaGateway) NewSession(systemInstruction string) Session {
	return &ollamaSession{gw: g, system: systemInstruction}
}

// Available checks whether the Ollama server is reachable.
func (g *OllamaGateway) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.cfg.Endpoint+"/api/tags", nil)
	if err != nil {
		return false
	}
	resp, err := g.http.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// chatMessage is one turn in the Ollama wire format.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest is the JSON body sent to POST /api/chat.
type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
}

// chatChunk is one NDJSON line of the streamed response.
type chatChunk struct {
	Message chatMessage `json:"message"`
	Done    bool        `json:"done"`
}

// ollamaSession holds the system instruction and completed prior turns.
type ollamaSession struct {
	gw      *OllamaGateway
	system  string
	history []chatMessage
}

func (s *ollamaSession) Send(ctx context.Context, text string) (Stream, error) {
	messages := make([]chatMessage, 0, len(s.history)+2)
	messages = append(messages, chatMessage{Role: "system", Content: s.system})
	messages = append(messages, s.history...)
	messages = append(messages, chatMessage{Role: "user", Content: text})

	body := chatRequest{
		Model:    s.gw.cfg.Model,
		Messages: messages,
		Stream:   true,
	}
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling chat request: %w", err)
	}

	// The timeout covers establishing the response stream only; the
	// stream itself has no deadline and is torn down by ctx or Recv error.
	reqCtx, cancel := context.WithTimeout(ctx, time.Duration(s.gw.cfg.TimeoutMs)*time.Millisecond)
	start := time.Now()

	url := s.gw.cfg.Endpoint + "/api/chat"
	httpReq, err := http.NewRequestWithContext(reqCtx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		cancel()
		return nil, fmt.Errorf("creating chat request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := s.gw.http.Do(httpReq)
	if err != nil {
		cancel()
		s.gw.observer.OnCallComplete(ChatCallEvent{
			Model: s.gw.cfg.Model, LatencyMs: time.Since(start).Milliseconds(),
			Success: false, ErrorCode: errorCode(err, reqCtx),
		})
		if reqCtx.Err() != nil {
			return nil, ErrTimeout
		}
		if isConnectionError(err) {
			return nil, ErrUnavailable
		}
		return nil, fmt.Errorf("sending chat request: %w", err)
	}
	if httpResp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(httpResp.Body)
		httpResp.Body.Close()
		cancel()
		s.gw.observer.OnCallComplete(ChatCallEvent{
			Model: s.gw.cfg.Model, LatencyMs: time.Since(start).Milliseconds(),
			Success: false, ErrorCode: "HTTP_STATUS",
		})
		return nil, fmt.Errorf("ollama returned status %d: %s", httpResp.StatusCode, string(respBody))
	}

	return &ollamaStream{
		session:  s,
		userText: text,
		body:     httpResp.Body,
		dec:      json.NewDecoder(httpResp.Body),
		cancel:   cancel,
		start:    start,
	}, nil
}

// ollamaStream decodes NDJSON chunks off the response body.
type ollamaStream struct {
	session  *ollamaSession
	userText string
	body     io.ReadCloser
	dec      *json.Decoder
	cancel   context.CancelFunc
	start    time.Time

	accumulated string
	chunks      int
	finished    bool
	closed      bool
}

func (st *ollamaStream) Recv() (string, error) {
	if st.finished {
		return "", io.EOF
	}
	if st.closed {
		return "", ErrStreamClosed
	}

	var chunk chatChunk
	if err := st.dec.Decode(&chunk); err != nil {
		if err == io.EOF {
			// Server closed without a done marker; treat as clean end.
			st.teardown(true, "")
			st.finished = true
			st.finalize()
			return "", io.EOF
		}
		st.teardown(false, "STREAM")
		return "", fmt.Errorf("decoding chat chunk: %w", err)
	}

	if chunk.Message.Content != "" {
		st.accumulated += chunk.Message.Content
		st.chunks++
	}
	if chunk.Done {
		st.teardown(true, "")
		st.finished = true
		st.finalize()
		if chunk.Message.Content != "" {
			return chunk.Message.Content, nil
		}
		return "", io.EOF
	}
	if chunk.Message.Content == "" {
		return st.Recv()
	}
	return chunk.Message.Content, nil
}

// finalize commits the exchange into session history so later turns carry
// the full conversation.
func (st *ollamaStream) finalize() {
	st.session.history = append(st.session.history,
		chatMessage{Role: "user", Content: st.userText},
		chatMessage{Role: "assistant", Content: st.accumulated},
	)
}

func (st *ollamaStream) teardown(success bool, errCode string) {
	if st.closed {
		return
	}
	st.closed = true
	st.body.Close()
	st.cancel()
	st.session.gw.observer.OnCallComplete(ChatCallEvent{
		Model:     st.session.gw.cfg.Model,
		LatencyMs: time.Since(st.start).Milliseconds(),
		Chunks:    st.chunks,
		Success:   success,
		ErrorCode: errCode,
	})
}

func isConnectionError(err error) bool {
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func errorCode(err error, ctx context.Context) string {
	switch {
	case ctx.Err() != nil:
		return "TIMEOUT"
	case isConnectionError(err):
		return "UNAVAILABLE"
	default:
		return "UNKNOWN"
	}
}
