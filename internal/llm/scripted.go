package llm

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// scriptedGateway is the offline stand-in used when the LLM is disabled.
// Sessions reply deterministically so the assistant chat stays usable
// without an Ollama server, delivered in word-sized chunks to exercise the
// same accumulation path as the real stream.
type scriptedGateway struct{}

// NewScriptedGateway creates a Gateway with deterministic canned replies.
func NewScriptedGateway() Gateway {
	return scriptedGateway{}
}

func (scriptedGateway) NewSession(systemInstruction string) Session {
	return &scriptedSession{}
}

type scriptedSession struct {
	turns int
}

func (s *scriptedSession) Send(_ context.Context, text string) (Stream, error) {
	s.turns++
	reply := scriptedReply(text, s.turns)
	return &sliceStream{chunks: chunkWords(reply)}, nil
}

func scriptedReply(text string, turn int) string {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "big rock"), strings.Contains(lower, "daily plan"):
		return "Pick the one task that would make today a win even if nothing " +
			"else got done, then protect a deep-work block for it before noon."
	case strings.Contains(lower, "first step"), strings.Contains(lower, "break"):
		return "Start by writing a one-sentence definition of done. Then list " +
			"the three smallest concrete actions that move you toward it and do " +
			"the first one for twenty minutes."
	case strings.Contains(lower, "strategy"), strings.Contains(lower, "pitch"):
		return "Anchor the pitch on a single customer problem, state the choice " +
			"you are making to solve it, and close with the evidence that the " +
			"choice is winnable."
	case strings.Contains(lower, "market"), strings.Contains(lower, "sizing"):
		return "Work top-down and bottom-up: TAM from analyst estimates, SOM " +
			"from your current funnel, and reconcile the two before quoting a number."
	default:
		return fmt.Sprintf("Noted (turn %d). Tell me more about what you are "+
			"trying to accomplish and I'll help you think it through.", turn)
	}
}

// chunkWords splits a reply into whitespace-preserving word chunks.
func chunkWords(s string) []string {
	words := strings.SplitAfter(s, " ")
	chunks := make([]string, 0, len(words))
	for _, w := range words {
		if w != "" {
			chunks = append(chunks, w)
		}
	}
	return chunks
}

// sliceStream yields pre-computed chunks then io.EOF.
type sliceStream struct {
	chunks []string
	pos    int
}

func (s *sliceStream) Recv() (string, error) {
	if s.pos >= len(s.chunks) {
		return "", io.EOF
	}
	c := s.chunks[s.pos]
	s.pos++
	return c, nil
}
