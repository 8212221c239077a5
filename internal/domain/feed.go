package domain

// FeedEntry is one entry in the scripted delegate transcript.
// It is a closed set of variants; consumers must switch exhaustively.
// The feed is append-only; entries are never mutated after insertion.
type FeedEntry interface {
	feedEntry()
}

// AgentEntry is a status line spoken by the agent.
type AgentEntry struct {
	Text string
}

// NudgeEntry recommends a micro-skill relevant to the current step.
type NudgeEntry struct {
	Skill MicroSkill
}

// DraftEntry carries content the agent drafted on the user's behalf.
type DraftEntry struct {
	Title   string
	Content string
}

// SuccessEntry marks the end of the workflow. TCR is the completion rate
// returned by the metric gateway, a fraction in [0, 1], surfaced verbatim.
type SuccessEntry struct {
	Text string
	TCR  float64
}

func (AgentEntry) feedEntry()   {}
func (NudgeEntry) feedEntry()   {}
func (DraftEntry) feedEntry()   {}
func (SuccessEntry) feedEntry() {}
