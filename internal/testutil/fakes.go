package testutil

import (
	"context"
	"io"
	"sync"

	"github.com/alexanderramin/deepwork/internal/domain"
	"github.com/alexanderramin/deepwork/internal/llm"
)

// FakeGoalRepo records SaveGoal calls and can inject a failure.
type FakeGoalRepo struct {
	mu    sync.Mutex
	Err   error
	Saved []string
}

func (f *FakeGoalRepo) SaveGoal(_ context.Context, userID, text string) (*domain.Goal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	f.Saved = append(f.Saved, text)
	return &domain.Goal{ID: "goal_test", Text: text, Status: domain.GoalInProgress}, nil
}

// SavedTexts returns the goal texts saved so far.
func (f *FakeGoalRepo) SavedTexts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.Saved))
	copy(out, f.Saved)
	return out
}

// FakeJournalRepo records SaveEntry calls and serves GetPrivate from the
// last saved entry.
type FakeJournalRepo struct {
	mu      sync.Mutex
	SaveErr error
	GetErr  error
	Saved   []string
	Reads   int
}

func (f *FakeJournalRepo) SaveEntry(_ context.Context, userID, text string) (*domain.JournalEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.SaveErr != nil {
		return nil, f.SaveErr
	}
	f.Saved = append(f.Saved, text)
	return &domain.JournalEntry{ID: "journal_test", Text: text}, nil
}

func (f *FakeJournalRepo) GetPrivate(_ context.Context, userID string) (*domain.JournalEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Reads++
	if f.GetErr != nil {
		return nil, f.GetErr
	}
	text := ""
	if len(f.Saved) > 0 {
		text = f.Saved[len(f.Saved)-1]
	}
	return &domain.JournalEntry{ID: "journal_test", Text: text}, nil
}

// SavedTexts returns the journal texts saved so far.
func (f *FakeJournalRepo) SavedTexts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.Saved))
	copy(out, f.Saved)
	return out
}

// ReadCount returns how many times GetPrivate was called.
func (f *FakeJournalRepo) ReadCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Reads
}

// LoggedMetric is one recorded LogPerformance call.
type LoggedMetric struct {
	SkillID string
	Success bool
}

// FakeMetricRepo records LogPerformance calls and returns a fixed rate.
type FakeMetricRepo struct {
	mu     sync.Mutex
	Err    error
	Rate   float64
	Logged []LoggedMetric
}

func (f *FakeMetricRepo) LogPerformance(_ context.Context, userID string, skill domain.MicroSkill, success bool) (*domain.MetricResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	f.Logged = append(f.Logged, LoggedMetric{SkillID: skill.ID, Success: success})
	rate := f.Rate
	if rate == 0 {
		rate = 0.9
	}
	// Later logs sample a different rate so tests can tell which result
	// a consumer kept.
	rate += float64(len(f.Logged)-1) * 0.01
	return &domain.MetricResult{Status: "success", CompletionRate: rate}, nil
}

// LoggedCalls returns the recorded calls in order.
func (f *FakeMetricRepo) LoggedCalls() []LoggedMetric {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]LoggedMetric, len(f.Logged))
	copy(out, f.Logged)
	return out
}

// FakeGateway hands out FakeSessions and remembers the system instructions
// it was asked to build sessions for.
type FakeGateway struct {
	mu           sync.Mutex
	Instructions []string
	Sessions     []*FakeSession

	// NextChunks seeds the reply chunks for every session created.
	NextChunks []string
	// SendErr makes Send fail outright.
	SendErr error
	// StreamErr is returned by Recv after the chunks are exhausted,
	// instead of io.EOF.
	StreamErr error
}

func (g *FakeGateway) NewSession(systemInstruction string) llm.Session {
	g.mu.Lock()
	defer g.mu.Unlock()
	s := &FakeSession{gw: g}
	g.Instructions = append(g.Instructions, systemInstruction)
	g.Sessions = append(g.Sessions, s)
	return s
}

// LastInstruction returns the most recent system instruction, or "".
func (g *FakeGateway) LastInstruction() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.Instructions) == 0 {
		return ""
	}
	return g.Instructions[len(g.Instructions)-1]
}

// FakeSession replays the gateway's seeded chunks and records sent texts.
type FakeSession struct {
	mu   sync.Mutex
	gw   *FakeGateway
	Sent []string
}

func (s *FakeSession) Send(_ context.Context, text string) (llm.Stream, error) {
	s.mu.Lock()
	s.Sent = append(s.Sent, text)
	s.mu.Unlock()

	s.gw.mu.Lock()
	defer s.gw.mu.Unlock()
	if s.gw.SendErr != nil {
		return nil, s.gw.SendErr
	}
	chunks := make([]string, len(s.gw.NextChunks))
	copy(chunks, s.gw.NextChunks)
	return &FakeStream{chunks: chunks, finalErr: s.gw.StreamErr}, nil
}

// SentTexts returns the texts sent through this session.
func (s *FakeSession) SentTexts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.Sent))
	copy(out, s.Sent)
	return out
}

// FakeStream yields its chunks then io.EOF, or finalErr if set.
type FakeStream struct {
	chunks   []string
	pos      int
	finalErr error
}

func (s *FakeStream) Recv() (string, error) {
	if s.pos >= len(s.chunks) {
		if s.finalErr != nil {
			return "", s.finalErr
		}
		return "", io.EOF
	}
	c := s.chunks[s.pos]
	s.pos++
	return c, nil
}
