package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/deepwork/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// focusDuration is one pomodoro block.
const focusDuration = 25 * time.Minute

// focusTickMsg advances the countdown. Seq guards against stale ticks from
// a stopped or restarted timer.
type focusTickMsg struct{ seq int }

// focusView is a minimal pomodoro countdown for the deep-work block itself.
type focusView struct {
	state     *SharedState
	remaining time.Duration
	running   bool
	seq       int
}

func newFocusView(state *SharedState) *focusView {
	return &focusView{state: state, remaining: focusDuration}
}

func (v *focusView) ID() ViewID    { return ViewFocus }
func (v *focusView) Title() string { return "Focus" }

func (v *focusView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start/pause")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
	}
}

func (v *focusView) Init() tea.Cmd { return nil }

func (v *focusView) tick() tea.Cmd {
	seq := v.seq
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return focusTickMsg{seq: seq}
	})
}

func (v *focusView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case focusTickMsg:
		if !v.running || msg.seq != v.seq {
			return v, nil
		}
		v.remaining -= time.Second
		if v.remaining <= 0 {
			v.remaining = 0
			v.running = false
			return v, nil
		}
		return v, v.tick()

	case tea.KeyMsg:
		switch msg.String() {
		case "s":
			v.running = !v.running
			v.seq++
			if v.running {
				return v, v.tick()
			}
		case "r":
			v.running = false
			v.seq++
			v.remaining = focusDuration
		}
	}
	return v, nil
}

func (v *focusView) View() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(formatter.Header("Focus Block"))
	b.WriteString("\n\n")

	mins := int(v.remaining.Minutes())
	secs := int(v.remaining.Seconds()) % 60
	clock := fmt.Sprintf("%02d:%02d", mins, secs)

	switch {
	case v.remaining == 0:
		b.WriteString("  " + formatter.StyleGreen.Render(clock+"  block complete"))
	case v.running:
		b.WriteString("  " + formatter.StyleYellow.Render(clock) + formatter.Dim("  deep work in progress"))
	default:
		b.WriteString("  " + formatter.Bold(clock) + formatter.Dim("  paused"))
	}

	if big := v.state.App.Flow.BigRockText(); big != "" {
		b.WriteString("\n\n  " + formatter.Dim("Big rock: ") + previewLine(big, 70))
	}
	return b.String()
}
