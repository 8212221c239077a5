package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/deepwork/internal/cli/formatter"
	"github.com/alexanderramin/deepwork/internal/domain"
	"github.com/alexanderramin/deepwork/internal/workflow"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// agentView is the side panel: the scripted delegate feed in delegate mode,
// the open-ended assistant chat in assistant mode.
type agentView struct {
	state *SharedState
	input textinput.Model
}

func newAgentView(state *SharedState) *agentView {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.CharLimit = 500
	ti.Placeholder = "Ask your co-pilot..."
	return &agentView{state: state, input: ti}
}

func (v *agentView) ID() ViewID { return ViewAgent }
func (v *agentView) Title() string {
	if v.state.App.Flow.Mode() == workflow.ModeDelegate {
		return "Agent"
	}
	return "Assistant"
}

func (v *agentView) ShortHelp() []key.Binding {
	flow := v.state.App.Flow
	bindings := []key.Binding{
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch mode")),
	}
	if flow.Mode() == workflow.ModeDelegate {
		if flow.Stage().Delegatable() && !flow.Delegating() {
			bindings = append(bindings,
				key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", delegateLabel(flow.Stage()))))
		}
	} else {
		bindings = append(bindings,
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "send")),
			key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "insert prompt")),
		)
	}
	if flow.Stage() == domain.StageCompleted {
		bindings = append(bindings,
			key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "start new day")))
	}
	return bindings
}

// delegateLabel names the next scripted action, mirroring the stage.
func delegateLabel(s domain.Stage) string {
	switch s {
	case domain.StageDeepWorkDelegation:
		return "delegate: draft value prop"
	case domain.StageReviewAndIteration:
		return "approve & refine draft"
	case domain.StageTaskCompletion:
		return "approve final & close loop"
	default:
		return "delegate"
	}
}

func (v *agentView) Init() tea.Cmd {
	return textinput.Blink
}

func (v *agentView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshViewMsg:
		return v, nil

	case opDoneMsg:
		if msg.err != nil {
			v.state.LastError = msg.err.Error()
		}
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *agentView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	flow := v.state.App.Flow

	switch {
	case msg.Type == tea.KeyEsc:
		return v, popView()

	case msg.Type == tea.KeyTab:
		if flow.Mode() == workflow.ModeDelegate {
			flow.SetMode(workflow.ModeAssistant)
		} else {
			flow.SetMode(workflow.ModeDelegate)
		}
		return v, nil

	case msg.Type == tea.KeyCtrlP:
		// Cycle the suggested prompts into the input.
		prompts := flow.Prompts()
		if len(prompts) > 0 {
			next := nextPrompt(prompts, v.input.Value())
			v.input.SetValue(next)
			v.input.CursorEnd()
		}
		return v, nil

	case msg.Type == tea.KeyCtrlN:
		if flow.Stage() == domain.StageCompleted {
			return v, v.resetWizard()
		}
		return v, nil

	case msg.Type == tea.KeyEnter:
		if flow.Mode() == workflow.ModeDelegate {
			// Outside the delegatable stages the control is simply inert.
			if !flow.Stage().Delegatable() {
				return v, nil
			}
			return v, v.delegateCmd()
		}
		text := strings.TrimSpace(v.input.Value())
		v.input.Reset()
		if text == "" {
			return v, nil
		}
		return v, v.sendCmd(text)
	}

	if flow.Mode() == workflow.ModeAssistant {
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}
	return v, nil
}

// nextPrompt returns the suggestion after the one currently in the input,
// wrapping around.
func nextPrompt(prompts []string, current string) string {
	for i, p := range prompts {
		if p == current {
			return prompts[(i+1)%len(prompts)]
		}
	}
	return prompts[0]
}

func (v *agentView) delegateCmd() tea.Cmd {
	flow := v.state.App.Flow
	return func() tea.Msg {
		err := flow.Delegate(context.Background())
		if err == workflow.ErrBusy {
			err = nil
		}
		return opDoneMsg{err: err}
	}
}

func (v *agentView) sendCmd(text string) tea.Cmd {
	flow := v.state.App.Flow
	return func() tea.Msg {
		err := flow.SendAssistant(context.Background(), text)
		if err == workflow.ErrBusy {
			err = nil
		}
		return opDoneMsg{err: err}
	}
}

func (v *agentView) resetWizard() tea.Cmd {
	confirmed := false
	form := wizardConfirm("Start a new day? All plan state will be cleared.", &confirmed)
	return startWizardCmd(v.state, "New Day", form, func() tea.Cmd {
		if !confirmed {
			return nil
		}
		flow := v.state.App.Flow
		return func() tea.Msg {
			flow.Reset()
			return opDoneMsg{}
		}
	})
}

// ── rendering ────────────────────────────────────────────────────────────────

func (v *agentView) View() string {
	flow := v.state.App.Flow
	width := v.state.Width
	if width <= 0 {
		width = 80
	}

	var b strings.Builder
	b.WriteString("\n")

	if flow.Mode() == workflow.ModeDelegate {
		v.renderFeed(&b, width)
	} else {
		v.renderAssistant(&b, width)
	}
	return b.String()
}

func (v *agentView) renderFeed(b *strings.Builder, width int) {
	flow := v.state.App.Flow
	b.WriteString(formatter.Header("Deep Work Agent"))
	b.WriteString("\n")

	feed := flow.Feed()
	if len(feed) == 0 {
		b.WriteString("  " + formatter.Dim("The agent is standing by. Press enter to delegate.") + "\n")
	}
	for _, e := range feed {
		b.WriteString(formatter.FormatFeedEntry(e, width))
		b.WriteString("\n")
	}

	switch {
	case flow.Delegating():
		b.WriteString("\n  " + formatter.StyleYellow.Render("⋯ agent working"))
	case flow.Stage().Delegatable():
		b.WriteString("\n  " + formatter.Bold("enter") + formatter.Dim(" · "+delegateLabel(flow.Stage())))
	case flow.Stage() == domain.StageCompleted:
		b.WriteString("\n  " + formatter.StyleGreen.Render("Deep work complete.") +
			formatter.Dim(" ctrl+n starts a new day."))
	}
}

func (v *agentView) renderAssistant(b *strings.Builder, width int) {
	flow := v.state.App.Flow
	b.WriteString(formatter.Header("Assistant"))
	b.WriteString("\n")

	history := flow.History()
	if len(history) == 0 {
		b.WriteString("  " + formatter.Dim("Ask anything. ctrl+p cycles suggested prompts:") + "\n")
		for i, p := range flow.Prompts() {
			b.WriteString(formatter.Dim(fmt.Sprintf("    %d. %s", i+1, p)) + "\n")
		}
	}
	for _, m := range history {
		b.WriteString(formatter.FormatAssistantMessage(m))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	prompt := formatter.StylePurple.Render("you") + formatter.Dim("> ")
	b.WriteString(prompt)
	b.WriteString(v.input.View())
}
