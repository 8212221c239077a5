package cli

import (
	"context"
	"strings"

	"github.com/alexanderramin/deepwork/internal/cli/formatter"
	"github.com/alexanderramin/deepwork/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// planView is the home view: the daily task list, suggested learning
// activities, the journal preview, and the lock-in action.
type planView struct {
	state  *SharedState
	cursor int
}

func newPlanView(state *SharedState) *planView {
	return &planView{state: state}
}

func (v *planView) ID() ViewID    { return ViewPlan }
func (v *planView) Title() string { return "Plan" }

func (v *planView) ShortHelp() []key.Binding {
	flow := v.state.App.Flow
	bindings := []key.Binding{
		key.NewBinding(key.WithKeys("space"), key.WithHelp("space", "toggle done")),
	}
	if flow.Stage().Editable() {
		bindings = append(bindings,
			key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "big rock")),
			key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add task")),
			key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
			key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
			key.NewBinding(key.WithKeys("j"), key.WithHelp("j", "journal")),
			key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "lock plan")),
		)
	}
	bindings = append(bindings,
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "agent")),
		key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "focus timer")),
	)
	return bindings
}

func (v *planView) Init() tea.Cmd { return nil }

// rowCount is tasks plus activities; the cursor walks both sections.
func (v *planView) rowCount() int {
	flow := v.state.App.Flow
	return len(flow.Tasks()) + len(flow.Activities())
}

// rowAt resolves the cursor into either a task or an activity.
func (v *planView) rowAt(i int) (task *domain.Task, activity *domain.LearningActivity) {
	tasks := v.state.App.Flow.Tasks()
	if i < len(tasks) {
		return &tasks[i], nil
	}
	acts := v.state.App.Flow.Activities()
	j := i - len(tasks)
	if j < len(acts) {
		return nil, &acts[j]
	}
	return nil, nil
}

func (v *planView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshViewMsg:
		if n := v.rowCount(); v.cursor >= n && n > 0 {
			v.cursor = n - 1
		}
		return v, nil

	case opDoneMsg:
		if msg.err != nil {
			v.state.LastError = msg.err.Error()
		}
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}
	return v, nil
}

func (v *planView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	flow := v.state.App.Flow

	switch msg.String() {
	case "up":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down":
		if v.cursor < v.rowCount()-1 {
			v.cursor++
		}
	case " ":
		if task, activity := v.rowAt(v.cursor); task != nil {
			flow.ToggleTask(task.ID)
		} else if activity != nil {
			flow.ToggleActivity(activity.ID)
		}
	case "b":
		if task, _ := v.rowAt(v.cursor); task != nil {
			if err := flow.SetBigRock(task.ID); err != nil {
				v.state.LastError = err.Error()
			}
		}
	case "x":
		if task, _ := v.rowAt(v.cursor); task != nil {
			if err := flow.RemoveTask(task.ID); err != nil {
				v.state.LastError = err.Error()
			}
		}
	case "e":
		if task, _ := v.rowAt(v.cursor); task != nil {
			return v, v.editTaskWizard(task.ID, task.Text)
		}
	case "a":
		return v, v.addTaskWizard()
	case "j":
		return v, v.journalWizard()
	case "l":
		return v, v.lockWizard()
	case "tab":
		return v, pushView(newAgentView(v.state))
	case "f":
		// Focus tools unlock once the plan moves past goal initiation.
		if flow.Stage() < domain.StageContextCapture {
			v.state.LastError = "lock in your plan to unlock the focus timer"
			return v, nil
		}
		return v, pushView(newFocusView(v.state))
	}
	return v, nil
}

// ── wizards and commands ─────────────────────────────────────────────────────

func (v *planView) editTaskWizard(id, current string) tea.Cmd {
	text := current
	form := wizardInputText("Task", "", true, &text)
	return startWizardCmd(v.state, "Edit Task", form, func() tea.Cmd {
		flow := v.state.App.Flow
		return func() tea.Msg {
			return opDoneMsg{err: flow.UpdateTaskText(id, strings.TrimSpace(text))}
		}
	})
}

func (v *planView) addTaskWizard() tea.Cmd {
	var text, source string
	form := wizardAddTask(&text, &source)
	return startWizardCmd(v.state, "Add Task", form, func() tea.Cmd {
		flow := v.state.App.Flow
		return func() tea.Msg {
			var src *domain.TaskSource
			if source != "" && source != string(domain.SourceManual) {
				src = &domain.TaskSource{Type: domain.SourceType(source), Link: "#"}
			}
			return opDoneMsg{err: flow.AddTask(strings.TrimSpace(text), src)}
		}
	})
}

func (v *planView) journalWizard() tea.Cmd {
	var text string
	form := wizardJournalText(v.state.App.Flow.Journal(), &text)
	return startWizardCmd(v.state, "Journal", form, func() tea.Cmd {
		flow := v.state.App.Flow
		return func() tea.Msg {
			return opDoneMsg{err: flow.SetJournal(text)}
		}
	})
}

func (v *planView) lockWizard() tea.Cmd {
	flow := v.state.App.Flow
	if !flow.CanLock() {
		v.state.LastError = "add a journal entry and a big-rock task before locking in"
		return nil
	}
	confirmed := false
	form := wizardConfirm("Lock in the plan and start deep work?", &confirmed)
	return startWizardCmd(v.state, "Lock Plan", form, func() tea.Cmd {
		if !confirmed {
			return nil
		}
		return tea.Batch(
			func() tea.Msg {
				return opDoneMsg{err: flow.LockPlan(context.Background())}
			},
			pushView(newAgentView(v.state)),
		)
	})
}

// ── rendering ────────────────────────────────────────────────────────────────

func (v *planView) View() string {
	flow := v.state.App.Flow
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(formatter.Header("Today's Plan"))
	b.WriteString("\n")
	tasks := flow.Tasks()
	for i, t := range tasks {
		b.WriteString(formatter.FormatTaskRow(t, i == v.cursor))
		b.WriteByte('\n')
	}
	if len(tasks) == 0 {
		b.WriteString("  " + formatter.Dim("No tasks yet. Press a to add one.") + "\n")
	}

	acts := flow.Activities()
	if len(acts) > 0 {
		b.WriteString("\n")
		b.WriteString(formatter.Header("Learning Moments"))
		b.WriteString("\n")
		for i, a := range acts {
			b.WriteString(formatter.FormatActivityRow(a, len(tasks)+i == v.cursor))
			b.WriteByte('\n')
		}
	}

	b.WriteString("\n")
	b.WriteString(formatter.Header("Context Journal"))
	b.WriteString("\n")
	journal := flow.Journal()
	if journal == "" {
		b.WriteString("  " + formatter.Dim("Empty. Press j to capture your tacit context.") + "\n")
	} else {
		b.WriteString("  " + previewLine(journal, 80) + "\n")
	}

	if flow.Stage().Editable() {
		b.WriteString("\n  " + formatter.Bold("l") + formatter.Dim(" · lock in plan & start deep work"))
	} else {
		b.WriteString("\n  " + formatter.Dim("Plan locked · ") + formatter.StyleBlue.Render(flow.Stage().String()))
	}
	return b.String()
}

// previewLine collapses text to a single truncated line.
func previewLine(s string, width int) string {
	s = strings.Join(strings.Fields(s), " ")
	if len(s) > width {
		s = s[:width-1] + "…"
	}
	return s
}
