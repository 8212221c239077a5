package cli

import (
	"fmt"
	"os"

	"github.com/alexanderramin/deepwork/internal/workflow"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// App bundles everything the TUI needs: the workflow core plus the channel
// its listener publishes events on.
type App struct {
	Flow   *workflow.Workflow
	Events <-chan workflow.Event
}

// NewEventChannel creates the buffered channel and the matching workflow
// listener. The listener never blocks; if the UI falls behind, events are
// dropped and the next render re-reads full state anyway.
func NewEventChannel() (chan workflow.Event, func(workflow.Event)) {
	ch := make(chan workflow.Event, 64)
	return ch, func(e workflow.Event) {
		select {
		case ch <- e:
		default:
		}
	}
}

// NewRootCmd creates the top-level "deepwork" command. Running it builds the
// app against the resolved database path and launches the interactive TUI.
// The build callback returns the app plus a cleanup run after the TUI exits.
func NewRootCmd(build func(dbPath string) (*App, func(), error)) *cobra.Command {
	var dbPath string
	root := &cobra.Command{
		Use:          "deepwork",
		Short:        "Daily deep-work co-pilot for product managers",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, cleanup, err := build(dbPath)
			if err != nil {
				return err
			}
			defer cleanup()
			return runTUI(app)
		},
	}
	root.Flags().StringVar(&dbPath, "db", "",
		"SQLite database path (defaults to $DEEPWORK_DB, then an in-memory session store)")
	return root
}

func runTUI(app *App) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("deepwork requires an interactive terminal")
	}
	p := tea.NewProgram(newAppModel(app), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
