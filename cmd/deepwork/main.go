package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/deepwork/internal/cli"
	"github.com/alexanderramin/deepwork/internal/db"
	"github.com/alexanderramin/deepwork/internal/llm"
	"github.com/alexanderramin/deepwork/internal/repository"
	"github.com/alexanderramin/deepwork/internal/workflow"
	"github.com/google/uuid"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	return cli.NewRootCmd(buildApp).Execute()
}

// buildApp wires the store, gateway, and workflow core behind the TUI.
// dbPath comes from the --db flag, then DEEPWORK_DB. With neither set the
// store is in-memory and lives for one coaching session.
func buildApp(dbPath string) (*cli.App, func(), error) {
	if dbPath == "" {
		dbPath = os.Getenv("DEEPWORK_DB")
	}
	if dbPath == "" {
		dbPath = ":memory:"
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}

	// Wire repositories
	goalRepo := repository.NewSQLiteGoalRepo(database)
	journalRepo := repository.NewSQLiteJournalRepo(database)
	metricRepo := repository.NewSQLiteMetricRepo(database, nil)

	// Wire the conversational gateway: a live Ollama endpoint when enabled
	// and reachable, the deterministic scripted gateway otherwise.
	llmCfg := llm.LoadConfig()
	gateway := llm.Gateway(llm.NewScriptedGateway())
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		ollama := llm.NewOllamaGateway(llmCfg, observer)
		if ollama.Available(context.Background()) {
			gateway = ollama
		} else {
			fmt.Fprintln(os.Stderr, "warning: ollama unreachable, falling back to scripted replies")
		}
	}

	// One anonymous user per process; the stores key all records by it.
	userID := "pm_" + uuid.New().String()

	events, listener := cli.NewEventChannel()
	flow := workflow.New(userID, goalRepo, journalRepo, metricRepo, gateway,
		workflow.WithListener(listener))

	app := &cli.App{Flow: flow, Events: events}
	return app, func() { database.Close() }, nil
}
