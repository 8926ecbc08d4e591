package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tutelearn/tute/internal/app"
	"github.com/tutelearn/tute/internal/rewards"
	"github.com/tutelearn/tute/internal/store"
	"github.com/tutelearn/tute/internal/topic"
)

// runApp opens the store, loads the catalog, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	catalog, err := topic.Load(resolveTopicsDir(cmd))
	if err != nil {
		return fmt.Errorf("load topics: %w", err)
	}

	opts := app.Options{
		Catalog:   catalog,
		Rewards:   rewards.NewService(st.EventRepo(), st.SnapshotRepo()),
		LearnerID: resolveLearnerID(cmd),
	}
	return app.Run(opts)
}
