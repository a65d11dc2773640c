package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/gauntlet/internal/app"
	"github.com/abhisek/gauntlet/internal/store"
)

// runApp opens the store, resolves the level registry, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	reg, err := resolveRegistry(cmd)
	if err != nil {
		return err
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	return app.Run(app.Options{
		Registry: reg,
		Repo:     st.ProgressRepo(),
	})
}
