package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/gauntlet/internal/progress"
	"github.com/abhisek/gauntlet/internal/store"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List every level with its unlock state",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		ctx := context.Background()
		svc := progress.New(reg, st.ProgressRepo())

		for i, spec := range reg.All() {
			unlocked, err := svc.IsUnlocked(ctx, spec.ID)
			if err != nil {
				return err
			}
			rec, err := svc.Record(ctx, spec.ID)
			if err != nil {
				return err
			}

			marker := " "
			switch {
			case rec.Completed:
				marker = "✓"
			case !unlocked:
				marker = "🔒"
			}
			fmt.Printf("%2d. %s %-24s %-18s", i+1, marker, spec.Name, spec.Kind)
			if rec.Completed {
				fmt.Printf("  best %.1fs", float64(rec.BestDurationMs)/1000)
			}
			fmt.Println()
		}
		return nil
	},
}
