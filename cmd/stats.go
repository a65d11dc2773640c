package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/gauntlet/internal/progress"
	"github.com/abhisek/gauntlet/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show progression statistics",
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
		records, err := svc.Records(ctx)
		if err != nil {
			return err
		}

		var cleared, attempts int
		var totalBestMs int64
		for _, rec := range records {
			attempts += rec.Attempts
			if rec.Completed {
				cleared++
				totalBestMs += rec.BestDurationMs
			}
		}

		fmt.Printf("Levels cleared:  %d / %d\n", cleared, reg.Len())
		fmt.Printf("Total attempts:  %d\n", attempts)
		if cleared > 0 {
			fmt.Printf("Sum of bests:    %.1fs\n", float64(totalBestMs)/1000)
		}

		if next, ok, err := svc.NextOpen(ctx); err == nil && ok {
			fmt.Printf("Up next:         %s (%s)\n", next.Name, next.Kind)
		} else if err == nil {
			fmt.Println("Gauntlet complete.")
		}
		return nil
	},
}
