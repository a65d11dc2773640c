package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/gauntlet/internal/levels"
	"github.com/abhisek/gauntlet/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "gauntlet",
	Short: "A widget interaction gauntlet for the terminal",
	Long: "Gauntlet — a terminal game of UI dexterity: drag sliders, tame modals,\n" +
		"and outclick toasts, one widget level at a time.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides GAUNTLET_DB env var)")
	rootCmd.PersistentFlags().String("pack", "", "Path to a custom level pack JSON file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then GAUNTLET_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveRegistry loads the custom pack named by --pack, or the built-in
// levels when the flag is unset.
func resolveRegistry(cmd *cobra.Command) (*levels.Registry, error) {
	packPath, _ := cmd.Flags().GetString("pack")
	if packPath == "" {
		return levels.Builtin(), nil
	}

	data, err := os.ReadFile(packPath)
	if err != nil {
		return nil, fmt.Errorf("read level pack: %w", err)
	}
	reg, err := levels.LoadPack(data)
	if err != nil {
		return nil, fmt.Errorf("load level pack %s: %w", packPath, err)
	}
	return reg, nil
}
