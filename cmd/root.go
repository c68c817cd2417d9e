package cmd

import (
	"github.com/spf13/cobra"

	"github.com/meera/nclexprep/internal/session"
	"github.com/meera/nclexprep/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "nclexprep",
	Short: "NCLEX exam practice in your terminal",
	Long:  "nclexprep — adaptive NCLEX-RN practice with spaced-repetition review.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, "")
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides NCLEXPREP_DB env var)")

	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(dueCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Start an adaptive practice session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, session.ModePractice)
	},
}

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Work through due review-queue items",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, session.ModeReview)
	},
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then NCLEXPREP_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
