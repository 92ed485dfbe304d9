package cmd

import (
	"os"

	"github.com/seonho-dev/tutorgraph/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tutorgraph",
	Short: "Prerequisite-aware AI math tutor",
	Long:  "TutorGraph is a terminal AI tutor that diagnoses prerequisite gaps over a knowledge graph before explaining a concept.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides TUTORGRAPH_DB env var)")
	rootCmd.PersistentFlags().String("learner", "", "Learner profile ID (overrides TUTORGRAPH_LEARNER env var)")

	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then TUTORGRAPH_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveLearnerID returns the learner profile ID from --learner, then
// TUTORGRAPH_LEARNER, then "default".
func resolveLearnerID(cmd *cobra.Command) string {
	if id, _ := cmd.Flags().GetString("learner"); id != "" {
		return id
	}
	if id := os.Getenv("TUTORGRAPH_LEARNER"); id != "" {
		return id
	}
	return "default"
}
