package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tutelearn/tute/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "tute",
	Short: "Learn topics from your terminal",
	Long:  "Tute is a terminal learning app: pick a topic, work through its readings and videos, then take the quiz to earn TUTE points.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides TUTE_DB env var)")
	rootCmd.PersistentFlags().String("topics", "", "Directory with extra topic JSON files")
	rootCmd.PersistentFlags().String("learner", "", "Learner name recorded in session history (defaults to $USER)")

	rootCmd.AddCommand(learnCmd)
	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then TUTE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveTopicsDir returns the extra-topics directory from --topics, then
// the TUTE_TOPICS env var. Empty means seed topics only.
func resolveTopicsDir(cmd *cobra.Command) string {
	if dir, _ := cmd.Flags().GetString("topics"); dir != "" {
		return dir
	}
	return os.Getenv("TUTE_TOPICS")
}

// resolveLearnerID returns the learner name from --learner, then $USER,
// then a fixed fallback.
func resolveLearnerID(cmd *cobra.Command) string {
	if name, _ := cmd.Flags().GetString("learner"); name != "" {
		return name
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "learner"
}
