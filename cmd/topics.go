package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tutelearn/tute/internal/topic"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List available topics",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := topic.Load(resolveTopicsDir(cmd))
		if err != nil {
			return fmt.Errorf("load topics: %w", err)
		}

		for _, t := range catalog.Topics() {
			fmt.Printf("%-24s %-40s %-12s %d min, %d items, %d questions\n",
				t.ID, t.Title, t.Difficulty.DisplayName(),
				t.EstimatedTime, len(t.LearningContent), len(t.QuizQuestions))
		}
		return nil
	},
}
