package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tutelearn/tute/internal/rewards"
	"github.com/tutelearn/tute/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show TUTE point balance and recent sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		svc := rewards.NewService(st.EventRepo(), st.SnapshotRepo())

		balance, err := svc.Balance(ctx)
		if err != nil {
			return fmt.Errorf("load balance: %w", err)
		}
		fmt.Printf("TUTE points: %d\n", balance)

		sessions, err := svc.History(ctx, 10)
		if err != nil {
			return fmt.Errorf("load history: %w", err)
		}
		if len(sessions) == 0 {
			fmt.Println("No completed sessions yet.")
			return nil
		}

		fmt.Println("\nRecent sessions:")
		for _, rec := range sessions {
			verdict := "passed"
			if !rec.Passed {
				verdict = "not passed"
			}
			fmt.Printf("  %s  %-24s %d/%d (%d%%, %s)  +%d TUTE\n",
				rec.Timestamp.Format("2006-01-02 15:04"), rec.TopicID,
				rec.Score, rec.TotalQuestions, rec.Percentage, verdict, rec.TutePoints)
		}
		return nil
	},
}
