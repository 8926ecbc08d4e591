package cmd

import (
	"github.com/spf13/cobra"
)

var learnCmd = &cobra.Command{
	Use:   "learn",
	Short: "Open the topic picker",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}
