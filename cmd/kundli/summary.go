package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:     "summary <id>",
	Short:   "Show the running dasha and transits for a stored chart",
	GroupID: "views",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, _ := cmd.Flags().GetString("date")
		sum, err := kundliClient.ChartSummary(context.Background(), args[0], date)
		if err != nil {
			return fmt.Errorf("summarizing chart %s: %w", args[0], err)
		}
		if jsonOutput {
			return printJSON(os.Stdout, sum)
		}
		printSummary(os.Stdout, sum)
		return nil
	},
}

func init() {
	summaryCmd.Flags().String("date", "", "date as YYYY-MM-DD (default today)")
}
