package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alfredjeanlab/kundli/internal/model"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List stored charts, newest first",
	GroupID: "charts",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var filter model.ChartFilter
		filter.Search, _ = cmd.Flags().GetString("search")
		filter.Limit, _ = cmd.Flags().GetInt("limit")
		filter.Offset, _ = cmd.Flags().GetInt("offset")

		list, err := kundliClient.ListCharts(context.Background(), filter)
		if err != nil {
			return fmt.Errorf("listing charts: %w", err)
		}
		if jsonOutput {
			return printJSON(os.Stdout, list)
		}
		printChartList(os.Stdout, list)
		return nil
	},
}

func init() {
	listCmd.Flags().StringP("search", "s", "", "match name or city")
	listCmd.Flags().Int("limit", model.DefaultLimit, "maximum charts to return")
	listCmd.Flags().Int("offset", 0, "charts to skip")
}
