package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alfredjeanlab/kundli/internal/model"
)

var transitCmd = &cobra.Command{
	Use:     "transit",
	Short:   "Show current planetary transits over a lagna",
	GroupID: "views",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var q model.TransitQuery
		q.Lagna, _ = cmd.Flags().GetString("lagna")
		q.Date, _ = cmd.Flags().GetString("date")

		tr, err := kundliClient.ComputeTransits(context.Background(), q)
		if err != nil {
			return fmt.Errorf("computing transits: %w", err)
		}
		if jsonOutput {
			return printJSON(os.Stdout, tr)
		}
		printTransits(os.Stdout, tr)
		return nil
	},
}

func init() {
	transitCmd.Flags().String("lagna", "", "ascendant sign, Sanskrit or English (default Mesha)")
	transitCmd.Flags().String("date", "", "date as YYYY-MM-DD (default today)")
}
