package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var vargaCmd = &cobra.Command{
	Use:     "varga <id> <division>",
	Short:   "Show a divisional chart (D2 to D60) of a stored chart",
	GroupID: "views",
	Example: "  kundli varga kc-abc123 9\n  kundli varga kc-abc123 D10",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := parseDivision(args[1])
		if err != nil {
			return err
		}
		v, err := kundliClient.Varga(context.Background(), args[0], n)
		if err != nil {
			return fmt.Errorf("getting D%d of %s: %w", n, args[0], err)
		}
		if jsonOutput {
			return printJSON(os.Stdout, v)
		}
		printVarga(os.Stdout, v)
		return nil
	},
}

// parseDivision accepts "9" or "D9".
func parseDivision(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimPrefix(strings.ToUpper(strings.TrimSpace(s)), "D"))
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid division %q", s)
	}
	return n, nil
}
