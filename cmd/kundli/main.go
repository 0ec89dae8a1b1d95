package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/alfredjeanlab/kundli/internal/client"
	"github.com/alfredjeanlab/kundli/internal/ui"
)

var (
	serverAddr string
	transport  string
	authToken  string
	jsonOutput bool
	noColor    bool

	kundliClient client.KundliClient
)

func defaultServer() string {
	if s := os.Getenv("KUNDLI_SERVER"); s != "" {
		return s
	}
	return "http://localhost:8080"
}

var rootCmd = &cobra.Command{
	Use:          "kundli <command>",
	Short:        "Vedic birth charts: compute, store and read kundlis",
	SilenceUsage: true,
	PersistentPreRunE: connect,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if kundliClient != nil {
			kundliClient.Close()
		}
	},
}

// connect opens the client used by commands that talk to a kundli server.
func connect(cmd *cobra.Command, args []string) error {
	ui.Init(noColor)
	c, err := client.New(transport, serverAddr, authToken)
	if err != nil {
		return err
	}
	kundliClient = c
	return nil
}

func uiOnly(cmd *cobra.Command, args []string) error {
	ui.Init(noColor)
	return nil
}

// offline marks a command that never talks to a kundli server.
func offline(cmd *cobra.Command) *cobra.Command {
	cmd.PersistentPreRunE = uiOnly
	return cmd
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverAddr, "server", defaultServer(), "server address (URL for http, host:port for grpc)")
	rootCmd.PersistentFlags().StringVar(&transport, "transport", client.TransportHTTP, "transport protocol (http or grpc)")
	rootCmd.PersistentFlags().StringVar(&authToken, "token", os.Getenv("KUNDLI_TOKEN"), "bearer token for the server")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddGroup(
		&cobra.Group{ID: "charts", Title: "Charts:"},
		&cobra.Group{ID: "views", Title: "Views:"},
		&cobra.Group{ID: "system", Title: "System:"},
	)
	cobra.EnableCommandSorting = false

	// Charts
	rootCmd.AddCommand(computeCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(deleteCmd)

	// Views
	rootCmd.AddCommand(vargaCmd)
	rootCmd.AddCommand(transitCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(watchCmd)

	// System
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(ephemerisCmd)
	rootCmd.AddCommand(healthCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
