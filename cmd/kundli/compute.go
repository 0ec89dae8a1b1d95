package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/alfredjeanlab/kundli/internal/ephemeris"
	"github.com/alfredjeanlab/kundli/internal/model"
	"github.com/alfredjeanlab/kundli/internal/server"
)

var computeCmd = &cobra.Command{
	Use:   "compute",
	Short: "Compute and store a birth chart",
	Long: `Compute a birth chart on the server and store it.

With --snapshot the chart is computed locally from a TOML or JSON snapshot
of planetary positions; nothing is sent to a server or stored.`,
	GroupID: "charts",
	Example: `  kundli compute --name "Asha" --dob 1990-08-20 --time "6:45 PM" --lat 12.97 --lon 77.59
  kundli compute --snapshot chart.toml --dob 1990-08-20 --time 18:45`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if snap, _ := cmd.Flags().GetString("snapshot"); snap != "" {
			return uiOnly(cmd, args)
		}
		return connect(cmd, args)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := birthFromFlags(cmd)
		if err != nil {
			return err
		}
		if path, _ := cmd.Flags().GetString("snapshot"); path != "" {
			return computeOffline(cmd, path, req)
		}

		resp, err := kundliClient.ComputeKundli(context.Background(), req)
		if err != nil {
			return fmt.Errorf("computing kundli: %w", err)
		}
		if jsonOutput {
			return printJSON(os.Stdout, resp)
		}
		if resp.Existed {
			fmt.Printf("Updated existing chart %s\n\n", resp.ID)
		} else {
			fmt.Printf("Created chart %s\n\n", resp.ID)
		}
		printRecord(os.Stdout, resp.Kundli)
		return nil
	},
}

// computeOffline assembles a report from a local snapshot file.
func computeOffline(cmd *cobra.Command, path string, req *model.BirthRequest) error {
	src, err := ephemeris.LoadFile(path)
	if err != nil {
		return err
	}
	snap, err := src.Natal(cmd.Context(), time.Time{}, 0, 0)
	if err != nil {
		return err
	}

	var birth time.Time
	if req.DOB != "" {
		req.Normalize(server.DefaultZone)
		instant, fellBack, err := req.Instant()
		if err != nil {
			return err
		}
		if fellBack {
			fmt.Fprintf(os.Stderr, "warning: unknown timezone %q, reading birth time as UTC\n", req.Timezone)
		}
		birth = instant
	}

	report, err := model.Assemble(snap, birth, time.Now())
	if err != nil {
		return err
	}
	if jsonOutput {
		return printJSON(os.Stdout, report)
	}
	printReport(os.Stdout, report)
	return nil
}

func birthFromFlags(cmd *cobra.Command) (*model.BirthRequest, error) {
	req := &model.BirthRequest{}
	req.Name, _ = cmd.Flags().GetString("name")
	req.DOB, _ = cmd.Flags().GetString("dob")
	req.Time, _ = cmd.Flags().GetString("time")
	req.Timezone, _ = cmd.Flags().GetString("tz")
	req.City, _ = cmd.Flags().GetString("city")
	for name, dst := range map[string]**float64{"lat": &req.Latitude, "lon": &req.Longitude} {
		if !cmd.Flags().Changed(name) {
			continue
		}
		v, err := cmd.Flags().GetFloat64(name)
		if err != nil {
			return nil, err
		}
		*dst = &v
	}
	return req, nil
}

func init() {
	computeCmd.Flags().String("name", "", "name of the person")
	computeCmd.Flags().String("dob", "", "date of birth (YYYY-MM-DD)")
	computeCmd.Flags().String("time", "", "time of birth (HH:MM[:SS], AM/PM accepted; default 12:00)")
	computeCmd.Flags().Float64("lat", 0, "latitude of the birthplace")
	computeCmd.Flags().Float64("lon", 0, "longitude of the birthplace")
	computeCmd.Flags().String("tz", "", "IANA timezone of the birthplace (default Asia/Kolkata)")
	computeCmd.Flags().String("city", "", "birthplace")
	computeCmd.Flags().String("snapshot", "", "compute offline from a TOML or JSON snapshot file")
}
