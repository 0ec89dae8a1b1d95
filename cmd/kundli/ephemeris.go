package main

import (
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	"github.com/alfredjeanlab/kundli/internal/ephemeris"
)

var ephemerisCmd = &cobra.Command{
	Use:     "ephemeris",
	Short:   "Ephemeris development tools",
	GroupID: "system",
}

var ephemerisServeCmd = offline(&cobra.Command{
	Use:   "serve <snapshot>",
	Short: "Serve a snapshot file as a gRPC ephemeris",
	Long: `Serve a fixed TOML or JSON snapshot over the ephemeris gRPC service.

Point a kundli server at it with KUNDLI_EPHEMERIS_URL=grpc://host:port.
Every natal and transit request is answered with the same positions.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		addr, _ := cmd.Flags().GetString("addr")

		src, err := ephemeris.LoadFile(args[0])
		if err != nil {
			return err
		}

		lis, err := net.Listen("tcp", addr)
		if err != nil {
			return fmt.Errorf("listening on %s: %w", addr, err)
		}
		srv := grpc.NewServer()
		ephemeris.RegisterService(srv, src)
		reflection.Register(srv)

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sig
			logger.Info("shutting down ephemeris")
			srv.GracefulStop()
		}()

		logger.Info("ephemeris listening", "addr", lis.Addr().String(), "snapshot", args[0])
		return srv.Serve(lis)
	},
})

func init() {
	ephemerisServeCmd.Flags().String("addr", ":9191", "listen address")
	ephemerisCmd.AddCommand(ephemerisServeCmd)
}
