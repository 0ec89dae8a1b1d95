package main

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/alfredjeanlab/kundli/internal/config"
	"github.com/alfredjeanlab/kundli/internal/ephemeris"
	"github.com/alfredjeanlab/kundli/internal/events"
	"github.com/alfredjeanlab/kundli/internal/server"
	"github.com/alfredjeanlab/kundli/internal/store"
	"github.com/alfredjeanlab/kundli/internal/store/memory"
	"github.com/alfredjeanlab/kundli/internal/store/postgres"
	kundlisync "github.com/alfredjeanlab/kundli/internal/sync"
)

var serveCmd = offline(&cobra.Command{
	Use:     "serve",
	Short:   "Start the kundli gRPC and HTTP servers",
	GroupID: "system",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		slog.SetDefault(logger)

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		source, err := ephemeris.Open(cfg.EphemerisURL, cfg.EphemerisTimeout)
		if err != nil {
			return err
		}
		defer source.Close()

		st, err := openStore(cfg, logger)
		if err != nil {
			return err
		}

		var publisher events.Publisher
		if cfg.NATSURL != "" {
			pub, err := events.NewNATSPublisher(cfg.NATSURL)
			if err != nil {
				st.Close()
				return err
			}
			publisher = pub
			logger.Info("events enabled", "nats_url", cfg.NATSURL)
		} else {
			publisher = &events.NoopPublisher{}
			logger.Info("events disabled (KUNDLI_NATS_URL not set)")
		}

		ks := server.NewKundliServer(source, st, publisher,
			server.WithLogger(logger),
			server.WithDefaultZone(cfg.DefaultTimezone),
		)
		grpcServer := server.NewGRPCServer(ks, cfg.AuthToken)

		lis, err := net.Listen("tcp", cfg.GRPCAddr)
		if err != nil {
			publisher.Close()
			st.Close()
			return err
		}

		go func() {
			logger.Info("gRPC server listening", "addr", cfg.GRPCAddr)
			if err := grpcServer.Serve(lis); err != nil {
				logger.Error("gRPC server error", "err", err)
			}
		}()

		httpServer := &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           ks.NewHTTPHandler(cfg.AuthToken),
			ReadHeaderTimeout: 10 * time.Second,
		}

		go func() {
			logger.Info("HTTP server listening", "addr", cfg.HTTPAddr)
			if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("HTTP server error", "err", err)
			}
		}()

		scheduler := kundlisync.NewScheduler(st, syncDestinations(cmd.Context(), cfg, logger), cfg.SyncInterval, logger)
		scheduler.Start()

		logger.Info("kundli server started",
			"grpc_addr", cfg.GRPCAddr,
			"http_addr", cfg.HTTPAddr,
			"ephemeris", cfg.EphemerisURL,
		)

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received signal, shutting down", "signal", sig)

		scheduler.Stop()

		grpcServer.GracefulStop()
		logger.Info("gRPC server stopped")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", "err", err)
		}
		logger.Info("HTTP server stopped")

		if err := publisher.Close(); err != nil {
			logger.Error("error closing publisher", "err", err)
		}
		if err := st.Close(); err != nil {
			logger.Error("error closing store", "err", err)
		}

		logger.Info("shutdown complete")
		return nil
	},
})

// openStore connects to Postgres, or keeps charts in memory when no database is configured.
func openStore(cfg *config.Config, logger *slog.Logger) (store.Store, error) {
	if cfg.DatabaseURL == "" {
		logger.Warn("KUNDLI_DATABASE_URL not set, charts are kept in memory only")
		return memory.New(), nil
	}
	pg, err := postgres.New(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	return pg, nil
}

// syncDestinations builds the export targets named by the configuration.
func syncDestinations(ctx context.Context, cfg *config.Config, logger *slog.Logger) []kundlisync.Destination {
	var dests []kundlisync.Destination
	if cfg.SyncS3Bucket != "" {
		d, err := kundlisync.NewS3Destination(ctx, kundlisync.S3Options{
			Bucket:   cfg.SyncS3Bucket,
			Key:      cfg.SyncS3Key,
			Region:   cfg.SyncS3Region,
			Endpoint: cfg.SyncS3Endpoint,
		})
		if err != nil {
			logger.Error("failed to create S3 sync destination", "err", err)
		} else {
			dests = append(dests, d)
			logger.Info("sync S3 destination enabled", "bucket", cfg.SyncS3Bucket, "key", cfg.SyncS3Key)
		}
	}
	if cfg.SyncFile != "" {
		dests = append(dests, kundlisync.NewFileDestination(cfg.SyncFile))
		logger.Info("sync file destination enabled", "path", cfg.SyncFile)
	}
	return dests
}
