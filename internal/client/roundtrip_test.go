package client

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/test/bufconn"

	"github.com/alfredjeanlab/kundli/internal/ephemeris"
	"github.com/alfredjeanlab/kundli/internal/events"
	"github.com/alfredjeanlab/kundli/internal/model"
	"github.com/alfredjeanlab/kundli/internal/server"
	"github.com/alfredjeanlab/kundli/internal/store/memory"
	"github.com/alfredjeanlab/kundli/internal/zodiac"
)

const snapshotTOML = `
ascendant_longitude = 245.0

[[planets]]
name = "Sun"
longitude = 280.4

[[planets]]
name = "Moon"
longitude = 12.0

[[planets]]
name = "Mars"
longitude = 190.0

[[planets]]
name = "Jupiter"
longitude = 248.0

[[transits]]
name = "Saturn"
longitude = 335.0
is_retrograde = true
`

// newKundliServer returns a server backed by a snapshot file and an in-memory store.
func newKundliServer(t *testing.T) *server.KundliServer {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snapshot.toml")
	if err := os.WriteFile(path, []byte(snapshotTOML), 0o644); err != nil {
		t.Fatalf("writing snapshot: %v", err)
	}
	src, err := ephemeris.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	return server.NewKundliServer(src, memory.New(), &events.NoopPublisher{},
		server.WithClock(func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }),
		server.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
}

func httpTransport(t *testing.T, ks *server.KundliServer, token string) KundliClient {
	srv := httptest.NewServer(ks.NewHTTPHandler(token))
	t.Cleanup(srv.Close)
	return NewHTTPClient(srv.URL, token)
}

func grpcTransport(t *testing.T, ks *server.KundliServer, token string) KundliClient {
	lis := bufconn.Listen(1 << 20)
	srv := server.NewGRPCServer(ks, token)
	go srv.Serve(lis)
	t.Cleanup(srv.Stop)

	c, err := NewGRPCClient("passthrough:///bufnet", token,
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
	)
	if err != nil {
		t.Fatalf("NewGRPCClient: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestRoundTrip(t *testing.T) {
	transports := map[string]func(*testing.T, *server.KundliServer, string) KundliClient{
		TransportHTTP: httpTransport,
		TransportGRPC: grpcTransport,
	}
	for name, dial := range transports {
		t.Run(name, func(t *testing.T) {
			c := dial(t, newKundliServer(t), "secret")
			ctx := context.Background()

			if status, err := c.Health(ctx); err != nil || status != "ok" {
				t.Fatalf("Health = %q, %v", status, err)
			}

			lat, lon := 12.9716, 77.5946
			created, err := c.ComputeKundli(ctx, &model.BirthRequest{
				Name: "Ravi", DOB: "1990-08-20", Time: "6:45 PM",
				Latitude: &lat, Longitude: &lon, City: "Bengaluru",
			})
			if err != nil {
				t.Fatalf("ComputeKundli: %v", err)
			}
			if created.Kundli.Lagna != zodiac.Dhanu {
				t.Errorf("lagna = %v, want Dhanu", created.Kundli.Lagna)
			}
			if created.Kundli.Time != "18:45" {
				t.Errorf("time = %q, want 18:45", created.Kundli.Time)
			}

			got, err := c.GetChart(ctx, created.ID)
			if err != nil {
				t.Fatalf("GetChart: %v", err)
			}
			if got.City != "Bengaluru" {
				t.Errorf("city = %q, want Bengaluru", got.City)
			}

			list, err := c.ListCharts(ctx, model.ChartFilter{Search: "ravi"})
			if err != nil {
				t.Fatalf("ListCharts: %v", err)
			}
			if list.Total != 1 || len(list.Charts) != 1 {
				t.Errorf("list = %d of %d, want 1 of 1", len(list.Charts), list.Total)
			}

			v, err := c.Varga(ctx, created.ID, 9)
			if err != nil {
				t.Fatalf("Varga: %v", err)
			}
			if v.Name != "Navamsa" {
				t.Errorf("varga name = %q, want Navamsa", v.Name)
			}

			sum, err := c.ChartSummary(ctx, created.ID, "2024-06-01")
			if err != nil {
				t.Fatalf("ChartSummary: %v", err)
			}
			if sum.MoonSign != zodiac.Mesha || len(sum.Transits.Entries) != 1 {
				t.Errorf("summary moon %v with %d transits, want Mesha with 1", sum.MoonSign, len(sum.Transits.Entries))
			}

			tr, err := c.ComputeTransits(ctx, model.TransitQuery{Lagna: "Dhanu"})
			if err != nil {
				t.Fatalf("ComputeTransits: %v", err)
			}
			// Saturn in Meena is the fourth house from Dhanu.
			if e := tr.Transits.Entries[0]; e.Planet != zodiac.Saturn || e.House != 4 || !e.Retrograde {
				t.Errorf("entry = %+v, want retrograde Saturn in house 4", e)
			}

			asc := 5.0
			report, err := c.ComputeChart(ctx, &model.ChartRequest{Snapshot: ephemeris.Snapshot{
				AscendantLongitude: &asc,
				Bodies:             []ephemeris.Body{{Name: "Mars", Longitude: 10}},
			}})
			if err != nil {
				t.Fatalf("ComputeChart: %v", err)
			}
			if report.Chart.Lagna != zodiac.Mesha || len(report.Vargas) != 15 {
				t.Errorf("report lagna %v with %d vargas, want Mesha with 15", report.Chart.Lagna, len(report.Vargas))
			}

			if err := c.DeleteChart(ctx, created.ID); err != nil {
				t.Fatalf("DeleteChart: %v", err)
			}
			if _, err := c.GetChart(ctx, created.ID); !IsNotFound(err) {
				t.Errorf("GetChart after delete: err = %v, want not found", err)
			}
		})
	}
}
