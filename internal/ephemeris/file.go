package ephemeris

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// snapshotFile is the on-disk layout of a FileSource. Transits, when present,
// answer Current; otherwise the natal planets are returned.
type snapshotFile struct {
	AscendantLongitude *float64      `json:"ascendant_longitude" toml:"ascendant_longitude"`
	Planets            []Body        `json:"planets" toml:"planets"`
	Dasha              *DashaAnchors `json:"dasha" toml:"dasha"`
	Transits           []Body        `json:"transits" toml:"transits"`
}

// FileSource answers every request from a fixed snapshot read from disk.
type FileSource struct {
	path     string
	snapshot Snapshot
	transits []Body
}

// LoadFile reads a snapshot from a .json file or, for any other extension, TOML.
func LoadFile(path string) (*FileSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	var f snapshotFile
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, &f)
	} else {
		_, err = toml.Decode(string(data), &f)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing snapshot %s: %w", path, err)
	}
	transits := f.Transits
	if len(transits) == 0 {
		transits = f.Planets
	}
	return &FileSource{
		path: path,
		snapshot: Snapshot{
			AscendantLongitude: f.AscendantLongitude,
			Bodies:             f.Planets,
			Dasha:              f.Dasha,
		},
		transits: transits,
	}, nil
}

// Natal returns a copy of the stored snapshot. The instant and location are ignored.
func (s *FileSource) Natal(ctx context.Context, _ time.Time, _, _ float64) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, unavailable("natal", err)
	}
	snap := s.snapshot
	snap.Bodies = append([]Body(nil), s.snapshot.Bodies...)
	if s.snapshot.AscendantLongitude != nil {
		asc := *s.snapshot.AscendantLongitude
		snap.AscendantLongitude = &asc
	}
	if s.snapshot.Dasha != nil {
		d := *s.snapshot.Dasha
		snap.Dasha = &d
	}
	return &snap, nil
}

// Current returns the stored transit positions.
func (s *FileSource) Current(ctx context.Context, _ time.Time) ([]Body, error) {
	if err := ctx.Err(); err != nil {
		return nil, unavailable("planets", err)
	}
	return append([]Body(nil), s.transits...), nil
}

// Close is a no-op for the file source.
func (s *FileSource) Close() error { return nil }

// Path returns the file the snapshot was read from.
func (s *FileSource) Path() string { return s.path }

// Open returns the Source for rawURL:
//
//	http://host:port, https://...   HTTPSource
//	grpc://host:port                GRPCSource
//	file:///path, or a bare path    FileSource
func Open(rawURL string, timeout time.Duration) (Source, error) {
	if rawURL == "" {
		return nil, fmt.Errorf("ephemeris URL is empty")
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parsing ephemeris URL: %w", err)
	}
	switch u.Scheme {
	case "http", "https":
		return NewHTTPSource(rawURL, timeout), nil
	case "grpc":
		src, err := NewGRPCSource(u.Host, timeout)
		if err != nil {
			return nil, err
		}
		return src, nil
	case "file", "":
		path := u.Path
		if u.Scheme == "" {
			path = rawURL
		}
		src, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		return src, nil
	default:
		return nil, fmt.Errorf("unsupported ephemeris scheme %q", u.Scheme)
	}
}
