package testutil

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sana-bil/My-Spotify-Wrapped-ETL/pkg/contracts/domain"
)

// HistoryFixtures builds streaming history test data and writes export files
// into a test directory.
type HistoryFixtures struct {
	DataDir string
}

// NewHistoryFixtures creates a fixtures manager rooted at dataDir, normally
// t.TempDir().
func NewHistoryFixtures(dataDir string) *HistoryFixtures {
	return &HistoryFixtures{DataDir: dataDir}
}

// CompletedPlay returns a fully played record at the given instant.
func (f *HistoryFixtures) CompletedPlay(ts, track, artist, album string, msPlayed int64) domain.RawPlay {
	return domain.RawPlay{
		TS:          strPtr(ts),
		TrackName:   strPtr(track),
		ArtistName:  strPtr(artist),
		AlbumName:   strPtr(album),
		MSPlayed:    int64Ptr(msPlayed),
		Skipped:     boolPtr(false),
		Shuffle:     boolPtr(true),
		Offline:     boolPtr(false),
		Incognito:   boolPtr(false),
		Platform:    strPtr("android"),
		ConnCountry: strPtr("DE"),
		ReasonEnd:   strPtr("trackdone"),
	}
}

// SkippedPlay returns a record that was skipped after msPlayed milliseconds.
func (f *HistoryFixtures) SkippedPlay(ts, track, artist string, msPlayed int64) domain.RawPlay {
	return domain.RawPlay{
		TS:          strPtr(ts),
		TrackName:   strPtr(track),
		ArtistName:  strPtr(artist),
		AlbumName:   strPtr("Singles"),
		MSPlayed:    int64Ptr(msPlayed),
		Skipped:     boolPtr(true),
		Shuffle:     boolPtr(false),
		Offline:     boolPtr(false),
		Incognito:   boolPtr(false),
		Platform:    strPtr("ios"),
		ConnCountry: strPtr("DE"),
		ReasonEnd:   strPtr("fwdbtn"),
	}
}

// UnnamedPlay returns a record without track metadata, the shape podcast and
// audiobook rows take in real exports. Normalization must drop it.
func (f *HistoryFixtures) UnnamedPlay(ts string, msPlayed int64) domain.RawPlay {
	return domain.RawPlay{
		TS:        strPtr(ts),
		MSPlayed:  int64Ptr(msPlayed),
		Skipped:   boolPtr(false),
		Platform:  strPtr("android"),
		ReasonEnd: strPtr("trackdone"),
	}
}

// SampleHistory returns a small export for the given year that covers every
// cleaning path: an off-year record, a record without metadata, an exact
// duplicate, and a mix of skips and completions across two days.
func (f *HistoryFixtures) SampleHistory(year int) []domain.RawPlay {
	jan5 := func(hhmmss string) string {
		return fmt.Sprintf("%d-01-05T%sZ", year, hhmmss)
	}
	feb2 := func(hhmmss string) string {
		return fmt.Sprintf("%d-02-02T%sZ", year, hhmmss)
	}

	duplicate := f.CompletedPlay(jan5("08:00:00"), "Dreamers", "Aurora", "Dawn", 240000)

	return []domain.RawPlay{
		// Previous-year record, filtered out before cleaning
		f.CompletedPlay(fmt.Sprintf("%d-12-31T23:50:00Z", year-1), "Old Year", "Aurora", "Dawn", 180000),
		duplicate,
		duplicate,
		f.SkippedPlay(jan5("08:10:00"), "Dreamers", "Aurora", 15000),
		f.UnnamedPlay(jan5("09:00:00"), 1200000),
		f.CompletedPlay(feb2("21:30:00"), "Night Drive", "Kavinsky", "OutRun", 300000),
		f.SkippedPlay(feb2("21:40:00"), "Night Drive", "Kavinsky", 30000),
		f.CompletedPlay(feb2("22:00:00"), "Nightcall", "Kavinsky", "OutRun", 255000),
	}
}

// WriteHistoryFile marshals plays into a JSON export file under DataDir and
// returns its path.
func (f *HistoryFixtures) WriteHistoryFile(name string, plays []domain.RawPlay) (string, error) {
	data, err := json.MarshalIndent(plays, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal history: %w", err)
	}

	path := filepath.Join(f.DataDir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write history file: %w", err)
	}
	return path, nil
}

func strPtr(s string) *string { return &s }

func int64Ptr(i int64) *int64 { return &i }

func boolPtr(b bool) *bool { return &b }
