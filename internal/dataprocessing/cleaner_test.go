package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sana-bil/My-Spotify-Wrapped-ETL/pkg/contracts/domain"
)

func stringPtr(s string) *string { return &s }
func int64Ptr(n int64) *int64    { return &n }
func boolPtr(b bool) *bool       { return &b }

// rawRecord builds a minimal valid raw play for cleaning tests.
func rawRecord(ts, track, artist string) domain.RawPlay {
	return domain.RawPlay{
		TS:         stringPtr(ts),
		TrackName:  stringPtr(track),
		ArtistName: stringPtr(artist),
	}
}

func TestFilterYear(t *testing.T) {
	tests := []struct {
		name      string
		plays     []domain.RawPlay
		year      int
		wantCount int
		wantFirst string
	}{
		{
			name: "keeps only target year",
			plays: []domain.RawPlay{
				rawRecord("2024-12-31T23:59:00Z", "Old", "Artist"),
				rawRecord("2025-01-01T00:01:00Z", "New", "Artist"),
				rawRecord("2026-01-01T00:01:00Z", "Future", "Artist"),
			},
			year:      2025,
			wantCount: 1,
			wantFirst: "2025-01-01T00:01:00Z",
		},
		{
			name: "missing timestamp excluded",
			plays: []domain.RawPlay{
				{TrackName: stringPtr("No TS"), ArtistName: stringPtr("Artist")},
				rawRecord("2025-03-01T12:00:00Z", "Has TS", "Artist"),
			},
			year:      2025,
			wantCount: 1,
			wantFirst: "2025-03-01T12:00:00Z",
		},
		{
			name: "short timestamp excluded",
			plays: []domain.RawPlay{
				rawRecord("202", "Short", "Artist"),
			},
			year:      2025,
			wantCount: 0,
		},
		{
			name: "non numeric prefix excluded",
			plays: []domain.RawPlay{
				rawRecord("abcd-01-01T00:00:00Z", "Garbage", "Artist"),
				rawRecord("20x5-01-01T00:00:00Z", "Garbage", "Artist"),
			},
			year:      2025,
			wantCount: 0,
		},
		{
			name:      "empty input",
			plays:     nil,
			year:      2025,
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterYear(tt.plays, tt.year)
			assert.Len(t, got, tt.wantCount)
			if tt.wantFirst != "" {
				require.NotEmpty(t, got)
				assert.Equal(t, tt.wantFirst, *got[0].TS)
			}
		})
	}
}

func TestFilterYear_PreservesOrder(t *testing.T) {
	plays := []domain.RawPlay{
		rawRecord("2025-01-03T00:00:00Z", "Third", "A"),
		rawRecord("2025-01-01T00:00:00Z", "First", "A"),
		rawRecord("2024-06-01T00:00:00Z", "Other year", "A"),
		rawRecord("2025-01-02T00:00:00Z", "Second", "A"),
	}

	got := FilterYear(plays, 2025)

	require.Len(t, got, 3)
	assert.Equal(t, "Third", *got[0].TrackName)
	assert.Equal(t, "First", *got[1].TrackName)
	assert.Equal(t, "Second", *got[2].TrackName)
}

func TestNormalize(t *testing.T) {
	t.Run("drops records missing track or artist", func(t *testing.T) {
		plays := []domain.RawPlay{
			rawRecord("2025-01-01T10:00:00Z", "Keep Me", "Artist"),
			{TS: stringPtr("2025-01-01T11:00:00Z"), ArtistName: stringPtr("No Track")},
			{TS: stringPtr("2025-01-01T12:00:00Z"), TrackName: stringPtr("No Artist")},
			{TS: stringPtr("2025-01-01T13:00:00Z")},
		}

		got, stats := Normalize(plays)

		require.Len(t, got, 1)
		assert.Equal(t, "Keep Me", got[0].TrackName)
		assert.Equal(t, NormalizeStats{Input: 4, Named: 1, Unique: 1}, stats)
	})

	t.Run("absent fields default to zero values", func(t *testing.T) {
		plays := []domain.RawPlay{
			rawRecord("2025-01-01T10:00:00Z", "Track", "Artist"),
		}

		got, _ := Normalize(plays)

		require.Len(t, got, 1)
		p := got[0]
		assert.Equal(t, "", p.AlbumName)
		assert.Equal(t, int64(0), p.MSPlayed)
		assert.False(t, p.Skipped)
		assert.False(t, p.Shuffle)
		assert.False(t, p.Offline)
		assert.False(t, p.Incognito)
		assert.Equal(t, "", p.Platform)
		assert.Equal(t, "", p.ConnCountry)
		assert.Equal(t, "", p.ReasonEnd)
	})

	t.Run("carries every populated field through", func(t *testing.T) {
		plays := []domain.RawPlay{{
			TS:          stringPtr("2025-02-01T08:00:00Z"),
			TrackName:   stringPtr("Track"),
			ArtistName:  stringPtr("Artist"),
			AlbumName:   stringPtr("Album"),
			MSPlayed:    int64Ptr(123456),
			Skipped:     boolPtr(true),
			Shuffle:     boolPtr(true),
			Offline:     boolPtr(true),
			Incognito:   boolPtr(true),
			Platform:    stringPtr("ios"),
			ConnCountry: stringPtr("SE"),
			ReasonEnd:   stringPtr("fwdbtn"),
		}}

		got, _ := Normalize(plays)

		require.Len(t, got, 1)
		assert.Equal(t, domain.Play{
			TS:          "2025-02-01T08:00:00Z",
			TrackName:   "Track",
			ArtistName:  "Artist",
			AlbumName:   "Album",
			MSPlayed:    123456,
			Skipped:     true,
			Shuffle:     true,
			Offline:     true,
			Incognito:   true,
			Platform:    "ios",
			ConnCountry: "SE",
			ReasonEnd:   "fwdbtn",
		}, got[0])
	})

	t.Run("exact duplicates collapse to first occurrence", func(t *testing.T) {
		dup := domain.RawPlay{
			TS:         stringPtr("2025-01-01T10:00:00Z"),
			TrackName:  stringPtr("Repeat"),
			ArtistName: stringPtr("Artist"),
			MSPlayed:   int64Ptr(1000),
		}
		other := rawRecord("2025-01-01T10:05:00Z", "Between", "Artist")

		got, stats := Normalize([]domain.RawPlay{dup, other, dup, dup})

		require.Len(t, got, 2)
		assert.Equal(t, "Repeat", got[0].TrackName)
		assert.Equal(t, "Between", got[1].TrackName)
		assert.Equal(t, NormalizeStats{Input: 4, Named: 4, Unique: 2}, stats)
	})

	t.Run("near duplicates differing in one field are kept", func(t *testing.T) {
		a := rawRecord("2025-01-01T10:00:00Z", "Track", "Artist")
		b := rawRecord("2025-01-01T10:00:00Z", "Track", "Artist")
		b.MSPlayed = int64Ptr(5000)

		got, _ := Normalize([]domain.RawPlay{a, b})

		assert.Len(t, got, 2)
	})
}

// rawFromPlay reverses the projection so normalization can be applied twice.
func rawFromPlay(p domain.Play) domain.RawPlay {
	return domain.RawPlay{
		TS:          stringPtr(p.TS),
		TrackName:   stringPtr(p.TrackName),
		ArtistName:  stringPtr(p.ArtistName),
		AlbumName:   stringPtr(p.AlbumName),
		MSPlayed:    int64Ptr(p.MSPlayed),
		Skipped:     boolPtr(p.Skipped),
		Shuffle:     boolPtr(p.Shuffle),
		Offline:     boolPtr(p.Offline),
		Incognito:   boolPtr(p.Incognito),
		Platform:    stringPtr(p.Platform),
		ConnCountry: stringPtr(p.ConnCountry),
		ReasonEnd:   stringPtr(p.ReasonEnd),
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	plays := []domain.RawPlay{
		rawRecord("2025-01-01T10:00:00Z", "A", "X"),
		rawRecord("2025-01-01T10:00:00Z", "A", "X"),
		rawRecord("2025-01-02T10:00:00Z", "B", "Y"),
		{TS: stringPtr("2025-01-03T10:00:00Z")},
	}

	once, _ := Normalize(plays)

	raws := make([]domain.RawPlay, 0, len(once))
	for _, p := range once {
		raws = append(raws, rawFromPlay(p))
	}
	twice, _ := Normalize(raws)

	assert.Equal(t, once, twice)
}
