package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawPlayYear(t *testing.T) {
	tests := []struct {
		name     string
		ts       *string
		wantYear int
		wantOK   bool
	}{
		{
			name:     "full timestamp",
			ts:       strPtr("2025-03-15T14:30:00Z"),
			wantYear: 2025,
			wantOK:   true,
		},
		{
			name:     "year prefix only",
			ts:       strPtr("2024"),
			wantYear: 2024,
			wantOK:   true,
		},
		{
			name:   "absent timestamp",
			ts:     nil,
			wantOK: false,
		},
		{
			name:   "too short",
			ts:     strPtr("202"),
			wantOK: false,
		},
		{
			name:   "empty string",
			ts:     strPtr(""),
			wantOK: false,
		},
		{
			name:   "non numeric prefix",
			ts:     strPtr("20x5-03-15T14:30:00Z"),
			wantOK: false,
		},
		{
			name:   "garbage",
			ts:     strPtr("not-a-timestamp"),
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := RawPlay{TS: tt.ts}
			year, ok := raw.Year()
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantYear, year)
			}
		})
	}
}

func TestRawPlayDecoding(t *testing.T) {
	t.Run("absent fields stay nil", func(t *testing.T) {
		var raw RawPlay
		require.NoError(t, json.Unmarshal([]byte(`{"ts":"2025-01-01T00:00:00Z"}`), &raw))

		require.NotNil(t, raw.TS)
		assert.Equal(t, "2025-01-01T00:00:00Z", *raw.TS)
		assert.Nil(t, raw.TrackName)
		assert.Nil(t, raw.ArtistName)
		assert.Nil(t, raw.MSPlayed)
		assert.Nil(t, raw.Skipped)
	})

	t.Run("export field names map to short names", func(t *testing.T) {
		payload := `{
			"ts": "2025-01-01T00:00:00Z",
			"master_metadata_track_name": "Dreamers",
			"master_metadata_album_artist_name": "Aurora",
			"master_metadata_album_album_name": "Dawn",
			"ms_played": 240000,
			"skipped": false,
			"incognito_mode": true
		}`
		var raw RawPlay
		require.NoError(t, json.Unmarshal([]byte(payload), &raw))

		require.NotNil(t, raw.TrackName)
		assert.Equal(t, "Dreamers", *raw.TrackName)
		require.NotNil(t, raw.ArtistName)
		assert.Equal(t, "Aurora", *raw.ArtistName)
		require.NotNil(t, raw.MSPlayed)
		assert.Equal(t, int64(240000), *raw.MSPlayed)
		require.NotNil(t, raw.Incognito)
		assert.True(t, *raw.Incognito)
	})

	t.Run("unknown export fields are dropped", func(t *testing.T) {
		payload := `{"ts":"2025-01-01T00:00:00Z","episode_name":"Some Podcast","audiobook_title":"x"}`
		var raw RawPlay
		require.NoError(t, json.Unmarshal([]byte(payload), &raw))
		assert.Nil(t, raw.TrackName)
	})
}

func strPtr(s string) *string { return &s }
