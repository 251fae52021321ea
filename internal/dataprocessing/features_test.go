package dataprocessing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/sana-bil/My-Spotify-Wrapped-ETL/internal/errors"
	"github.com/sana-bil/My-Spotify-Wrapped-ETL/pkg/contracts/domain"
)

func TestEnrich(t *testing.T) {
	// 2025-03-15 is a Saturday in ISO week 11.
	plays := []domain.Play{{
		TS:         "2025-03-15T14:30:45Z",
		TrackName:  "Track",
		ArtistName: "Artist",
		MSPlayed:   180000,
	}}

	enriched, err := Enrich(context.Background(), plays)
	require.NoError(t, err)
	require.Len(t, enriched, 1)

	e := enriched[0]
	assert.Equal(t, time.Date(2025, 3, 15, 14, 30, 45, 0, time.UTC), e.PlayedAt)
	assert.Equal(t, "2025-03-15", e.Date)
	assert.Equal(t, 14, e.Hour)
	assert.Equal(t, "Saturday", e.DayName)
	assert.Equal(t, 5, e.DayOfWeek)
	assert.Equal(t, 11, e.WeekNumber)
	assert.Equal(t, 3, e.Month)
	assert.Equal(t, "March", e.MonthName)
	assert.Equal(t, 3.0, e.MinutesPlayed)
	assert.Equal(t, 1, e.WasCompleted)
	assert.Equal(t, 0, e.WasSkipped)

	// The normalized fields ride along unchanged.
	assert.Equal(t, "Track", e.TrackName)
	assert.Equal(t, "Artist", e.ArtistName)
}

func TestEnrich_NumericOffsetNormalizedToUTC(t *testing.T) {
	plays := []domain.Play{{
		TS:         "2025-06-01T10:00:00+02:00",
		TrackName:  "Track",
		ArtistName: "Artist",
	}}

	enriched, err := Enrich(context.Background(), plays)
	require.NoError(t, err)
	require.Len(t, enriched, 1)

	e := enriched[0]
	assert.Equal(t, "2025-06-01", e.Date)
	assert.Equal(t, 8, e.Hour)
	assert.Equal(t, time.UTC, e.PlayedAt.Location())
}

func TestEnrich_SkippedFlags(t *testing.T) {
	plays := []domain.Play{
		{TS: "2025-01-01T10:00:00Z", TrackName: "A", ArtistName: "X", Skipped: false},
		{TS: "2025-01-01T11:00:00Z", TrackName: "B", ArtistName: "X", Skipped: true},
	}

	enriched, err := Enrich(context.Background(), plays)
	require.NoError(t, err)
	require.Len(t, enriched, 2)

	assert.Equal(t, 1, enriched[0].WasCompleted)
	assert.Equal(t, 0, enriched[0].WasSkipped)
	assert.Equal(t, 0, enriched[1].WasCompleted)
	assert.Equal(t, 1, enriched[1].WasSkipped)

	// Complementary flags always sum to one.
	for _, e := range enriched {
		assert.Equal(t, 1, e.WasCompleted+e.WasSkipped)
	}
}

func TestEnrich_FractionalAndZeroMinutes(t *testing.T) {
	plays := []domain.Play{
		{TS: "2025-01-01T10:00:00Z", TrackName: "A", ArtistName: "X", MSPlayed: 90500},
		{TS: "2025-01-01T11:00:00Z", TrackName: "B", ArtistName: "X", MSPlayed: 0},
	}

	enriched, err := Enrich(context.Background(), plays)
	require.NoError(t, err)
	require.Len(t, enriched, 2)

	assert.InDelta(t, 1.5083, enriched[0].MinutesPlayed, 0.0001)
	assert.Equal(t, 0.0, enriched[1].MinutesPlayed)
}

func TestEnrich_UnparsableTimestampFatal(t *testing.T) {
	plays := []domain.Play{
		{TS: "2025-01-01T10:00:00Z", TrackName: "Fine", ArtistName: "X"},
		{TS: "2025-13-45T99:99:99Z", TrackName: "Broken", ArtistName: "X"},
	}

	enriched, err := Enrich(context.Background(), plays)

	require.Error(t, err)
	assert.Nil(t, enriched)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeParsing))
	assert.Contains(t, err.Error(), "2025-13-45T99:99:99Z")
}

func TestMondayIndex(t *testing.T) {
	tests := []struct {
		day  time.Weekday
		want int
	}{
		{time.Monday, 0},
		{time.Tuesday, 1},
		{time.Wednesday, 2},
		{time.Thursday, 3},
		{time.Friday, 4},
		{time.Saturday, 5},
		{time.Sunday, 6},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, mondayIndex(tt.day), "weekday %s", tt.day)
	}
}

func TestEnrich_WeekNumberAtYearBoundary(t *testing.T) {
	// 2025-12-29 is a Monday and already belongs to ISO week 1 of 2026.
	plays := []domain.Play{{
		TS:         "2025-12-29T09:00:00Z",
		TrackName:  "Track",
		ArtistName: "Artist",
	}}

	enriched, err := Enrich(context.Background(), plays)
	require.NoError(t, err)
	require.Len(t, enriched, 1)

	assert.Equal(t, 1, enriched[0].WeekNumber)
	assert.Equal(t, "Monday", enriched[0].DayName)
	assert.Equal(t, 0, enriched[0].DayOfWeek)
}
