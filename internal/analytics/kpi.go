package analytics

import (
	"github.com/sana-bil/My-Spotify-Wrapped-ETL/pkg/contracts/domain"
)

// KPISet holds the scalar indicators for one listening year. Ratio fields are
// unrounded; presentation formatting is left to the report and the exporters.
// AvgDailyMinutes is NaN when the year has no listening days.
type KPISet struct {
	TotalMinutes    float64 `json:"total_minutes"`
	TotalHours      float64 `json:"total_hours"`
	TotalTracks     int     `json:"total_tracks"`
	UniqueArtists   int     `json:"unique_artists"`
	UniqueTracks    int     `json:"unique_tracks"`
	SkipRate        float64 `json:"skip_rate"`
	CompletionRate  float64 `json:"completion_rate"`
	ListeningDays   int     `json:"listening_days"`
	AvgDailyMinutes float64 `json:"avg_daily_minutes"`
}

// ComputeKPIs derives the scalar indicators from the enriched set in a single
// pass. Unique tracks are counted by title alone, unlike the track summary
// which keys on the (track, artist) pair.
func ComputeKPIs(plays []domain.EnrichedPlay) KPISet {
	var (
		minutes float64
		skips   int
		artists = make(map[string]struct{})
		titles  = make(map[string]struct{})
		days    = make(map[string]struct{})
	)

	for _, p := range plays {
		minutes += p.MinutesPlayed
		skips += p.WasSkipped
		artists[p.ArtistName] = struct{}{}
		titles[p.TrackName] = struct{}{}
		days[p.Date] = struct{}{}
	}

	total := len(plays)

	return KPISet{
		TotalMinutes:    minutes,
		TotalHours:      minutes / 60,
		TotalTracks:     total,
		UniqueArtists:   len(artists),
		UniqueTracks:    len(titles),
		SkipRate:        percentOf(skips, total),
		CompletionRate:  percentOf(total-skips, total),
		ListeningDays:   len(days),
		AvgDailyMinutes: minutes / float64(len(days)),
	}
}
