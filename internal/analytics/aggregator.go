package analytics

import (
	"math"
	"sort"

	"github.com/sana-bil/My-Spotify-Wrapped-ETL/pkg/contracts/domain"
)

// Round2 rounds to two decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// percentOf returns part/whole*100. The zero denominator is deliberately not
// guarded: 0/0 yields NaN, which flows through rounding and serialization
// unchanged as the documented division-by-zero behavior.
func percentOf(part, whole int) float64 {
	return float64(part) / float64(whole) * 100
}

// BuildTables computes all seven aggregate tables from the enriched set.
// Each table is an independent pass over the same slice; no table reads
// another.
func BuildTables(plays []domain.EnrichedPlay) Tables {
	return Tables{
		Daily:    BuildDailySummary(plays),
		Artists:  BuildArtistSummary(plays),
		Tracks:   BuildTrackSummary(plays),
		Hourly:   BuildHourlyPattern(plays),
		Weekly:   BuildWeeklyPattern(plays),
		Monthly:  BuildMonthlyProgression(plays),
		Platform: BuildPlatformDistribution(plays),
	}
}

// BuildDailySummary groups plays by calendar date, ascending.
func BuildDailySummary(plays []domain.EnrichedPlay) []DailySummaryRow {
	type accum struct {
		minutes     float64
		tracks      int
		skips       int
		completions int
		artists     map[string]struct{}
	}

	accums := make(map[string]*accum)
	order := make([]string, 0)
	for _, p := range plays {
		a, ok := accums[p.Date]
		if !ok {
			a = &accum{artists: make(map[string]struct{})}
			accums[p.Date] = a
			order = append(order, p.Date)
		}
		a.minutes += p.MinutesPlayed
		a.tracks++
		a.skips += p.WasSkipped
		a.completions += p.WasCompleted
		a.artists[p.ArtistName] = struct{}{}
	}

	rows := make([]DailySummaryRow, 0, len(order))
	for _, date := range order {
		a := accums[date]
		rows = append(rows, DailySummaryRow{
			Date:          date,
			TotalMinutes:  a.minutes,
			TracksPlayed:  a.tracks,
			Skips:         a.skips,
			Completions:   a.completions,
			UniqueArtists: len(a.artists),
			SkipRate:      Round2(percentOf(a.skips, a.tracks)),
			HoursPlayed:   Round2(a.minutes / 60),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Date < rows[j].Date })
	return rows
}

// BuildArtistSummary groups plays by artist, most listened first. Ties keep
// first-appearance order.
func BuildArtistSummary(plays []domain.EnrichedPlay) []ArtistSummaryRow {
	type accum struct {
		minutes   float64
		tracks    map[string]struct{}
		plays     int
		skips     int
		firstPlay string
		lastPlay  string
	}

	accums := make(map[string]*accum)
	order := make([]string, 0)
	for _, p := range plays {
		a, ok := accums[p.ArtistName]
		if !ok {
			a = &accum{
				tracks:    make(map[string]struct{}),
				firstPlay: p.Date,
				lastPlay:  p.Date,
			}
			accums[p.ArtistName] = a
			order = append(order, p.ArtistName)
		}
		a.minutes += p.MinutesPlayed
		a.tracks[p.TrackName] = struct{}{}
		a.plays++
		a.skips += p.WasSkipped
		if p.Date < a.firstPlay {
			a.firstPlay = p.Date
		}
		if p.Date > a.lastPlay {
			a.lastPlay = p.Date
		}
	}

	rows := make([]ArtistSummaryRow, 0, len(order))
	for _, artist := range order {
		a := accums[artist]
		rows = append(rows, ArtistSummaryRow{
			ArtistName:   artist,
			TotalMinutes: a.minutes,
			TrackCount:   len(a.tracks),
			Plays:        a.plays,
			Skips:        a.skips,
			FirstPlay:    a.firstPlay,
			LastPlay:     a.lastPlay,
			SkipRate:     Round2(percentOf(a.skips, a.plays)),
			HoursPlayed:  Round2(a.minutes / 60),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].TotalMinutes > rows[j].TotalMinutes })
	return rows
}

// trackKey identifies a track by its (title, artist) pair.
type trackKey struct {
	track  string
	artist string
}

// BuildTrackSummary groups plays by (track, artist), most listened first.
func BuildTrackSummary(plays []domain.EnrichedPlay) []TrackSummaryRow {
	type accum struct {
		minutes     float64
		plays       int
		skips       int
		completions int
		firstPlay   string
		lastPlay    string
	}

	accums := make(map[trackKey]*accum)
	order := make([]trackKey, 0)
	for _, p := range plays {
		key := trackKey{track: p.TrackName, artist: p.ArtistName}
		a, ok := accums[key]
		if !ok {
			a = &accum{firstPlay: p.Date, lastPlay: p.Date}
			accums[key] = a
			order = append(order, key)
		}
		a.minutes += p.MinutesPlayed
		a.plays++
		a.skips += p.WasSkipped
		a.completions += p.WasCompleted
		if p.Date < a.firstPlay {
			a.firstPlay = p.Date
		}
		if p.Date > a.lastPlay {
			a.lastPlay = p.Date
		}
	}

	rows := make([]TrackSummaryRow, 0, len(order))
	for _, key := range order {
		a := accums[key]
		rows = append(rows, TrackSummaryRow{
			TrackName:    key.track,
			ArtistName:   key.artist,
			TotalMinutes: a.minutes,
			PlayCount:    a.plays,
			Skips:        a.skips,
			Completions:  a.completions,
			FirstPlay:    a.firstPlay,
			LastPlay:     a.lastPlay,
			SkipRate:     Round2(percentOf(a.skips, a.plays)),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].TotalMinutes > rows[j].TotalMinutes })
	return rows
}

// BuildHourlyPattern groups plays by hour of day, ascending 0-23. Hours with
// no listening produce no row.
func BuildHourlyPattern(plays []domain.EnrichedPlay) []HourlyPatternRow {
	type accum struct {
		minutes float64
		tracks  int
		skips   int
		artists map[string]struct{}
	}

	accums := make(map[int]*accum)
	order := make([]int, 0)
	for _, p := range plays {
		a, ok := accums[p.Hour]
		if !ok {
			a = &accum{artists: make(map[string]struct{})}
			accums[p.Hour] = a
			order = append(order, p.Hour)
		}
		a.minutes += p.MinutesPlayed
		a.tracks++
		a.skips += p.WasSkipped
		a.artists[p.ArtistName] = struct{}{}
	}

	rows := make([]HourlyPatternRow, 0, len(order))
	for _, hour := range order {
		a := accums[hour]
		rows = append(rows, HourlyPatternRow{
			Hour:                 hour,
			TotalMinutes:         a.minutes,
			TrackCount:           a.tracks,
			Skips:                a.skips,
			UniqueArtists:        len(a.artists),
			AvgMinutesPerSession: Round2(a.minutes / float64(a.tracks)),
			SkipRate:             Round2(percentOf(a.skips, a.tracks)),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Hour < rows[j].Hour })
	return rows
}

// BuildWeeklyPattern groups plays by weekday, ordered Monday through Sunday
// by the weekday index, never alphabetically.
func BuildWeeklyPattern(plays []domain.EnrichedPlay) []WeeklyPatternRow {
	type accum struct {
		minutes  float64
		tracks   int
		skips    int
		artists  map[string]struct{}
		dayOrder int
	}

	accums := make(map[string]*accum)
	order := make([]string, 0)
	for _, p := range plays {
		a, ok := accums[p.DayName]
		if !ok {
			a = &accum{artists: make(map[string]struct{}), dayOrder: p.DayOfWeek}
			accums[p.DayName] = a
			order = append(order, p.DayName)
		}
		a.minutes += p.MinutesPlayed
		a.tracks++
		a.skips += p.WasSkipped
		a.artists[p.ArtistName] = struct{}{}
	}

	rows := make([]WeeklyPatternRow, 0, len(order))
	for _, day := range order {
		a := accums[day]
		rows = append(rows, WeeklyPatternRow{
			DayName:       day,
			TotalMinutes:  a.minutes,
			TrackCount:    a.tracks,
			Skips:         a.skips,
			UniqueArtists: len(a.artists),
			SkipRate:      Round2(percentOf(a.skips, a.tracks)),
			DayOrder:      a.dayOrder,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].DayOrder < rows[j].DayOrder })
	return rows
}

// BuildMonthlyProgression groups plays by calendar month, ascending.
func BuildMonthlyProgression(plays []domain.EnrichedPlay) []MonthlyProgressionRow {
	type accum struct {
		minutes   float64
		tracks    int
		skips     int
		artists   map[string]struct{}
		titles    map[string]struct{}
		days      map[string]struct{}
		monthName string
	}

	accums := make(map[int]*accum)
	order := make([]int, 0)
	for _, p := range plays {
		a, ok := accums[p.Month]
		if !ok {
			a = &accum{
				artists:   make(map[string]struct{}),
				titles:    make(map[string]struct{}),
				days:      make(map[string]struct{}),
				monthName: p.MonthName,
			}
			accums[p.Month] = a
			order = append(order, p.Month)
		}
		a.minutes += p.MinutesPlayed
		a.tracks++
		a.skips += p.WasSkipped
		a.artists[p.ArtistName] = struct{}{}
		a.titles[p.TrackName] = struct{}{}
		a.days[p.Date] = struct{}{}
	}

	rows := make([]MonthlyProgressionRow, 0, len(order))
	for _, month := range order {
		a := accums[month]
		rows = append(rows, MonthlyProgressionRow{
			Month:             month,
			TotalMinutes:      a.minutes,
			TracksPlayed:      a.tracks,
			Skips:             a.skips,
			UniqueArtists:     len(a.artists),
			UniqueTracks:      len(a.titles),
			DaysWithListening: len(a.days),
			HoursPlayed:       Round2(a.minutes / 60),
			SkipRate:          Round2(percentOf(a.skips, a.tracks)),
			MonthName:         a.monthName,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Month < rows[j].Month })
	return rows
}

// BuildPlatformDistribution groups plays by platform, most played first.
// Percentage is each platform's share of the total play count, so the column
// sums to 100 up to rounding.
func BuildPlatformDistribution(plays []domain.EnrichedPlay) []PlatformDistributionRow {
	type accum struct {
		minutes float64
		tracks  int
	}

	accums := make(map[string]*accum)
	order := make([]string, 0)
	for _, p := range plays {
		a, ok := accums[p.Platform]
		if !ok {
			a = &accum{}
			accums[p.Platform] = a
			order = append(order, p.Platform)
		}
		a.minutes += p.MinutesPlayed
		a.tracks++
	}

	rows := make([]PlatformDistributionRow, 0, len(order))
	for _, platform := range order {
		a := accums[platform]
		rows = append(rows, PlatformDistributionRow{
			Platform:     platform,
			TotalMinutes: a.minutes,
			TrackCount:   a.tracks,
			Percentage:   Round2(percentOf(a.tracks, len(plays))),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].TrackCount > rows[j].TrackCount })
	return rows
}
