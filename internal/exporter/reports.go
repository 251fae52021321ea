package exporter

import (
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/sana-bil/My-Spotify-Wrapped-ETL/internal/analytics"
	"github.com/sana-bil/My-Spotify-Wrapped-ETL/internal/config"
	apperrors "github.com/sana-bil/My-Spotify-Wrapped-ETL/internal/errors"
	"github.com/sana-bil/My-Spotify-Wrapped-ETL/pkg/contracts/domain"
)

// Column headers for the report files. Order is part of the file contract.
var (
	dailySummaryHeaders = []string{
		"date", "total_minutes", "tracks_played", "skips", "completions",
		"unique_artists", "skip_rate", "hours_played",
	}
	artistSummaryHeaders = []string{
		"artist_name", "total_minutes", "track_count", "plays", "skips",
		"first_play", "last_play", "skip_rate", "hours_played",
	}
	trackSummaryHeaders = []string{
		"track_name", "artist_name", "total_minutes", "play_count", "skips",
		"completions", "first_play", "last_play", "skip_rate",
	}
	hourlyPatternHeaders = []string{
		"hour", "total_minutes", "track_count", "skips", "unique_artists",
		"avg_minutes_per_session", "skip_rate",
	}
	weeklyPatternHeaders = []string{
		"day_name", "total_minutes", "track_count", "skips", "unique_artists",
		"skip_rate", "day_order",
	}
	monthlyProgressionHeaders = []string{
		"month", "total_minutes", "tracks_played", "skips", "unique_artists",
		"unique_tracks", "days_with_listening", "hours_played", "skip_rate",
		"month_name",
	}
	platformDistributionHeaders = []string{
		"platform", "total_minutes", "track_count", "percentage",
	}
	rawDataHeaders = []string{
		"ts", "track_name", "artist_name", "album_name", "ms_played",
		"skipped", "shuffle", "offline", "incognito_mode", "platform",
		"conn_country", "reason_end", "played_at", "date", "hour", "day_name",
		"day_of_week", "week_number", "month", "month_name", "minutes_played",
		"was_completed", "was_skipped",
	}
)

// ReportExporter writes the aggregate tables and the enriched event set to
// the output directory. Every write failure is a storage error; the caller
// treats the first failure as fatal and skips the remaining files.
type ReportExporter struct {
	paths *config.Paths
	csv   *CSVWriter
}

// NewReportExporter creates a report exporter rooted at the configured paths.
func NewReportExporter(paths *config.Paths) *ReportExporter {
	return &ReportExporter{paths: paths, csv: NewCSVWriter(paths)}
}

// WriteDailySummary writes daily_summary.csv.
func (e *ReportExporter) WriteDailySummary(rows []analytics.DailySummaryRow) error {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			r.Date,
			formatMinutes(r.TotalMinutes),
			formatInt(r.TracksPlayed),
			formatInt(r.Skips),
			formatInt(r.Completions),
			formatInt(r.UniqueArtists),
			formatFloat(r.SkipRate),
			formatFloat(r.HoursPlayed),
		})
	}
	return e.write(config.DailySummaryCSV, dailySummaryHeaders, records)
}

// WriteArtistSummary writes artist_summary.csv.
func (e *ReportExporter) WriteArtistSummary(rows []analytics.ArtistSummaryRow) error {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			r.ArtistName,
			formatMinutes(r.TotalMinutes),
			formatInt(r.TrackCount),
			formatInt(r.Plays),
			formatInt(r.Skips),
			r.FirstPlay,
			r.LastPlay,
			formatFloat(r.SkipRate),
			formatFloat(r.HoursPlayed),
		})
	}
	return e.write(config.ArtistSummaryCSV, artistSummaryHeaders, records)
}

// WriteTrackSummary writes track_summary.csv.
func (e *ReportExporter) WriteTrackSummary(rows []analytics.TrackSummaryRow) error {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			r.TrackName,
			r.ArtistName,
			formatMinutes(r.TotalMinutes),
			formatInt(r.PlayCount),
			formatInt(r.Skips),
			formatInt(r.Completions),
			r.FirstPlay,
			r.LastPlay,
			formatFloat(r.SkipRate),
		})
	}
	return e.write(config.TrackSummaryCSV, trackSummaryHeaders, records)
}

// WriteHourlyPattern writes hourly_pattern.csv.
func (e *ReportExporter) WriteHourlyPattern(rows []analytics.HourlyPatternRow) error {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			formatInt(r.Hour),
			formatMinutes(r.TotalMinutes),
			formatInt(r.TrackCount),
			formatInt(r.Skips),
			formatInt(r.UniqueArtists),
			formatFloat(r.AvgMinutesPerSession),
			formatFloat(r.SkipRate),
		})
	}
	return e.write(config.HourlyPatternCSV, hourlyPatternHeaders, records)
}

// WriteWeeklyPattern writes weekly_pattern.csv.
func (e *ReportExporter) WriteWeeklyPattern(rows []analytics.WeeklyPatternRow) error {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			r.DayName,
			formatMinutes(r.TotalMinutes),
			formatInt(r.TrackCount),
			formatInt(r.Skips),
			formatInt(r.UniqueArtists),
			formatFloat(r.SkipRate),
			formatInt(r.DayOrder),
		})
	}
	return e.write(config.WeeklyPatternCSV, weeklyPatternHeaders, records)
}

// WriteMonthlyProgression writes monthly_progression.csv.
func (e *ReportExporter) WriteMonthlyProgression(rows []analytics.MonthlyProgressionRow) error {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			formatInt(r.Month),
			formatMinutes(r.TotalMinutes),
			formatInt(r.TracksPlayed),
			formatInt(r.Skips),
			formatInt(r.UniqueArtists),
			formatInt(r.UniqueTracks),
			formatInt(r.DaysWithListening),
			formatFloat(r.HoursPlayed),
			formatFloat(r.SkipRate),
			r.MonthName,
		})
	}
	return e.write(config.MonthlyProgressionCSV, monthlyProgressionHeaders, records)
}

// WritePlatformDistribution writes platform_distribution.csv.
func (e *ReportExporter) WritePlatformDistribution(rows []analytics.PlatformDistributionRow) error {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			r.Platform,
			formatMinutes(r.TotalMinutes),
			formatInt(r.TrackCount),
			formatFloat(r.Percentage),
		})
	}
	return e.write(config.PlatformDistributionCSV, platformDistributionHeaders, records)
}

// WriteRawData streams the full enriched event set to the configured
// raw_data_<year>.csv path.
func (e *ReportExporter) WriteRawData(plays []domain.EnrichedPlay) error {
	fileName := filepath.Base(e.paths.RawDataCSV)

	stream, err := e.csv.CreateStreamWriter(e.paths.RawDataCSV, rawDataHeaders)
	if err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("failed to create %s", fileName), err)
	}

	for _, p := range plays {
		record := []string{
			p.TS,
			p.TrackName,
			p.ArtistName,
			p.AlbumName,
			strconv.FormatInt(p.MSPlayed, 10),
			formatBool(p.Skipped),
			formatBool(p.Shuffle),
			formatBool(p.Offline),
			formatBool(p.Incognito),
			p.Platform,
			p.ConnCountry,
			p.ReasonEnd,
			p.PlayedAt.Format(time.RFC3339),
			p.Date,
			formatInt(p.Hour),
			p.DayName,
			formatInt(p.DayOfWeek),
			formatInt(p.WeekNumber),
			formatInt(p.Month),
			p.MonthName,
			formatMinutes(p.MinutesPlayed),
			formatInt(p.WasCompleted),
			formatInt(p.WasSkipped),
		}
		if err := stream.WriteRecord(record); err != nil {
			stream.Close()
			return apperrors.NewStorageError(fmt.Sprintf("failed to write %s", fileName), err)
		}
	}

	if err := stream.Close(); err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("failed to finalize %s", fileName), err)
	}
	return nil
}

// write runs one table through the CSV writer and wraps any failure as a
// storage error naming the file.
func (e *ReportExporter) write(fileName string, headers []string, records [][]string) error {
	if err := e.csv.WriteSimpleCSV(fileName, headers, records); err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("failed to write %s", fileName), err)
	}
	return nil
}
