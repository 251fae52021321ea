package exporter

import (
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/sana-bil/My-Spotify-Wrapped-ETL/internal/analytics"
	"github.com/sana-bil/My-Spotify-Wrapped-ETL/internal/config"
	apperrors "github.com/sana-bil/My-Spotify-Wrapped-ETL/internal/errors"
)

// WorkbookExporter writes all seven aggregate tables into a single Excel
// workbook, one sheet per table, with the same headers and values as the CSV
// files.
type WorkbookExporter struct {
	paths *config.Paths
}

// NewWorkbookExporter creates a workbook exporter rooted at the configured paths.
func NewWorkbookExporter(paths *config.Paths) *WorkbookExporter {
	return &WorkbookExporter{paths: paths}
}

// WriteWorkbook writes wrapped_workbook.xlsx to the output directory.
func (e *WorkbookExporter) WriteWorkbook(tables analytics.Tables) error {
	f := excelize.NewFile()
	defer f.Close()

	sheets := []struct {
		name    string
		headers []string
		rows    [][]interface{}
	}{
		{"Daily Summary", dailySummaryHeaders, dailyCells(tables.Daily)},
		{"Artist Summary", artistSummaryHeaders, artistCells(tables.Artists)},
		{"Track Summary", trackSummaryHeaders, trackCells(tables.Tracks)},
		{"Hourly Pattern", hourlyPatternHeaders, hourlyCells(tables.Hourly)},
		{"Weekly Pattern", weeklyPatternHeaders, weeklyCells(tables.Weekly)},
		{"Monthly Progression", monthlyProgressionHeaders, monthlyCells(tables.Monthly)},
		{"Platform Distribution", platformDistributionHeaders, platformCells(tables.Platform)},
	}

	for _, sheet := range sheets {
		if _, err := f.NewSheet(sheet.name); err != nil {
			return apperrors.NewStorageError(fmt.Sprintf("failed to create sheet %s", sheet.name), err)
		}
		if err := writeSheet(f, sheet.name, sheet.headers, sheet.rows); err != nil {
			return apperrors.NewStorageError(fmt.Sprintf("failed to fill sheet %s", sheet.name), err)
		}
	}

	// Drop the default sheet created by excelize
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return apperrors.NewStorageError("failed to remove default sheet", err)
	}

	if err := f.SaveAs(e.paths.WorkbookFile); err != nil {
		return apperrors.NewStorageError("failed to write workbook", err)
	}

	slog.Info("Wrote workbook",
		slog.String("path", e.paths.WorkbookFile),
		slog.Int("sheets", len(sheets)))

	return nil
}

// writeSheet fills one sheet with a header row followed by the table rows.
func writeSheet(f *excelize.File, sheet string, headers []string, rows [][]interface{}) error {
	headerRow := make([]interface{}, len(headers))
	for i, h := range headers {
		headerRow[i] = h
	}
	if err := setRow(f, sheet, 1, headerRow); err != nil {
		return err
	}

	for i, row := range rows {
		if err := setRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

// setRow writes one row of values starting at column A.
func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func dailyCells(rows []analytics.DailySummaryRow) [][]interface{} {
	out := make([][]interface{}, 0, len(rows))
	for _, r := range rows {
		out = append(out, []interface{}{
			r.Date, r.TotalMinutes, r.TracksPlayed, r.Skips, r.Completions,
			r.UniqueArtists, r.SkipRate, r.HoursPlayed,
		})
	}
	return out
}

func artistCells(rows []analytics.ArtistSummaryRow) [][]interface{} {
	out := make([][]interface{}, 0, len(rows))
	for _, r := range rows {
		out = append(out, []interface{}{
			r.ArtistName, r.TotalMinutes, r.TrackCount, r.Plays, r.Skips,
			r.FirstPlay, r.LastPlay, r.SkipRate, r.HoursPlayed,
		})
	}
	return out
}

func trackCells(rows []analytics.TrackSummaryRow) [][]interface{} {
	out := make([][]interface{}, 0, len(rows))
	for _, r := range rows {
		out = append(out, []interface{}{
			r.TrackName, r.ArtistName, r.TotalMinutes, r.PlayCount, r.Skips,
			r.Completions, r.FirstPlay, r.LastPlay, r.SkipRate,
		})
	}
	return out
}

func hourlyCells(rows []analytics.HourlyPatternRow) [][]interface{} {
	out := make([][]interface{}, 0, len(rows))
	for _, r := range rows {
		out = append(out, []interface{}{
			r.Hour, r.TotalMinutes, r.TrackCount, r.Skips, r.UniqueArtists,
			r.AvgMinutesPerSession, r.SkipRate,
		})
	}
	return out
}

func weeklyCells(rows []analytics.WeeklyPatternRow) [][]interface{} {
	out := make([][]interface{}, 0, len(rows))
	for _, r := range rows {
		out = append(out, []interface{}{
			r.DayName, r.TotalMinutes, r.TrackCount, r.Skips, r.UniqueArtists,
			r.SkipRate, r.DayOrder,
		})
	}
	return out
}

func monthlyCells(rows []analytics.MonthlyProgressionRow) [][]interface{} {
	out := make([][]interface{}, 0, len(rows))
	for _, r := range rows {
		out = append(out, []interface{}{
			r.Month, r.TotalMinutes, r.TracksPlayed, r.Skips, r.UniqueArtists,
			r.UniqueTracks, r.DaysWithListening, r.HoursPlayed, r.SkipRate,
			r.MonthName,
		})
	}
	return out
}

func platformCells(rows []analytics.PlatformDistributionRow) [][]interface{} {
	out := make([][]interface{}, 0, len(rows))
	for _, r := range rows {
		out = append(out, []interface{}{
			r.Platform, r.TotalMinutes, r.TrackCount, r.Percentage,
		})
	}
	return out
}
