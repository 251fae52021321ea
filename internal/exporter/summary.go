package exporter

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/sana-bil/My-Spotify-Wrapped-ETL/internal/analytics"
	apperrors "github.com/sana-bil/My-Spotify-Wrapped-ETL/internal/errors"
	"github.com/sana-bil/My-Spotify-Wrapped-ETL/pkg/contracts"
)

// WriteKPISummary writes kpi_summary.json: the scalar indicators plus run
// metadata, for consumption outside the console report.
func (e *ReportExporter) WriteKPISummary(ctx context.Context, kpis analytics.KPISet, runID string, targetYear int) error {
	path := e.paths.KPISummaryFile

	slog.InfoContext(ctx, "Writing KPI summary",
		slog.String("path", path),
		slog.Int("target_year", targetYear))

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return apperrors.NewStorageError("failed to create directory for KPI summary", err)
	}

	jsonData := map[string]interface{}{
		"kpis": map[string]interface{}{
			"total_minutes":     kpiValue(kpis.TotalMinutes),
			"total_hours":       kpiValue(kpis.TotalHours),
			"total_tracks":      kpis.TotalTracks,
			"unique_artists":    kpis.UniqueArtists,
			"unique_tracks":     kpis.UniqueTracks,
			"skip_rate":         kpiValue(kpis.SkipRate),
			"completion_rate":   kpiValue(kpis.CompletionRate),
			"listening_days":    kpis.ListeningDays,
			"avg_daily_minutes": kpiValue(kpis.AvgDailyMinutes),
		},
		"run_id":       runID,
		"target_year":  targetYear,
		"generated_at": time.Now().Format(time.RFC3339),
		"format":       contracts.KPISummaryFormat,
	}

	file, err := os.Create(path)
	if err != nil {
		return apperrors.NewStorageError("failed to create KPI summary file", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(jsonData); err != nil {
		return apperrors.NewStorageError("failed to encode KPI summary", err)
	}

	return nil
}

// kpiValue prepares a float indicator for JSON encoding. JSON has no NaN
// literal, so an undefined indicator (empty listening year) encodes as null.
func kpiValue(v float64) interface{} {
	if math.IsNaN(v) {
		return nil
	}
	return v
}
