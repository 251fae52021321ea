package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/sana-bil/My-Spotify-Wrapped-ETL/internal/analytics"
	"github.com/sana-bil/My-Spotify-Wrapped-ETL/internal/config"
	"github.com/sana-bil/My-Spotify-Wrapped-ETL/internal/dataprocessing"
	"github.com/sana-bil/My-Spotify-Wrapped-ETL/internal/exporter"
	"github.com/sana-bil/My-Spotify-Wrapped-ETL/internal/infrastructure"
	"github.com/sana-bil/My-Spotify-Wrapped-ETL/pkg/contracts"
)

var sectionRule = strings.Repeat("=", 80)

func main() {
	sourceFlag := flag.String("source", "", "path to the streaming history JSON export (defaults to the configured source)")
	yearFlag := flag.Int("year", 0, "target listening year (defaults to the configured year)")
	outFlag := flag.String("out", "", "output directory for the analytics files (defaults to the configured directory)")
	versionFlag := flag.Bool("version", false, "print version information and exit")
	flag.Parse()

	if *versionFlag {
		fmt.Println(contracts.GetFullVersionString())
		return
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Command line flags take precedence over configuration
	if *sourceFlag != "" {
		cfg.Pipeline.SourcePath = *sourceFlag
	}
	if *yearFlag != 0 {
		cfg.Pipeline.TargetYear = *yearFlag
	}
	if *outFlag != "" {
		cfg.Pipeline.OutputDir = *outFlag
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	paths, err := config.NewPaths(cfg)
	if err != nil {
		slog.Error("Failed to resolve paths", "error", err)
		os.Exit(1)
	}
	if err := paths.EnsureDirectories(); err != nil {
		slog.Error("Failed to create required directories", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	runID := infrastructure.NewRunID()
	ctx := infrastructure.WithRunID(context.Background(), runID)

	logger.InfoContext(ctx, "Starting streaming history pipeline",
		slog.String("app", config.AppName),
		slog.String("version", config.AppVersion),
		slog.String("source_file", paths.SourceFile),
		slog.Int("target_year", cfg.Pipeline.TargetYear),
		slog.String("output_dir", paths.OutputDir))

	year := cfg.Pipeline.TargetYear
	fmt.Printf("SPOTIFY %d ANALYTICS - ETL PIPELINE\n", year)

	// Stage 1: load
	raws, err := dataprocessing.LoadHistory(ctx, paths.SourceFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Printf("✗ Error: File '%s' not found!\n", paths.SourceFile)
		} else {
			fmt.Printf("✗ Error: %v\n", err)
		}
		logger.ErrorContext(ctx, "Failed to load streaming history", "error", err)
		os.Exit(1)
	}
	fmt.Printf("✓ Loaded JSON file: %d total records\n", len(raws))

	// Stage 2: year filter
	filtered := dataprocessing.FilterYear(raws, year)
	fmt.Printf("✓ Filtered for %d: %d records\n", year, len(filtered))

	// Stage 3: normalize
	plays, stats := dataprocessing.Normalize(filtered)
	fmt.Printf("✓ Created base record set with %d records\n", stats.Input)
	fmt.Printf("✓ After removing missing tracks/artists: %d records\n", stats.Named)
	fmt.Printf("✓ After removing duplicates: %d records\n", stats.Unique)
	logger.InfoContext(ctx, "Normalized records",
		slog.Int("input", stats.Input),
		slog.Int("named", stats.Named),
		slog.Int("unique", stats.Unique))

	// Stage 4: feature enrichment
	enriched, err := dataprocessing.Enrich(ctx, plays)
	if err != nil {
		fmt.Printf("✗ Error: %v\n", err)
		logger.ErrorContext(ctx, "Feature enrichment failed", "error", err)
		os.Exit(1)
	}
	fmt.Println("✓ Feature engineering complete")

	// Stage 5: aggregation
	fmt.Println()
	fmt.Println(sectionRule)
	fmt.Println("GENERATING AGGREGATION TABLES")
	fmt.Println(sectionRule)

	tables := analytics.Tables{}
	tables.Daily = analytics.BuildDailySummary(enriched)
	fmt.Printf("✓ Daily Summary: %d days\n", len(tables.Daily))
	tables.Artists = analytics.BuildArtistSummary(enriched)
	fmt.Printf("✓ Artist Summary: %d unique artists\n", len(tables.Artists))
	tables.Tracks = analytics.BuildTrackSummary(enriched)
	fmt.Printf("✓ Track Summary: %d unique tracks\n", len(tables.Tracks))
	tables.Hourly = analytics.BuildHourlyPattern(enriched)
	fmt.Printf("✓ Hourly Pattern: %d hours\n", len(tables.Hourly))
	tables.Weekly = analytics.BuildWeeklyPattern(enriched)
	fmt.Printf("✓ Weekly Pattern: %d days\n", len(tables.Weekly))
	tables.Monthly = analytics.BuildMonthlyProgression(enriched)
	fmt.Printf("✓ Monthly Progression: %d months\n", len(tables.Monthly))
	tables.Platform = analytics.BuildPlatformDistribution(enriched)
	fmt.Printf("✓ Platform Distribution: %d platforms\n", len(tables.Platform))

	logger.InfoContext(ctx, "Aggregation complete",
		slog.Int("days", len(tables.Daily)),
		slog.Int("artists", len(tables.Artists)),
		slog.Int("tracks", len(tables.Tracks)),
		slog.Int("platforms", len(tables.Platform)))

	// KPI report
	kpis := analytics.ComputeKPIs(enriched)
	printKPIReport(kpis, year)

	// Stage 6: export
	fmt.Println()
	fmt.Println(sectionRule)
	fmt.Println("EXPORTING TO CSV FILES")
	fmt.Println(sectionRule)

	type exportStep struct {
		name  string
		write func() error
	}

	reports := exporter.NewReportExporter(paths)
	exports := []exportStep{
		{config.DailySummaryCSV, func() error { return reports.WriteDailySummary(tables.Daily) }},
		{config.ArtistSummaryCSV, func() error { return reports.WriteArtistSummary(tables.Artists) }},
		{config.TrackSummaryCSV, func() error { return reports.WriteTrackSummary(tables.Tracks) }},
		{config.HourlyPatternCSV, func() error { return reports.WriteHourlyPattern(tables.Hourly) }},
		{config.WeeklyPatternCSV, func() error { return reports.WriteWeeklyPattern(tables.Weekly) }},
		{config.MonthlyProgressionCSV, func() error { return reports.WriteMonthlyProgression(tables.Monthly) }},
		{config.PlatformDistributionCSV, func() error { return reports.WritePlatformDistribution(tables.Platform) }},
		{config.RawDataFileName(year), func() error { return reports.WriteRawData(enriched) }},
	}
	if cfg.Export.Workbook {
		exports = append(exports, exportStep{config.WrappedWorkbookXLSX, func() error {
			return exporter.NewWorkbookExporter(paths).WriteWorkbook(tables)
		}})
	}
	if cfg.Export.KPISummary {
		exports = append(exports, exportStep{config.KPISummaryJSON, func() error {
			return reports.WriteKPISummary(ctx, kpis, runID, year)
		}})
	}

	for _, ex := range exports {
		if err := ex.write(); err != nil {
			fmt.Printf("✗ Error exporting %s: %v\n", ex.name, err)
			logger.ErrorContext(ctx, "Export failed",
				slog.String("file", ex.name),
				"error", err)
			os.Exit(1)
		}
		fmt.Printf("✓ Exported: %s\n", ex.name)
	}

	fmt.Println()
	fmt.Println(sectionRule)
	fmt.Println("✓ ETL PIPELINE COMPLETE!")
	fmt.Println(sectionRule)
	fmt.Printf("\nAll files saved to: %s\n", paths.OutputDir)

	logger.InfoContext(ctx, "Pipeline complete",
		slog.Int("exported_files", len(exports)),
		slog.String("output_dir", paths.OutputDir))
}

// printKPIReport prints the formatted indicator block. The headline totals
// and counts use grouped thousands; the rates print with two decimals and
// stay NaN for an empty year.
func printKPIReport(kpis analytics.KPISet, year int) {
	p := message.NewPrinter(language.English)

	fmt.Println()
	fmt.Println(sectionRule)
	fmt.Printf("KEY PERFORMANCE INDICATORS (%d)\n", year)
	fmt.Println(sectionRule)

	p.Printf("Total Listening Time: %.1f hours (%.0f minutes)\n", kpis.TotalHours, kpis.TotalMinutes)
	p.Printf("Total Tracks Played: %d\n", kpis.TotalTracks)
	p.Printf("Unique Artists: %d\n", kpis.UniqueArtists)
	p.Printf("Unique Tracks: %d\n", kpis.UniqueTracks)
	fmt.Printf("Skip Rate: %.2f%%\n", kpis.SkipRate)
	fmt.Printf("Completion Rate: %.2f%%\n", kpis.CompletionRate)
	fmt.Printf("Listening Days: %d\n", kpis.ListeningDays)
	fmt.Printf("Average Daily Listening: %.2f minutes (%.2f hours)\n", kpis.AvgDailyMinutes, kpis.AvgDailyMinutes/60)
}
