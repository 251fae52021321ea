package config

// Application constants for the Spotify Wrapped ETL pipeline
const (
	// Application Info
	AppName    = "Spotify Wrapped ETL"
	AppVersion = "1.0.0"

	// Default pipeline inputs; these mirror the documented defaults of the
	// configuration record {source_path, target_year, output_directory}.
	DefaultSourcePath = "Streaming_History_Audio_2024-2025_1.json"
	DefaultTargetYear = 2025
	DefaultOutputDir  = "spotify_analytics_output"

	// File Paths (relative to the working directory)
	DefaultLogsDir = "logs"
	DefaultLogFile = "logs/etl.log"

	// Report file names. The seven aggregate tables use fixed names; the
	// enriched raw export embeds the target year (raw_data_<year>.csv).
	DailySummaryCSV         = "daily_summary.csv"
	ArtistSummaryCSV        = "artist_summary.csv"
	TrackSummaryCSV         = "track_summary.csv"
	HourlyPatternCSV        = "hourly_pattern.csv"
	WeeklyPatternCSV        = "weekly_pattern.csv"
	MonthlyProgressionCSV   = "monthly_progression.csv"
	PlatformDistributionCSV = "platform_distribution.csv"
	WrappedWorkbookXLSX     = "wrapped_workbook.xlsx"
	KPISummaryJSON          = "kpi_summary.json"
)
