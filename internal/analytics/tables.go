package analytics

// DailySummaryRow is one calendar day of listening activity.
type DailySummaryRow struct {
	Date          string
	TotalMinutes  float64
	TracksPlayed  int
	Skips         int
	Completions   int
	UniqueArtists int
	SkipRate      float64
	HoursPlayed   float64
}

// ArtistSummaryRow aggregates every play of one artist.
// FirstPlay and LastPlay are dates in 2006-01-02 form.
type ArtistSummaryRow struct {
	ArtistName   string
	TotalMinutes float64
	TrackCount   int
	Plays        int
	Skips        int
	FirstPlay    string
	LastPlay     string
	SkipRate     float64
	HoursPlayed  float64
}

// TrackSummaryRow aggregates plays of one track. Tracks are identified by the
// (track name, artist name) pair so covers with the same title stay separate.
type TrackSummaryRow struct {
	TrackName    string
	ArtistName   string
	TotalMinutes float64
	PlayCount    int
	Skips        int
	Completions  int
	FirstPlay    string
	LastPlay     string
	SkipRate     float64
}

// HourlyPatternRow aggregates listening for one hour of the day (0-23).
type HourlyPatternRow struct {
	Hour                 int
	TotalMinutes         float64
	TrackCount           int
	Skips                int
	UniqueArtists        int
	AvgMinutesPerSession float64
	SkipRate             float64
}

// WeeklyPatternRow aggregates listening for one weekday. DayOrder is the
// Monday=0..Sunday=6 index the table is sorted by.
type WeeklyPatternRow struct {
	DayName       string
	TotalMinutes  float64
	TrackCount    int
	Skips         int
	UniqueArtists int
	SkipRate      float64
	DayOrder      int
}

// MonthlyProgressionRow aggregates listening for one calendar month.
type MonthlyProgressionRow struct {
	Month             int
	TotalMinutes      float64
	TracksPlayed      int
	Skips             int
	UniqueArtists     int
	UniqueTracks      int
	DaysWithListening int
	HoursPlayed       float64
	SkipRate          float64
	MonthName         string
}

// PlatformDistributionRow aggregates listening per playback platform.
// Percentage is the platform's share of all plays.
type PlatformDistributionRow struct {
	Platform     string
	TotalMinutes float64
	TrackCount   int
	Percentage   float64
}

// Tables bundles the seven aggregate tables computed from one enriched set.
type Tables struct {
	Daily    []DailySummaryRow
	Artists  []ArtistSummaryRow
	Tracks   []TrackSummaryRow
	Hourly   []HourlyPatternRow
	Weekly   []WeeklyPatternRow
	Monthly  []MonthlyProgressionRow
	Platform []PlatformDistributionRow
}
