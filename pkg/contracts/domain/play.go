package domain

import (
	"time"
)

// RawPlay represents a single play event exactly as it appears in the
// streaming history export. Every field is optional in the source data, so
// each one is a pointer: nil means the field was absent from the record.
// Fields outside this set are dropped during decoding.
type RawPlay struct {
	TS          *string `json:"ts"`
	TrackName   *string `json:"master_metadata_track_name"`
	ArtistName  *string `json:"master_metadata_album_artist_name"`
	AlbumName   *string `json:"master_metadata_album_album_name"`
	MSPlayed    *int64  `json:"ms_played"`
	Skipped     *bool   `json:"skipped"`
	Shuffle     *bool   `json:"shuffle"`
	Offline     *bool   `json:"offline"`
	Incognito   *bool   `json:"incognito_mode"`
	Platform    *string `json:"platform"`
	ConnCountry *string `json:"conn_country"`
	ReasonEnd   *string `json:"reason_end"`
}

// Year returns the leading four characters of the timestamp parsed as a
// calendar year, and false when the timestamp is absent, too short, or not
// numeric. Only the year prefix is inspected; full timestamp validation
// happens during enrichment.
func (r RawPlay) Year() (int, bool) {
	if r.TS == nil || len(*r.TS) < 4 {
		return 0, false
	}
	year := 0
	for _, c := range (*r.TS)[:4] {
		if c < '0' || c > '9' {
			return 0, false
		}
		year = year*10 + int(c-'0')
	}
	return year, true
}

// Play is a normalized play event: projected to the twelve retained fields,
// renamed to canonical column names, and with optionality resolved. TrackName
// and ArtistName are guaranteed non-empty; every other absent field defaults
// to its zero value. In particular an absent skipped flag means not skipped.
// Play is comparable, which is what exact-duplicate removal relies on.
type Play struct {
	TS          string `json:"ts" validate:"required"`
	TrackName   string `json:"track_name" validate:"required"`
	ArtistName  string `json:"artist_name" validate:"required"`
	AlbumName   string `json:"album_name"`
	MSPlayed    int64  `json:"ms_played" validate:"min=0"`
	Skipped     bool   `json:"skipped"`
	Shuffle     bool   `json:"shuffle"`
	Offline     bool   `json:"offline"`
	Incognito   bool   `json:"incognito_mode"`
	Platform    string `json:"platform"`
	ConnCountry string `json:"conn_country"`
	ReasonEnd   string `json:"reason_end"`
}

// EnrichedPlay extends a Play with the calendar and outcome features derived
// from its timestamp and playback fields. PlayedAt is the fully parsed
// instant normalized to UTC; Date is its date-only form. DayOfWeek uses the
// Monday=0..Sunday=6 convention, not Go's Sunday-first weekday.
// WasCompleted and WasSkipped are complementary flags cast to integers, so
// WasCompleted+WasSkipped == 1 for every enriched play.
type EnrichedPlay struct {
	Play

	PlayedAt      time.Time `json:"played_at"`
	Date          string    `json:"date"`
	Hour          int       `json:"hour" validate:"min=0,max=23"`
	DayName       string    `json:"day_name"`
	DayOfWeek     int       `json:"day_of_week" validate:"min=0,max=6"`
	WeekNumber    int       `json:"week_number" validate:"min=1,max=53"`
	Month         int       `json:"month" validate:"min=1,max=12"`
	MonthName     string    `json:"month_name"`
	MinutesPlayed float64   `json:"minutes_played"`
	WasCompleted  int       `json:"was_completed"`
	WasSkipped    int       `json:"was_skipped"`
}
