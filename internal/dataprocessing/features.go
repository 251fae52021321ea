package dataprocessing

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	apperrors "github.com/sana-bil/My-Spotify-Wrapped-ETL/internal/errors"
	"github.com/sana-bil/My-Spotify-Wrapped-ETL/pkg/contracts/domain"
)

// Enrich derives the calendar and outcome features for every normalized play.
// Timestamps are parsed as RFC 3339 (the export uses Zulu time) and
// normalized to UTC. The year filter only inspects the leading four digits,
// so a timestamp that fails the full parse here is malformed input and aborts
// the run. Enrichment is per-record and stateless; input order is preserved.
func Enrich(ctx context.Context, plays []domain.Play) ([]domain.EnrichedPlay, error) {
	enriched := make([]domain.EnrichedPlay, 0, len(plays))
	for _, p := range plays {
		e, err := enrichPlay(p)
		if err != nil {
			return nil, err
		}
		enriched = append(enriched, e)
	}

	slog.InfoContext(ctx, "Feature engineering complete",
		slog.Int("records", len(enriched)))

	return enriched, nil
}

// enrichPlay computes the derived fields for a single play.
func enrichPlay(p domain.Play) (domain.EnrichedPlay, error) {
	playedAt, err := time.Parse(time.RFC3339, p.TS)
	if err != nil {
		return domain.EnrichedPlay{}, apperrors.NewParsingError(
			fmt.Sprintf("unparsable timestamp %q", p.TS), err)
	}
	playedAt = playedAt.UTC()

	_, week := playedAt.ISOWeek()

	skipped := 0
	if p.Skipped {
		skipped = 1
	}

	return domain.EnrichedPlay{
		Play: p,

		PlayedAt:      playedAt,
		Date:          playedAt.Format("2006-01-02"),
		Hour:          playedAt.Hour(),
		DayName:       playedAt.Weekday().String(),
		DayOfWeek:     mondayIndex(playedAt.Weekday()),
		WeekNumber:    week,
		Month:         int(playedAt.Month()),
		MonthName:     playedAt.Month().String(),
		MinutesPlayed: float64(p.MSPlayed) / 60000.0,
		WasCompleted:  1 - skipped,
		WasSkipped:    skipped,
	}, nil
}

// mondayIndex remaps Go's Sunday-first weekday to the Monday=0..Sunday=6
// convention used by the weekly pattern table.
func mondayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}
