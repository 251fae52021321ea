package dataprocessing

import (
	"github.com/sana-bil/My-Spotify-Wrapped-ETL/pkg/contracts/domain"
)

// NormalizeStats reports how many records survived each cleaning step.
// Dropped records are not errors; the counts feed the progress output.
type NormalizeStats struct {
	Input  int // records entering normalization
	Named  int // records remaining after the missing track/artist drop
	Unique int // records remaining after exact-duplicate removal
}

// FilterYear keeps the records whose timestamp places them in the target
// year. The year is read from the first four characters of the timestamp;
// records with a missing, short or non-numeric timestamp prefix are excluded.
// Input order is preserved.
func FilterYear(plays []domain.RawPlay, year int) []domain.RawPlay {
	kept := make([]domain.RawPlay, 0, len(plays))
	for _, p := range plays {
		if y, ok := p.Year(); ok && y == year {
			kept = append(kept, p)
		}
	}
	return kept
}

// Normalize projects raw records onto the twelve retained fields and resolves
// their optionality. Records missing a track name or an artist name are
// dropped. Exact duplicates collapse to their first occurrence, so the result
// order is the order of first appearance. Normalize never fails; anomalous
// records are simply absent from the output.
func Normalize(plays []domain.RawPlay) ([]domain.Play, NormalizeStats) {
	stats := NormalizeStats{Input: len(plays)}

	normalized := make([]domain.Play, 0, len(plays))
	for _, raw := range plays {
		if raw.TrackName == nil || raw.ArtistName == nil {
			continue
		}
		normalized = append(normalized, project(raw))
	}
	stats.Named = len(normalized)

	// Play is comparable, so a seen-set over the struct value removes exact
	// duplicates while keeping first-occurrence order.
	seen := make(map[domain.Play]struct{}, len(normalized))
	unique := make([]domain.Play, 0, len(normalized))
	for _, p := range normalized {
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		unique = append(unique, p)
	}
	stats.Unique = len(unique)

	return unique, stats
}

// project maps one raw record to its normalized form. Absent fields take
// their zero values; in particular an absent skipped flag means not skipped.
func project(raw domain.RawPlay) domain.Play {
	return domain.Play{
		TS:          stringValue(raw.TS),
		TrackName:   stringValue(raw.TrackName),
		ArtistName:  stringValue(raw.ArtistName),
		AlbumName:   stringValue(raw.AlbumName),
		MSPlayed:    int64Value(raw.MSPlayed),
		Skipped:     boolValue(raw.Skipped),
		Shuffle:     boolValue(raw.Shuffle),
		Offline:     boolValue(raw.Offline),
		Incognito:   boolValue(raw.Incognito),
		Platform:    stringValue(raw.Platform),
		ConnCountry: stringValue(raw.ConnCountry),
		ReasonEnd:   stringValue(raw.ReasonEnd),
	}
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func int64Value(n *int64) int64 {
	if n == nil {
		return 0
	}
	return *n
}

func boolValue(b *bool) bool {
	if b == nil {
		return false
	}
	return *b
}
