// Package analytics computes the aggregate tables and scalar KPIs of the
// listening year.
//
// All aggregation reads the same enriched event set; every table is an
// independent accumulation pass and no table is derived from another. The
// package is purely computational: it takes slices in and returns rows out,
// leaving serialization to the exporter.
//
// # Tables
//
// Seven grouped tables are produced:
//
//  1. Daily summary: per calendar date, ascending
//  2. Artist summary: per artist, by listening time descending
//  3. Track summary: per (track, artist) pair, by listening time descending
//  4. Hourly pattern: per hour of day, ascending 0-23
//  5. Weekly pattern: per weekday, Monday through Sunday
//  6. Monthly progression: per calendar month, ascending
//  7. Platform distribution: per platform, by play count descending
//
// # Architecture
//
//   - tables.go: row types for the seven tables
//   - aggregator.go: accumulation passes and sorting
//   - kpi.go: scalar indicators for the whole year
//
// Accumulators are ordered maps (a map plus first-seen key order) and final
// orderings use stable sorts, so ties resolve to first appearance in the
// input and repeated runs over the same export produce identical files.
//
// # Numeric Conventions
//
// Ratio and hour columns round to two decimal places via Round2; minute
// totals stay at full precision. Divisions by zero are not masked: an empty
// set yields NaN indicators (notably avg daily minutes), which downstream
// writers serialize as "NaN" rather than failing.
//
// # Usage Example
//
//	tables := analytics.BuildTables(enriched)
//	kpis := analytics.ComputeKPIs(enriched)
//	fmt.Printf("%d artists, %.1f hours\n", kpis.UniqueArtists, kpis.TotalHours)
package analytics
