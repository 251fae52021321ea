// Package dataprocessing provides the ingestion and preparation stages of the
// streaming-history pipeline. It consolidates loading, filtering, normalization
// and feature enrichment into a cohesive package that takes the raw JSON export
// all the way to analysis-ready listening events.
//
// # Architecture
//
// The package is organized into three main components:
//
// 1. Loader: Reads the streaming history JSON export into raw records
// 2. Cleaner: Filters records to the target year and normalizes them
// 3. Enricher: Derives time and behaviour features for every play
//
// # Usage
//
// Basic loading example:
//
//	raws, err := dataprocessing.LoadHistory(ctx, "Streaming_History_Audio_2024-2025_1.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Filtering and normalizing:
//
//	kept := dataprocessing.FilterYear(raws, 2025)
//	plays, stats := dataprocessing.Normalize(kept)
//
// Enriching with derived features:
//
//	enriched, err := dataprocessing.Enrich(ctx, plays)
//
// # Data Flow
//
// The typical data flow through this package:
//
//	JSON Export → Loader → RawPlays → Cleaner → Plays → Enricher → EnrichedPlays
//
// # Error Handling
//
// A missing source file and malformed JSON are fatal and reported through the
// application error taxonomy. Row-level anomalies (missing track or artist
// name, exact duplicates) are silently dropped; their counts surface in the
// progress output rather than as errors. An unparsable timestamp that survived
// the year filter aborts the run.
//
// # Testing
//
// The package includes comprehensive tests for all components.
// Use table-driven tests when adding new functionality.
package dataprocessing
