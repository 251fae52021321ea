// Package config provides centralized configuration management for the
// Spotify Wrapped ETL pipeline. It exposes the explicit configuration record
// {source_path, target_year, output_dir} that the pipeline entry point
// consumes, together with export toggles, logging settings and path
// resolution.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of precedence:
//
//	1. Environment variables (highest priority)
//	2. Configuration file (config.yaml or configs/config.yaml)
//	3. Documented defaults (lowest priority)
//
// # Environment Variables
//
// All environment variables follow the pattern SPOTIFY_ETL_* for namespacing:
//
//	SPOTIFY_ETL_PIPELINE_SOURCE_PATH=Streaming_History_Audio_2024-2025_1.json
//	SPOTIFY_ETL_PIPELINE_TARGET_YEAR=2025
//	SPOTIFY_ETL_PIPELINE_OUTPUT_DIR=spotify_analytics_output
//	SPOTIFY_ETL_LOGGING_LEVEL=debug
//
// # Validation
//
// All configuration is validated at load time with struct tags: required
// fields present, the target year in a plausible range, logging enums within
// their accepted sets. Validation failures surface as CONFIG errors before
// the pipeline starts.
package config
