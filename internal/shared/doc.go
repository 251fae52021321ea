// Package shared provides common utilities and test helpers used across the
// pipeline codebase. It serves as a central location for functionality that
// doesn't belong to any specific processing stage.
//
// # Structure
//
// The package is organized into the following components:
//
// - testutil: Testing utilities including play fixtures and log capture
//
// # Usage Guidelines
//
// This package should only contain:
//
// 1. Test utilities used by multiple packages
// 2. Generic helper functions with no domain-specific logic
//
// It should NOT contain:
//
// 1. Pipeline stage logic
// 2. Circular dependencies with other internal packages
//
// # Test Utilities
//
// The testutil subpackage provides:
//
//   - Fixture builders for streaming history records
//   - A helper that writes a history export file into a test directory
//   - An slog handler that captures records for assertions
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    fixtures := testutil.NewHistoryFixtures(t.TempDir())
//	    path, err := fixtures.WriteHistoryFile("history.json", fixtures.SampleHistory(2025))
//	    // Use path in tests
//	}
package shared
