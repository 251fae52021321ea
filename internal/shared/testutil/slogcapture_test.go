package testutil

import (
	"log/slog"
	"testing"
)

func TestCaptureHandler(t *testing.T) {
	t.Run("captures log records", func(t *testing.T) {
		logger, handler := NewCaptureLogger()

		logger.Info("loaded history", slog.String("file", "history.json"))
		logger.Error("export failed", slog.Int("records", 12))

		records := handler.Records()
		if len(records) != 2 {
			t.Errorf("Expected 2 records, got %d", len(records))
		}

		if !handler.ContainsMessage("loaded history") {
			t.Error("Expected to find 'loaded history'")
		}

		if !handler.ContainsAttr("file", "history.json") {
			t.Error("Expected to find attribute file=history.json")
		}
	})

	t.Run("filters by level", func(t *testing.T) {
		logger, handler := NewCaptureLogger()

		logger.Debug("debug msg")
		logger.Info("info msg")
		logger.Warn("warn msg")
		logger.Error("error msg")

		infoRecords := handler.RecordsAt(slog.LevelInfo)
		if len(infoRecords) != 1 {
			t.Errorf("Expected 1 info record, got %d", len(infoRecords))
		}

		errorRecords := handler.RecordsAt(slog.LevelError)
		if len(errorRecords) != 1 {
			t.Errorf("Expected 1 error record, got %d", len(errorRecords))
		}
	})

	t.Run("reset", func(t *testing.T) {
		logger, handler := NewCaptureLogger()

		logger.Info("message 1")
		logger.Info("message 2")

		if handler.Count() != 2 {
			t.Errorf("Expected 2 records, got %d", handler.Count())
		}

		handler.Reset()

		if handler.Count() != 0 {
			t.Errorf("Expected 0 records after reset, got %d", handler.Count())
		}
	})

	t.Run("assertion helpers", func(t *testing.T) {
		logger, handler := NewCaptureLogger()

		logger.Info("normalized records", slog.Int("unique", 3))

		AssertLogContains(t, handler, slog.LevelInfo, "normalized")
		AssertLogAttr(t, handler, "unique", int64(3))
		AssertNoErrors(t, handler)
	})

	t.Run("concurrent logging", func(t *testing.T) {
		logger, handler := NewCaptureLogger()

		done := make(chan bool)
		for i := 0; i < 10; i++ {
			go func(n int) {
				logger.Info("concurrent log", slog.Int("goroutine", n))
				done <- true
			}(i)
		}
		for i := 0; i < 10; i++ {
			<-done
		}

		if handler.Count() != 10 {
			t.Errorf("Expected 10 records from concurrent logging, got %d", handler.Count())
		}
	})
}

func TestCaptureDefault(t *testing.T) {
	prev := slog.Default()

	handler := CaptureDefault(t)
	slog.Info("through the default logger")

	if !handler.ContainsMessage("through the default logger") {
		t.Error("Expected the default logger to be captured")
	}
	if slog.Default() == prev {
		t.Error("Expected the default logger to be swapped")
	}
}
