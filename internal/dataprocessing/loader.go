package dataprocessing

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	apperrors "github.com/sana-bil/My-Spotify-Wrapped-ETL/internal/errors"
	"github.com/sana-bil/My-Spotify-Wrapped-ETL/pkg/contracts/domain"
)

// LoadHistory reads a streaming history export and returns its raw play
// records. The export is a single UTF-8 JSON array; an empty array is a valid
// history. A missing file or malformed JSON is fatal for the run.
func LoadHistory(ctx context.Context, path string) ([]domain.RawPlay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.NewSourceError(fmt.Sprintf("streaming history file not found: %s", path), err)
		}
		return nil, apperrors.NewSourceError(fmt.Sprintf("failed to read streaming history file: %s", path), err)
	}

	var plays []domain.RawPlay
	if err := json.Unmarshal(data, &plays); err != nil {
		return nil, apperrors.NewParsingError(fmt.Sprintf("failed to parse streaming history JSON: %s", path), err)
	}

	slog.InfoContext(ctx, "Loaded streaming history",
		slog.String("file", path),
		slog.Int("records", len(plays)))

	return plays, nil
}
