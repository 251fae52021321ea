package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaths(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	t.Run("relative paths resolve against the working directory", func(t *testing.T) {
		cfg := Default()
		paths, err := NewPaths(cfg)
		require.NoError(t, err)

		assert.Equal(t, wd, paths.WorkingDir)
		assert.Equal(t, filepath.Join(wd, DefaultSourcePath), paths.SourceFile)
		assert.Equal(t, filepath.Join(wd, DefaultOutputDir), paths.OutputDir)
		assert.Equal(t, filepath.Join(wd, DefaultLogsDir), paths.LogsDir)
		assert.Equal(t, filepath.Join(wd, DefaultOutputDir, "raw_data_2025.csv"), paths.RawDataCSV)
	})

	t.Run("absolute paths are kept as provided", func(t *testing.T) {
		dir := t.TempDir()
		cfg := Default()
		cfg.Pipeline.SourcePath = filepath.Join(dir, "history.json")
		cfg.Pipeline.OutputDir = filepath.Join(dir, "out")

		paths, err := NewPaths(cfg)
		require.NoError(t, err)

		assert.Equal(t, filepath.Join(dir, "history.json"), paths.SourceFile)
		assert.Equal(t, filepath.Join(dir, "out"), paths.OutputDir)
		assert.Equal(t, filepath.Join(dir, "out", WrappedWorkbookXLSX), paths.WorkbookFile)
		assert.Equal(t, filepath.Join(dir, "out", KPISummaryJSON), paths.KPISummaryFile)
	})
}

func TestRawDataFileName(t *testing.T) {
	assert.Equal(t, "raw_data_2025.csv", RawDataFileName(2025))
	assert.Equal(t, "raw_data_2019.csv", RawDataFileName(2019))
}

func TestPathsEnsureDirectories(t *testing.T) {
	dir := t.TempDir()
	paths := &Paths{
		OutputDir: filepath.Join(dir, "output"),
		LogsDir:   filepath.Join(dir, "logs"),
	}

	require.NoError(t, paths.EnsureDirectories())

	for _, created := range []string{paths.OutputDir, paths.LogsDir} {
		info, err := os.Stat(created)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}

	// Running again on existing directories is a no-op.
	assert.NoError(t, paths.EnsureDirectories())
}

func TestPathsReportAndLogPaths(t *testing.T) {
	paths := &Paths{
		OutputDir: "/data/output",
		LogsDir:   "/data/logs",
	}

	assert.Equal(t, filepath.Join("/data/output", DailySummaryCSV), paths.GetReportPath(DailySummaryCSV))
	assert.Equal(t, filepath.Join("/data/logs", "etl.log"), paths.GetLogPath("etl.log"))
}

func TestFileExists(t *testing.T) {
	file := filepath.Join(t.TempDir(), "present.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	assert.True(t, FileExists(file))
	assert.False(t, FileExists(filepath.Join(t.TempDir(), "absent.txt")))
}
