package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the pipeline file locations.
// This is the single source of truth for file paths in the application.
type Paths struct {
	WorkingDir string
	SourceFile string
	OutputDir  string
	LogsDir    string

	// Well-known output files inside OutputDir
	WorkbookFile   string
	KPISummaryFile string
	RawDataCSV     string
}

// NewPaths builds the path set for one run. Relative paths resolve against
// the current working directory, matching how the export file is normally
// dropped next to the pipeline.
func NewPaths(cfg *Config) (*Paths, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	outputDir := cfg.Pipeline.OutputDir
	if !filepath.IsAbs(outputDir) {
		outputDir = filepath.Join(wd, outputDir)
	}
	sourceFile := cfg.Pipeline.SourcePath
	if !filepath.IsAbs(sourceFile) {
		sourceFile = filepath.Join(wd, sourceFile)
	}
	logsDir := filepath.Join(wd, DefaultLogsDir)

	return &Paths{
		WorkingDir: wd,
		SourceFile: sourceFile,
		OutputDir:  outputDir,
		LogsDir:    logsDir,

		WorkbookFile:   filepath.Join(outputDir, WrappedWorkbookXLSX),
		KPISummaryFile: filepath.Join(outputDir, KPISummaryJSON),
		RawDataCSV:     filepath.Join(outputDir, RawDataFileName(cfg.Pipeline.TargetYear)),
	}, nil
}

// RawDataFileName returns the export file name for the enriched event set.
func RawDataFileName(year int) string {
	return fmt.Sprintf("raw_data_%d.csv", year)
}

// EnsureDirectories creates all required directories if they don't exist
func (p *Paths) EnsureDirectories() error {
	directories := []string{
		p.OutputDir,
		p.LogsDir,
	}
	for _, dir := range directories {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// GetReportPath returns the full path of a report file in the output directory
func (p *Paths) GetReportPath(filename string) string {
	return filepath.Join(p.OutputDir, filename)
}

// GetLogPath returns the full path of a log file in the logs directory
func (p *Paths) GetLogPath(filename string) string {
	return filepath.Join(p.LogsDir, filename)
}

// FileExists checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
