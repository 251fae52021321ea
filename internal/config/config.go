package config

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	apperrors "github.com/sana-bil/My-Spotify-Wrapped-ETL/internal/errors"
)

// Config represents the complete pipeline configuration
type Config struct {
	Pipeline PipelineConfig `yaml:"pipeline" envconfig:"PIPELINE"`
	Export   ExportConfig   `yaml:"export" envconfig:"EXPORT"`
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
}

// PipelineConfig is the explicit configuration record for one pipeline run.
// Defaults match the documented values in constants.go.
type PipelineConfig struct {
	SourcePath string `yaml:"source_path" envconfig:"SOURCE_PATH" json:"source_path" validate:"required"`
	TargetYear int    `yaml:"target_year" envconfig:"TARGET_YEAR" json:"target_year" validate:"required,min=2008,max=2100"`
	OutputDir  string `yaml:"output_dir" envconfig:"OUTPUT_DIR" json:"output_dir" validate:"required"`
}

// ExportConfig toggles the supplemental exports written after the eight
// required report files.
type ExportConfig struct {
	Workbook   bool `yaml:"workbook" envconfig:"WORKBOOK" json:"workbook"`
	KPISummary bool `yaml:"kpi_summary" envconfig:"KPI_SUMMARY" json:"kpi_summary"`
}

// LoggingConfig contains logging configuration. The default output mode is
// "file" so stdout stays reserved for progress lines and the KPI report.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" json:"level" validate:"oneof=debug info warn error"`
	Format   string `yaml:"format" envconfig:"FORMAT" json:"format" validate:"oneof=json text"`
	Output   string `yaml:"output" envconfig:"OUTPUT" json:"output" validate:"oneof=file console both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" json:"file_path" validate:"required"`
}

// envPrefix namespaces all environment variables, e.g.
// SPOTIFY_ETL_PIPELINE_TARGET_YEAR=2024.
const envPrefix = "SPOTIFY_ETL"

// Default returns the configuration with every documented default applied.
func Default() *Config {
	return &Config{
		Pipeline: PipelineConfig{
			SourcePath: DefaultSourcePath,
			TargetYear: DefaultTargetYear,
			OutputDir:  DefaultOutputDir,
		},
		Export: ExportConfig{
			Workbook:   true,
			KPISummary: true,
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "file",
			FilePath: DefaultLogFile,
		},
	}
}

// Load loads configuration in order of precedence: environment variables over
// an optional YAML config file over the documented defaults.
func Load() (*Config, error) {
	return LoadFrom(findConfigFile())
}

// LoadFrom is Load with an explicit config file path; an empty path skips the
// file layer.
func LoadFrom(configFile string) (*Config, error) {
	cfg := Default()

	if configFile != "" {
		if err := loadFromFile(configFile, cfg); err != nil {
			return nil, apperrors.NewConfigError(fmt.Sprintf("failed to load config file %s", configFile), err)
		}
	}

	// Environment variables take precedence over file values. The struct is
	// already populated, so absent variables leave fields untouched.
	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, apperrors.NewConfigError("failed to load config from environment", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFromFile merges YAML file values over the current configuration
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// findConfigFile returns the first config file that exists in the common
// locations, or "" when none does.
func findConfigFile() string {
	locations := []string{
		"config.yaml",
		"configs/config.yaml",
	}
	for _, loc := range locations {
		if FileExists(loc) {
			return loc
		}
	}
	return ""
}

// Validate checks the configuration against its struct tags and returns a
// config error naming every failing field.
func (c *Config) Validate() error {
	v := validator.New()

	// Use YAML tag names in error messages so reported fields match the
	// config file keys.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.Struct(c); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
			}
			return apperrors.NewConfigError(
				fmt.Sprintf("invalid configuration: %s", strings.Join(fields, ", ")), err)
		}
		return apperrors.NewConfigError("invalid configuration", err)
	}
	return nil
}
