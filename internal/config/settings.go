package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Settings holds application-level configuration: where the rule tables
// live, how to log, and how the reverse solver is tuned.
type Settings struct {
	RulesFile           string         `mapstructure:"rules_file"`
	DefaultState        string         `mapstructure:"default_state"`
	DefaultFilingStatus string         `mapstructure:"default_filing_status"`
	Logging             LoggingConfig  `mapstructure:"logging"`
	Solver              SolverSettings `mapstructure:"solver"`
}

// LoggingConfig holds the logging configuration
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputFile string `mapstructure:"output_file"`
}

// SolverSettings tunes the reverse solver
type SolverSettings struct {
	Tolerance       float64 `mapstructure:"tolerance"`
	MaxIterations   int     `mapstructure:"max_iterations"`
	InitialMultiple float64 `mapstructure:"initial_multiple"`
	Ceiling         float64 `mapstructure:"ceiling"`
}

// EnvPrefix is the prefix for environment overrides, e.g. NETPAY_SOLVER_TOLERANCE
const EnvPrefix = "NETPAY"

// NewViper returns a viper instance carrying the default settings
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("rules_file", "")
	v.SetDefault("default_state", "TX")
	v.SetDefault("default_filing_status", "single")
	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.output_file", "")
	v.SetDefault("solver.tolerance", 0.01)
	v.SetDefault("solver.max_iterations", 100)
	v.SetDefault("solver.initial_multiple", 3.0)
	v.SetDefault("solver.ceiling", 1e9)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// LoadSettings reads the optional settings file into v and decodes it.
// An empty path means defaults plus environment overrides only.
func LoadSettings(v *viper.Viper, path string) (*Settings, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading settings file %s: %w", path, err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("unable to decode settings: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &settings, nil
}

// Validate checks solver tuning values
func (s *Settings) Validate() error {
	if s.Solver.Tolerance <= 0 {
		return fmt.Errorf("solver.tolerance must be positive, got %v", s.Solver.Tolerance)
	}
	if s.Solver.MaxIterations <= 0 {
		return fmt.Errorf("solver.max_iterations must be positive, got %d", s.Solver.MaxIterations)
	}
	if s.Solver.InitialMultiple < 1 {
		return fmt.Errorf("solver.initial_multiple must be at least 1, got %v", s.Solver.InitialMultiple)
	}
	if s.Solver.Ceiling <= 0 {
		return fmt.Errorf("solver.ceiling must be positive, got %v", s.Solver.Ceiling)
	}
	return nil
}
