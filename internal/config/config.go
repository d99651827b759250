package config

import (
	"fmt"

	"github.com/dmitrijs2005/topup/internal/common"
	"github.com/dmitrijs2005/topup/internal/logging"
)

// Progress controls the per-user progress dots.
type Progress string

const (
	ProgressAlways Progress = "always"
	ProgressAuto   Progress = "auto" // only when stdout is a terminal
	ProgressNever  Progress = "never"
)

// Config holds runtime settings for a single report run.
type Config struct {
	UsersFile     string
	CompaniesFile string
	OutputFile    string
	ReferenceFile string
	LedgerDSN     string
	Progress      Progress
	LogLevel      string

	// ShowVersion prints build metadata and exits.
	ShowVersion bool
}

// LoadDefaults populates c with the well-known file names.
func (c *Config) LoadDefaults() {
	c.UsersFile = "users.json"
	c.CompaniesFile = "companies.json"
	c.OutputFile = "output.txt"
	c.ReferenceFile = "example_output.txt"
	c.LedgerDSN = ""
	c.Progress = ProgressAlways
	c.LogLevel = "warn"
}

// Validate checks values that flags and JSON cannot constrain by type.
func (c *Config) Validate() error {
	if c.UsersFile == "" {
		return fmt.Errorf("%w: users file is required", common.ErrInvalidConfig)
	}
	if c.CompaniesFile == "" {
		return fmt.Errorf("%w: companies file is required", common.ErrInvalidConfig)
	}
	if c.OutputFile == "" {
		return fmt.Errorf("%w: output file is required", common.ErrInvalidConfig)
	}
	switch c.Progress {
	case ProgressAlways, ProgressAuto, ProgressNever:
	default:
		return fmt.Errorf("%w: unknown progress mode %q", common.ErrInvalidConfig, c.Progress)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", common.ErrInvalidConfig, err)
	}
	return nil
}

// LoadConfig builds a Config from defaults, then the JSON file named by -c
// or -config (if any), then flags. args excludes the program name.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
