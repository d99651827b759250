package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/topup/internal/common"
	"github.com/dmitrijs2005/topup/internal/flagx"
)

// JSONConfig is the on-disk shape of the config file. Nil fields were absent
// from the file.
type JSONConfig struct {
	UsersFile     *string `json:"users_file"`
	CompaniesFile *string `json:"companies_file"`
	OutputFile    *string `json:"output_file"`
	ReferenceFile *string `json:"reference_file"`
	LedgerDSN     *string `json:"ledger_dsn"`
	Progress      *string `json:"progress"`
	LogLevel      *string `json:"log_level"`
}

// parseJSON overlays cfg with the JSON file named by -c or -config. Without
// either flag it does nothing. Keys present in the file override earlier
// values even when empty, so "reference_file": "" disables verification.
func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrInvalidConfig, err)
	}

	var jc JSONConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("%w: %s: %v", common.ErrInvalidConfig, path, err)
	}

	overlay(&cfg.UsersFile, jc.UsersFile)
	overlay(&cfg.CompaniesFile, jc.CompaniesFile)
	overlay(&cfg.OutputFile, jc.OutputFile)
	overlay(&cfg.ReferenceFile, jc.ReferenceFile)
	overlay(&cfg.LedgerDSN, jc.LedgerDSN)
	overlay(&cfg.LogLevel, jc.LogLevel)
	if jc.Progress != nil {
		cfg.Progress = Progress(*jc.Progress)
	}
	return nil
}

func overlay(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
