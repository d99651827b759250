package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/dmitrijs2005/topup/internal/common"
	"github.com/dmitrijs2005/topup/internal/flagx"
)

// parseFlags overlays cfg with command-line flags. Only the flags defined
// here are looked at; -c/-config is handled by parseJSON.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("topup", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.UsersFile, "users", cfg.UsersFile, "users JSON source")
	fs.StringVar(&cfg.CompaniesFile, "companies", cfg.CompaniesFile, "companies JSON source")
	fs.StringVar(&cfg.OutputFile, "output", cfg.OutputFile, "report output file")
	fs.StringVar(&cfg.ReferenceFile, "reference", cfg.ReferenceFile, "reference report to verify against")
	fs.StringVar(&cfg.LedgerDSN, "ledger", cfg.LedgerDSN, "sqlite ledger DSN")
	progress := fs.String("progress", string(cfg.Progress), "progress dots: always, auto or never")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	fs.BoolVar(&cfg.ShowVersion, "version", cfg.ShowVersion, "print build information and exit")

	if err := fs.Parse(flagx.FilterArgs(fs, args)); err != nil {
		return fmt.Errorf("%w: %v", common.ErrInvalidConfig, err)
	}

	cfg.Progress = Progress(*progress)
	return nil
}
