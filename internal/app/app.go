package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"time"

	"github.com/dmitrijs2005/topup/internal/buildinfo"
	"github.com/dmitrijs2005/topup/internal/config"
	"github.com/dmitrijs2005/topup/internal/factory"
	"github.com/dmitrijs2005/topup/internal/filex"
	"github.com/dmitrijs2005/topup/internal/ledger"
	"github.com/dmitrijs2005/topup/internal/logging"
	"github.com/dmitrijs2005/topup/internal/report"
	"github.com/dmitrijs2005/topup/internal/topup"
	"github.com/google/uuid"
	"golang.org/x/term"
)

type App struct {
	config     *config.Config
	logger     logging.Logger
	out        io.Writer
	isTerminal func(w io.Writer) bool
	now        func() time.Time
}

// NewApp builds an App printing status lines to out and logging to logOut.
func NewApp(c *config.Config, out, logOut io.Writer) (*App, error) {
	logger, err := logging.New(logOut, c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	return &App{
		config:     c,
		logger:     logger,
		out:        out,
		isTerminal: isTerminal,
		now:        time.Now,
	}, nil
}

// Run executes one report run. Any error has already been logged when it is
// returned.
func (a *App) Run(ctx context.Context) error {
	runID := uuid.NewString()
	log := a.logger.With("run_id", runID)

	if err := a.run(ctx, log, runID); err != nil {
		log.Error(ctx, err.Error())
		return err
	}
	return nil
}

func (a *App) run(ctx context.Context, log logging.Logger, runID string) error {
	log.Info(ctx, "starting report run", buildinfo.Attrs()...)

	users, err := factory.LoadUsers(a.config.UsersFile)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Users: %d\n", len(users))

	companies, err := factory.LoadCompanies(a.config.CompaniesFile)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Companies: %d\n", len(companies))

	res := topup.NewEngine(a.progressWriter()).Process(users, companies)
	log.Info(ctx, "top-ups applied", "eligible", res.Eligible, "skipped", res.Skipped)

	text := report.Render(res.Companies)
	if err := filex.WriteFileAtomic(a.config.OutputFile, []byte(text), 0o644); err != nil {
		return fmt.Errorf("error writing %s: %w", a.config.OutputFile, err)
	}
	fmt.Fprintf(a.out, "\nDone processing. Results in %s\n", a.config.OutputFile)

	verification, err := a.verify(ctx, log)
	if err != nil {
		return err
	}

	if a.config.LedgerDSN == "" {
		return nil
	}

	run := ledger.Run{
		ID:              runID,
		CreatedAt:       a.now(),
		UsersSource:     a.config.UsersFile,
		CompaniesSource: a.config.CompaniesFile,
		OutputFile:      a.config.OutputFile,
		UsersCount:      len(users),
		CompaniesCount:  len(companies),
		EligibleCount:   res.Eligible,
		Verification:    verification,
	}
	return a.recordLedger(ctx, log, run, res)
}

// verify compares the written report with the reference file. A mismatch is
// reported but is not an error. A missing reference skips verification.
func (a *App) verify(ctx context.Context, log logging.Logger) (string, error) {
	ref := a.config.ReferenceFile
	if ref == "" {
		return ledger.VerificationSkipped, nil
	}

	v, err := report.Verify(a.config.OutputFile, ref)
	if errors.Is(err, fs.ErrNotExist) {
		log.Warn(ctx, "reference file not found, skipping verification", "reference", ref)
		fmt.Fprintf(a.out, "Output not verified: %s not found\n", ref)
		return ledger.VerificationSkipped, nil
	}
	if err != nil {
		return "", fmt.Errorf("error verifying %s: %w", a.config.OutputFile, err)
	}

	if v.Passed {
		fmt.Fprintln(a.out, "Output passed verification")
		return ledger.VerificationPassed, nil
	}

	log.Warn(ctx, "output differs from reference", "output", a.config.OutputFile, "reference", ref)
	fmt.Fprintln(a.out, "Output failed verification")
	fmt.Fprint(a.out, v.Diff)
	return ledger.VerificationFailed, nil
}

func (a *App) recordLedger(ctx context.Context, log logging.Logger, run ledger.Run, res topup.Result) error {
	store, err := ledger.Open(ctx, a.config.LedgerDSN)
	if err != nil {
		return fmt.Errorf("ledger init error: %w", err)
	}
	defer store.Close()

	if err := store.Record(ctx, run, res.Companies); err != nil {
		return fmt.Errorf("error recording run in ledger: %w", err)
	}

	log.Info(ctx, "run recorded in ledger", "dsn", a.config.LedgerDSN, "top_ups", res.Eligible)
	return nil
}

func (a *App) progressWriter() io.Writer {
	switch a.config.Progress {
	case config.ProgressNever:
		return nil
	case config.ProgressAuto:
		if !a.isTerminal(a.out) {
			return nil
		}
	}
	return a.out
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}
