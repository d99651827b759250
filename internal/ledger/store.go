package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"maps"
	"slices"

	"github.com/dmitrijs2005/topup/internal/ledger/migrations"
	"github.com/dmitrijs2005/topup/internal/models"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// Store owns the ledger database handle.
type Store struct {
	db *sql.DB
}

// RunMigrations brings the ledger schema up to date.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("failed to migrate ledger: %w", err)
	}
	return nil
}

// Open opens (creating if needed) the SQLite ledger at dsn and migrates it.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger: %w", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Record stores run and one top-up row per user assigned to a company, all in
// a single transaction. Companies are written in id order.
func (s *Store) Record(ctx context.Context, run Run, companies map[int]models.Company) error {
	return withTx(ctx, s.db, func(ctx context.Context, tx DBTX) error {
		repo := NewRepository(tx)

		if err := repo.InsertRun(ctx, run); err != nil {
			return err
		}

		for _, id := range slices.Sorted(maps.Keys(companies)) {
			for _, u := range companies[id].Users {
				t := TopUp{
					RunID:           run.ID,
					UserID:          u.ID,
					CompanyID:       id,
					Amount:          u.TopUp,
					PreviousBalance: u.StartingTokens,
					NewBalance:      u.CurrentTokenBalance(),
					EmailSent:       u.EmailSent,
				}
				if err := repo.InsertTopUp(ctx, t); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// TopUps returns the top-ups stored for runID.
func (s *Store) TopUps(ctx context.Context, runID string) ([]TopUp, error) {
	return NewRepository(s.db).TopUpsByRun(ctx, runID)
}

// CountRuns returns how many runs the ledger holds.
func (s *Store) CountRuns(ctx context.Context) (int, error) {
	return NewRepository(s.db).CountRuns(ctx)
}
