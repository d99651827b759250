package ledger

import (
	"context"
	"fmt"
	"time"
)

// Repository reads and writes ledger rows through a DBTX.
type Repository struct {
	db DBTX
}

func NewRepository(db DBTX) *Repository {
	return &Repository{db: db}
}

// InsertRun stores the run header.
func (r *Repository) InsertRun(ctx context.Context, run Run) error {
	query := `INSERT INTO runs (id, created_at, users_source, companies_source, output_file,
			users_count, companies_count, eligible_count, verification)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		run.ID, run.CreatedAt.UTC().Format(time.RFC3339Nano), run.UsersSource, run.CompaniesSource,
		run.OutputFile, run.UsersCount, run.CompaniesCount, run.EligibleCount, run.Verification)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}
	return nil
}

// InsertTopUp stores a single top-up row.
func (r *Repository) InsertTopUp(ctx context.Context, t TopUp) error {
	query := `INSERT INTO top_ups (run_id, user_id, company_id, amount, previous_balance, new_balance, email_sent)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		t.RunID, t.UserID, t.CompanyID, t.Amount, t.PreviousBalance, t.NewBalance, t.EmailSent)
	if err != nil {
		return fmt.Errorf("failed to insert top-up for user %d: %w", t.UserID, err)
	}
	return nil
}

// TopUpsByRun lists the top-ups of a run in insertion order.
func (r *Repository) TopUpsByRun(ctx context.Context, runID string) ([]TopUp, error) {
	query := `SELECT run_id, user_id, company_id, amount, previous_balance, new_balance, email_sent
		FROM top_ups WHERE run_id = ? ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to select top-ups: %w", err)
	}
	defer rows.Close()

	var result []TopUp
	for rows.Next() {
		var t TopUp
		if err := rows.Scan(&t.RunID, &t.UserID, &t.CompanyID, &t.Amount, &t.PreviousBalance, &t.NewBalance, &t.EmailSent); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// CountRuns returns the number of stored runs.
func (r *Repository) CountRuns(ctx context.Context) (int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT COUNT(*) FROM runs`)
	if err != nil {
		return 0, fmt.Errorf("failed to count runs: %w", err)
	}
	defer rows.Close()

	var n int
	if rows.Next() {
		if err := rows.Scan(&n); err != nil {
			return 0, err
		}
	}
	return n, rows.Err()
}
