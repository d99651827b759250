// Package ledger persists the outcome of each report run in a local SQLite
// database: one row per run and one row per granted top-up.
package ledger

import "time"

// Verification states stored with a run.
const (
	VerificationPassed  = "passed"
	VerificationFailed  = "failed"
	VerificationSkipped = "skipped"
)

// Run describes a single report run.
type Run struct {
	ID              string
	CreatedAt       time.Time
	UsersSource     string
	CompaniesSource string
	OutputFile      string
	UsersCount      int
	CompaniesCount  int
	EligibleCount   int
	Verification    string
}

// TopUp is one grant applied to one user during a run.
type TopUp struct {
	RunID           string
	UserID          int
	CompanyID       int
	Amount          int
	PreviousBalance int
	NewBalance      int
	EmailSent       bool
}
