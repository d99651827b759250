// Package models defines the entities flowing through the top-up pipeline.
package models

// User is a single account read from the users source.
//
// The token balance is kept in two fields: StartingTokens is what the user
// had before this run, TopUp accumulates every grant applied on top of it.
type User struct {
	ID             int
	FirstName      string
	LastName       string
	Email          string
	CompanyID      int
	EmailStatus    bool
	ActiveStatus   bool
	StartingTokens int

	// Set by the top-up engine.
	TopUp     int
	EmailSent bool
}

// CurrentTokenBalance returns StartingTokens plus all top-ups applied so far.
func (u User) CurrentTokenBalance() int {
	return u.StartingTokens + u.TopUp
}
