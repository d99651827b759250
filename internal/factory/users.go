// Package factory maps generic records into validated entities.
package factory

import (
	"github.com/dmitrijs2005/topup/internal/models"
	"github.com/dmitrijs2005/topup/internal/records"
)

var userFields = []string{
	"id", "first_name", "last_name", "email",
	"company_id", "email_status", "active_status", "tokens",
}

// NewUser builds a User from a raw record. TopUp and EmailSent always start
// at their zero values.
func NewUser(r records.Record) (models.User, error) {
	var (
		u   models.User
		err error
	)

	if err = r.CheckKeys(userFields...); err != nil {
		return models.User{}, err
	}
	if u.ID, err = r.Int("id"); err != nil {
		return models.User{}, err
	}
	if u.FirstName, err = r.Str("first_name"); err != nil {
		return models.User{}, err
	}
	if u.LastName, err = r.Str("last_name"); err != nil {
		return models.User{}, err
	}
	if u.Email, err = r.Str("email"); err != nil {
		return models.User{}, err
	}
	if u.CompanyID, err = r.Int("company_id"); err != nil {
		return models.User{}, err
	}
	if u.EmailStatus, err = r.Bool("email_status"); err != nil {
		return models.User{}, err
	}
	if u.ActiveStatus, err = r.Bool("active_status"); err != nil {
		return models.User{}, err
	}
	if u.StartingTokens, err = r.Int("tokens"); err != nil {
		return models.User{}, err
	}

	return u, nil
}

// UsersFromRecords maps every record in order and stops at the first failure.
// User ids are not checked for uniqueness.
func UsersFromRecords(rs []records.Record) ([]models.User, error) {
	users := make([]models.User, 0, len(rs))
	for _, r := range rs {
		u, err := NewUser(r)
		if err != nil {
			return nil, &RecordError{Kind: "user", Record: r, Err: err}
		}
		users = append(users, u)
	}
	return users, nil
}

// LoadUsers reads the users source at path.
func LoadUsers(path string) ([]models.User, error) {
	rs, err := records.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return UsersFromRecords(rs)
}
