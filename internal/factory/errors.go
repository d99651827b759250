package factory

import (
	"fmt"

	"github.com/dmitrijs2005/topup/internal/common"
	"github.com/dmitrijs2005/topup/internal/records"
)

// RecordError reports a raw record that could not be mapped to an entity.
// It matches common.ErrRecordMapping.
type RecordError struct {
	Kind   string
	Record records.Record
	Err    error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("unable to load %s %s: %v", e.Kind, e.Record, e.Err)
}

func (e *RecordError) Unwrap() []error {
	return []error{common.ErrRecordMapping, e.Err}
}

// DuplicateCompanyError reports two company records sharing an id.
// First is the name already loaded, Second the one that collided with it.
type DuplicateCompanyError struct {
	ID     int
	First  string
	Second string
}

func (e *DuplicateCompanyError) Error() string {
	return fmt.Sprintf("duplicate company id found: '%s' and '%s' both have id %d", e.Second, e.First, e.ID)
}

func (e *DuplicateCompanyError) Unwrap() error {
	return common.ErrDuplicateCompanyID
}
