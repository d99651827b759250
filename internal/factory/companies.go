package factory

import (
	"github.com/dmitrijs2005/topup/internal/models"
	"github.com/dmitrijs2005/topup/internal/records"
)

var companyFields = []string{"id", "name", "top_up", "email_status"}

// NewCompany builds a Company with no assigned users from a raw record.
func NewCompany(r records.Record) (models.Company, error) {
	var (
		c   models.Company
		err error
	)

	if err = r.CheckKeys(companyFields...); err != nil {
		return models.Company{}, err
	}
	if c.ID, err = r.Int("id"); err != nil {
		return models.Company{}, err
	}
	if c.Name, err = r.Str("name"); err != nil {
		return models.Company{}, err
	}
	if c.TopUp, err = r.Int("top_up"); err != nil {
		return models.Company{}, err
	}
	if c.EmailStatus, err = r.Bool("email_status"); err != nil {
		return models.Company{}, err
	}

	return c, nil
}

// CompaniesFromRecords maps records into companies keyed by id. A repeated id
// fails with *DuplicateCompanyError; nothing is overwritten or merged.
func CompaniesFromRecords(rs []records.Record) (map[int]models.Company, error) {
	companies := make(map[int]models.Company, len(rs))
	for _, r := range rs {
		c, err := NewCompany(r)
		if err != nil {
			return nil, &RecordError{Kind: "company", Record: r, Err: err}
		}
		if existing, ok := companies[c.ID]; ok {
			return nil, &DuplicateCompanyError{ID: c.ID, First: existing.Name, Second: c.Name}
		}
		companies[c.ID] = c
	}
	return companies, nil
}

// LoadCompanies reads the companies source at path.
func LoadCompanies(path string) (map[int]models.Company, error) {
	rs, err := records.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return CompaniesFromRecords(rs)
}
