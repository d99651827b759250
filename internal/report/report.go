// Package report renders the per-company top-up summary and checks it
// against a reference file.
//
// The layout is fixed and compared byte for byte, so every label, tab and
// newline below is significant.
package report

import (
	"cmp"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/dmitrijs2005/topup/internal/models"
)

// Render returns the full report for companies, ordered by company id.
// Companies without assigned users are left out.
func Render(companies map[int]models.Company) string {
	var b strings.Builder
	for _, id := range slices.Sorted(maps.Keys(companies)) {
		writeCompany(&b, companies[id])
	}
	b.WriteString("\n")
	return b.String()
}

// Write renders the report into w.
func Write(w io.Writer, companies map[int]models.Company) error {
	_, err := io.WriteString(w, Render(companies))
	return err
}

func writeCompany(b *strings.Builder, c models.Company) {
	if len(c.Users) == 0 {
		return
	}

	emailed, notEmailed := c.Split()

	fmt.Fprintf(b, "\n\tCompany Id: %d", c.ID)
	fmt.Fprintf(b, "\n\tCompany Name: %s", c.Name)
	b.WriteString("\n\tUsers Emailed:")
	writeUsers(b, emailed)
	b.WriteString("\n\tUsers Not Emailed:")
	writeUsers(b, notEmailed)
	fmt.Fprintf(b, "\n\t\tTotal amount of top ups for %s: %d", c.Name, c.TotalTopUps())
	b.WriteString("\n")
}

func writeUsers(b *strings.Builder, users []models.User) {
	for _, u := range SortByLastName(users) {
		fmt.Fprintf(b, "\n\t\t%s, %s, %s", u.LastName, u.FirstName, u.Email)
		fmt.Fprintf(b, "\n\t\t  Previous Token Balance, %d", u.StartingTokens)
		fmt.Fprintf(b, "\n\t\t  New Token Balance %d", u.CurrentTokenBalance())
	}
}

// SortByLastName returns a copy of users stably sorted by last name.
func SortByLastName(users []models.User) []models.User {
	sorted := slices.Clone(users)
	slices.SortStableFunc(sorted, func(a, b models.User) int {
		return cmp.Compare(a.LastName, b.LastName)
	})
	return sorted
}
