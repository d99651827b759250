// Package topup applies company top-up policy to users.
//
// A user is eligible when active and assigned to a known company. Eligible
// users receive the company's TopUp and are emailed only when both the company
// and the user allow it. Process never mutates its inputs: it returns copies
// carrying the computed fields.
package topup

import (
	"io"

	"github.com/dmitrijs2005/topup/internal/models"
)

// Result is the outcome of a single processing pass.
type Result struct {
	// Users holds every input user, in input order, with TopUp and EmailSent
	// computed. Skipped users are returned unchanged.
	Users []models.User

	// Companies holds a copy of every input company with Users assigned.
	Companies map[int]models.Company

	Eligible int
	Skipped  int
}

// Engine runs the top-up pass. A non-nil progress writer receives one "."
// per processed user.
type Engine struct {
	progress io.Writer
}

func NewEngine(progress io.Writer) *Engine {
	return &Engine{progress: progress}
}

// Process iterates users once in order and assigns each eligible user to its
// company.
func (e *Engine) Process(users []models.User, companies map[int]models.Company) Result {
	res := Result{
		Users:     make([]models.User, len(users)),
		Companies: make(map[int]models.Company, len(companies)),
	}

	for id, c := range companies {
		c.Users = append([]models.User(nil), c.Users...)
		res.Companies[id] = c
	}

	for i, u := range users {
		e.tick()

		c, ok := res.Companies[u.CompanyID]
		if !u.ActiveStatus || !ok {
			res.Users[i] = u
			res.Skipped++
			continue
		}

		u = Apply(u, c)
		c.Users = append(c.Users, u)
		res.Companies[u.CompanyID] = c
		res.Users[i] = u
		res.Eligible++
	}

	return res
}

// Apply grants one company top-up to u. TopUp is additive so repeated grants
// accumulate on top of StartingTokens.
func Apply(u models.User, c models.Company) models.User {
	u.TopUp += c.TopUp
	u.EmailSent = c.EmailStatus && u.EmailStatus
	return u
}

func (e *Engine) tick() {
	if e.progress == nil {
		return
	}
	_, _ = io.WriteString(e.progress, ".")
}
