package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_CurrentTokenBalance(t *testing.T) {
	u := User{StartingTokens: 100}
	assert.Equal(t, 100, u.CurrentTokenBalance())

	u.TopUp = 50
	assert.Equal(t, 150, u.CurrentTokenBalance())
}

func TestCompany_TotalTopUps(t *testing.T) {
	c := Company{Users: []User{
		{ID: 1, TopUp: 10, EmailSent: true},
		{ID: 2, TopUp: 10},
		{ID: 3, TopUp: 5},
	}}
	assert.Equal(t, 25, c.TotalTopUps())
	assert.Equal(t, 0, Company{}.TotalTopUps())
}

func TestCompany_Split(t *testing.T) {
	c := Company{Users: []User{
		{ID: 1, EmailSent: true},
		{ID: 2},
		{ID: 3, EmailSent: true},
		{ID: 4},
	}}

	emailed, notEmailed := c.Split()

	ids := func(us []User) []int {
		var out []int
		for _, u := range us {
			out = append(out, u.ID)
		}
		return out
	}
	assert.Equal(t, []int{1, 3}, ids(emailed))
	assert.Equal(t, []int{2, 4}, ids(notEmailed))
	assert.Equal(t, len(c.Users), len(emailed)+len(notEmailed))
}
