package models

// Company grants TopUp tokens to each of its active users and decides whether
// those users may be emailed about it.
type Company struct {
	ID          int
	Name        string
	TopUp       int
	EmailStatus bool

	// Users assigned by the top-up engine, in processing order.
	Users []User
}

// TotalTopUps sums TopUp over every assigned user.
func (c Company) TotalTopUps() int {
	total := 0
	for _, u := range c.Users {
		total += u.TopUp
	}
	return total
}

// Split partitions the assigned users into those that were emailed and those
// that were not. Relative order is preserved in both halves.
func (c Company) Split() (emailed, notEmailed []User) {
	for _, u := range c.Users {
		if u.EmailSent {
			emailed = append(emailed, u)
		} else {
			notEmailed = append(notEmailed, u)
		}
	}
	return emailed, notEmailed
}
