// Package model defines the expense record and the validation boundary
// that guards every write path into storage.
package model

// DateLayout is the ISO calendar date format used for every Expense date.
// Dates are stored as strings and compared lexicographically, which matches
// chronological order for this layout.
const DateLayout = "2006-01-02"

// Expense is one recorded expense. ID is assigned by storage on insert and
// immutable afterwards; all other fields may be overwritten by an update.
type Expense struct {
	ID       int64
	Name     string
	Amount   float64
	Category string
	Note     string
	Date     string // YYYY-MM-DD
}

// Month returns the YYYY-MM prefix of the expense date.
func (e Expense) Month() string {
	if len(e.Date) < 7 {
		return e.Date
	}
	return e.Date[:7]
}
