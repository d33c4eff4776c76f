// Package report computes summaries over expense snapshots. Every function
// is pure: inputs are never mutated, no I/O happens, and the empty slice is
// always a valid input.
package report

import (
	"sort"
	"time"

	"outlay/internal/model"
)

// CategoryTotal is one row of a per-category summary.
type CategoryTotal struct {
	Category string
	Total    float64
}

// MonthTotal is one row of a per-month summary, keyed by YYYY-MM.
type MonthTotal struct {
	Month string
	Total float64
}

// TotalSpent sums all amounts. Empty input yields 0.
func TotalSpent(expenses []model.Expense) float64 {
	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}

// ByCategory groups amounts by exact category string and returns the totals
// sorted descending. Ties keep the order in which each category was first
// encountered (stable sort on the total only).
func ByCategory(expenses []model.Expense) []CategoryTotal {
	totals := make(map[string]float64)
	var order []string

	for _, e := range expenses {
		if _, seen := totals[e.Category]; !seen {
			order = append(order, e.Category)
		}
		totals[e.Category] += e.Amount
	}

	rows := make([]CategoryTotal, 0, len(order))
	for _, cat := range order {
		rows = append(rows, CategoryTotal{Category: cat, Total: totals[cat]})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Total > rows[j].Total
	})

	return rows
}

// MonthlySummary groups amounts by the YYYY-MM prefix of the date and
// returns the totals in ascending month order.
func MonthlySummary(expenses []model.Expense) []MonthTotal {
	totals := make(map[string]float64)
	for _, e := range expenses {
		totals[e.Month()] += e.Amount
	}

	rows := make([]MonthTotal, 0, len(totals))
	for month, total := range totals {
		rows = append(rows, MonthTotal{Month: month, Total: total})
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Month < rows[j].Month
	})

	return rows
}

// TopExpenses returns the n largest expenses, amount descending with ties
// broken by more recent date. Fewer than n records returns them all; n <= 0
// returns an empty slice. The input slice is left untouched.
func TopExpenses(expenses []model.Expense, n int) []model.Expense {
	if n <= 0 || len(expenses) == 0 {
		return nil
	}

	ranked := make([]model.Expense, len(expenses))
	copy(ranked, expenses)
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Amount != ranked[j].Amount {
			return ranked[i].Amount > ranked[j].Amount
		}
		return ranked[i].Date > ranked[j].Date
	})

	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}

// AverageDaily returns total spend divided by the inclusive day span between
// the earliest and latest distinct dates present. Records sharing a date
// contribute one day. Empty input yields 0; a single day yields the total.
func AverageDaily(expenses []model.Expense) float64 {
	if len(expenses) == 0 {
		return 0
	}

	first, last := expenses[0].Date, expenses[0].Date
	for _, e := range expenses[1:] {
		if e.Date < first {
			first = e.Date
		}
		if e.Date > last {
			last = e.Date
		}
	}

	days := 1
	start, errStart := time.Parse(model.DateLayout, first)
	end, errEnd := time.Parse(model.DateLayout, last)
	if errStart == nil && errEnd == nil {
		days = int(end.Sub(start).Hours()/24) + 1
		if days < 1 {
			days = 1
		}
	}

	return TotalSpent(expenses) / float64(days)
}
