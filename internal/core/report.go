package core

import (
	"math"
	"sort"
)

// CategoryBreakdown is one row of the expense report.
type CategoryBreakdown struct {
	Category string
	Amount   Money
	Percent  int // rounded share of the total expense, 0 when there is none
	Icon     string
}

// Aggregate builds the expense report from the transaction history: expense
// entries only, grouped by category with absolute amounts, ordered by
// descending amount (ties keep insertion order). The total expense is
// returned alongside. Recomputed from scratch on every call; there is no
// cached or incremental state.
func Aggregate(transactions []Transaction) ([]CategoryBreakdown, Money) {
	totals := make(map[string]int64)
	var order []string
	var totalExpense int64

	for _, tx := range transactions {
		if tx.Type != Expense {
			continue
		}
		cents := tx.Amount.Abs().Cents
		if _, seen := totals[tx.Category]; !seen {
			order = append(order, tx.Category)
		}
		totals[tx.Category] += cents
		totalExpense += cents
	}

	if len(order) == 0 {
		return nil, Money{}
	}

	rows := make([]CategoryBreakdown, 0, len(order))
	for _, name := range order {
		cents := totals[name]
		percent := 0
		if totalExpense > 0 {
			percent = int(math.Round(float64(cents) / float64(totalExpense) * 100))
		}
		rows = append(rows, CategoryBreakdown{
			Category: name,
			Amount:   Money{Cents: cents},
			Percent:  percent,
			Icon:     IconFor(name),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Amount.Cents > rows[j].Amount.Cents
	})

	return rows, Money{Cents: totalExpense}
}
