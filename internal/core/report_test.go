package core

import "testing"

func expense(category string, cents int64) Transaction {
	return Transaction{Category: category, Amount: Money{Cents: -cents}, Type: Expense}
}

func TestAggregateEmpty(t *testing.T) {
	rows, total := Aggregate(nil)
	if len(rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(rows))
	}
	if total.Cents != 0 {
		t.Fatalf("expected zero total, got %d", total.Cents)
	}
}

func TestAggregateIgnoresIncome(t *testing.T) {
	txs := []Transaction{
		{Category: "Sueldo", Amount: Money{Cents: 100000}, Type: Income},
	}
	rows, total := Aggregate(txs)
	if len(rows) != 0 || total.Cents != 0 {
		t.Fatalf("income must not appear in the expense report")
	}
}

func TestAggregateGroupsAndSorts(t *testing.T) {
	// Food 20 + 10, Transport 30: equal totals, exact 50% shares.
	txs := []Transaction{
		expense("Food", 2000),
		expense("Food", 1000),
		expense("Transport", 3000),
	}

	rows, total := Aggregate(txs)

	if total.Cents != 6000 {
		t.Fatalf("expected total 6000, got %d", total.Cents)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	for _, row := range rows {
		if row.Amount.Cents != 3000 {
			t.Fatalf("%s: expected 3000, got %d", row.Category, row.Amount.Cents)
		}
		if row.Percent != 50 {
			t.Fatalf("%s: expected 50%%, got %d%%", row.Category, row.Percent)
		}
	}
}

func TestAggregateDescendingOrder(t *testing.T) {
	txs := []Transaction{
		expense("Ocio", 500),
		expense("Alimentos", 4000),
		expense("Transporte", 1500),
	}

	rows, _ := Aggregate(txs)

	want := []string{"Alimentos", "Transporte", "Ocio"}
	for i, name := range want {
		if rows[i].Category != name {
			t.Fatalf("position %d: expected %q, got %q", i, name, rows[i].Category)
		}
	}
	if rows[0].Icon != "restaurant" {
		t.Fatalf("expected restaurant icon, got %q", rows[0].Icon)
	}
}

func TestAggregatePercentRounding(t *testing.T) {
	// 1/3 shares: 33.33..% rounds to 33.
	txs := []Transaction{
		expense("A", 100),
		expense("B", 100),
		expense("C", 100),
	}
	rows, _ := Aggregate(txs)
	for _, row := range rows {
		if row.Percent != 33 {
			t.Fatalf("%s: expected 33%%, got %d%%", row.Category, row.Percent)
		}
	}
}
