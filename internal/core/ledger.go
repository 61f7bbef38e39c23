package core

// Record applies one cash movement and returns the updated ledger plus the
// created transaction. It trusts its input: callers validate that amount is
// positive, the type is known and the category is non-blank before invoking.
// The balance is allowed to go negative.
func (l Ledger) Record(id string, amount Money, t TransactionType, category string) (Ledger, Transaction) {
	signed := amount
	balance := l.Balance.Add(amount)
	if t == Expense {
		signed = amount.Neg()
		balance = l.Balance.Sub(amount)
	}

	tx := Transaction{
		ID:       id,
		Title:    category,
		Category: category,
		Date:     TodayLabel,
		Amount:   signed,
		Type:     t,
		Icon:     IconFor(category),
		IconBG:   IconBGFor(t),
	}

	return Ledger{
		Balance:      balance,
		Transactions: prependTransaction(l.Transactions, tx),
	}, tx
}

// SetBalance overrides the balance without writing a transaction. The
// displayed balance can drift from the transaction history afterwards; that
// is the documented behavior of the override, not something to reconcile.
func (l Ledger) SetBalance(balance Money) Ledger {
	return Ledger{Balance: balance, Transactions: l.Transactions}
}

func prependTransaction(txs []Transaction, tx Transaction) []Transaction {
	out := make([]Transaction, 0, len(txs)+1)
	out = append(out, tx)
	return append(out, txs...)
}
