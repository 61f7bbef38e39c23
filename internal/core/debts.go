package core

import "strings"

// Register appends a new debt to the book. Entity must be non-blank and the
// amount positive; description and due date fall back to placeholder labels.
func (b DebtBook) Register(id, entity, description string, amount Money, dueDate string) (DebtBook, Debt, error) {
	if strings.TrimSpace(entity) == "" {
		return b, Debt{}, ErrEmptyEntity
	}
	if err := amount.Validate(); err != nil {
		return b, Debt{}, err
	}

	if strings.TrimSpace(description) == "" {
		description = DefaultDebtDescription
	}
	if strings.TrimSpace(dueDate) == "" {
		dueDate = DefaultDebtDueDate
	}

	debt := Debt{
		ID:          id,
		Entity:      entity,
		Description: description,
		Amount:      amount,
		PaidAmount:  Money{},
		DueDate:     dueDate,
		Icon:        DebtIcon,
	}

	debts := make([]Debt, 0, len(b.Debts)+1)
	debts = append(debts, debt)
	return DebtBook{Debts: append(debts, b.Debts...)}, debt, nil
}

// Pay applies a partial or full payment to a debt and debits the ledger under
// the fixed debt category. Preconditions are checked in order against the
// pre-mutation state, first failure wins, and a failure leaves both the
// ledger and the book untouched:
//
//  1. amount must be positive (ErrInvalidAmount)
//  2. the debt must exist (ErrDebtNotFound)
//  3. amount must not exceed the remaining balance (ErrOverpayment)
//  4. the ledger balance must cover the payment (ErrInsufficientFunds)
//
// A fully paid debt is removed from the book. The updated debt (PaidAmount
// after the payment, even when removed) and the recorded expense transaction
// are returned.
func Pay(l Ledger, b DebtBook, debtID string, amount Money, txID string) (Ledger, DebtBook, Debt, Transaction, error) {
	if err := amount.Validate(); err != nil {
		return l, b, Debt{}, Transaction{}, err
	}
	debt, err := b.Find(debtID)
	if err != nil {
		return l, b, Debt{}, Transaction{}, err
	}
	if amount.Cents > debt.Remaining().Cents {
		return l, b, Debt{}, Transaction{}, ErrOverpayment
	}
	if l.Balance.Cents < amount.Cents {
		return l, b, Debt{}, Transaction{}, ErrInsufficientFunds
	}

	debt.PaidAmount = debt.PaidAmount.Add(amount)

	debts := make([]Debt, 0, len(b.Debts))
	for _, d := range b.Debts {
		if d.ID == debtID {
			if debt.Settled() {
				continue // fully paid debts leave the book
			}
			d = debt
		}
		debts = append(debts, d)
	}

	// The payment is validated above, so the recorder cannot fail.
	ledger, tx := l.Record(txID, amount, Expense, DebtCategory)

	return ledger, DebtBook{Debts: debts}, debt, tx, nil
}

// Settle pays off a debt in full: Pay with the remaining balance at call time.
func Settle(l Ledger, b DebtBook, debtID, txID string) (Ledger, DebtBook, Debt, Transaction, error) {
	debt, err := b.Find(debtID)
	if err != nil {
		return l, b, Debt{}, Transaction{}, err
	}
	return Pay(l, b, debtID, debt.Remaining(), txID)
}
