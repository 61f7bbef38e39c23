package core

import (
	"errors"
	"strings"
)

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// TodayLabel is the fixed date label stamped on new records. The tracker has
// no historical date handling; everything happens "today".
const TodayLabel = "Hoy"

// DebtCategory is the fixed category debited by debt payments.
const DebtCategory = "Deudas"

// Placeholder labels for optional debt fields.
const (
	DefaultDebtDescription = "Deuda registrada"
	DefaultDebtDueDate     = TodayLabel
)

type (
	TransactionType string

	// Transaction is one recorded cash movement. Immutable once created.
	Transaction struct {
		ID       string
		Title    string
		Category string
		Date     string
		Amount   Money // signed: positive income, negative expense
		Type     TransactionType
		Icon     string
		IconBG   string
	}

	// Debt is one open obligation. Amount is fixed at creation; PaidAmount
	// only grows, and the debt leaves the book once it reaches Amount.
	Debt struct {
		ID          string
		Entity      string
		Description string
		Amount      Money
		PaidAmount  Money
		DueDate     string
		Icon        string
		Urgent      bool
	}

	// Ledger is the session's balance plus the transaction history,
	// newest first.
	Ledger struct {
		Balance      Money
		Transactions []Transaction
	}

	// DebtBook is the list of open debts, newest first.
	DebtBook struct {
		Debts []Debt
	}
)

var (
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrEmptyEntity       = errors.New("empty entity")
	ErrEmptyCategory     = errors.New("empty category")
	ErrInvalidType       = errors.New("invalid transaction type")
	ErrDebtNotFound      = errors.New("debt not found")
	ErrOverpayment       = errors.New("payment exceeds remaining debt")
	ErrInsufficientFunds = errors.New("insufficient balance")
)

func (t TransactionType) Validate() error {
	switch t {
	case Income, Expense:
		return nil
	default:
		return ErrInvalidType
	}
}

// Remaining returns how much is still owed.
func (d Debt) Remaining() Money {
	return d.Amount.Sub(d.PaidAmount)
}

// Settled reports whether the debt is fully paid.
func (d Debt) Settled() bool {
	return d.PaidAmount.Cents >= d.Amount.Cents
}

// Find returns the debt with the given id, or ErrDebtNotFound.
func (b DebtBook) Find(id string) (Debt, error) {
	for _, d := range b.Debts {
		if d.ID == id {
			return d, nil
		}
	}
	return Debt{}, ErrDebtNotFound
}

// ValidateCategory rejects blank category labels.
func ValidateCategory(category string) error {
	if strings.TrimSpace(category) == "" {
		return ErrEmptyCategory
	}
	return nil
}
