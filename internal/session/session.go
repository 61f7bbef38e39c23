// Package session owns the live state of one tracking session: the ledger
// and the debt book. All mutation goes through the pure transition rules in
// internal/core; the session adds identity, locking and logging on top.
//
// State lives only in memory and dies with the process.
package session

import (
	"sync"

	"github.com/google/uuid"

	"bolsillo/internal/core"
	applog "bolsillo/internal/log"
)

// Session is the single-user state container. Core transitions are
// single-writer by contract; the mutex covers concurrent readers coming in
// through the HTTP adapter.
type Session struct {
	mu     sync.Mutex
	ledger core.Ledger
	debts  core.DebtBook
	logger *applog.Logger
}

// PaymentResult describes the outcome of a successful debt payment.
type PaymentResult struct {
	Debt        core.Debt // post-payment state, also when removed
	Settled     bool
	Transaction core.Transaction
	Balance     core.Money
}

// DebtSummary aggregates the open debts for display.
type DebtSummary struct {
	TotalRemaining core.Money
	ActiveCount    int
}

func New(initialBalance core.Money, logger *applog.Logger) *Session {
	if logger == nil {
		logger = applog.New(applog.DefaultConfig())
	}
	return &Session{
		ledger: core.Ledger{Balance: initialBalance},
		logger: logger.WithComponent(applog.ComponentSession),
	}
}

// Record validates the input and applies one cash movement. The returned
// balance is the post-transaction one.
func (s *Session) Record(amount core.Money, t core.TransactionType, category string) (core.Transaction, core.Money, error) {
	if err := amount.Validate(); err != nil {
		return core.Transaction{}, core.Money{}, err
	}
	if err := t.Validate(); err != nil {
		return core.Transaction{}, core.Money{}, err
	}
	if err := core.ValidateCategory(category); err != nil {
		return core.Transaction{}, core.Money{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var tx core.Transaction
	s.ledger, tx = s.ledger.Record(uuid.NewString(), amount, t, category)

	s.logger.Info("Transaction recorded",
		applog.FieldOperation, "record",
		applog.FieldTxID, tx.ID,
		applog.FieldTxType, string(t),
		applog.FieldCategory, category,
		applog.FieldAmountCents, tx.Amount.Cents,
		applog.FieldBalance, s.ledger.Balance.Cents)

	return tx, s.ledger.Balance, nil
}

// RegisterDebt adds a new debt to the book.
func (s *Session) RegisterDebt(entity, description string, amount core.Money, dueDate string) (core.Debt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, debt, err := s.debts.Register(uuid.NewString(), entity, description, amount, dueDate)
	if err != nil {
		return core.Debt{}, err
	}
	s.debts = book

	s.logger.Info("Debt registered",
		applog.FieldOperation, "register_debt",
		applog.FieldDebtID, debt.ID,
		applog.FieldDebtEntity, debt.Entity,
		applog.FieldAmountCents, debt.Amount.Cents)

	return debt, nil
}

// PayDebt applies a payment to a debt and debits the ledger.
func (s *Session) PayDebt(debtID string, amount core.Money) (PaymentResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ledger, book, debt, tx, err := core.Pay(s.ledger, s.debts, debtID, amount, uuid.NewString())
	if err != nil {
		s.logger.Warn("Debt payment rejected",
			applog.FieldOperation, "pay_debt",
			applog.FieldDebtID, debtID,
			applog.FieldAmountCents, amount.Cents,
			applog.FieldError, err.Error())
		return PaymentResult{}, err
	}
	s.ledger, s.debts = ledger, book

	s.logger.Info("Debt payment applied",
		applog.FieldOperation, "pay_debt",
		applog.FieldDebtID, debtID,
		applog.FieldAmountCents, amount.Cents,
		applog.FieldBalance, s.ledger.Balance.Cents,
		"settled", debt.Settled())

	return PaymentResult{
		Debt:        debt,
		Settled:     debt.Settled(),
		Transaction: tx,
		Balance:     s.ledger.Balance,
	}, nil
}

// SettleDebt pays off the remaining balance of a debt in full.
func (s *Session) SettleDebt(debtID string) (PaymentResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ledger, book, debt, tx, err := core.Settle(s.ledger, s.debts, debtID, uuid.NewString())
	if err != nil {
		s.logger.Warn("Debt settlement rejected",
			applog.FieldOperation, "settle_debt",
			applog.FieldDebtID, debtID,
			applog.FieldError, err.Error())
		return PaymentResult{}, err
	}
	s.ledger, s.debts = ledger, book

	s.logger.Info("Debt settled",
		applog.FieldOperation, "settle_debt",
		applog.FieldDebtID, debtID,
		applog.FieldAmountCents, tx.Amount.Abs().Cents,
		applog.FieldBalance, s.ledger.Balance.Cents)

	return PaymentResult{
		Debt:        debt,
		Settled:     true,
		Transaction: tx,
		Balance:     s.ledger.Balance,
	}, nil
}

// SetBalance overrides the balance without recording a transaction. The
// override is an escape hatch: after it, the balance no longer has to match
// the transaction history.
func (s *Session) SetBalance(balance core.Money) core.Money {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ledger = s.ledger.SetBalance(balance)

	s.logger.Info("Balance overridden",
		applog.FieldOperation, "set_balance",
		applog.FieldBalance, s.ledger.Balance.Cents)

	return s.ledger.Balance
}

// Balance returns the current balance.
func (s *Session) Balance() core.Money {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Balance
}

// Transactions returns a copy of the history, newest first.
func (s *Session) Transactions() []core.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Transaction(nil), s.ledger.Transactions...)
}

// Debts returns a copy of the open debts, newest first.
func (s *Session) Debts() []core.Debt {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Debt(nil), s.debts.Debts...)
}

// Summary totals the open debts.
func (s *Session) Summary() DebtSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	var remaining int64
	for _, d := range s.debts.Debts {
		remaining += d.Remaining().Cents
	}
	return DebtSummary{
		TotalRemaining: core.Money{Cents: remaining},
		ActiveCount:    len(s.debts.Debts),
	}
}

// Report aggregates the expense breakdown from the current history.
func (s *Session) Report() ([]core.CategoryBreakdown, core.Money) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return core.Aggregate(s.ledger.Transactions)
}
