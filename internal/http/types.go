package http

import (
	"bolsillo/internal/core"
	"bolsillo/internal/session"
)

// Amounts travel as decimal strings ("12.34") and are parsed by the core
// money parser, so the wire format never sees binary floats.

type (
	createTransactionRequest struct {
		Amount   string `json:"amount" binding:"required"`
		Type     string `json:"type" binding:"required" validate:"txtype"`
		Category string `json:"category" binding:"required" validate:"notblank"`
	}

	createDebtRequest struct {
		Entity      string `json:"entity" binding:"required" validate:"notblank"`
		Description string `json:"description"`
		Amount      string `json:"amount" binding:"required"`
		DueDate     string `json:"due_date"`
	}

	payDebtRequest struct {
		Amount string `json:"amount" binding:"required"`
	}

	setBalanceRequest struct {
		Amount string `json:"amount" binding:"required"`
	}
)

type (
	transactionResponse struct {
		ID       string `json:"id"`
		Title    string `json:"title"`
		Category string `json:"category"`
		Date     string `json:"date"`
		Amount   string `json:"amount"`
		Type     string `json:"type"`
		Icon     string `json:"icon"`
		IconBG   string `json:"icon_bg"`
	}

	debtResponse struct {
		ID          string `json:"id"`
		Entity      string `json:"entity"`
		Description string `json:"description"`
		Amount      string `json:"amount"`
		PaidAmount  string `json:"paid_amount"`
		Remaining   string `json:"remaining"`
		DueDate     string `json:"due_date"`
		Icon        string `json:"icon"`
		Urgent      bool   `json:"urgent"`
	}

	categoryResponse struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Icon  string `json:"icon"`
		Color string `json:"color"`
	}

	breakdownResponse struct {
		Category string `json:"category"`
		Amount   string `json:"amount"`
		Percent  int    `json:"percent"`
		Icon     string `json:"icon"`
	}

	debtSummaryResponse struct {
		TotalRemaining string `json:"total_remaining"`
		ActiveCount    int    `json:"active_count"`
	}
)

func renderTransaction(tx core.Transaction) transactionResponse {
	return transactionResponse{
		ID:       tx.ID,
		Title:    tx.Title,
		Category: tx.Category,
		Date:     tx.Date,
		Amount:   tx.Amount.String(),
		Type:     string(tx.Type),
		Icon:     tx.Icon,
		IconBG:   tx.IconBG,
	}
}

func renderTransactions(txs []core.Transaction) []transactionResponse {
	out := make([]transactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, renderTransaction(tx))
	}
	return out
}

func renderDebt(d core.Debt) debtResponse {
	return debtResponse{
		ID:          d.ID,
		Entity:      d.Entity,
		Description: d.Description,
		Amount:      d.Amount.String(),
		PaidAmount:  d.PaidAmount.String(),
		Remaining:   d.Remaining().String(),
		DueDate:     d.DueDate,
		Icon:        d.Icon,
		Urgent:      d.Urgent,
	}
}

func renderDebts(debts []core.Debt) []debtResponse {
	out := make([]debtResponse, 0, len(debts))
	for _, d := range debts {
		out = append(out, renderDebt(d))
	}
	return out
}

func renderCategories(opts []core.CategoryOption) []categoryResponse {
	out := make([]categoryResponse, 0, len(opts))
	for _, o := range opts {
		out = append(out, categoryResponse{ID: o.ID, Name: o.Name, Icon: o.Icon, Color: o.Color})
	}
	return out
}

func renderBreakdown(rows []core.CategoryBreakdown) []breakdownResponse {
	out := make([]breakdownResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, breakdownResponse{
			Category: row.Category,
			Amount:   row.Amount.String(),
			Percent:  row.Percent,
			Icon:     row.Icon,
		})
	}
	return out
}

func renderSummary(sum session.DebtSummary) debtSummaryResponse {
	return debtSummaryResponse{
		TotalRemaining: sum.TotalRemaining.String(),
		ActiveCount:    sum.ActiveCount,
	}
}
