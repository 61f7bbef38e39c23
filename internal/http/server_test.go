package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"bolsillo/internal/core"
	"bolsillo/internal/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(cents int64) *Server {
	return NewServer(session.New(core.Money{Cents: cents}, nil), nil)
}

func do(t *testing.T, srv *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func TestHealth(t *testing.T) {
	w := do(t, newTestServer(0), http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestGetBalance(t *testing.T) {
	w := do(t, newTestServer(1245080), http.MethodGet, "/api/v1/balance", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := decode(t, w)["balance"]; got != "12450.80" {
		t.Fatalf("expected balance 12450.80, got %v", got)
	}
}

func TestCreateTransaction(t *testing.T) {
	srv := newTestServer(10000)

	w := do(t, srv, http.MethodPost, "/api/v1/transactions", map[string]string{
		"amount": "30", "type": "expense", "category": "Alimentos",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	body := decode(t, w)
	if body["balance"] != "70.00" {
		t.Fatalf("expected balance 70.00, got %v", body["balance"])
	}
	tx := body["transaction"].(map[string]any)
	if tx["amount"] != "-30.00" {
		t.Fatalf("expected amount -30.00, got %v", tx["amount"])
	}
	if tx["icon"] != "restaurant" {
		t.Fatalf("expected restaurant icon, got %v", tx["icon"])
	}
}

func TestCreateTransactionRejections(t *testing.T) {
	srv := newTestServer(10000)

	cases := []struct {
		name string
		body map[string]string
		code int
	}{
		{"missing fields", map[string]string{"amount": "10"}, http.StatusBadRequest},
		{"bad type", map[string]string{"amount": "10", "type": "transfer", "category": "Ocio"}, http.StatusBadRequest},
		{"blank category", map[string]string{"amount": "10", "type": "expense", "category": "   "}, http.StatusBadRequest},
		{"zero amount", map[string]string{"amount": "0", "type": "expense", "category": "Ocio"}, http.StatusUnprocessableEntity},
		{"negative amount", map[string]string{"amount": "-5", "type": "expense", "category": "Ocio"}, http.StatusUnprocessableEntity},
		{"garbage amount", map[string]string{"amount": "abc", "type": "expense", "category": "Ocio"}, http.StatusUnprocessableEntity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := do(t, srv, http.MethodPost, "/api/v1/transactions", tc.body)
			if w.Code != tc.code {
				t.Fatalf("expected %d, got %d: %s", tc.code, w.Code, w.Body.String())
			}
		})
	}

	// None of the rejections may have moved the balance.
	w := do(t, srv, http.MethodGet, "/api/v1/balance", nil)
	if got := decode(t, w)["balance"]; got != "100.00" {
		t.Fatalf("expected untouched balance 100.00, got %v", got)
	}
}

func TestSetBalanceOverride(t *testing.T) {
	srv := newTestServer(10000)

	w := do(t, srv, http.MethodPut, "/api/v1/balance", map[string]string{"amount": "0"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if got := decode(t, w)["balance"]; got != "0.00" {
		t.Fatalf("expected 0.00, got %v", got)
	}

	// The override writes no transaction.
	w = do(t, srv, http.MethodGet, "/api/v1/transactions", nil)
	body := decode(t, w)
	if txs := body["transactions"].([]any); len(txs) != 0 {
		t.Fatalf("expected empty history, got %d entries", len(txs))
	}
}

func TestDebtLifecycle(t *testing.T) {
	srv := newTestServer(50000)

	w := do(t, srv, http.MethodPost, "/api/v1/debts", map[string]string{
		"entity": "Visa", "amount": "200",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	debt := decode(t, w)["debt"].(map[string]any)
	if debt["description"] != "Deuda registrada" || debt["due_date"] != "Hoy" {
		t.Fatalf("expected placeholder defaults, got %v / %v", debt["description"], debt["due_date"])
	}
	id := debt["id"].(string)

	// Partial payment.
	w = do(t, srv, http.MethodPost, fmt.Sprintf("/api/v1/debts/%s/payments", id), map[string]string{"amount": "50"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := decode(t, w)
	if body["settled"] != false {
		t.Fatalf("expected unsettled debt")
	}
	if body["balance"] != "450.00" {
		t.Fatalf("expected balance 450.00, got %v", body["balance"])
	}

	// Settle the rest.
	w = do(t, srv, http.MethodPost, fmt.Sprintf("/api/v1/debts/%s/settle", id), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body = decode(t, w)
	if body["settled"] != true {
		t.Fatalf("expected settled debt")
	}
	tx := body["transaction"].(map[string]any)
	if tx["amount"] != "-150.00" || tx["category"] != "Deudas" {
		t.Fatalf("unexpected settle transaction: %v", tx)
	}

	// Book is empty, summary reflects it.
	w = do(t, srv, http.MethodGet, "/api/v1/debts", nil)
	body = decode(t, w)
	if debts := body["debts"].([]any); len(debts) != 0 {
		t.Fatalf("expected empty book, got %d", len(debts))
	}
	summary := body["summary"].(map[string]any)
	if summary["total_remaining"] != "0.00" || summary["active_count"] != float64(0) {
		t.Fatalf("unexpected summary: %v", summary)
	}
}

func TestPayDebtRejections(t *testing.T) {
	srv := newTestServer(10000)

	w := do(t, srv, http.MethodPost, "/api/v1/debts", map[string]string{"entity": "Visa", "amount": "200"})
	id := decode(t, w)["debt"].(map[string]any)["id"].(string)

	// Overpayment: 200 debt, 250 payment.
	w = do(t, srv, http.MethodPost, fmt.Sprintf("/api/v1/debts/%s/payments", id), map[string]string{"amount": "250"})
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for overpayment, got %d", w.Code)
	}

	// Insufficient funds: balance 100, payment 150.
	w = do(t, srv, http.MethodPost, fmt.Sprintf("/api/v1/debts/%s/payments", id), map[string]string{"amount": "150"})
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for insufficient funds, got %d", w.Code)
	}

	// Unknown debt.
	w = do(t, srv, http.MethodPost, "/api/v1/debts/nope/payments", map[string]string{"amount": "10"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown debt, got %d", w.Code)
	}

	// State untouched.
	w = do(t, srv, http.MethodGet, "/api/v1/debts", nil)
	body := decode(t, w)
	debt := body["debts"].([]any)[0].(map[string]any)
	if debt["paid_amount"] != "0.00" || debt["remaining"] != "200.00" {
		t.Fatalf("rejected payments must not touch the debt: %v", debt)
	}
	w = do(t, srv, http.MethodGet, "/api/v1/balance", nil)
	if got := decode(t, w)["balance"]; got != "100.00" {
		t.Fatalf("rejected payments must not touch the balance, got %v", got)
	}
}

func TestReportEndpoint(t *testing.T) {
	srv := newTestServer(100000)

	// Empty report first.
	w := do(t, srv, http.MethodGet, "/api/v1/report", nil)
	body := decode(t, w)
	if body["total_expense"] != "0.00" {
		t.Fatalf("expected total 0.00, got %v", body["total_expense"])
	}
	if rows := body["categories"].([]any); len(rows) != 0 {
		t.Fatalf("expected empty breakdown, got %d rows", len(rows))
	}

	for _, tx := range []map[string]string{
		{"amount": "20", "type": "expense", "category": "Alimentos"},
		{"amount": "10", "type": "expense", "category": "Alimentos"},
		{"amount": "30", "type": "expense", "category": "Transporte"},
		{"amount": "500", "type": "income", "category": "Sueldo"},
	} {
		if w := do(t, srv, http.MethodPost, "/api/v1/transactions", tx); w.Code != http.StatusCreated {
			t.Fatalf("seed transaction failed: %d", w.Code)
		}
	}

	w = do(t, srv, http.MethodGet, "/api/v1/report", nil)
	body = decode(t, w)
	if body["total_expense"] != "60.00" {
		t.Fatalf("expected total 60.00, got %v", body["total_expense"])
	}
	rows := body["categories"].([]any)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	for _, r := range rows {
		row := r.(map[string]any)
		if row["amount"] != "30.00" || row["percent"] != float64(50) {
			t.Fatalf("unexpected row: %v", row)
		}
	}
}

func TestListCategories(t *testing.T) {
	w := do(t, newTestServer(0), http.MethodGet, "/api/v1/categories", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decode(t, w)
	if len(body["expense"].([]any)) == 0 || len(body["income"].([]any)) == 0 {
		t.Fatalf("expected non-empty category catalogs")
	}
	first := body["expense"].([]any)[0].(map[string]any)
	if first["name"] != "Alimentos" || first["icon"] != "restaurant" {
		t.Fatalf("unexpected first expense category: %v", first)
	}
}
