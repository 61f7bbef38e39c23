package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bolsillo/internal/core"
	val "bolsillo/internal/validator"
)

func (s *Server) handleListTransactions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"transactions": renderTransactions(s.session.Transactions()),
		"balance":      s.session.Balance().String(),
	})
}

func (s *Server) handleCreateTransaction(c *gin.Context) {
	var req createTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}
	if err := val.Validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cents, err := core.ParseDecimalToCents(req.Amount)
	if err != nil {
		rejected(c, err)
		return
	}

	tx, balance, err := s.session.Record(core.Money{Cents: cents}, core.TransactionType(req.Type), req.Category)
	if err != nil {
		rejected(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"transaction": renderTransaction(tx),
		"balance":     balance.String(),
	})
}

func (s *Server) handleListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"expense": renderCategories(core.Categories(core.Expense)),
		"income":  renderCategories(core.Categories(core.Income)),
	})
}
