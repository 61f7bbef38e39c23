package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bolsillo/internal/core"
	"bolsillo/internal/session"
	val "bolsillo/internal/validator"
)

func (s *Server) handleListDebts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"debts":   renderDebts(s.session.Debts()),
		"summary": renderSummary(s.session.Summary()),
	})
}

func (s *Server) handleCreateDebt(c *gin.Context) {
	var req createDebtRequest
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

	debt, err := s.session.RegisterDebt(req.Entity, req.Description, core.Money{Cents: cents}, req.DueDate)
	if err != nil {
		rejected(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"debt": renderDebt(debt)})
}

func (s *Server) handlePayDebt(c *gin.Context) {
	var req payDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	cents, err := core.ParseDecimalToCents(req.Amount)
	if err != nil {
		rejected(c, err)
		return
	}

	res, err := s.session.PayDebt(c.Param("id"), core.Money{Cents: cents})
	if err != nil {
		rejected(c, err)
		return
	}

	c.JSON(http.StatusOK, paymentBody(res))
}

func (s *Server) handleSettleDebt(c *gin.Context) {
	res, err := s.session.SettleDebt(c.Param("id"))
	if err != nil {
		rejected(c, err)
		return
	}

	c.JSON(http.StatusOK, paymentBody(res))
}

func paymentBody(res session.PaymentResult) gin.H {
	return gin.H{
		"debt":        renderDebt(res.Debt),
		"settled":     res.Settled,
		"transaction": renderTransaction(res.Transaction),
		"balance":     res.Balance.String(),
	}
}
