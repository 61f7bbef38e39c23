package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bolsillo/internal/core"
)

func (s *Server) handleGetBalance(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"balance": s.session.Balance().String()})
}

// handleSetBalance is the direct override: it replaces the balance without
// writing a transaction, so the balance may stop matching the history.
func (s *Server) handleSetBalance(c *gin.Context) {
	var req setBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	cents, err := core.ParseBalanceCents(req.Amount)
	if err != nil {
		rejected(c, err)
		return
	}

	balance := s.session.SetBalance(core.Money{Cents: cents})
	c.JSON(http.StatusOK, gin.H{"balance": balance.String()})
}
