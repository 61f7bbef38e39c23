package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// handleReport recomputes the expense breakdown from the full history on
// every call. There is nothing cached to invalidate.
func (s *Server) handleReport(c *gin.Context) {
	rows, total := s.session.Report()
	c.JSON(http.StatusOK, gin.H{
		"total_expense": total.String(),
		"categories":    renderBreakdown(rows),
	})
}
