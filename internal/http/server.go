// Package http is the presentation boundary: a JSON API over the session
// state, consumed by an external renderer. It adds no semantics of its own;
// every mutation goes through the session's transition rules.
package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bolsillo/internal/core"
	applog "bolsillo/internal/log"
	"bolsillo/internal/session"
)

type Server struct {
	engine  *gin.Engine
	session *session.Session
	logger  *applog.Logger
}

func NewServer(s *session.Session, logger *applog.Logger) *Server {
	if logger == nil {
		logger = applog.New(applog.DefaultConfig())
	}

	engine := gin.New()
	engine.Use(applog.RequestLogger(logger), gin.Recovery())

	srv := &Server{
		engine:  engine,
		session: s,
		logger:  logger.WithComponent(applog.ComponentHTTP),
	}
	srv.routes()
	return srv
}

func (s *Server) routes() {
	s.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := s.engine.Group("/api/v1")
	{
		api.GET("/balance", s.handleGetBalance)
		api.PUT("/balance", s.handleSetBalance)

		api.GET("/transactions", s.handleListTransactions)
		api.POST("/transactions", s.handleCreateTransaction)
		api.GET("/categories", s.handleListCategories)

		api.GET("/debts", s.handleListDebts)
		api.POST("/debts", s.handleCreateDebt)
		api.POST("/debts/:id/payments", s.handlePayDebt)
		api.POST("/debts/:id/settle", s.handleSettleDebt)

		api.GET("/report", s.handleReport)
	}
}

// Handler exposes the engine for the http.Server in main and for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// statusFor maps the core error taxonomy to HTTP status codes. Everything in
// the taxonomy is a recoverable, user-visible rejection.
func statusFor(err error) int {
	switch {
	case errors.Is(err, core.ErrDebtNotFound):
		return http.StatusNotFound
	case errors.Is(err, core.ErrInvalidAmount),
		errors.Is(err, core.ErrEmptyEntity),
		errors.Is(err, core.ErrEmptyCategory),
		errors.Is(err, core.ErrInvalidType),
		errors.Is(err, core.ErrOverpayment),
		errors.Is(err, core.ErrInsufficientFunds):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func rejected(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}
