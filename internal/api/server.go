// Package api exposes the expense pipeline over HTTP. Raw text goes in,
// interpreted and persisted expenses come out as JSON.
package api

import (
	"context"
	"net/http"
	"time"

	"fjacquet/expense-tracker/internal/expenseparser"
	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/storage"
)

// Server routes expense requests to the interpreter and the store.
type Server struct {
	interpreter *expenseparser.Interpreter
	storage     *storage.SQLiteStorage
	logger      logging.Logger
	httpServer  *http.Server
}

// NewServer wires the HTTP surface. All dependencies are required.
func NewServer(addr string, interpreter *expenseparser.Interpreter, store *storage.SQLiteStorage, logger logging.Logger) *Server {
	s := &Server{
		interpreter: interpreter,
		storage:     store,
		logger:      logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /api/expenses", s.handleCreateExpense)
	mux.HandleFunc("GET /api/expenses", s.handleListExpenses)
	mux.HandleFunc("GET /api/expenses/summary", s.handleSummary)
	mux.HandleFunc("GET /api/expenses/{id}", s.handleGetExpense)
	mux.HandleFunc("PUT /api/expenses/{id}", s.handleUpdateExpense)
	mux.HandleFunc("DELETE /api/expenses/{id}", s.handleDeleteExpense)

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.withLogging(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// ListenAndServe starts the server and blocks until it stops.
func (s *Server) ListenAndServe() error {
	s.logger.Info("HTTP server listening",
		logging.Field{Key: "addr", Value: s.httpServer.Addr})
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("request handled",
			logging.Field{Key: "method", Value: r.Method},
			logging.Field{Key: "path", Value: r.URL.Path},
			logging.Field{Key: "duration_ms", Value: time.Since(start).Milliseconds()})
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
