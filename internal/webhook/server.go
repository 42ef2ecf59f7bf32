// Package webhook serves the Telegram webhook endpoint and a health probe.
//
// Updates are accepted only when the URL path secret and the
// X-Telegram-Bot-Api-Secret-Token header both match the configured secret.
// Handler failures are logged but acknowledged with 200 so Telegram does not
// redeliver the same update in a loop.
package webhook

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"kinolink/internal/logging"
	"kinolink/internal/services"
	"kinolink/internal/telegram"
)

const (
	secretHeader = "X-Telegram-Bot-Api-Secret-Token"
	maxBodyBytes = 1 << 20
)

// UpdateHandler consumes one webhook update.
type UpdateHandler interface {
	HandleUpdate(ctx context.Context, update telegram.Update) error
}

// Server hosts the webhook HTTP endpoint.
type Server struct {
	bind    string
	secret  string
	handler UpdateHandler
	logger  *slog.Logger

	listener net.Listener
	server   *http.Server
}

// New validates the configuration and builds a Server.
func New(bind, secret string, handler UpdateHandler, logger *slog.Logger) (*Server, error) {
	bind = strings.TrimSpace(bind)
	if bind == "" {
		return nil, errors.New("webhook bind address required")
	}
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return nil, errors.New("webhook secret required")
	}
	if handler == nil {
		return nil, errors.New("webhook update handler required")
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	srv := &Server{
		bind:    bind,
		secret:  secret,
		handler: handler,
		logger:  logging.WithComponent(logger, "webhook"),
	}

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Get("/healthz", srv.handleHealth)
	router.Post("/webhook/{secret}", srv.handleUpdate)

	srv.server = &http.Server{
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return srv, nil
}

// Handler exposes the HTTP handler, primarily for tests.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start binds the listener and serves until the context is canceled.
func (s *Server) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.bind)
	if err != nil {
		return fmt.Errorf("webhook listen: %w", err)
	}
	s.listener = listener

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("webhook server error", logging.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}()

	s.logger.Info("webhook server listening", logging.String("address", listener.Addr().String()))
	return nil
}

// Stop shuts the server down.
func (s *Server) Stop() {
	if s == nil || s.server == nil {
		return
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = s.server.Shutdown(shutdownCtx)
	if s.listener != nil {
		_ = s.listener.Close()
		s.listener = nil
	}
}

// Addr returns the bound listener address, or "" before Start.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if !s.authorized(r) {
		s.writeJSON(w, http.StatusForbidden, map[string]string{"error": "forbidden"})
		return
	}

	var update telegram.Update
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&update); err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "malformed update"})
		return
	}

	ctx := services.WithRequestID(r.Context(), uuid.NewString())
	if err := s.handler.HandleUpdate(ctx, update); err != nil {
		requestID, _ := services.RequestIDFromContext(ctx)
		s.logger.Error("update handling failed",
			logging.Error(err),
			logging.String("request_id", requestID),
			logging.Int64("update_id", update.UpdateID))
	}
	s.writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// authorized requires both the path secret and the Telegram secret header to
// match, compared in constant time.
func (s *Server) authorized(r *http.Request) bool {
	pathSecret := chi.URLParam(r, "secret")
	headerSecret := r.Header.Get(secretHeader)
	pathOK := subtle.ConstantTimeCompare([]byte(pathSecret), []byte(s.secret)) == 1
	headerOK := subtle.ConstantTimeCompare([]byte(headerSecret), []byte(s.secret)) == 1
	return pathOK && headerOK
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", logging.Error(err))
	}
}
