// Package bridge hosts the sheet wire protocol over a local gateway, so a
// dashboard on another machine can point its bridge URL here and share the
// same workbook.
package bridge

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"fete/internal/gateway"
)

const maxBodySize = 4 << 20

// Config controls the server runtime.
type Config struct {
	Addr  string
	Token string // empty serves unauthenticated
}

// Lister is implemented by gateways that can enumerate their worksheets.
// The status endpoint includes them when the backing gateway supports it.
type Lister interface {
	Worksheets(ctx context.Context) ([]string, error)
}

// Status is served at /v1/status.
type Status struct {
	StartedAt  time.Time `json:"started_at"`
	Reads      int64     `json:"reads"`
	Writes     int64     `json:"writes"`
	Worksheets []string  `json:"worksheets,omitempty"`
	LastError  string    `json:"last_error,omitempty"`
}

type readResponse struct {
	Sheet  string     `json:"sheet"`
	Values [][]string `json:"values"`
}

type writeRequest struct {
	Values [][]string `json:"values"`
}

type writeResponse struct {
	Sheet string `json:"sheet"`
	Rows  int    `json:"rows"`
}

// Server exposes a gateway's worksheets over HTTP.
type Server struct {
	cfg Config
	gw  gateway.Gateway

	mu        sync.RWMutex
	startedAt time.Time
	reads     int64
	writes    int64
	lastError string
}

// New returns a server for the given gateway.
func New(cfg Config, gw gateway.Gateway) *Server {
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:8787"
	}
	return &Server{
		cfg:       cfg,
		gw:        gw,
		startedAt: time.Now(),
	}
}

// Handler returns the HTTP routes. Split from Run so tests can drive the
// server through httptest without binding a port.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /v1/status", s.handleStatus)
	mux.HandleFunc("GET /sheets/{name}", s.withToken(s.handleRead))
	mux.HandleFunc("PUT /sheets/{name}", s.withToken(s.handleWrite))
	return mux
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	slog.Info("bridge listening", "addr", s.cfg.Addr, "auth", s.cfg.Token != "")

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case err := <-errCh:
		return fmt.Errorf("bridge: http server: %w", err)
	}
}

// withToken rejects requests whose bearer token does not match. With no
// token configured everything passes.
func (s *Server) withToken(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.cfg.Token != "" {
			got := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
			if subtle.ConstantTimeCompare([]byte(got), []byte(s.cfg.Token)) != 1 {
				writeError(w, http.StatusUnauthorized, "bad or missing token")
				return
			}
		}
		next(w, r)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	st := Status{
		StartedAt: s.startedAt,
		Reads:     s.reads,
		Writes:    s.writes,
		LastError: s.lastError,
	}
	s.mu.RUnlock()

	if l, ok := s.gw.(Lister); ok {
		if names, err := l.Worksheets(r.Context()); err == nil {
			st.Worksheets = names
		}
	}

	writeJSON(w, st)
}

func (s *Server) handleRead(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	values, err := s.gw.Read(r.Context(), name)
	if err != nil {
		s.fail(err)
		if errors.Is(err, gateway.ErrWorksheetNotFound) {
			writeError(w, http.StatusNotFound, "no worksheet named "+name)
			return
		}
		slog.Error("read failed", "worksheet", name, "err", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.mu.Lock()
	s.reads++
	s.lastError = ""
	s.mu.Unlock()

	if values == nil {
		values = [][]string{}
	}
	writeJSON(w, readResponse{Sheet: name, Values: values})
}

func (s *Server) handleWrite(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		writeError(w, http.StatusBadRequest, "reading body: "+err.Error())
		return
	}

	var req writeRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad payload: "+err.Error())
		return
	}

	if err := s.gw.Write(r.Context(), name, req.Values); err != nil {
		s.fail(err)
		if errors.Is(err, gateway.ErrWorksheetNotFound) {
			writeError(w, http.StatusNotFound, "no worksheet named "+name)
			return
		}
		slog.Error("write failed", "worksheet", name, "err", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.mu.Lock()
	s.writes++
	s.lastError = ""
	s.mu.Unlock()

	slog.Info("sheet updated", "worksheet", name, "rows", len(req.Values))
	writeJSON(w, writeResponse{Sheet: name, Rows: len(req.Values)})
}

func (s *Server) fail(err error) {
	s.mu.Lock()
	s.lastError = err.Error()
	s.mu.Unlock()
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
