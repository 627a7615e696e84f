// Package server exposes the scoring pipeline over HTTP.
package server

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/maastricht-university/speechscore/orchestrator"
	"github.com/maastricht-university/speechscore/services"
)

//go:embed static
var staticFiles embed.FS

// Scorer produces a report for one transcript.
type Scorer interface {
	Score(ctx context.Context, t orchestrator.Transcript) (*orchestrator.Report, error)
}

// StatusFunc reports the state of the optional services.
type StatusFunc func() map[string]services.State

type Server struct {
	scorer  Scorer
	status  StatusFunc
	log     logrus.FieldLogger
	maxBody int64
	server  *http.Server
}

func New(addr string, maxBody int64, scorer Scorer, status StatusFunc, log logrus.FieldLogger) *Server {
	s := &Server{scorer: scorer, status: status, log: log, maxBody: maxBody}
	s.server = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter()
	router.Use(s.requestLogger)

	router.HandleFunc("/score", s.handleScore).Methods(http.MethodPost)
	router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	static, _ := fs.Sub(staticFiles, "static")
	router.PathPrefix("/").Handler(http.FileServer(http.FS(static))).Methods(http.MethodGet)
	return router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errc := make(chan error, 1)
	go func() {
		s.log.WithField("addr", s.server.Addr).Info("http server listening")
		if err := s.server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.server.Shutdown(shutdownCtx)
}

type scoreRequest struct {
	Text            any      `json:"text"`
	DurationSeconds *float64 `json:"duration_seconds"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	log := requestLog(r, s.log)

	var req scoreRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, s.maxBody)).Decode(&req); err != nil {
		log.WithError(err).Debug("undecodable score request")
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	var text string
	switch v := req.Text.(type) {
	case nil:
	case string:
		text = v
	default:
		err := &orchestrator.InputError{Reason: "text must be a string"}
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	if strings.TrimSpace(text) == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "No text provided"})
		return
	}

	report, err := s.scorer.Score(r.Context(), orchestrator.Transcript{Text: text, DurationSeconds: req.DurationSeconds})
	if err != nil {
		log.WithError(err).Error("scoring failed")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	resp := map[string]any{"status": "ok"}
	if s.status != nil {
		resp["services"] = s.status()
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
