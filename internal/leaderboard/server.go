package leaderboard

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ninja-jump/internal/storage"
)

const (
	maxRequestBody = 1 << 12 // 4 KB
	maxNameLength  = 32
)

// ScoreStore is the persistence the server needs.
// *storage.Store satisfies it.
type ScoreStore interface {
	SaveScore(playerName string, score int) (int64, error)
	TopScores(limit int) ([]storage.ScoreEntry, error)
	PlayerBest(playerName string) (int, error)
}

// Server serves the leaderboard API on top of a ScoreStore.
type Server struct {
	store  ScoreStore
	limit  int
	logger *log.Logger
}

// NewServer creates a server returning at most limit rows per fetch.
func NewServer(store ScoreStore, limit int, logger *log.Logger) *Server {
	if limit <= 0 {
		limit = 10
	}
	return &Server{store: store, limit: limit, logger: logger}
}

// Handler returns the HTTP routes of the service.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+ScoresPath, s.listScores)
	mux.HandleFunc("POST "+ScoresPath, s.submitScore)
	mux.HandleFunc("GET "+ScoresPath+"/{name}", s.playerBest)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	return mux
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Leaderboard listening", "addr", addr, "limit", s.limit)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func (s *Server) listScores(w http.ResponseWriter, _ *http.Request) {
	rows, err := s.store.TopScores(s.limit)
	if err != nil {
		s.logger.Error("Cannot load scores", "error", err)
		writeError(w, http.StatusInternalServerError, "storage unavailable")
		return
	}

	entries := make([]Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, Entry{PlayerName: row.PlayerName, Score: row.Score})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(entries); err != nil {
		s.logger.Warn("Encode scores failed", "error", err)
	}
}

func (s *Server) submitScore(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	name := strings.TrimSpace(req.PlayerName)
	switch {
	case name == "":
		writeError(w, http.StatusBadRequest, "playerName required")
		return
	case utf8.RuneCountInString(name) > maxNameLength:
		writeError(w, http.StatusBadRequest, "playerName too long")
		return
	case req.Score < 0:
		writeError(w, http.StatusBadRequest, "score must not be negative")
		return
	}

	if _, err := s.store.SaveScore(name, req.Score); err != nil {
		s.logger.Error("Cannot save score", "player", name, "error", err)
		writeError(w, http.StatusInternalServerError, "storage unavailable")
		return
	}

	s.logger.Info("Score submitted", "player", name, "score", req.Score)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(Entry{PlayerName: name, Score: req.Score})
}

func (s *Server) playerBest(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.PathValue("name"))
	if name == "" || utf8.RuneCountInString(name) > maxNameLength {
		writeError(w, http.StatusBadRequest, "invalid playerName")
		return
	}

	best, err := s.store.PlayerBest(name)
	if err != nil {
		s.logger.Error("Cannot load player best", "player", name, "error", err)
		writeError(w, http.StatusInternalServerError, "storage unavailable")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(Entry{PlayerName: name, Score: best})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
