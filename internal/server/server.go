package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/vmaleev/nutriplan-bot/internal/interfaces"
	"github.com/vmaleev/nutriplan-bot/internal/logger"
)

// Server exposes the operational HTTP surface: a liveness check and an
// aggregate stats endpoint.
type Server struct {
	server *http.Server
}

func NewServer(port string, statsSvc interfaces.StatsServiceInterface) *Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.HandleFunc("/stats", func(w http.ResponseWriter, r *http.Request) {
		stats, err := statsSvc.Stats(r.Context())
		if err != nil {
			logger.Error("Failed to collect stats", "error", err)
			http.Error(w, "failed to collect stats", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(stats); err != nil {
			logger.Error("Failed to encode stats", "error", err)
		}
	})

	httpServer := &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return &Server{server: httpServer}
}

func (s *Server) Start() error {
	logger.Info("Starting HTTP server", "addr", s.server.Addr)
	return s.server.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	logger.Info("Stopping HTTP server")
	return s.server.Shutdown(ctx)
}
