package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"recruitgateway/src/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	logger "github.com/sirupsen/logrus"
)

// NewRouter assembles the gateway: CORS, the panic catch-all, the liveness
// probe, and the versioned API mounted under /api/v1.
func NewRouter(cfg *Config, n *handler.Normalizer, apiV1 chi.Router) chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))
	r.Use(n.Recoverer)

	// Public routes
	r.Get("/healths", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]string{"status": "ok"}); err != nil {
			logger.WithError(err).Error("\"/healths\" error")
		}
	})

	r.Mount("/api/v1", apiV1)

	return r
}

// StartServer runs the gateway until SIGINT/SIGTERM, then drains.
func StartServer(cfg *Config, router chi.Router) {
	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		logger.Infof("Listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("Server crashed")
		}
	}()

	// Shutdown on SIGINT or SIGTERM
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("Shutdown error")
	}
}
