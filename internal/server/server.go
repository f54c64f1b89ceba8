package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"calorie-calculator/internal/calculator"
	"calorie-calculator/internal/config"
	"calorie-calculator/internal/metrics"
	"calorie-calculator/internal/web"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(cfg *config.Config) (http.Handler, error) {
	pages, err := web.New(cfg.App.Name, cfg.App.Version)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	if cfg.Logging.Access {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)
	if cfg.Server.RequestTimeout > 0 {
		r.Use(middleware.Timeout(cfg.Server.RequestTimeout))
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	if cfg.Monitoring.PrometheusEnabled {
		metrics.Register()
		r.Handle(cfg.Monitoring.MetricsPath, promhttp.Handler())
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/calories", calculator.CaloriesHandler())
		r.Post("/steps", calculator.StepsHandler())
		r.Get("/options", calculator.OptionsHandler())
	})

	r.Get("/", pages.Home())
	r.Post("/calories", pages.SubmitCalories())
	r.Post("/steps", pages.SubmitSteps())

	return r, nil
}

type Server struct {
	cfg  config.ServerConfig
	http *http.Server
}

func New(cfg config.ServerConfig, handler http.Handler) *Server {
	return &Server{
		cfg: cfg,
		http: &http.Server{
			Addr:         cfg.Addr,
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening on %s", s.cfg.Addr)
		errCh <- s.http.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	log.Println("shutdown signal received...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Println("server stopped")
	return nil
}
