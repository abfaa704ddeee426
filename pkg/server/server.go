package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	handlers "github.com/safework-tools/swms-atlas/pkg/handlers/swms"
	swmsmiddleware "github.com/safework-tools/swms-atlas/pkg/server/middleware"
)

type Dependencies struct {
	Documents handlers.DocumentService
	Analyzer  handlers.Analyzer
	Analyses  handlers.AnalysisLog
	Logger    zerolog.Logger
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

// ConfigureRouter wires the API routes. Split from WebAPI so tests can mount
// the router on httptest servers directly.
func ConfigureRouter(config Config) *chi.Mux {
	h := handlers.NewHandler(
		config.Dependencies.Documents,
		config.Dependencies.Analyzer,
		config.Dependencies.Analyses,
	)

	router := chi.NewRouter()
	router.Use(swmsmiddleware.Logger(&config.Dependencies.Logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/trades", h.ListTrades)
		r.Get("/trades/{trade}/requirements", h.GetTradeRequirements)
		r.Get("/trades/{trade}/templates", h.ListTradeTemplates)
		r.Post("/analyze", h.Analyze)
		r.Post("/documents", h.CreateDocument)
		r.Get("/documents", h.ListDocuments)
		r.Get("/documents/{id}", h.GetDocument)
		r.Post("/documents/{id}/analyze", h.AnalyzeDocument)
		r.Get("/documents/{id}/compliance", h.GetCompliance)
		r.Get("/analyses/recent", h.RecentAnalyses)
	})

	return router
}

type WebAPI struct {
	logger          *zerolog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

func NewWebAPI(config Config) *WebAPI {
	logger := config.Dependencies.Logger
	timeout := config.ShutdownTimeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &WebAPI{
		logger: &logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: ConfigureRouter(config),
		},
		shutdownTimeout: timeout,
	}
}

// Start serves until an error or a termination signal, then shuts down
// gracefully within the configured timeout.
func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		ctx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}
		if err != nil {
			return err
		}
	}
	return nil
}
