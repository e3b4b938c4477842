package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	handlers "github.com/de-tools/isobench/pkg/handlers/report"
	isobenchmiddleware "github.com/de-tools/isobench/pkg/server/middleware"
	"github.com/de-tools/isobench/pkg/services/report"
	"github.com/de-tools/isobench/pkg/services/resolver"
	"github.com/de-tools/isobench/pkg/store/duckdb/history"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

const defaultShutdownTimeout = 10 * time.Second

type WebAPI struct {
	router          *chi.Mux
	logger          *zerolog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

type Dependencies struct {
	Controller report.Controller
	Inputs     resolver.Inputs
	History    history.Store // optional
	Logger     zerolog.Logger
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

// ConfigureRouter mounts the report API under /api/v1.
func ConfigureRouter(config Config) *chi.Mux {
	deps := config.Dependencies
	reportHandler := handlers.NewHandler(deps.Controller, deps.Inputs, deps.History)

	router := chi.NewRouter()
	router.Use(isobenchmiddleware.Logger(&deps.Logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/report", reportHandler.GetReport)
		r.Get("/comparisons", reportHandler.GetComparisons)
		r.Get("/findings", reportHandler.GetFindings)
		r.Get("/profiles", reportHandler.GetProfiles)
		r.Get("/runs", reportHandler.ListRuns)
		r.Get("/runs/{run}", reportHandler.GetRun)
	})
	return router
}

func NewWebAPI(config Config) *WebAPI {
	logger := config.Dependencies.Logger
	timeout := config.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}
	router := ConfigureRouter(config)

	return &WebAPI{
		router:          router,
		logger:          &logger,
		shutdownTimeout: timeout,
		server: &http.Server{
			Addr:              config.Addr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
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
