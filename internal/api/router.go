package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"stingwatch/internal/api/handlers/http/incidents"
	"stingwatch/internal/api/handlers/http/manager"
	"stingwatch/internal/api/handlers/http/staff"
	"stingwatch/internal/api/handlers/http/system"
	"stingwatch/internal/config"
	"stingwatch/internal/middleware"
	"stingwatch/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(cfg *config.Config, logger *slog.Logger, svc *service.Service, directory service.Directory) *Server {
	incidentHandler := incidents.NewHandler(logger, svc.Incidents)
	staffHandler := staff.NewHandler(logger, svc.Training, svc.Certifications, svc.Subscriptions, svc.Dispatcher, cfg.Push.PublicKey)
	managerHandler := manager.NewHandler(logger, svc.Incidents, svc.Dispatcher, svc.Certifications, directory)
	systemHandler := system.NewHandler(logger)

	r := InitRouter(cfg, incidentHandler, staffHandler, managerHandler, systemHandler, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(
	cfg *config.Config,
	incidentHandler *incidents.Handler,
	staffHandler *staff.Handler,
	managerHandler *manager.Handler,
	systemHandler *system.Handler,
	logger *slog.Logger,
) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	r.Route("/api/v1", func(api chi.Router) {
		// INCIDENT REPORTING
		api.Route("/incidents", func(ir chi.Router) {
			ir.Use(middleware.Limit(10, 20, 5*time.Minute, logger))
			ir.Post("/", incidentHandler.IncidentReport)
			ir.Get("/{id}", incidentHandler.IncidentGet)
		})

		// MANAGER
		api.Route("/manager", func(mr chi.Router) {
			mr.Use(middleware.APIKeyMiddleware(cfg.APIKey, logger))
			mr.Use(middleware.Limit(5, 10, 10*time.Minute, logger))

			mr.Get("/staff", managerHandler.ManagerStaffList)

			mr.Route("/incidents", func(ir chi.Router) {
				ir.Get("/", managerHandler.ManagerIncidentList)
				ir.Post("/{id}/verify", managerHandler.ManagerIncidentVerify)
				ir.Post("/{id}/dispatch", managerHandler.ManagerIncidentDispatch)
			})

			mr.Route("/alerts", func(ar chi.Router) {
				ar.Get("/", managerHandler.ManagerAlertList)
				ar.Patch("/{id}", managerHandler.ManagerAlertArchive)
			})
		})

		// TRAINING
		api.Route("/training/modules", func(tr chi.Router) {
			tr.Use(middleware.Limit(10, 20, 5*time.Minute, logger))
			tr.Get("/", staffHandler.TrainingModuleList)
			tr.Get("/{id}", staffHandler.TrainingModuleGet)
			tr.Post("/{id}/start", staffHandler.TrainingModuleStart)
			tr.Post("/{id}/quiz", staffHandler.TrainingQuizSubmit)
		})

		// CERTIFICATION
		api.Get("/certification", staffHandler.CertificationGet)

		// PUSH
		api.Route("/push", func(pr chi.Router) {
			pr.Use(middleware.Limit(10, 20, 5*time.Minute, logger))
			pr.Post("/subscribe", staffHandler.PushSubscribe)
			pr.Post("/unsubscribe", staffHandler.PushUnsubscribe)
			pr.Get("/vapid-public-key", staffHandler.PushVapidPublicKey)
			pr.Post("/test", staffHandler.PushTest)
		})

		// SYSTEM
		api.Get("/health", systemHandler.SystemHealth)
	})

	return r
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("Starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("Shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
