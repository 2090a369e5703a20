package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"

	audithandler "hris/internal/transport/http/handlers/audit"
	authhandler "hris/internal/transport/http/handlers/auth"
	employeeshandler "hris/internal/transport/http/handlers/employees"
	jobhistoryhandler "hris/internal/transport/http/handlers/jobhistory"
	profileshandler "hris/internal/transport/http/handlers/profiles"
	reportshandler "hris/internal/transport/http/handlers/reports"

	"hris/internal/domain/audit"
	"hris/internal/domain/auth"
	"hris/internal/domain/dependents"
	"hris/internal/domain/employee"
	"hris/internal/domain/jobhistory"
	"hris/internal/domain/onboarding"
	"hris/internal/domain/profile"
	"hris/internal/domain/reports"
	"hris/internal/platform/config"
	cryptoutil "hris/internal/platform/crypto"
	"hris/internal/platform/metrics"
	"hris/internal/transport/http/api"
	"hris/internal/transport/http/middleware"
)

// App wires the stores, services and HTTP surface together.
type App struct {
	Router  chi.Router
	Metrics *metrics.Collector
}

func New(pool *pgxpool.Pool, cfg config.Config) (*App, error) {
	var cryptoSvc *cryptoutil.Service
	if cfg.DataEncryptionKey != "" {
		svc, err := cryptoutil.New(cfg.DataEncryptionKey)
		if err != nil {
			return nil, err
		}
		cryptoSvc = svc
	}

	employeeSvc := employee.NewService(employee.NewStore(pool))
	historySvc := jobhistory.NewService(jobhistory.NewStore(pool), employeeSvc)
	dependentStore := dependents.NewStore(pool)
	onboardingSvc := onboarding.NewService(employeeSvc, historySvc, dependentStore)
	profileStore := profile.NewStore(pool, cryptoSvc)
	reportSvc := reports.NewService(employeeSvc, historySvc)
	auditSvc := audit.New(pool)
	authStore := auth.NewStore(pool)

	var collector *metrics.Collector
	if cfg.MetricsEnabled {
		collector = metrics.New()
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(chimw.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.Metrics(collector))
	router.Use(middleware.Auth(cfg.JWTSecret))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	authHandler := authhandler.NewHandler(authStore, cfg.JWTSecret)

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Use(middleware.RateLimit(max(cfg.RateLimitPerMinute/4, 1), time.Minute,
				middleware.WithKeyFunc(middleware.AuthEmailOrIPKey("email"))))
			authHandler.RegisterRoutes(r)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))

			r.Get("/me", authHandler.HandleMe)

			employeesHandler := employeeshandler.NewHandler(employeeSvc, onboardingSvc, auditSvc)
			historyHandler := jobhistoryhandler.NewHandler(historySvc, auditSvc)
			profilesHandler := profileshandler.NewHandler(profileStore)

			r.Route("/employees", func(r chi.Router) {
				employeesHandler.RegisterRoutes(r, func(r chi.Router) {
					r.Route("/job-history", historyHandler.RegisterEmployeeRoutes)
					r.Route("/profile", profilesHandler.RegisterRoutes)
				})
			})
			r.Route("/job-history/{recordID}", historyHandler.RegisterRecordRoutes)

			r.Route("/reports", reportshandler.NewHandler(reportSvc).RegisterRoutes)

			r.Route("/audit", func(r chi.Router) {
				r.Use(middleware.RequireRole(auth.RoleHR))
				audithandler.NewHandler(auditSvc).RegisterRoutes(r)
			})
		})

		if collector != nil {
			r.With(middleware.RequireRole(auth.RoleHR)).Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
				api.Success(w, collector.Snapshot(), middleware.GetRequestID(r.Context()))
			})
		}
	})

	return &App{Router: router, Metrics: collector}, nil
}
