// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	openai "github.com/sashabaranov/go-openai"
	"github.com/tracehq/trace/internal/auth"
	"github.com/tracehq/trace/internal/config"
	"github.com/tracehq/trace/internal/email"
	"github.com/tracehq/trace/internal/email/mailer"
	"github.com/tracehq/trace/internal/handler"
	"github.com/tracehq/trace/internal/middleware"
	"github.com/tracehq/trace/internal/repository"
	"github.com/tracehq/trace/internal/service"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "startup error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Initialize structured logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   a.Key,
					Value: slog.StringValue(a.Value.Time().Format(time.RFC3339)),
				}
			}
			return a
		},
	}))
	slog.SetDefault(log)

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := setupDatabase(cfg)
	if err != nil {
		return fmt.Errorf("setting up database: %w", err)
	}

	// Initialize repositories
	orgRepo := repository.NewOrganizationRepository(db)
	memberRepo := repository.NewMembershipRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	inviteRepo := repository.NewInvitationRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	sprintRepo := repository.NewSprintRepository(db)

	// Token validation for the identity provider boundary
	tokenManager := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryPeriod)

	// Initialize email service; no API key selects mock delivery
	emailService, err := email.NewEmailService(cfg, "")
	if err != nil {
		return fmt.Errorf("initializing email service: %w", err)
	}
	log.Info("email service ready", "provider", emailService.Provider())

	// Initialize services
	membershipService := service.NewMembershipService(memberRepo, orgRepo, profileRepo, inviteRepo)
	projectService := service.NewProjectService(projectRepo, taskRepo, memberRepo)
	taskService := service.NewTaskService(taskRepo, projectRepo, sprintRepo, memberRepo)
	sprintService := service.NewSprintService(sprintRepo, projectRepo, memberRepo)
	inviteService := service.NewInviteService(
		inviteRepo, memberRepo, orgRepo, profileRepo,
		&mailer.InviteSender{Service: emailService},
		cfg.BaseURL,
	)

	var intentClient service.ChatCompleter
	if cfg.OpenAI.APIKey != "" {
		intentClient = openai.NewClient(cfg.OpenAI.APIKey)
	}
	intentService := service.NewIntentService(
		intentClient, cfg.OpenAI.Model,
		projectService, taskService, projectRepo, memberRepo,
	)

	// Initialize handlers
	membershipHandler := handler.NewMembershipHandler(membershipService)
	projectHandler := handler.NewProjectHandler(projectService)
	taskHandler := handler.NewTaskHandler(taskService)
	sprintHandler := handler.NewSprintHandler(sprintService)
	inviteHandler := handler.NewInviteHandler(inviteService)
	intentHandler := handler.NewIntentHandler(intentService)

	// Create router
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(loggingMiddleware(log))
	r.Use(recoveryMiddleware(log))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(tokenManager))

			r.Get("/me", membershipHandler.Me)
			r.Post("/onboarding", membershipHandler.Onboard)

			r.Route("/projects", func(r chi.Router) {
				r.Get("/", projectHandler.List)
				r.Post("/", projectHandler.Create)
				r.Get("/{id}/board", projectHandler.Board)
				r.Post("/{id}/tasks", taskHandler.Create)
				r.Get("/{id}/sprints", sprintHandler.List)
				r.Post("/{id}/sprints", sprintHandler.Create)
			})

			r.Route("/tasks", func(r chi.Router) {
				r.Get("/{id}", taskHandler.Get)
				r.Patch("/{id}", taskHandler.Update)
				r.Delete("/{id}", taskHandler.Delete)
				r.Put("/{id}/column", taskHandler.MoveColumn)
				r.Put("/{id}/sprint", taskHandler.MoveSprint)
			})

			r.Route("/sprints", func(r chi.Router) {
				r.Post("/{id}/start", sprintHandler.Start)
				r.Post("/{id}/complete", sprintHandler.Complete)
			})

			r.Route("/members", func(r chi.Router) {
				r.Get("/", membershipHandler.ListMembers)
				r.Patch("/{id}/role", membershipHandler.UpdateRole)
				r.Delete("/{id}", membershipHandler.RemoveMember)
			})

			r.Route("/invitations", func(r chi.Router) {
				r.Get("/", inviteHandler.List)
				r.Post("/", inviteHandler.Invite)
				r.Post("/{id}/resend", inviteHandler.Resend)
				r.Delete("/{id}", inviteHandler.Revoke)
			})

			r.Post("/intent", intentHandler.Parse)
		})
	})

	// Create server
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Server error channel
	serverErrors := make(chan error, 1)

	// Start server
	go func() {
		log.Info("server starting", "port", cfg.Server.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Shutdown channel
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt)

	// Wait for shutdown or error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		log.Info("shutdown started", "signal", sig)

		// Give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Gracefully shutdown the server
		if err := srv.Shutdown(ctx); err != nil {
			// If shutdown times out, forcefully close
			srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func setupDatabase(cfg *config.Config) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting database handle: %w", err)
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}

func loggingMiddleware(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				log.Info("request completed",
					"method", r.Method,
					"path", r.URL.Path,
					"duration", time.Since(start),
					"status", ww.Status(),
					"size", ww.BytesWritten(),
					"requestID", chimw.GetReqID(r.Context()),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

func recoveryMiddleware(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					err := errors.New("panic recovered")
					log.Error("panic recovered",
						"error", err,
						"panic", rvr,
						"stack", string(debug.Stack()),
						"requestID", chimw.GetReqID(r.Context()),
					)

					w.WriteHeader(http.StatusInternalServerError)
					w.Write([]byte(`{"error":"error encountered"}`))
					return
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
