package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"congressprogram/config"
	_ "congressprogram/docs"
	authadapter "congressprogram/internal/adapters/auth"
	emailadapter "congressprogram/internal/adapters/email"
	"congressprogram/internal/adapters/feed"
	delivery "congressprogram/internal/delivery/http"
	"congressprogram/internal/delivery/http/controllers"
	"congressprogram/internal/delivery/http/middleware"
	"congressprogram/internal/repository/postgres"
	"congressprogram/internal/services"
)

const (
	serviceTimeout  = 10 * time.Second
	shutdownTimeout = 15 * time.Second
	bcryptCost      = 10
)

// @title Congress Program API
// @version 1.0
// @description Bilingual congress program backend: public schedule projection and back-office program management.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "err", err)
		os.Exit(1)
	}

	symposiumRepo := postgres.NewSymposiumRepository(db)
	sessionRepo := postgres.NewSessionRepository(db)
	roomRepo := postgres.NewRoomRepository(db)
	presentationRepo := postgres.NewPresentationRepository(db)
	pageRepo := postgres.NewPageRepository(db)
	userRepo := postgres.NewUserRepository(db)
	roleRepo := postgres.NewRoleRepository(db)

	hasher := authadapter.NewBcryptHasher(bcryptCost)
	tokens := authadapter.NewJWTManager(cfg.JWTSecret)
	mailer, err := emailadapter.NewMailer(emailadapter.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: emailadapter.SESConfig{
			Region:          cfg.SESRegion,
			AccessKeyID:     cfg.SESAccessKeyID,
			SecretAccessKey: cfg.SESSecretKey,
		},
	})
	if err != nil {
		logger.Error("failed to create mailer", "err", err)
		os.Exit(1)
	}
	renderer := emailadapter.NewTemplateRenderer()
	feedFetcher := feed.NewHTTPFetcher(nil)

	emailService := services.NewEmailService(mailer, renderer)
	programService := services.NewProgramService(symposiumRepo, sessionRepo, pageRepo, serviceTimeout)
	adminService := services.NewProgramAdminService(symposiumRepo, sessionRepo, roomRepo, presentationRepo, pageRepo, emailService, feedFetcher, cfg.ProgramFeedURL, serviceTimeout)
	authService := services.NewAuthService(userRepo, roleRepo, hasher, tokens, cfg.JWTExpiry, serviceTimeout)

	mux := delivery.NewRouter(delivery.RouterControllers{
		Program:      controllers.NewProgramController(logger, programService),
		Auth:         controllers.NewAuthController(logger, authService),
		Symposium:    controllers.NewSymposiumController(logger, adminService),
		Session:      controllers.NewSessionController(logger, adminService),
		Presentation: controllers.NewPresentationController(logger, adminService),
		Page:         controllers.NewPageController(logger, adminService),
	}, tokens, logger)

	handler := middleware.LoggingMiddleware(logger, middleware.CORS(cfg.CORSAllowedOrigins, mux))

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "port", cfg.Port, "env", cfg.Environment)
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			os.Exit(1)
		}
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("shutdown failed", "err", err)
			os.Exit(1)
		}
	}
	logger.Info("server stopped")
}
