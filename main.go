// File: timeback/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"timeback/config"
	"timeback/handlers"
	"timeback/middleware"
	"timeback/models"
	"timeback/routes"
	"timeback/services/booking"
	"timeback/services/notification"
	"timeback/utils"
	"timeback/web"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	cfg := config.AppConfig

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		if cfg.JWTSecret == "" {
			logger.Fatal("main: JWT_SECRET must be set in production")
		}
	}

	// notification dispatcher.
	dispatcher, err := notification.NewDispatcher(notification.Options{
		Provider: cfg.EmailProvider,
		EmailJS: notification.EmailJSConfig{
			ServiceID:              cfg.EmailJSServiceID,
			NewOrderTemplateID:     cfg.EmailJSNewOrderTemplateID,
			ConfirmationTemplateID: cfg.EmailJSConfirmationTemplateID,
			APIKey:                 cfg.EmailJSPublicKey,
			PrivateKey:             cfg.EmailJSPrivateKey,
			Endpoint:               cfg.EmailJSEndpoint,
		},
		RelayURL: cfg.RelayURL,
		Timeout:  config.EmailTimeout(),
		Logger:   logger,
	})
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize email dispatcher: %v", err)
	}

	// in-flight guard.
	var guard booking.InFlightGuard
	var redisClient *redis.Client
	switch cfg.GuardBackend {
	case "redis":
		redisClient = utils.GetGuardCacheClient()
		guard = booking.NewRedisGuard(redisClient, config.GuardTTL())
	default:
		guard = booking.NewMemoryGuard()
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	utils.StartHealthMonitor(ctx, redisClient, 60*time.Second)

	// services.
	submitter := &booking.DefaultSubmitter{
		Dispatcher:    dispatcher,
		Guard:         guard,
		IDs:           booking.NewConfirmationGenerator(cfg.ConfirmationPrefix),
		FallbackPhone: cfg.BusinessPhone,
		Logger:        logger.Named("booking"),
	}
	validator := booking.NewFormValidator(config.Location())
	bookingHandler := handlers.NewBookingHandler(submitter, validator, models.DefaultContent())
	handlerBundle := handlers.NewHandlerBundle(bookingHandler, handlers.HealthHandler)

	tmpl, err := web.Templates()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to parse templates: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	if err := middleware.TrustProxies(router, config.TrustedProxies()); err != nil {
		logger.Sugar().Fatalf("main: invalid TRUSTED_PROXIES: %v", err)
	}
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))
	router.Use(middleware.SessionMiddleware(utils.NewSessionSigner(cfg.JWTSecret, config.SessionTTL())))
	router.SetHTMLTemplate(tmpl)

	routes.RegisterRoutes(router, handlerBundle, config.Origins())

	// Start the HTTP server.
	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              "0.0.0.0:" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			logger.Warn("main: failed to close redis client", zap.Error(err))
		}
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
