package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/horizontrails/agency-backoffice/internal/cache"
	"github.com/horizontrails/agency-backoffice/internal/config"
	"github.com/horizontrails/agency-backoffice/internal/database"
	"github.com/horizontrails/agency-backoffice/internal/handlers"
	"github.com/horizontrails/agency-backoffice/internal/middleware"
	"github.com/horizontrails/agency-backoffice/internal/models"
	"github.com/horizontrails/agency-backoffice/internal/services"
	"github.com/horizontrails/agency-backoffice/internal/utils"
	"github.com/horizontrails/agency-backoffice/pkg/jwt"
	"github.com/horizontrails/agency-backoffice/pkg/mailer"
)

var (
	version   = "1.0.0"
	buildTime = "unknown"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	logger.Info("Starting Horizon Trails back office")
	logger.Infof("Version: %s, Build Time: %s", version, buildTime)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	logLevel, err := logrus.ParseLevel(cfg.Server.LogLevel)
	if err != nil {
		logger.Warn("Invalid log level, using INFO")
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// Database
	logger.Info("Connecting to database...")
	db, err := database.NewConnection(cfg.Database, logger)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.EnsureSchema(startupCtx, db); err != nil {
		logger.Fatalf("Failed to apply schema: %v", err)
	}
	logger.Info("Database schema ready")

	// Package listing cache
	var packageCache cache.PackageCache = cache.Noop{}
	var cachePing func(ctx context.Context) error
	if cfg.Redis.URL != "" {
		rdb, err := cache.NewRedisClient(startupCtx, cfg.Redis.URL)
		if err != nil {
			logger.WithError(err).Warn("Redis unavailable, package cache disabled")
		} else {
			packageCache = cache.NewRedisPackageCache(rdb, cfg.Redis.PackageCacheTTL, logger)
			cachePing = packageCache.Ping
			logger.Info("Package cache enabled")
		}
	}
	cancelStartup()

	// Mailer and notification dispatcher
	var m mailer.Mailer
	if cfg.Mail.Mode == "dev" {
		logger.Info("Mail mode: dev (messages are logged, not sent)")
		m = mailer.NewLogMailer(logger)
	} else {
		m = mailer.NewSMTPMailer(mailer.SMTPConfig{
			Host:      cfg.Mail.SMTPHost,
			Port:      cfg.Mail.SMTPPort,
			Username:  cfg.Mail.SMTPUsername,
			Password:  cfg.Mail.SMTPPassword,
			FromEmail: cfg.Mail.FromEmail,
			FromName:  cfg.Mail.FromName,
		})
		logger.WithField("host", cfg.Mail.SMTPHost).Info("Mail mode: production (SMTP)")
	}
	dispatcher := services.NewNotificationDispatcher(m, logger)

	// Repositories
	packageRepository := database.NewPackageRepository(db)
	bookingRepository := database.NewBookingRepository(db)
	inquiryRepository := database.NewInquiryRepository(db)
	reviewRepository := database.NewReviewRepository(db)
	userRepository := database.NewUserRepository(db)
	newsletterRepository := database.NewNewsletterRepository(db)
	galleryRepository := database.NewGalleryRepository(db)

	// Services
	logger.Info("Initializing services...")
	jwtService := jwt.NewService(
		cfg.JWT.Secret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)
	packageService := services.NewPackageService(packageRepository, packageCache)
	bookingService := services.NewBookingService(bookingRepository, packageRepository, dispatcher, cfg.Mail.StaffEmail, logger)
	inquiryService := services.NewInquiryService(inquiryRepository, packageRepository, dispatcher, cfg.Mail.StaffEmail, logger)
	reviewService := services.NewReviewService(reviewRepository)
	statsService := services.NewStatsService(bookingRepository, inquiryRepository)
	authService := services.NewAuthService(userRepository, jwtService, cfg.Security.BcryptCost)
	newsletterService := services.NewNewsletterService(newsletterRepository)
	galleryService := services.NewGalleryService(galleryRepository)

	// Handlers
	packageHandler := handlers.NewPackageHandler(packageService, logger)
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	inquiryHandler := handlers.NewInquiryHandler(inquiryService, logger)
	reviewHandler := handlers.NewReviewHandler(reviewService, logger)
	statsHandler := handlers.NewStatsHandler(statsService, logger)
	authHandler := handlers.NewAuthHandler(authService, logger)
	newsletterHandler := handlers.NewNewsletterHandler(newsletterService, logger)
	galleryHandler := handlers.NewGalleryHandler(galleryService, logger)
	healthHandler := handlers.NewHealthHandler(db, cachePing, version)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	if cfg.Security.EnableRequestLog {
		router.Use(requestLogger(logger))
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     cfg.CORS.AllowedMethods,
		AllowHeaders:     cfg.CORS.AllowedHeaders,
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", healthHandler.Check)

	authRequired := middleware.AuthMiddleware(jwtService, logger)
	adminOnly := middleware.RequireRole(models.RoleAdmin)

	v1 := router.Group("/api/v1")
	{
		// Public routes
		v1.GET("/packages", packageHandler.ListPublic)
		v1.GET("/packages/:id", packageHandler.GetPublic)
		v1.POST("/bookings", bookingHandler.Create)
		v1.POST("/inquiries", inquiryHandler.Create)
		v1.POST("/contact", inquiryHandler.CreateContact)
		v1.GET("/reviews", reviewHandler.ListPublic)
		v1.POST("/reviews", reviewHandler.Create)
		v1.GET("/gallery", galleryHandler.List)
		v1.POST("/newsletter/subscribe", newsletterHandler.Subscribe)

		auth := v1.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.Refresh)
			auth.GET("/me", authRequired, authHandler.Me)
		}

		// Staff desk: booking triage is open to every back-office role
		desk := v1.Group("/bookings", authRequired, middleware.RequireRole(models.RoleAdmin, models.RoleStaff))
		{
			desk.GET("", bookingHandler.List)
			desk.PUT("/:id", bookingHandler.UpdateStatus)
		}

		admin := v1.Group("/admin", authRequired, adminOnly)
		{
			admin.GET("/stats", statsHandler.Dashboard)

			admin.GET("/packages", packageHandler.List)
			admin.GET("/packages/:id", packageHandler.Get)
			admin.POST("/packages", packageHandler.Create)
			admin.PUT("/packages/:id", packageHandler.Update)
			admin.DELETE("/packages/:id", packageHandler.Delete)

			admin.GET("/bookings", bookingHandler.List)
			admin.GET("/bookings/:id", bookingHandler.Get)
			admin.PUT("/bookings/:id", bookingHandler.UpdateStatus)

			admin.GET("/inquiries", inquiryHandler.List)
			admin.GET("/inquiries/:id", inquiryHandler.Get)
			admin.PUT("/inquiries/:id", inquiryHandler.UpdateStatus)

			admin.GET("/reviews", reviewHandler.List)
			admin.PUT("/reviews/:id", reviewHandler.UpdateStatus)
			admin.DELETE("/reviews/:id", reviewHandler.Delete)

			admin.POST("/gallery", galleryHandler.Create)
			admin.DELETE("/gallery/:id", galleryHandler.Delete)

			admin.GET("/newsletter", newsletterHandler.List)

			admin.POST("/users", authHandler.CreateUser)
			admin.PUT("/users/:id", authHandler.UpdateUser)
		}
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Infof("Server starting on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}

	// In-flight notifications are sent before the process exits
	drained := make(chan struct{})
	go func() {
		dispatcher.Close()
		close(drained)
	}()
	select {
	case <-drained:
		logger.Info("Notification dispatcher drained")
	case <-ctx.Done():
		logger.Warn("Shutdown deadline reached before all notifications were sent")
	}

	if err := packageCache.Close(); err != nil {
		logger.WithError(err).Warn("Failed to close package cache")
	}
	if err := db.Close(); err != nil {
		logger.WithError(err).Warn("Failed to close database")
	}

	logger.Info("Server exited successfully")
}

// requestLogger logs one line per request. Client errors are logged at warn
// level and server errors at error level.
func requestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		device := utils.ParseUserAgent(c.Request.UserAgent())
		fields := logrus.Fields{
			"status":     c.Writer.Status(),
			"method":     c.Request.Method,
			"path":       path,
			"query":      query,
			"ip":         utils.GetRealIP(c),
			"latency_ms": time.Since(start).Milliseconds(),
			"device":     device.Summary(),
			"has_auth":   c.GetHeader("Authorization") != "",
		}
		if userCtx, ok := middleware.GetUserContext(c); ok {
			fields["user_id"] = userCtx.UserID
			fields["role"] = userCtx.Role
		}

		entry := logger.WithFields(fields)
		if len(c.Errors) > 0 {
			entry.WithField("errors", c.Errors.String()).Error("Request failed with errors")
			return
		}

		status := c.Writer.Status()
		switch {
		case status >= 500:
			entry.Error("Request completed with server error")
		case status >= 400:
			entry.Warn("Request completed with client error")
		default:
			entry.Info("Request completed successfully")
		}
	}
}
