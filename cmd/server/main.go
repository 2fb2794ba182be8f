package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/coimpres/coimpres-backend/config"
	"github.com/coimpres/coimpres-backend/internal/app/controller"
	"github.com/coimpres/coimpres-backend/internal/app/repository"
	"github.com/coimpres/coimpres-backend/internal/app/service"
	"github.com/coimpres/coimpres-backend/internal/db"
	"github.com/coimpres/coimpres-backend/internal/middleware"
	"github.com/coimpres/coimpres-backend/internal/router"
	"github.com/coimpres/coimpres-backend/internal/scheduler"
	"github.com/coimpres/coimpres-backend/internal/session"
	"github.com/coimpres/coimpres-backend/internal/storage"
	"github.com/coimpres/coimpres-backend/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting COIMPRES catalog server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}
	if err := db.EnsureAdminUser(); err != nil {
		logger.Warn("Failed to ensure admin user", map[string]interface{}{
			"error": err.Error(),
		})
	}

	// Session store: Redis in real deployments, in-memory when Redis is
	// unreachable (single-process development only).
	var sessionStore session.Store
	redisStore, err := session.NewRedisStore(&cfg.Redis)
	if err != nil {
		logger.Warn("Redis unavailable, falling back to in-memory sessions", map[string]interface{}{
			"error": err.Error(),
		})
		sessionStore = session.NewMemoryStore()
	} else {
		sessionStore = redisStore
		defer redisStore.Close()
	}

	// File storage backend.
	var files storage.FileStorage
	staticUploadsDir := ""
	if cfg.Uploads.Backend == "s3" {
		files = storage.NewS3Storage(
			cfg.S3.Region,
			cfg.S3.Bucket,
			cfg.S3.AccessKeyID,
			cfg.S3.SecretAccessKey,
			cfg.S3.BaseURL,
		)
	} else {
		localStorage, err := storage.NewLocalStorage(cfg.Uploads.LocalDir, cfg.Uploads.LocalBaseURL)
		if err != nil {
			logger.Fatal("Failed to initialize local file storage", err)
		}
		files = localStorage
		staticUploadsDir = localStorage.RootDir()
	}

	userRepo := repository.NewUserRepository(db.GetDB())
	supplierRepo := repository.NewSupplierRepository(db.GetDB())
	categoryRepo := repository.NewCategoryRepository(db.GetDB())
	statusRepo := repository.NewStatusRepository(db.GetDB())
	productRepo := repository.NewProductRepository(db.GetDB())

	authService := service.NewAuthService(userRepo, sessionStore, cfg.Session.Secret, cfg.Session.TTL)
	catalogService := service.NewCatalogService(productRepo, categoryRepo, supplierRepo)
	productService := service.NewProductService(productRepo, supplierRepo, categoryRepo, statusRepo)
	supplierService := service.NewSupplierService(supplierRepo)
	taxonomyService := service.NewTaxonomyService(categoryRepo)
	statusService := service.NewStatusService(statusRepo)
	exportService := service.NewExportService(productRepo)
	sitemapService := service.NewSitemapService(productRepo, categoryRepo, cfg.Server.BaseURL)

	catalogController := controller.NewCatalogController(catalogService, sitemapService)
	authController := controller.NewAuthController(authService, cfg.Session)
	supplierController := controller.NewSupplierController(supplierService, files, cfg.Uploads)
	categoryController := controller.NewCategoryController(taxonomyService)
	statusController := controller.NewStatusController(statusService)
	productController := controller.NewProductController(productService, files, cfg.Uploads)
	exportController := controller.NewExportController(exportService)

	adminGate := middleware.NewAdminGate(authService, cfg.Session.CookieName, "/admin/login")

	r := router.NewRouter(
		catalogController,
		authController,
		supplierController,
		categoryController,
		statusController,
		productController,
		exportController,
		adminGate,
		staticUploadsDir,
		cfg,
	)
	engine := r.Setup()

	sitemapScheduler := scheduler.NewSitemapScheduler(sitemapService, cfg.Sitemap.RefreshSchedule)
	if err := sitemapScheduler.Start(); err != nil {
		logger.Warn("Sitemap scheduler not running", map[string]interface{}{
			"error": err.Error(),
		})
	}
	defer sitemapScheduler.Stop()

	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
