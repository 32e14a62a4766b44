// File: menucatalog/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"menucatalog/config"
	"menucatalog/database"
	menuRepo "menucatalog/database/repository/menu"
	"menucatalog/handlers"
	"menucatalog/middleware"
	"menucatalog/routes"
	"menucatalog/services/menu"
	"menucatalog/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	database.InitDB()

	// repositories.
	var categoryRepo menuRepo.CategoryRepository = menuRepo.NewMongoCategoryRepo(database.Database(), logger)
	var cacheClient *redis.Client
	if config.AppConfig.CacheEnabled {
		cacheClient = utils.GetCacheClient()
		categoryRepo = menuRepo.NewCachedCategoryRepo(categoryRepo, cacheClient, utils.CacheTTL(), logger)
		logger.Info("main: menu cache enabled", zap.String("redis", config.AppConfig.RedisAddr))
	}

	// services.
	menuService := menu.NewMenuService(categoryRepo, logger.Named("menu"))

	handlerBundle := &handlers.HandlerBundle{
		Menu:   handlers.NewMenuHandler(menuService),
		Health: &handlers.HealthHandler{Mongo: database.MongoClient, Redis: cacheClient},
	}
	if config.CloudinaryConfigured() {
		imageStorage, err := utils.Cloudinary()
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
		}
		handlerBundle.Storage = handlers.NewStorageHandler(imageStorage)
	} else {
		logger.Warn("main: cloudinary not configured, image uploads disabled")
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	if err := database.CloseDB(ctx); err != nil {
		logger.Warn("main: failed to disconnect from MongoDB", zap.Error(err))
	}
	if cacheClient != nil {
		_ = cacheClient.Close()
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
