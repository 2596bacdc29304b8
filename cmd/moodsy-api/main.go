package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/strongDoorknob/moodsy/internal/api/config"
	delivery "github.com/strongDoorknob/moodsy/internal/api/delivery/http"
	_ "github.com/strongDoorknob/moodsy/internal/api/docs"
	"github.com/strongDoorknob/moodsy/internal/api/repository"
	"github.com/strongDoorknob/moodsy/internal/api/service"
	"github.com/strongDoorknob/moodsy/pkg/common"
	"github.com/strongDoorknob/moodsy/pkg/logger"
	"github.com/strongDoorknob/moodsy/pkg/postgres"
	"github.com/strongDoorknob/moodsy/pkg/redis"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	swagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the moodsy API server",
	Run:   runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	// Create a context that is canceled on interrupt signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()
	zap.ReplaceGlobals(appLogger.Logger)

	appLogger.Info("Starting Moodsy API", logger.Field("name", cfg.App.Name))

	// Initialize database
	postgresCfg := postgres.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		DBName:          cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		TimeZone:        cfg.Database.TimeZone,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		LogLevel:        cfg.Database.LogLevel,
	}
	db, err := postgres.NewDB(postgresCfg)
	if err != nil {
		appLogger.Fatal("Failed to initialize database", logger.ErrorField(err))
	}
	if sqlDB, err := db.DB.DB(); err == nil {
		defer sqlDB.Close()
	}

	// Initialize Redis, only used to cache classifications
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = redis.NewClient(redis.Config{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		if err != nil {
			appLogger.Fatal("Failed to initialize Redis", logger.ErrorField(err))
		}
		defer redisClient.Close()
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db.DB)
	articleRepo := repository.NewNewsArticleRepository(db.DB)
	sentimentLogRepo := repository.NewSentimentLogRepository(db.DB)

	newsProvider := newNewsProvider(cfg, appLogger)

	sentimentBackend := newSentimentBackend(ctx, cfg, appLogger)
	if redisClient != nil && cfg.Sentiment.CacheTTL > 0 {
		sentimentBackend = repository.NewCachedSentimentRepository(sentimentBackend, redisClient.Client, cfg.Sentiment.CacheTTL, appLogger)
	}

	// Initialize services
	tokenSvc, err := service.NewTokenService(cfg.Auth)
	if err != nil {
		appLogger.Fatal("Failed to initialize token service", logger.ErrorField(err))
	}
	authSvc := service.NewAuthService(userRepo, tokenSvc, appLogger)
	classifier := service.NewSentimentClassifier(sentimentBackend, appLogger)
	newsSvc := service.NewNewsService(cfg, newsProvider, classifier, articleRepo, appLogger)
	moodLogSvc := service.NewMoodLogService(sentimentLogRepo, appLogger)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	requireAuth := delivery.BearerAuth(authSvc, appLogger)
	api := e.Group("/api")

	authHandler := delivery.NewAuthHandler(authSvc, appLogger)
	authHandler.RegisterRoutes(api.Group("/auth"), requireAuth)

	newsHandler := delivery.NewNewsHandler(newsSvc, appLogger)
	newsHandler.RegisterRoutes(api)

	moodLogHandler := delivery.NewMoodLogHandler(moodLogSvc, appLogger)
	moodLogHandler.RegisterRoutes(api.Group("/moodlog", requireAuth))

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"ok": true})
	})
	e.GET("/swagger/*", swagger.WrapHandler)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.API.Host, cfg.API.Port)
		appLogger.Info("HTTP server starting", logger.Field("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop() // trigger shutdown
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()

	appLogger.Info("Shutting down server...")

	// Gracefully shutdown the server
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", logger.ErrorField(err))
	}

	appLogger.Info("Server exiting")
}

func newNewsProvider(cfg *config.Config, appLogger *logger.Logger) repository.NewsProviderRepository {
	switch cfg.News.Provider {
	case common.NewsProviderNewsData:
		return repository.NewNewsDataRepository(cfg, appLogger)
	case common.NewsProviderNewsAPI:
		return repository.NewNewsAPIRepository(cfg, appLogger)
	case common.NewsProviderGoogleRSS:
		return repository.NewGoogleRSSRepository(cfg, appLogger)
	default:
		appLogger.Fatal("Invalid news provider specified in config", logger.StringField("provider", cfg.News.Provider))
	}
	return nil
}

func newSentimentBackend(ctx context.Context, cfg *config.Config, appLogger *logger.Logger) repository.SentimentRepository {
	switch cfg.Sentiment.Provider {
	case common.SentimentProviderHuggingFace:
		return repository.NewHuggingFaceRepository(cfg, appLogger)
	case common.SentimentProviderLocal:
		localModel := repository.NewLocalModelRepository(cfg, appLogger)
		// The model must be available before the first request is served.
		if err := localModel.Load(ctx); err != nil {
			appLogger.Fatal("Failed to load local sentiment model", logger.ErrorField(err))
		}
		return localModel
	case common.SentimentProviderLLM:
		return repository.NewLLMSentimentRepository(newChatCompleter(ctx, cfg, appLogger), appLogger)
	default:
		appLogger.Fatal("Invalid sentiment provider specified in config", logger.StringField("provider", cfg.Sentiment.Provider))
	}
	return nil
}

func newChatCompleter(ctx context.Context, cfg *config.Config, appLogger *logger.Logger) repository.ChatCompleter {
	switch cfg.LLM.Provider {
	case common.LLMProviderOpenAI:
		return repository.NewOpenAIRepository(cfg, appLogger)
	case common.LLMProviderGemini:
		genAiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cfg.Gemini.APIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			appLogger.Fatal("Failed to initialize Gemini AI client", logger.ErrorField(err))
		}
		return repository.NewGeminiRepository(cfg, appLogger, genAiClient)
	default:
		appLogger.Fatal("Invalid LLM provider specified in config", logger.StringField("provider", cfg.LLM.Provider))
	}
	return nil
}

// @title Moodsy API
// @version 1.0
// @description News sentiment analysis and mood log API.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	rootCmd := &cobra.Command{Use: "moodsy-api"}

	serveCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config-api.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing moodsy-api CLI: %s\n", err)
		os.Exit(1)
	}
}
