package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"taskcheck/pkg/translator"

	dbadapter "taskcheck/internal/adapter/db"
	httpadapter "taskcheck/internal/adapter/http"
	"taskcheck/internal/adapter/http/handlers"
	httpmiddleware "taskcheck/internal/adapter/http/middleware"
	sessionadapter "taskcheck/internal/adapter/session"
	"taskcheck/internal/app/service"
	"taskcheck/internal/config"
	"taskcheck/internal/core/ports"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageRu},
	})

	cfg := config.LoadConfig()
	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	if err := dbadapter.EnsureSchema(context.Background(), db); err != nil {
		logger.Fatal("failed to ensure schema", zap.Error(err))
	}

	var sessions ports.SessionStore
	var sessionPing func(ctx context.Context) error
	switch cfg.SessionBackend {
	case config.SessionBackendRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, DB: cfg.RedisDB})
		if err := client.Ping(context.Background()).Err(); err != nil {
			logger.Fatal("failed to connect to redis", zap.Error(err))
		}
		sessions = sessionadapter.NewRedisStore(client)
		sessionPing = func(ctx context.Context) error { return client.Ping(ctx).Err() }
		logger.Info("using redis session store", zap.String("addr", cfg.RedisAddr))
	default:
		sessions = sessionadapter.NewMemoryStore()
	}

	userRepository := dbadapter.NewUserRepository(db)
	taskRepository := dbadapter.NewTaskRepository(db)
	wizardService := service.NewWizardService(sessions, taskRepository)
	checkerService := service.NewCheckerService(taskRepository)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("failed to set trusted proxies", zap.Error(err))
	}

	healthHandler := handlers.NewHealthHandler(db, sessionPing)
	updateHandler := handlers.NewUpdateHandler(userRepository, wizardService, checkerService)
	httpadapter.RegisterRoutes(r, healthHandler, updateHandler)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
