package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/penomovu/Unveil/internal/config"
	"github.com/penomovu/Unveil/internal/corpus"
	"github.com/penomovu/Unveil/internal/handler"
	"github.com/penomovu/Unveil/internal/knowledge"
	"github.com/penomovu/Unveil/internal/middleware"
	"github.com/penomovu/Unveil/internal/service"
	"github.com/penomovu/Unveil/pkg/logger"
	"github.com/penomovu/Unveil/pkg/redis"
)

func main() {
	configPath := "configs/assistant.yaml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zapLogger, err := logger.NewLogger(cfg.Log.Level)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("assistant starting...")

	// Redis is optional: without it the service runs with history disabled
	var redisClient *goredis.Client
	if cfg.Redis.Enabled {
		redisClient, err = redis.NewRedisClient(cfg.Redis)
		if err != nil {
			zapLogger.Warn("redis unavailable, chat history disabled", zap.Error(err))
			redisClient = nil
		}
	}

	// knowledge base and writeup corpus
	base := knowledge.NewBase(zapLogger)
	if cfg.Knowledge.File != "" {
		if err := base.LoadFile(cfg.Knowledge.File); err != nil {
			zapLogger.Warn("knowledge file not loaded, using built-in tables", zap.Error(err))
		}
	}
	store := corpus.NewStore(zapLogger)

	// services
	classifierService := service.NewClassifierService(zapLogger)
	responderService := service.NewResponderService(base, zapLogger)
	assistantService := service.NewAssistantService(classifierService, responderService, redisClient, zapLogger)
	writeupService := service.NewWriteupService(store, base, zapLogger)
	sessionService := service.NewSessionService(zapLogger)

	// handlers
	askHandler := handler.NewAskHandler(assistantService, zapLogger)
	writeupHandler := handler.NewWriteupHandler(writeupService, zapLogger)
	statusHandler := handler.NewStatusHandler(base, store, cfg.Server.Name)
	wsHandler := handler.NewWebSocketHandler(sessionService, assistantService, zapLogger)

	r := gin.Default()
	r.Use(middleware.CORS())

	r.POST("/api/ask", askHandler.Ask)
	r.POST("/api/writeups", writeupHandler.Upload)
	r.GET("/api/writeups/search", writeupHandler.Search)
	r.GET("/api/status", statusHandler.Status)
	r.GET("/api/health", statusHandler.Health)
	r.GET("/ws", wsHandler.HandleWebSocket)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	zapLogger.Info("assistant started",
		zap.Int("port", cfg.Server.Port),
		zap.Bool("history", redisClient != nil))

	if err := r.Run(addr); err != nil {
		zapLogger.Fatal("server failed", zap.Error(err))
	}
}
