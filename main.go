// File: concierge/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"concierge/config"
	"concierge/database"
	bookingRepo "concierge/database/repository/booking"
	"concierge/handlers"
	"concierge/middleware"
	"concierge/routes"
	"concierge/services/agent"
	"concierge/services/intelligence"
	"concierge/services/rag"
	"concierge/services/vector"
	"concierge/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitSessionCache()

	gemini, err := intelligence.NewGeminiClient(
		config.AppConfig.GeminiAPIKey,
		config.AppConfig.GeminiChatModel,
		config.AppConfig.GeminiEmbedModel,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize Gemini client: %v", err)
	}
	defer gemini.Close()

	vectorStore, err := vector.NewQdrantStore(
		config.AppConfig.QdrantHost,
		config.AppConfig.QdrantPort,
		config.AppConfig.QdrantCollection,
		gemini,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize vector store: %v", err)
	}

	// Collection setup is best-effort at boot; document endpoints report
	// their own failures if Qdrant stays unreachable.
	setupCtx, cancelSetup := context.WithTimeout(context.Background(), 10*time.Second)
	if err := vectorStore.EnsureCollection(setupCtx); err != nil {
		logger.Sugar().Warnf("main: vector collection setup failed: %v", err)
	}
	cancelSetup()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	sessionTTL := time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute
	sessionStore := agent.NewRedisSessionStore(utils.GetSessionCacheClient(), sessionTTL)
	bookings := bookingRepo.NewMongoBookingRepo()

	// Completions are served through the cache; embeddings go to Gemini
	// directly via the vector store.
	completionTTL := time.Duration(config.AppConfig.CompletionCacheTTLMinutes) * time.Minute
	completionCache := intelligence.NewRedisCompletionCache(utils.GetCacheClient(), completionTTL)
	llm := intelligence.NewCachedCompleter(gemini, completionCache, logger)

	agentSvc := agent.New(llm, vectorStore, sessionStore, bookings, logger)
	ragSvc := rag.NewService(vectorStore, llm, logger)

	handlerBundle := &routes.HandlerBundle{
		Chat:      handlers.NewChatHandler(agentSvc),
		Documents: handlers.NewDocumentHandler(ragSvc, vectorStore),
	}
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

	logger.Sugar().Info("main: server stopped gracefully")
}
