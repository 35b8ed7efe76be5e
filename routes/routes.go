package routes

import (
	"net/http"
	"time"

	"concierge/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle aggregates every handler needed to serve the API.
type HandlerBundle struct {
	Chat      *handlers.ChatHandler
	Documents *handlers.DocumentHandler
}

// RegisterChatRoutes registers the conversational endpoint.
func RegisterChatRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api")
	{
		api.POST("/chat", hb.Chat.HandleChat)
	}
}

// RegisterDocumentRoutes registers upload, search, and RAG endpoints.
func RegisterDocumentRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api")
	{
		api.POST("/documents/upload", hb.Documents.UploadHandler)
		api.POST("/documents/search", hb.Documents.SearchHandler)
		api.POST("/rag/ask", hb.Documents.AskHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint and a route index.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"routes": []string{
			"/api/chat",
			"/api/documents/upload",
			"/api/documents/search",
			"/api/rag/ask",
			"/health",
		}})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Session-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterChatRoutes(r, hb)
	RegisterDocumentRoutes(r, hb)
	RegisterHealthRoute(r)
}
