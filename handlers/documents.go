package handlers

import (
	"context"
	"net/http"
	"os"
	"path/filepath"

	"concierge/models"
	"concierge/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const defaultSearchK = 3

// RAGService ingests documents and answers questions from them.
type RAGService interface {
	AddDocument(ctx context.Context, path string) (int, error)
	Ask(ctx context.Context, question string, k int) (string, error)
}

// SearchService serves raw similarity search.
type SearchService interface {
	Search(ctx context.Context, query string, k int) ([]models.SearchResult, error)
}

// DocumentHandler exposes upload, search, and RAG endpoints.
type DocumentHandler struct {
	RAG    RAGService
	Search SearchService
}

func NewDocumentHandler(rag RAGService, search SearchService) *DocumentHandler {
	return &DocumentHandler{RAG: rag, Search: search}
}

// UploadHandler accepts one or more files under the "files" form field,
// saves each to a temp location, and ingests it into the vector store.
func (h *DocumentHandler) UploadHandler(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid multipart form", err.Error())
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		utils.JSONError(c, http.StatusBadRequest, "No files provided", "expected at least one file under 'files'")
		return
	}

	// Each request gets its own scratch directory so concurrent uploads
	// sharing a filename cannot clobber each other mid-ingestion.
	tempDir, err := os.MkdirTemp("", "uploads-")
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create upload directory", err.Error())
		return
	}
	defer os.RemoveAll(tempDir)

	logger := utils.GetLogger()
	resp := models.UploadResponse{}
	for _, fileHeader := range files {
		tempPath := filepath.Join(tempDir, filepath.Base(fileHeader.Filename))
		if err := c.SaveUploadedFile(fileHeader, tempPath); err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "Failed to save file", err.Error())
			return
		}

		resp.UploadedFiles = append(resp.UploadedFiles, tempPath)
		if _, err := h.RAG.AddDocument(c.Request.Context(), tempPath); err != nil {
			logger.Error("document ingestion failed", zap.String("file", fileHeader.Filename), zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to add document", fileHeader.Filename+": "+err.Error())
			return
		}
		resp.AddedCount++
	}

	c.JSON(http.StatusOK, resp)
}

// SearchHandler runs a raw similarity search.
func (h *DocumentHandler) SearchHandler(c *gin.Context) {
	var req models.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid search request", err.Error())
		return
	}
	if req.K <= 0 {
		req.K = defaultSearchK
	}

	results, err := h.Search.Search(c.Request.Context(), req.Query, req.K)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Vector search failed", err.Error())
		return
	}
	if results == nil {
		results = []models.SearchResult{}
	}
	c.JSON(http.StatusOK, models.SearchResponse{Results: results})
}

// AskHandler answers a question grounded in the uploaded documents.
func (h *DocumentHandler) AskHandler(c *gin.Context) {
	var req models.AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid ask request", err.Error())
		return
	}
	if req.K <= 0 {
		req.K = defaultSearchK
	}

	answer, err := h.RAG.Ask(c.Request.Context(), req.Question, req.K)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "RAG ask failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, models.AskResponse{Answer: answer})
}
