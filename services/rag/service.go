// File: services/rag/service.go
package rag

import (
	"context"
	"fmt"

	"concierge/models"
	"concierge/services/document"

	"go.uber.org/zap"
)

// VectorStore is the retrieval backend for the RAG service.
type VectorStore interface {
	EnsureCollection(ctx context.Context) error
	AddTexts(ctx context.Context, texts []string, source string) (int, error)
	Search(ctx context.Context, query string, k int) ([]models.SearchResult, error)
}

// Completer generates the final answer from retrieved context.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Service wires document ingestion and retrieval-augmented answering.
type Service struct {
	store  VectorStore
	llm    Completer
	logger *zap.Logger
}

func NewService(store VectorStore, llm Completer, logger *zap.Logger) *Service {
	return &Service{store: store, llm: llm, logger: logger}
}

// Setup makes sure the vector collection exists.
func (s *Service) Setup(ctx context.Context) error {
	return s.store.EnsureCollection(ctx)
}

// AddDocument reads a file, chunks it, and stores the chunks. Returns the
// number of chunks added.
func (s *Service) AddDocument(ctx context.Context, path string) (int, error) {
	text, err := document.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read document %s: %w", path, err)
	}

	chunks := document.Split(text, document.DefaultChunkSize, document.DefaultChunkOverlap)
	if len(chunks) == 0 {
		s.logger.Warn("document produced no chunks", zap.String("path", path))
		return 0, nil
	}

	added, err := s.store.AddTexts(ctx, chunks, path)
	if err != nil {
		return 0, fmt.Errorf("store document %s: %w", path, err)
	}
	s.logger.Info("document added", zap.String("path", path), zap.Int("chunks", added))
	return added, nil
}

// Ask retrieves the k most relevant chunks and generates an answer
// grounded in them.
func (s *Service) Ask(ctx context.Context, question string, k int) (string, error) {
	if k <= 0 {
		k = 3
	}

	results, err := s.store.Search(ctx, question, k)
	if err != nil {
		return "", fmt.Errorf("search: %w", err)
	}
	if len(results) == 0 {
		return "No relevant information found in the documents.", nil
	}

	var contextText string
	for i, r := range results {
		if i > 0 {
			contextText += "\n\n"
		}
		contextText += r.Text
	}

	prompt := fmt.Sprintf(`Based on the following context from the documents, please answer the question.

Context:
%s

Question: %s

Answer: Please provide a comprehensive answer based only on the information provided in the context above.
If the context doesn't contain enough information to answer the question, please say so.`, contextText, question)

	answer, err := s.llm.Complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("generate answer: %w", err)
	}
	return answer, nil
}
