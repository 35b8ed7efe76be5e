// File: services/vector/qdrant.go
package vector

import (
	"context"
	"fmt"

	"concierge/models"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"
)

// Embedder turns text into a vector. Implemented by the Gemini client.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// QdrantStore stores document chunks in a Qdrant collection and serves
// cosine similarity search over them.
type QdrantStore struct {
	client     *qdrant.Client
	collection string
	embed      Embedder
}

func NewQdrantStore(host string, port int, collection string, embed Embedder) (*QdrantStore, error) {
	client, err := qdrant.NewClient(&qdrant.Config{
		Host: host,
		Port: port,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}
	return &QdrantStore{client: client, collection: collection, embed: embed}, nil
}

// EnsureCollection creates the collection if it does not exist. The vector
// dimension is probed from a single embedding.
func (s *QdrantStore) EnsureCollection(ctx context.Context) error {
	exists, err := s.client.CollectionExists(ctx, s.collection)
	if err != nil {
		return fmt.Errorf("check collection %q: %w", s.collection, err)
	}
	if exists {
		return nil
	}

	probe, err := s.embed.Embed(ctx, "dimension probe")
	if err != nil {
		return fmt.Errorf("probe embedding dimension: %w", err)
	}

	err = s.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: s.collection,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     uint64(len(probe)),
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return fmt.Errorf("create collection %q: %w", s.collection, err)
	}
	return nil
}

// AddTexts embeds and upserts the given chunks, tagged with their source
// document. Returns the number of chunks stored.
func (s *QdrantStore) AddTexts(ctx context.Context, texts []string, source string) (int, error) {
	if len(texts) == 0 {
		return 0, nil
	}
	if err := s.EnsureCollection(ctx); err != nil {
		return 0, err
	}

	points := make([]*qdrant.PointStruct, 0, len(texts))
	for _, text := range texts {
		vec, err := s.embed.Embed(ctx, text)
		if err != nil {
			return 0, fmt.Errorf("embed chunk: %w", err)
		}
		points = append(points, &qdrant.PointStruct{
			Id:      qdrant.NewID(uuid.NewString()),
			Vectors: qdrant.NewVectors(vec...),
			Payload: qdrant.NewValueMap(map[string]any{
				"text":   text,
				"source": source,
			}),
		})
	}

	_, err := s.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: s.collection,
		Points:         points,
	})
	if err != nil {
		return 0, fmt.Errorf("upsert %d points: %w", len(points), err)
	}
	return len(points), nil
}

// Search returns the k most similar chunks for the query.
func (s *QdrantStore) Search(ctx context.Context, query string, k int) ([]models.SearchResult, error) {
	vec, err := s.embed.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	limit := uint64(k)
	hits, err := s.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: s.collection,
		Query:          qdrant.NewQuery(vec...),
		Limit:          &limit,
		WithPayload:    qdrant.NewWithPayloadInclude("text", "source"),
	})
	if err != nil {
		return nil, fmt.Errorf("query collection %q: %w", s.collection, err)
	}

	results := make([]models.SearchResult, 0, len(hits))
	for _, hit := range hits {
		r := models.SearchResult{Metadata: map[string]string{}}
		if v, ok := hit.Payload["text"]; ok {
			r.Text = v.GetStringValue()
		}
		if v, ok := hit.Payload["source"]; ok {
			r.Metadata["source"] = v.GetStringValue()
		}
		r.Metadata["score"] = fmt.Sprintf("%.4f", hit.Score)
		results = append(results, r)
	}
	return results, nil
}
