package rag

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"concierge/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeStore struct {
	texts   []string
	sources []string
	results []models.SearchResult
	err     error
}

func (f *fakeStore) EnsureCollection(ctx context.Context) error { return f.err }

func (f *fakeStore) AddTexts(ctx context.Context, texts []string, source string) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.texts = append(f.texts, texts...)
	f.sources = append(f.sources, source)
	return len(texts), nil
}

func (f *fakeStore) Search(ctx context.Context, query string, k int) ([]models.SearchResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.results, nil
}

type fakeCompleter struct {
	reply   string
	prompts []string
}

func (f *fakeCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.reply, nil
}

func TestAddDocumentChunksAndStores(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "policy.txt")
	content := strings.Repeat("Refunds are accepted within 30 days. ", 50)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	store := &fakeStore{}
	svc := NewService(store, &fakeCompleter{}, zap.NewNop())

	added, err := svc.AddDocument(context.Background(), path)
	require.NoError(t, err)
	assert.Greater(t, added, 0)
	assert.Equal(t, added, len(store.texts))
	assert.Equal(t, []string{path}, store.sources)
}

func TestAddDocumentUnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "image.png")
	require.NoError(t, os.WriteFile(path, []byte("not text"), 0o644))

	svc := NewService(&fakeStore{}, &fakeCompleter{}, zap.NewNop())

	_, err := svc.AddDocument(context.Background(), path)
	assert.Error(t, err)
}

func TestAskGroundsAnswerInResults(t *testing.T) {
	store := &fakeStore{results: []models.SearchResult{
		{Text: "Refunds are accepted within 30 days."},
		{Text: "Contact support to initiate a refund."},
	}}
	llm := &fakeCompleter{reply: "Within 30 days."}
	svc := NewService(store, llm, zap.NewNop())

	answer, err := svc.Ask(context.Background(), "what is the refund window", 3)
	require.NoError(t, err)
	assert.Equal(t, "Within 30 days.", answer)

	require.Len(t, llm.prompts, 1)
	assert.Contains(t, llm.prompts[0], "Refunds are accepted within 30 days.")
	assert.Contains(t, llm.prompts[0], "what is the refund window")
}

func TestAskNoResults(t *testing.T) {
	svc := NewService(&fakeStore{}, &fakeCompleter{}, zap.NewNop())

	answer, err := svc.Ask(context.Background(), "anything", 3)
	require.NoError(t, err)
	assert.Equal(t, "No relevant information found in the documents.", answer)
}

func TestAskSearchFailure(t *testing.T) {
	svc := NewService(&fakeStore{err: errors.New("unreachable")}, &fakeCompleter{}, zap.NewNop())

	_, err := svc.Ask(context.Background(), "anything", 3)
	assert.Error(t, err)
}
