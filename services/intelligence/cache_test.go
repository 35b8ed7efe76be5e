package intelligence

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeCache struct {
	entries map[string]string
	err     error
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string]string{}}
}

func (f *fakeCache) Get(ctx context.Context, key string) (string, bool, error) {
	if f.err != nil {
		return "", false, f.err
	}
	v, ok := f.entries[key]
	return v, ok, nil
}

func (f *fakeCache) Set(ctx context.Context, key, value string) error {
	if f.err != nil {
		return f.err
	}
	f.entries[key] = value
	return nil
}

type countingCompleter struct {
	calls int
	reply string
	err   error
}

func (c *countingCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	c.calls++
	if c.err != nil {
		return "", c.err
	}
	return c.reply, nil
}

func TestCachedCompleterServesRepeatsFromCache(t *testing.T) {
	llm := &countingCompleter{reply: "the answer"}
	cc := NewCachedCompleter(llm, newFakeCache(), zap.NewNop())
	ctx := context.Background()

	out, err := cc.Complete(ctx, "same prompt")
	require.NoError(t, err)
	assert.Equal(t, "the answer", out)

	out, err = cc.Complete(ctx, "same prompt")
	require.NoError(t, err)
	assert.Equal(t, "the answer", out)
	assert.Equal(t, 1, llm.calls, "repeated prompt must not reach the model")

	_, err = cc.Complete(ctx, "different prompt")
	require.NoError(t, err)
	assert.Equal(t, 2, llm.calls)
}

func TestCachedCompleterFallsThroughOnCacheFailure(t *testing.T) {
	llm := &countingCompleter{reply: "live answer"}
	cc := NewCachedCompleter(llm, &fakeCache{err: errors.New("redis down")}, zap.NewNop())
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		out, err := cc.Complete(ctx, "same prompt")
		require.NoError(t, err)
		assert.Equal(t, "live answer", out)
	}
	assert.Equal(t, 2, llm.calls)
}

func TestCachedCompleterDoesNotCacheFailures(t *testing.T) {
	llm := &countingCompleter{err: errors.New("connection refused")}
	cache := newFakeCache()
	cc := NewCachedCompleter(llm, cache, zap.NewNop())

	_, err := cc.Complete(context.Background(), "a prompt")
	assert.Error(t, err)
	assert.Empty(t, cache.entries)
}
