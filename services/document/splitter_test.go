package document

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestSplitEmptyText(t *testing.T) {
	assert.Nil(t, Split("", 1000, 20))
}

func TestSplitShortTextIsOneChunk(t *testing.T) {
	chunks := Split("a short paragraph", 1000, 20)
	assert.Equal(t, []string{"a short paragraph"}, chunks)
}

func TestSplitRespectsChunkSize(t *testing.T) {
	text := strings.Repeat("word ", 1000)
	chunks := Split(text, 100, 20)

	assert.Greater(t, len(chunks), 1)
	for i, c := range chunks {
		assert.LessOrEqual(t, len(c), 100, "chunk %d exceeds size", i)
		assert.NotEmpty(t, c)
	}
}

func TestSplitPrefersParagraphBoundaries(t *testing.T) {
	text := "first paragraph here\n\nsecond paragraph here\n\nthird paragraph here"
	chunks := Split(text, 30, 0)

	assert.Contains(t, chunks, "first paragraph here")
}

func TestSplitKeepsRuneBoundaries(t *testing.T) {
	// No separators at all, so every cut is a hard cut through multibyte
	// characters unless the splitter aligns it.
	text := strings.Repeat("日本語の文章", 40)
	chunks := Split(text, 100, 20)

	assert.Greater(t, len(chunks), 1)
	for i, c := range chunks {
		assert.True(t, utf8.ValidString(c), "chunk %d is not valid UTF-8: %q", i, c)
		assert.LessOrEqual(t, len(c), 100)
	}
}

func TestSplitCoversWholeText(t *testing.T) {
	text := strings.Repeat("alpha beta gamma delta ", 100)
	chunks := Split(text, 120, 20)

	joined := strings.Join(chunks, " ")
	assert.Contains(t, joined, "alpha beta gamma delta")
	// The tail of the input must make it into the final chunk.
	last := chunks[len(chunks)-1]
	assert.True(t, strings.HasSuffix(strings.TrimSpace(text), last))
}
