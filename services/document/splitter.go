// File: services/document/splitter.go
package document

import (
	"strings"
	"unicode/utf8"
)

const (
	DefaultChunkSize    = 1000
	DefaultChunkOverlap = 20
)

var separators = []string{"\n\n", "\n", " ", ""}

// Split breaks text into chunks of at most chunkSize characters,
// preferring to cut on paragraph, then line, then word boundaries, with
// the given overlap carried between adjacent chunks.
func Split(text string, chunkSize, overlap int) []string {
	if text == "" {
		return nil
	}
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if overlap < 0 || overlap >= chunkSize {
		overlap = DefaultChunkOverlap
	}

	var chunks []string
	for start := 0; start < len(text); {
		end := start + chunkSize
		if end >= len(text) {
			chunk := strings.TrimSpace(text[start:])
			if chunk != "" {
				chunks = append(chunks, chunk)
			}
			break
		}

		cut := end
		for _, sep := range separators {
			if sep == "" {
				break
			}
			if idx := strings.LastIndex(text[start:end], sep); idx > 0 {
				cut = start + idx + len(sep)
				break
			}
		}
		// A hard cut may land inside a multibyte character; back up to the
		// nearest rune start so every chunk stays valid UTF-8.
		cut = runeStart(text, cut)
		if cut <= start {
			// A single rune wider than the window; take it whole.
			_, size := utf8.DecodeRuneInString(text[start:])
			cut = start + size
		}

		chunk := strings.TrimSpace(text[start:cut])
		if chunk != "" {
			chunks = append(chunks, chunk)
		}

		next := runeStart(text, cut-overlap)
		if next <= start {
			next = cut
		}
		start = next
	}
	return chunks
}

// runeStart moves i back to the nearest rune start at or before it.
func runeStart(text string, i int) int {
	for i > 0 && i < len(text) && !utf8.RuneStart(text[i]) {
		i--
	}
	return i
}
