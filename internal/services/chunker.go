package services

import (
	"strings"
	"unicode/utf8"
)

// TextChunker splits long text into embedding-sized pieces with a small
// overlap, so FAQ answers longer than one embedding still retrieve well.
type TextChunker interface {
	ChunkText(text string, maxChunkSize int, overlap int) []string
}

type textChunker struct{}

func NewTextChunker() TextChunker {
	return &textChunker{}
}

// ChunkText implements TextChunker. Paragraph boundaries are preferred;
// oversized paragraphs fall back to sentence boundaries, and a sentence
// longer than the budget is hard-split so no chunk exceeds maxChunkSize.
func (tc *textChunker) ChunkText(text string, maxChunkSize int, overlap int) []string {
	if maxChunkSize <= 0 {
		maxChunkSize = 1000
	}
	if overlap < 0 {
		overlap = 0
	}
	if overlap >= maxChunkSize {
		overlap = maxChunkSize / 4
	}

	var pieces []string
	for _, para := range strings.Split(text, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		if utf8.RuneCountInString(para) > maxChunkSize {
			pieces = append(pieces, splitIntoSentences(para)...)
		} else {
			pieces = append(pieces, para)
		}
	}

	var chunks []string
	var current strings.Builder
	seedLen := 0

	flush := func() {
		if current.Len() <= seedLen {
			return
		}
		chunks = append(chunks, current.String())
		current.Reset()
		seedLen = 0
		if overlap > 0 {
			tail := lastNChars(chunks[len(chunks)-1], overlap)
			if tail != "" {
				current.WriteString(tail)
				current.WriteString(" ")
			}
			seedLen = current.Len()
		}
	}

	for _, piece := range pieces {
		for _, part := range hardSplit(piece, maxChunkSize) {
			if current.Len()+len(part)+1 > maxChunkSize {
				flush()
			}
			if current.Len() > 0 && current.Len()+len(part)+1 > maxChunkSize {
				// The carried overlap leaves no room for this part.
				current.Reset()
				seedLen = 0
			}
			if current.Len() > 0 {
				current.WriteString(" ")
			}
			current.WriteString(part)
		}
	}

	if current.Len() > seedLen {
		chunks = append(chunks, current.String())
	}

	return chunks
}

// hardSplit cuts text into segments of at most size runes. Most pieces fit
// in one segment; only sentences longer than the chunk budget are cut.
func hardSplit(text string, size int) []string {
	runes := []rune(text)
	if len(runes) <= size {
		return []string{text}
	}

	var parts []string
	for start := 0; start < len(runes); start += size {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		parts = append(parts, string(runes[start:end]))
	}
	return parts
}

func splitIntoSentences(text string) []string {
	sentences := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})

	var result []string
	for _, s := range sentences {
		s = strings.TrimSpace(s)
		if s != "" {
			result = append(result, s)
		}
	}
	return result
}

func lastNChars(text string, n int) string {
	if n <= 0 {
		return ""
	}

	runes := []rune(text)
	if len(runes) <= n {
		return text
	}

	return string(runes[len(runes)-n:])
}
