package analysis

import (
	"regexp"
	"strings"
)

// DefaultMaxChunkChars bounds chunk size when no override is configured.
const DefaultMaxChunkChars = 3500

// A sentence ends at '.', '!' or '?' followed by whitespace. The punctuation
// stays with the sentence; the whitespace run is consumed.
var sentenceBoundary = regexp.MustCompile(`[.!?]\s+`)

// SplitText partitions text into sentence-aligned chunks of at most maxChars
// characters each. Sentences are accumulated greedily and joined with single
// spaces. A single sentence longer than maxChars becomes an oversized chunk
// on its own: a sentence is never broken in the middle. Empty input yields
// no chunks.
func SplitText(text string, maxChars int) []string {
	sentences := splitSentences(text)

	var chunks []string
	current := ""
	for _, sentence := range sentences {
		if len(current)+len(sentence)+1 <= maxChars {
			if current != "" {
				current += " "
			}
			current += sentence
		} else {
			if trimmed := strings.TrimSpace(current); trimmed != "" {
				chunks = append(chunks, trimmed)
			}
			current = sentence
		}
	}
	if trimmed := strings.TrimSpace(current); trimmed != "" {
		chunks = append(chunks, trimmed)
	}
	return chunks
}

// splitSentences cuts text at sentence boundaries, keeping the terminating
// punctuation with each sentence.
func splitSentences(text string) []string {
	var sentences []string
	start := 0
	for _, loc := range sentenceBoundary.FindAllStringIndex(text, -1) {
		// loc[0] is the punctuation byte; the whitespace run ends at loc[1].
		sentences = append(sentences, text[start:loc[0]+1])
		start = loc[1]
	}
	if start < len(text) {
		sentences = append(sentences, text[start:])
	}
	return sentences
}
