package analysis

import (
	"fmt"
	"strings"
	"testing"
)

func TestSplitText_Empty(t *testing.T) {
	chunks := SplitText("", 3500)
	if len(chunks) != 0 {
		t.Fatalf("expected no chunks, got %v", chunks)
	}
}

func TestSplitText_BothSentencesFit(t *testing.T) {
	chunks := SplitText("Hello. World.", 100)
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d: %v", len(chunks), chunks)
	}
	if chunks[0] != "Hello. World." {
		t.Fatalf("unexpected chunk %q", chunks[0])
	}
}

func TestSplitText_EachSentenceOversized(t *testing.T) {
	chunks := SplitText("Hello there. Goodbye now.", 10)
	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d: %v", len(chunks), chunks)
	}
	if chunks[0] != "Hello there." || chunks[1] != "Goodbye now." {
		t.Fatalf("unexpected chunks %v", chunks)
	}
}

func TestSplitText_NeverBreaksSentences(t *testing.T) {
	text := "The roadmap was approved! Alice owns the rollout. Does anyone object? Nobody did. We reconvene next Tuesday."

	chunks := SplitText(text, 40)

	// Rejoining the chunks must reconstruct the sentence-joined original.
	rejoined := strings.Join(chunks, " ")
	expected := strings.Join(splitSentences(text), " ")
	if rejoined != expected {
		t.Fatalf("chunks lost or broke sentences:\n got %q\nwant %q", rejoined, expected)
	}
}

func TestSplitText_RespectsBound(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 50; i++ {
		fmt.Fprintf(&sb, "This is sentence number %d in the transcript. ", i)
	}

	maxChars := 120
	chunks := SplitText(sb.String(), maxChars)
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	for i, chunk := range chunks {
		if len(chunk) > maxChars {
			t.Fatalf("chunk %d exceeds bound (%d > %d): %q", i, len(chunk), maxChars, chunk)
		}
	}
}

func TestSplitText_OversizedSingleSentenceKeptWhole(t *testing.T) {
	long := "This single sentence is far longer than the configured maximum and must not be broken."
	chunks := SplitText(long+" Short one.", 20)
	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d: %v", len(chunks), chunks)
	}
	if chunks[0] != long {
		t.Fatalf("oversized sentence was altered: %q", chunks[0])
	}
}

func TestSplitText_WhitespaceOnly(t *testing.T) {
	chunks := SplitText("   ", 3500)
	if len(chunks) != 0 {
		t.Fatalf("expected no chunks for whitespace input, got %v", chunks)
	}
}
