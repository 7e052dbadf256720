package document

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestFirstSentence_ChinesePunctuation(t *testing.T) {
	tests := []struct {
		input     string
		sentence  string
		remainder string
	}{
		{"你好。世界", "你好。", "世界"},
		{"你好！世界", "你好！", "世界"},
		{"你好？世界", "你好？", "世界"},
		{"你好；世界", "你好；", "世界"},
	}

	for _, tt := range tests {
		sentence, remainder, found := firstSentence(tt.input)
		if !found {
			t.Errorf("firstSentence(%q): expected found=true", tt.input)
			continue
		}
		if sentence != tt.sentence {
			t.Errorf("firstSentence(%q): sentence = %q, want %q", tt.input, sentence, tt.sentence)
		}
		if remainder != tt.remainder {
			t.Errorf("firstSentence(%q): remainder = %q, want %q", tt.input, remainder, tt.remainder)
		}
	}
}

func TestFirstSentence_EnglishAndNewline(t *testing.T) {
	sentence, remainder, found := firstSentence("Hello. World")
	if !found || sentence != "Hello." || remainder != " World" {
		t.Errorf("got (%q, %q, %v)", sentence, remainder, found)
	}

	sentence, remainder, found = firstSentence("line1\nline2")
	if !found || sentence != "line1\n" || remainder != "line2" {
		t.Errorf("got (%q, %q, %v)", sentence, remainder, found)
	}
}

func TestFirstSentence_NoEnder(t *testing.T) {
	_, remainder, found := firstSentence("没有结尾标点")
	if found {
		t.Fatal("expected found=false")
	}
	if remainder != "没有结尾标点" {
		t.Errorf("remainder = %q", remainder)
	}
}

func TestChunkText_MergesShortSentences(t *testing.T) {
	text := "今天天气很好。适合出去散步。学习让人快乐。"
	chunks := ChunkText(text, 100)
	if len(chunks) != 1 {
		t.Fatalf("short sentences should merge into one chunk, got %d: %v", len(chunks), chunks)
	}
}

func TestChunkText_SplitsAtLimit(t *testing.T) {
	text := "第一句话在这里。第二句话在这里。第三句话在这里。"
	chunks := ChunkText(text, 10)
	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d: %v", len(chunks), chunks)
	}
	for i, c := range chunks {
		if n := utf8.RuneCountInString(c); n > 10 {
			t.Errorf("chunk %d exceeds limit: %d runes (%q)", i, n, c)
		}
	}
}

func TestChunkText_HardSplitsOversizedSentence(t *testing.T) {
	// 一整句没有任何结尾标点，长度超过限制
	text := strings.Repeat("长", 25)
	chunks := ChunkText(text, 10)
	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks (10+10+5), got %d: %v", len(chunks), chunks)
	}
	for i, c := range chunks {
		if n := utf8.RuneCountInString(c); n > 10 {
			t.Errorf("chunk %d exceeds limit: %d runes", i, n)
		}
	}
}

func TestChunkText_EmptyAndWhitespace(t *testing.T) {
	if chunks := ChunkText("", 100); len(chunks) != 0 {
		t.Errorf("empty text: expected no chunks, got %v", chunks)
	}
	if chunks := ChunkText("  \n\n  ", 100); len(chunks) != 0 {
		t.Errorf("whitespace text: expected no chunks, got %v", chunks)
	}
}

func TestChunkText_TrailingTextWithoutEnder(t *testing.T) {
	chunks := ChunkText("第一句。结尾没有标点", 100)
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d: %v", len(chunks), chunks)
	}
	if !strings.Contains(chunks[0], "结尾没有标点") {
		t.Errorf("trailing text lost: %q", chunks[0])
	}
}

func TestChunkText_DefaultLimit(t *testing.T) {
	// maxChars <= 0 时使用默认 100
	text := strings.Repeat("测", 150)
	chunks := ChunkText(text, 0)
	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks with default limit, got %d", len(chunks))
	}
}
