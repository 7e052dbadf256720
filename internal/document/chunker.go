package document

import (
	"strings"
	"unicode/utf8"
)

// firstSentence 尝试从文本中提取第一个完整句子。
// 返回句子（含结尾标点）、剩余文本和是否找到。
func firstSentence(text string) (string, string, bool) {
	enders := []rune{'。', '！', '？', '；', '.', '!', '?', '\n'}
	for i, r := range text {
		for _, ender := range enders {
			if r == ender {
				splitAt := i + utf8.RuneLen(r)
				return text[:splitAt], text[splitAt:], true
			}
		}
	}
	return "", text, false
}

// ChunkText 将文本按句分割后合并为大段，每段不超过 maxChars 个字符（按 rune 计）。
// 单句超过 maxChars 时按字符硬切，保证每段都在后端可接受的长度内。
func ChunkText(text string, maxChars int) []string {
	if maxChars <= 0 {
		maxChars = 100
	}

	var chunks []string
	var current strings.Builder
	currentLen := 0

	flush := func() {
		if s := strings.TrimSpace(current.String()); s != "" {
			chunks = append(chunks, s)
		}
		current.Reset()
		currentLen = 0
	}

	appendSentence := func(sentence string) {
		n := utf8.RuneCountInString(sentence)
		if currentLen > 0 && currentLen+n > maxChars {
			flush()
		}
		// 单句超限时按字符硬切
		for n > maxChars {
			runes := []rune(sentence)
			if cut := strings.TrimSpace(string(runes[:maxChars])); cut != "" {
				chunks = append(chunks, cut)
			}
			sentence = string(runes[maxChars:])
			n = utf8.RuneCountInString(sentence)
		}
		if sentence == "" {
			return
		}
		current.WriteString(sentence)
		currentLen += n
	}

	remaining := text
	for {
		sentence, rest, found := firstSentence(remaining)
		if !found {
			if r := strings.TrimSpace(remaining); r != "" {
				appendSentence(r)
			}
			break
		}
		remaining = rest
		if s := strings.TrimSpace(sentence); s != "" {
			appendSentence(s)
		}
	}
	flush()
	return chunks
}
