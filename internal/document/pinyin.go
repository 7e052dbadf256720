package document

import (
	"strings"

	"github.com/mozillazg/go-pinyin"
)

// Slug 将中文文本转为不带声调的拼音短串（连字符分隔），
// 用于生成可读的临时文件名。最多取 maxWords 个字，
// 文本中没有汉字时返回空串。
func Slug(text string, maxWords int) string {
	args := pinyin.NewArgs()
	words := pinyin.LazyPinyin(text, args)
	if len(words) == 0 {
		return ""
	}
	if maxWords > 0 && len(words) > maxWords {
		words = words[:maxWords]
	}
	return strings.Join(words, "-")
}
