package document

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/wenyin/wenyin/internal/tts"
)

// Request 描述一次合成请求：文本来源（二选一）、输出路径和音色档位。
// 由命令行参数构造，消费一次后丢弃。
type Request struct {
	Text       string      // 字面文本
	FilePath   string      // 或者输入文件路径（UTF-8）
	OutputPath string      // 输出 WAV 路径
	Profile    tts.Profile // 音色档位
}

// Validate 校验请求参数。文本来源必须且只能指定一个，输出路径必填。
func (r *Request) Validate() error {
	if r.Text != "" && r.FilePath != "" {
		return errors.New("--text 和 --file 只能指定一个")
	}
	if r.Text == "" && r.FilePath == "" {
		return errors.New("必须通过 --text 或 --file 指定输入文本")
	}
	if r.OutputPath == "" {
		return errors.New("必须通过 --output 指定输出文件路径")
	}
	return nil
}

// LoadText 返回待合成的文本。来源是文件时读取文件内容。
// 文本为空或只含空白时返回错误。
func (r *Request) LoadText() (string, error) {
	text := r.Text
	if r.FilePath != "" {
		data, err := os.ReadFile(r.FilePath)
		if err != nil {
			return "", fmt.Errorf("读取输入文件 %s 失败: %w", r.FilePath, err)
		}
		text = string(data)
	}

	if strings.TrimSpace(text) == "" {
		return "", errors.New("没有可合成的文本")
	}
	return text, nil
}
