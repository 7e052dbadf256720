package document

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/wenyin/wenyin/internal/audio"
	"github.com/wenyin/wenyin/internal/logger"
	"github.com/wenyin/wenyin/internal/tts"
)

// Stats 是一次合成运行的统计结果。
type Stats struct {
	Chunks     int           // 合成的段数
	Runes      int           // 合成的字符总数
	SampleRate int           // 输出采样率（Hz）
	Duration   time.Duration // 输出音频时长
}

// Processor 将整篇文本逐段合成并写出单个 WAV 文件。
type Processor struct {
	engine        tts.Engine
	maxChunkChars int
}

// NewProcessor 创建文档处理器。maxChunkChars <= 0 时使用默认值。
func NewProcessor(engine tts.Engine, maxChunkChars int) *Processor {
	return &Processor{engine: engine, maxChunkChars: maxChunkChars}
}

// Process 将文本合成为 outputPath 处的 WAV 文件。
// 任一段合成失败即中止；后端在段间改变采样率视为后端错误。
func (p *Processor) Process(ctx context.Context, text, outputPath string) (*Stats, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("没有可合成的文本")
	}

	chunks := ChunkText(text, p.maxChunkChars)
	if len(chunks) == 0 {
		return nil, fmt.Errorf("切分后没有可合成的文本段")
	}
	logger.Infof("[document] 文本已切分为 %d 段", len(chunks))

	stats := &Stats{Chunks: len(chunks)}
	var samples []float32

	for i, chunk := range chunks {
		logger.Infof("[document] 正在合成第 %d/%d 段（%d 字）: %s",
			i+1, len(chunks), utf8.RuneCountInString(chunk), preview(chunk, 20))

		chunkSamples, rate, err := p.engine.Synthesize(ctx, chunk)
		if err != nil {
			return nil, fmt.Errorf("第 %d/%d 段合成失败: %w", i+1, len(chunks), err)
		}
		if stats.SampleRate == 0 {
			stats.SampleRate = rate
		} else if rate != stats.SampleRate {
			return nil, fmt.Errorf("后端采样率在段间发生变化: %d Hz -> %d Hz", stats.SampleRate, rate)
		}

		samples = append(samples, chunkSamples...)
		stats.Runes += utf8.RuneCountInString(chunk)
	}

	if err := audio.WriteWAV(outputPath, samples, stats.SampleRate); err != nil {
		return nil, err
	}

	stats.Duration = time.Duration(float64(len(samples)) / float64(stats.SampleRate) * float64(time.Second))
	logger.Infof("[document] 已写入 %s（%d 段，%d 字，时长 %.1fs）",
		outputPath, stats.Chunks, stats.Runes, stats.Duration.Seconds())
	return stats, nil
}

// preview 截取文本前 n 个字符用于日志。
func preview(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n]) + "..."
}
