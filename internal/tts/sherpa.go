package tts

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	sherpa "github.com/k2-fsa/sherpa-onnx-go/sherpa_onnx"

	"github.com/wenyin/wenyin/internal/logger"
)

// SherpaEngine 使用 sherpa-onnx 离线 VITS 模型实现语音合成，
// 不依赖网络。模型目录需包含 model.onnx、lexicon.txt 和 tokens.txt。
type SherpaEngine struct {
	tts     *sherpa.OfflineTts
	speaker int
	speed   float32
}

// SherpaOptions sherpa-onnx 离线合成引擎参数。
type SherpaOptions struct {
	ModelDir   string
	NumThreads int
	Speaker    int
	Speed      float64
}

// NewSherpaEngine 创建 sherpa-onnx 离线合成引擎。
func NewSherpaEngine(opts SherpaOptions) (*SherpaEngine, error) {
	if opts.ModelDir == "" {
		return nil, fmt.Errorf("sherpa 引擎需要在配置中指定模型目录")
	}
	if _, err := os.Stat(opts.ModelDir); err != nil {
		return nil, fmt.Errorf("sherpa 模型目录不可用: %w", err)
	}
	if opts.NumThreads <= 0 {
		opts.NumThreads = 2
	}
	if opts.Speed == 0 {
		opts.Speed = 1.0
	}

	config := sherpa.OfflineTtsConfig{}
	config.Model.Vits.Model = filepath.Join(opts.ModelDir, "model.onnx")
	config.Model.Vits.Lexicon = filepath.Join(opts.ModelDir, "lexicon.txt")
	config.Model.Vits.Tokens = filepath.Join(opts.ModelDir, "tokens.txt")
	config.Model.NumThreads = opts.NumThreads
	config.Model.Provider = "cpu"

	tts := sherpa.NewOfflineTts(&config)
	if tts == nil {
		return nil, fmt.Errorf("创建离线合成器失败，模型目录: %s", opts.ModelDir)
	}

	logger.Debugf("[tts] sherpa: 离线合成引擎已初始化 (model_dir=%s, speaker=%d)", opts.ModelDir, opts.Speaker)

	return &SherpaEngine{
		tts:     tts,
		speaker: opts.Speaker,
		speed:   float32(opts.Speed),
	}, nil
}

// Synthesize 将文本合成为单声道 float32 音频样本。
func (e *SherpaEngine) Synthesize(ctx context.Context, text string) ([]float32, int, error) {
	select {
	case <-ctx.Done():
		return nil, 0, ctx.Err()
	default:
	}

	logger.Debugf("[tts] sherpa: 正在合成 %d 个字符，说话人=%d", len([]rune(text)), e.speaker)

	generated := e.tts.Generate(text, e.speaker, e.speed)
	if generated == nil || len(generated.Samples) == 0 {
		return nil, 0, fmt.Errorf("sherpa: 合成未产生音频（说话人 %d）", e.speaker)
	}

	logger.Debugf("[tts] sherpa: 生成 %d 个样本，采样率 %d Hz", len(generated.Samples), generated.SampleRate)
	return generated.Samples, generated.SampleRate, nil
}

// Close 释放底层推理资源。
func (e *SherpaEngine) Close() error {
	if e.tts != nil {
		sherpa.DeleteOfflineTts(e.tts)
		e.tts = nil
	}
	return nil
}
