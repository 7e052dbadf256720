package tts

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"

	"github.com/wenyin/wenyin/internal/audio"
	"github.com/wenyin/wenyin/internal/logger"
)

// piperSampleRate 是 piper 输出的固定采样率。
const piperSampleRate = 22050

// PiperEngine 使用 piper CLI 子进程实现语音合成，作为离线备用方案。
// 需要系统 PATH 中有 piper 可执行文件。
type PiperEngine struct {
	modelPath string
	speed     float64
}

// NewPiperEngine 创建指定模型的 Piper TTS 引擎。
func NewPiperEngine(modelPath string, speed float64) *PiperEngine {
	if speed == 0 {
		speed = 1.0
	}
	return &PiperEngine{modelPath: modelPath, speed: speed}
}

// Synthesize 使用 piper CLI 将文本转换为单声道 float32 音频样本。
// piper 输出 signed 16-bit LE 单声道 PCM，采样率 22050 Hz。
func (p *PiperEngine) Synthesize(ctx context.Context, text string) ([]float32, int, error) {
	logger.Debugf("[tts] piper: 正在合成 %d 个字符，模型=%s", len([]rune(text)), p.modelPath)

	args := []string{"--model", p.modelPath, "--output-raw"}
	if p.speed != 1.0 {
		// piper 用 length-scale 控制时长，与语速倍率互为倒数
		args = append(args, "--length-scale", strconv.FormatFloat(1.0/p.speed, 'f', 2, 64))
	}

	cmd := exec.CommandContext(ctx, "piper", args...)
	cmd.Stdin = bytes.NewReader([]byte(text))

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := stderr.String(); msg != "" {
			logger.Warnf("[tts] piper stderr: %s", msg)
		}
		return nil, 0, fmt.Errorf("piper 执行失败: %w", err)
	}

	pcm := stdout.Bytes()
	if len(pcm) == 0 {
		return nil, 0, fmt.Errorf("piper: 未收到音频数据")
	}

	samples := audio.MonoFromPCM(pcm)
	logger.Debugf("[tts] piper: 生成 %d 个样本，采样率 %d Hz", len(samples), piperSampleRate)
	return samples, piperSampleRate, nil
}
