package tts

import (
	"context"
	"fmt"

	"github.com/wenyin/wenyin/internal/config"
)

// Engine 定义语音合成后端接口。
type Engine interface {
	// Synthesize 将文本转换为音频。
	// 返回单声道 float32 音频样本、采样率（Hz）和错误。
	Synthesize(ctx context.Context, text string) ([]float32, int, error)
}

// Engines 返回全部支持的后端名称。
func Engines() []string {
	return []string{"edge", "tencent", "sherpa", "piper"}
}

// New 根据配置和音色档位创建合成后端。
func New(cfg *config.TTSConfig, profile Profile) (Engine, error) {
	switch cfg.Engine {
	case "edge":
		return NewEdgeEngine(edgeVoice(&cfg.Edge, profile)), nil
	case "tencent":
		return NewTencentEngine(TencentOptions{
			SecretID:  cfg.Tencent.SecretID,
			SecretKey: cfg.Tencent.SecretKey,
			Region:    cfg.Tencent.Region,
			VoiceType: tencentVoice(&cfg.Tencent, profile),
			Speed:     cfg.Speed,
		})
	case "sherpa":
		return NewSherpaEngine(SherpaOptions{
			ModelDir:   cfg.Sherpa.ModelDir,
			NumThreads: cfg.Sherpa.NumThreads,
			Speaker:    sherpaSpeaker(&cfg.Sherpa, profile),
			Speed:      cfg.Speed,
		})
	case "piper":
		model := piperModel(&cfg.Piper, profile)
		if model == "" {
			return nil, fmt.Errorf("piper 引擎需要在配置中指定模型路径")
		}
		return NewPiperEngine(model, cfg.Speed), nil
	default:
		return nil, fmt.Errorf("未知的 TTS 引擎: %s", cfg.Engine)
	}
}

// edgeVoice 将音色档位映射为 Edge TTS 语音名。
func edgeVoice(cfg *config.EdgeConfig, profile Profile) string {
	switch profile {
	case ProfileFemale:
		return cfg.FemaleVoice
	case ProfileMale:
		return cfg.MaleVoice
	default:
		return cfg.DefaultVoice
	}
}

// tencentVoice 将音色档位映射为腾讯云 VoiceType。
func tencentVoice(cfg *config.TencentConfig, profile Profile) int64 {
	switch profile {
	case ProfileFemale:
		return cfg.FemaleVoice
	case ProfileMale:
		return cfg.MaleVoice
	default:
		return cfg.DefaultVoice
	}
}

// sherpaSpeaker 将音色档位映射为 VITS 模型的说话人编号。
func sherpaSpeaker(cfg *config.SherpaConfig, profile Profile) int {
	switch profile {
	case ProfileFemale:
		return cfg.FemaleSpeaker
	case ProfileMale:
		return cfg.MaleSpeaker
	default:
		return cfg.DefaultSpeaker
	}
}

// piperModel 将音色档位映射为 piper 模型路径。
// 档位对应的模型未配置时退回默认模型。
func piperModel(cfg *config.PiperConfig, profile Profile) string {
	var model string
	switch profile {
	case ProfileFemale:
		model = cfg.FemaleModel
	case ProfileMale:
		model = cfg.MaleModel
	}
	if model == "" {
		model = cfg.DefaultModel
	}
	return model
}
