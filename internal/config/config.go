package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config 是 wenyin 的顶层配置结构。
// 所有字段都有可用的默认值，没有配置文件时工具也能直接工作。
type Config struct {
	TTS      TTSConfig      `yaml:"tts"`
	Document DocumentConfig `yaml:"document"`
	Log      LogConfig      `yaml:"log"`
}

// TTSConfig 语音合成配置。
type TTSConfig struct {
	// Engine 选择后端：edge、tencent、sherpa、piper。
	Engine string `yaml:"engine"`
	// Speed 语速倍率，1.0 为正常速度。
	Speed   float64       `yaml:"speed"`
	Edge    EdgeConfig    `yaml:"edge"`
	Tencent TencentConfig `yaml:"tencent"`
	Sherpa  SherpaConfig  `yaml:"sherpa"`
	Piper   PiperConfig   `yaml:"piper"`
}

// EdgeConfig Edge TTS 配置，按音色档位映射到微软神经网络语音名。
type EdgeConfig struct {
	DefaultVoice string `yaml:"default_voice"`
	FemaleVoice  string `yaml:"female_voice"`
	MaleVoice    string `yaml:"male_voice"`
}

// TencentConfig 腾讯云 TTS 配置，按音色档位映射到 VoiceType。
type TencentConfig struct {
	SecretID     string `yaml:"secret_id"`
	SecretKey    string `yaml:"secret_key"`
	Region       string `yaml:"region"`
	DefaultVoice int64  `yaml:"default_voice"`
	FemaleVoice  int64  `yaml:"female_voice"`
	MaleVoice    int64  `yaml:"male_voice"`
}

// SherpaConfig sherpa-onnx 离线合成配置。
// ModelDir 指向包含 model.onnx、lexicon.txt、tokens.txt 的 VITS 模型目录。
type SherpaConfig struct {
	ModelDir       string `yaml:"model_dir"`
	NumThreads     int    `yaml:"num_threads"`
	DefaultSpeaker int    `yaml:"default_speaker"`
	FemaleSpeaker  int    `yaml:"female_speaker"`
	MaleSpeaker    int    `yaml:"male_speaker"`
}

// PiperConfig Piper TTS 配置，按音色档位映射到模型文件路径。
type PiperConfig struct {
	DefaultModel string `yaml:"default_model"`
	FemaleModel  string `yaml:"female_model"`
	MaleModel    string `yaml:"male_model"`
}

// DocumentConfig 文档切分配置。
type DocumentConfig struct {
	// MaxChunkChars 单段最大字符数（按 rune 计）。
	// 腾讯云 TTS 单次约 150 个中文字符，默认 100 留出余量。
	MaxChunkChars int `yaml:"max_chunk_chars"`
}

// LogConfig 日志配置。
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Load 读取 YAML 配置文件并返回 Config。
// 支持 ${VAR_NAME} 形式的环境变量展开。
// 配置文件不存在时返回纯默认配置，保证零配置可用。
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("读取配置文件 %s 失败: %w", path, err)
	}

	// 展开环境变量，如 ${WENYIN_TENCENT_SECRET_ID}
	expanded := os.Expand(string(data), func(key string) string {
		return os.Getenv(key)
	})

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件 %s 失败: %w", path, err)
	}

	setDefaults(cfg)
	return cfg, nil
}

// Default 返回全部使用默认值的配置。
func Default() *Config {
	cfg := &Config{}
	setDefaults(cfg)
	return cfg
}

// setDefaults 为未设置的配置项填充默认值。
func setDefaults(cfg *Config) {
	if cfg.TTS.Engine == "" {
		cfg.TTS.Engine = "edge"
	}
	if cfg.TTS.Speed == 0 {
		cfg.TTS.Speed = 1.0
	}

	if cfg.TTS.Edge.DefaultVoice == "" {
		cfg.TTS.Edge.DefaultVoice = "zh-CN-XiaoxiaoNeural"
	}
	if cfg.TTS.Edge.FemaleVoice == "" {
		cfg.TTS.Edge.FemaleVoice = "zh-CN-XiaoyiNeural"
	}
	if cfg.TTS.Edge.MaleVoice == "" {
		cfg.TTS.Edge.MaleVoice = "zh-CN-YunxiNeural"
	}

	if cfg.TTS.Tencent.Region == "" {
		cfg.TTS.Tencent.Region = "ap-guangzhou"
	}
	if cfg.TTS.Tencent.DefaultVoice == 0 {
		cfg.TTS.Tencent.DefaultVoice = 1001 // 智瑜
	}
	if cfg.TTS.Tencent.FemaleVoice == 0 {
		cfg.TTS.Tencent.FemaleVoice = 1002 // 智聆
	}
	if cfg.TTS.Tencent.MaleVoice == 0 {
		cfg.TTS.Tencent.MaleVoice = 1018 // 智靖
	}

	if cfg.TTS.Sherpa.NumThreads == 0 {
		cfg.TTS.Sherpa.NumThreads = 2
	}
	// aishell3 多说话人模型中 0 号为女声，1 号为男声，
	// default/female 共用 0 号，与说话人档位语义一致。
	if cfg.TTS.Sherpa.MaleSpeaker == 0 {
		cfg.TTS.Sherpa.MaleSpeaker = 1
	}

	if cfg.Document.MaxChunkChars == 0 {
		cfg.Document.MaxChunkChars = 100
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}
