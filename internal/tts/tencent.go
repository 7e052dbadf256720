package tts

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"

	"github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/common"
	"github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/common/profile"
	tcloudtts "github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/tts/v20190823"

	"github.com/wenyin/wenyin/internal/audio"
	"github.com/wenyin/wenyin/internal/logger"
)

// TencentEngine 使用腾讯云 TTS 实现语音合成。
// 适用于中国大陆网络环境。
type TencentEngine struct {
	client    *tcloudtts.Client
	voiceType int64
	speed     float64
}

// TencentOptions 腾讯云 TTS 引擎参数。
type TencentOptions struct {
	SecretID  string
	SecretKey string
	Region    string
	VoiceType int64
	Speed     float64
}

// NewTencentEngine 创建腾讯云 TTS 引擎。
func NewTencentEngine(opts TencentOptions) (*TencentEngine, error) {
	if opts.SecretID == "" || opts.SecretKey == "" {
		return nil, fmt.Errorf("腾讯云 TTS 需要 SecretID 和 SecretKey（可通过配置文件或环境变量提供）")
	}
	if opts.Region == "" {
		opts.Region = "ap-guangzhou"
	}
	if opts.Speed == 0 {
		opts.Speed = 1.0
	}

	credential := common.NewCredential(opts.SecretID, opts.SecretKey)
	cpf := profile.NewClientProfile()
	cpf.HttpProfile.Endpoint = "tts.tencentcloudapi.com"

	client, err := tcloudtts.NewClient(credential, opts.Region, cpf)
	if err != nil {
		return nil, fmt.Errorf("创建腾讯云 TTS 客户端失败: %w", err)
	}

	logger.Debugf("[tts] 腾讯云 TTS 引擎已初始化 (voice=%d, region=%s)", opts.VoiceType, opts.Region)

	return &TencentEngine{
		client:    client,
		voiceType: opts.VoiceType,
		speed:     opts.Speed,
	}, nil
}

// Synthesize 将文本合成为单声道 float32 音频样本。
// 腾讯云返回 Base64 编码的 MP3，解码后下混为 PCM。
func (e *TencentEngine) Synthesize(ctx context.Context, text string) ([]float32, int, error) {
	logger.Debugf("[tts] 腾讯云 TTS: 正在合成 %d 个字符，音色=%d", len([]rune(text)), e.voiceType)

	request := tcloudtts.NewTextToVoiceRequest()
	request.Text = common.StringPtr(text)
	request.VoiceType = common.Int64Ptr(e.voiceType)
	request.Codec = common.StringPtr("mp3")
	request.Speed = common.Float64Ptr(speedToTencent(e.speed))
	request.Volume = common.Float64Ptr(5.0)

	response, err := e.client.TextToVoiceWithContext(ctx, request)
	if err != nil {
		return nil, 0, fmt.Errorf("腾讯云 TTS 合成失败: %w", err)
	}

	if response.Response == nil || response.Response.Audio == nil {
		return nil, 0, fmt.Errorf("腾讯云 TTS: 未返回音频数据")
	}

	mp3Data, err := base64.StdEncoding.DecodeString(*response.Response.Audio)
	if err != nil {
		return nil, 0, fmt.Errorf("腾讯云 TTS: Base64 解码失败: %w", err)
	}

	samples, sampleRate, err := audio.DecodeMP3Mono(bytes.NewReader(mp3Data))
	if err != nil {
		return nil, 0, fmt.Errorf("腾讯云 TTS: %w", err)
	}

	logger.Debugf("[tts] 腾讯云 TTS: 生成 %d 个样本，采样率 %d Hz", len(samples), sampleRate)
	return samples, sampleRate, nil
}

// speedToTencent 将语速倍率换算为腾讯云 Speed 参数。
// 腾讯云取值 [-2, 6]：0 为正常速度，2 为 1.5 倍，-2 为 0.6 倍；
// 这里按线性近似换算并钳位。
func speedToTencent(ratio float64) float64 {
	speed := (ratio - 1.0) * 4
	if speed > 6 {
		speed = 6
	} else if speed < -2 {
		speed = -2
	}
	return speed
}
