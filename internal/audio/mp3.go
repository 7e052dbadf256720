package audio

import (
	"fmt"
	"io"

	"github.com/hajimehoshi/go-mp3"
)

// DecodeMP3Mono 将 MP3 数据解码为单声道 float32 样本。
// go-mp3 恒定输出立体声 signed 16-bit LE PCM，这里统一下混为单声道。
// 返回样本数据和采样率（Hz）。
func DecodeMP3Mono(r io.Reader) ([]float32, int, error) {
	decoder, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, 0, fmt.Errorf("MP3 解码失败: %w", err)
	}

	pcm, err := io.ReadAll(decoder)
	if err != nil {
		return nil, 0, fmt.Errorf("读取 PCM 数据失败: %w", err)
	}

	return MonoFromStereoPCM(pcm), decoder.SampleRate(), nil
}
