package audio

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WriteWAV 将单声道 float32 样本以 16-bit PCM WAV 格式写入 path。
// 输出目录不存在时自动创建。
func WriteWAV(path string, samples []float32, sampleRate int) error {
	if len(samples) == 0 {
		return fmt.Errorf("没有可写入的音频样本")
	}
	if sampleRate <= 0 {
		return fmt.Errorf("非法采样率: %d", sampleRate)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("创建输出目录失败: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("创建输出文件失败: %w", err)
	}
	defer f.Close()

	if err := EncodeWAV(f, samples, sampleRate); err != nil {
		return fmt.Errorf("写入 %s 失败: %w", path, err)
	}
	return nil
}

// EncodeWAV 将单声道 float32 样本以 16-bit PCM WAV 格式写入 w。
func EncodeWAV(w io.Writer, samples []float32, sampleRate int) error {
	const (
		channels      = 1
		bitsPerSample = 16
	)

	data := Int16ToBytes(Float32ToInt16(samples))
	blockAlign := channels * bitsPerSample / 8
	byteRate := sampleRate * blockAlign

	fields := []any{
		[]byte("RIFF"),
		int32(36 + len(data)),
		[]byte("WAVE"),

		[]byte("fmt "),
		int32(16),
		int16(1), // PCM
		int16(channels),
		int32(sampleRate),
		int32(byteRate),
		int16(blockAlign),
		int16(bitsPerSample),

		[]byte("data"),
		int32(len(data)),
	}

	for _, field := range fields {
		if err := binary.Write(w, binary.LittleEndian, field); err != nil {
			return err
		}
	}

	_, err := w.Write(data)
	return err
}
