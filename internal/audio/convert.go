package audio

import (
	"math"
)

// Int16ToFloat32 将 PCM int16 样本转换为 [-1.0, 1.0] 范围的 float32。
func Int16ToFloat32(in []int16) []float32 {
	out := make([]float32, len(in))
	for i, s := range in {
		out[i] = float32(s) / math.MaxInt16
	}
	return out
}

// Float32ToInt16 将 [-1.0, 1.0] 范围的 float32 样本转换为 PCM int16。
// 超出范围的样本被钳位。
func Float32ToInt16(in []float32) []int16 {
	out := make([]int16, len(in))
	for i, s := range in {
		if s > 1.0 {
			s = 1.0
		} else if s < -1.0 {
			s = -1.0
		}
		out[i] = int16(s * math.MaxInt16)
	}
	return out
}

// BytesToInt16 将小端字节切片转换为 int16 样本。
func BytesToInt16(b []byte) []int16 {
	n := len(b) / 2
	out := make([]int16, n)
	for i := 0; i < n; i++ {
		out[i] = int16(b[2*i]) | int16(b[2*i+1])<<8
	}
	return out
}

// Int16ToBytes 将 int16 样本转换为小端字节切片。
func Int16ToBytes(in []int16) []byte {
	out := make([]byte, len(in)*2)
	for i, s := range in {
		out[2*i] = byte(s)
		out[2*i+1] = byte(s >> 8)
	}
	return out
}

// MonoFromPCM 将单声道 signed 16-bit LE PCM 字节转换为 float32 样本。
func MonoFromPCM(b []byte) []float32 {
	return Int16ToFloat32(BytesToInt16(b))
}

// MonoFromStereoPCM 将立体声 signed 16-bit LE PCM 字节转换为单声道 float32 样本。
// 左右声道取平均，不完整的尾部帧被丢弃。
func MonoFromStereoPCM(b []byte) []float32 {
	const bytesPerFrame = 4 // 左 2 字节 + 右 2 字节
	n := len(b) / bytesPerFrame
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		off := i * bytesPerFrame
		left := int16(b[off]) | int16(b[off+1])<<8
		right := int16(b[off+2]) | int16(b[off+3])<<8
		out[i] = (float32(left) + float32(right)) / 2.0 / 32768.0
	}
	return out
}
