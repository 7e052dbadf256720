package audio

import (
	"math"
	"testing"
)

func TestInt16ToFloat32_Empty(t *testing.T) {
	out := Int16ToFloat32(nil)
	if len(out) != 0 {
		t.Fatalf("expected empty slice, got length %d", len(out))
	}
}

func TestInt16ToFloat32_Extremes(t *testing.T) {
	out := Int16ToFloat32([]int16{0, math.MaxInt16, math.MinInt16})
	if out[0] != 0 {
		t.Errorf("expected 0.0, got %f", out[0])
	}
	if out[1] != 1.0 {
		t.Errorf("expected 1.0 for MaxInt16, got %f", out[1])
	}
	// MinInt16 = -32768，除以 MaxInt16 略小于 -1.0
	expected := float32(math.MinInt16) / math.MaxInt16
	if out[2] != expected {
		t.Errorf("expected %f for MinInt16, got %f", expected, out[2])
	}
}

func TestFloat32ToInt16_Clamps(t *testing.T) {
	out := Float32ToInt16([]float32{0.5, -0.5, 0, 1.5, -1.5})
	if out[0] <= 0 {
		t.Errorf("expected positive for 0.5, got %d", out[0])
	}
	if out[1] >= 0 {
		t.Errorf("expected negative for -0.5, got %d", out[1])
	}
	if out[2] != 0 {
		t.Errorf("expected 0 for 0.0, got %d", out[2])
	}
	if out[3] != math.MaxInt16 {
		t.Errorf("expected clamp to MaxInt16 for 1.5, got %d", out[3])
	}
	if out[4] != -math.MaxInt16 {
		t.Errorf("expected clamp to -MaxInt16 for -1.5, got %d", out[4])
	}
}

func TestBytesInt16_LittleEndianRoundtrip(t *testing.T) {
	// 0x0102 的小端表示为 {0x02, 0x01}
	out := BytesToInt16([]byte{0x02, 0x01})
	if len(out) != 1 || out[0] != 0x0102 {
		t.Fatalf("expected 258 (0x0102), got %v", out)
	}

	samples := []int16{0, 1, -1, 1000, -1000, math.MaxInt16, math.MinInt16}
	result := BytesToInt16(Int16ToBytes(samples))
	if len(result) != len(samples) {
		t.Fatalf("length mismatch: expected %d, got %d", len(samples), len(result))
	}
	for i, s := range samples {
		if result[i] != s {
			t.Errorf("index %d: expected %d, got %d", i, s, result[i])
		}
	}
}

func TestMonoFromPCM(t *testing.T) {
	pcm := Int16ToBytes([]int16{math.MaxInt16, 0})
	out := MonoFromPCM(pcm)
	if len(out) != 2 {
		t.Fatalf("expected 2 samples, got %d", len(out))
	}
	if out[0] != 1.0 || out[1] != 0 {
		t.Errorf("unexpected samples: %v", out)
	}
}

func TestMonoFromStereoPCM_Downmix(t *testing.T) {
	// 一帧：左 +16384，右 -16384 → 平均 0
	// 一帧：左 16384，右 16384 → 平均 16384/32768 = 0.5
	pcm := Int16ToBytes([]int16{16384, -16384, 16384, 16384})
	out := MonoFromStereoPCM(pcm)
	if len(out) != 2 {
		t.Fatalf("expected 2 mono frames, got %d", len(out))
	}
	if out[0] != 0 {
		t.Errorf("frame 0: expected 0, got %f", out[0])
	}
	if out[1] != 0.5 {
		t.Errorf("frame 1: expected 0.5, got %f", out[1])
	}
}

func TestMonoFromStereoPCM_DropsPartialFrame(t *testing.T) {
	// 6 字节 = 1 个完整立体声帧 + 2 字节残帧
	pcm := make([]byte, 6)
	out := MonoFromStereoPCM(pcm)
	if len(out) != 1 {
		t.Fatalf("expected partial frame to be dropped, got %d frames", len(out))
	}
}
