package audio

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

func TestEncodeWAV_Header(t *testing.T) {
	samples := []float32{0, 0.5, -0.5, 1.0}
	var buf bytes.Buffer
	if err := EncodeWAV(&buf, samples, 22050); err != nil {
		t.Fatalf("EncodeWAV failed: %v", err)
	}

	data := buf.Bytes()
	if len(data) != 44+len(samples)*2 {
		t.Fatalf("expected %d bytes, got %d", 44+len(samples)*2, len(data))
	}

	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		t.Errorf("bad RIFF/WAVE magic: %q %q", data[0:4], data[8:12])
	}
	if string(data[12:16]) != "fmt " || string(data[36:40]) != "data" {
		t.Errorf("bad chunk ids: %q %q", data[12:16], data[36:40])
	}

	if format := binary.LittleEndian.Uint16(data[20:22]); format != 1 {
		t.Errorf("audio format: got %d, want 1 (PCM)", format)
	}
	if channels := binary.LittleEndian.Uint16(data[22:24]); channels != 1 {
		t.Errorf("channels: got %d, want 1", channels)
	}
	if rate := binary.LittleEndian.Uint32(data[24:28]); rate != 22050 {
		t.Errorf("sample rate: got %d, want 22050", rate)
	}
	if bits := binary.LittleEndian.Uint16(data[34:36]); bits != 16 {
		t.Errorf("bits per sample: got %d, want 16", bits)
	}
	if dataSize := binary.LittleEndian.Uint32(data[40:44]); dataSize != uint32(len(samples)*2) {
		t.Errorf("data size: got %d, want %d", dataSize, len(samples)*2)
	}
}

func TestWriteWAV_CreatesDirAndFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "nested", "a.wav")
	if err := WriteWAV(path, []float32{0.1, 0.2, 0.3}, 16000); err != nil {
		t.Fatalf("WriteWAV failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("output file missing: %v", err)
	}
	if info.Size() <= 44 {
		t.Errorf("output file should contain audio data, size=%d", info.Size())
	}
}

func TestWriteWAV_RejectsEmptySamples(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.wav")
	if err := WriteWAV(path, nil, 16000); err == nil {
		t.Fatal("expected error for empty samples")
	}
}

func TestWriteWAV_RejectsBadSampleRate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.wav")
	if err := WriteWAV(path, []float32{0.1}, 0); err == nil {
		t.Fatal("expected error for zero sample rate")
	}
}
