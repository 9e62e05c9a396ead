package sound

import (
	"encoding/binary"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestLevelToVolume(t *testing.T) {
	tests := []struct {
		level float64
		want  float64
	}{
		{level: 1, want: 0},
		{level: 1.5, want: 0},
		{level: 0.5, want: -1},
		{level: 0.25, want: -2},
		{level: 0, want: -10},
		{level: -1, want: -10},
	}

	for _, tt := range tests {
		got := levelToVolume(tt.level)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("levelToVolume(%v) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestPlayWithoutSound(t *testing.T) {
	p := New(func(string) string { return "" }, 1)
	if err := p.Play("INFO"); !errors.Is(err, ErrNoSound) {
		t.Errorf("Play() error = %v, want ErrNoSound", err)
	}

	p = New(nil, 1)
	if err := p.Play("INFO"); !errors.Is(err, ErrNoSound) {
		t.Errorf("Play() with nil resolver error = %v, want ErrNoSound", err)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	unsupported := filepath.Join(dir, "ding.txt")
	if err := os.WriteFile(unsupported, []byte("not audio"), 0o600); err != nil {
		t.Fatal(err)
	}

	p := New(nil, 1)
	if _, err := p.load(filepath.Join(dir, "missing.wav")); err == nil {
		t.Error("load() of missing file should fail")
	}
	if _, err := p.load(unsupported); err == nil {
		t.Error("load() of unsupported extension should fail")
	}
	if len(p.cache) != 0 {
		t.Errorf("failed loads should not be cached, got %d entries", len(p.cache))
	}
}

func TestLoadWAVIsCached(t *testing.T) {
	path := filepath.Join(t.TempDir(), "beep.wav")
	writeWAV(t, path, 8000, 800)

	p := New(nil, 0.5)
	buf, err := p.load(path)
	if err != nil {
		t.Fatalf("load() error = %v", err)
	}
	if buf.Len() != 800 {
		t.Errorf("buffer length = %d, want 800", buf.Len())
	}
	if buf.Format().SampleRate != 8000 {
		t.Errorf("sample rate = %d, want 8000", buf.Format().SampleRate)
	}

	again, err := p.load(path)
	if err != nil {
		t.Fatalf("second load() error = %v", err)
	}
	if again != buf {
		t.Error("second load() should return the cached buffer")
	}
}

// writeWAV writes a mono 16-bit PCM file of silence.
func writeWAV(t *testing.T, path string, rate, samples int) {
	t.Helper()
	const (
		channels      = 1
		bitsPerSample = 16
	)
	dataSize := samples * channels * bitsPerSample / 8

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	le := binary.LittleEndian
	write := func(v any) {
		if err := binary.Write(f, le, v); err != nil {
			t.Fatal(err)
		}
	}
	write([]byte("RIFF"))
	write(uint32(36 + dataSize))
	write([]byte("WAVE"))
	write([]byte("fmt "))
	write(uint32(16))
	write(uint16(1))
	write(uint16(channels))
	write(uint32(rate))
	write(uint32(rate * channels * bitsPerSample / 8))
	write(uint16(channels * bitsPerSample / 8))
	write(uint16(bitsPerSample))
	write([]byte("data"))
	write(uint32(dataSize))
	write(make([]byte, dataSize))
}
