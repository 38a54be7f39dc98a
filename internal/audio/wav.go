package audio

import (
	"bytes"
	"fmt"
	"io"
	"os"

	gosaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// WriteFile encodes 16-bit PCM samples into a WAV file.
func WriteFile(path string, samples []int16, sampleRate, channels int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create wav file: %w", err)
	}

	if err := encodePCM16(f, samples, sampleRate, channels); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close wav file: %w", err)
	}
	return nil
}

// Marshal encodes 16-bit PCM samples into an in-memory WAV.
func Marshal(samples []int16, sampleRate, channels int) ([]byte, error) {
	buf := &seekableBuffer{}
	if err := encodePCM16(buf, samples, sampleRate, channels); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodePCM16(w io.WriteSeeker, samples []int16, sampleRate, channels int) error {
	enc := wav.NewEncoder(w, sampleRate, 16, channels, 1)

	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}

	buf := &gosaudio.IntBuffer{
		Format:         &gosaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("encode wav: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalize wav: %w", err)
	}
	return nil
}

// ReadFile decodes a WAV file into normalized float32 samples in [-1, 1],
// the representation the ONNX recognizer consumes.
func ReadFile(path string) ([]float32, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open wav file: %w", err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("decode wav: %w", err)
	}
	if buf.Format == nil {
		return nil, 0, fmt.Errorf("decode wav: missing format")
	}

	scale := float32(int(1) << (dec.BitDepth - 1))
	if scale <= 0 {
		scale = 1 << 15
	}

	samples := make([]float32, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = float32(v) / scale
	}

	return samples, buf.Format.SampleRate, nil
}

// ReadFilePCM16 decodes a WAV file into 16-bit samples, used by the level
// analysis helpers.
func ReadFilePCM16(path string) ([]int16, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open wav file: %w", err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("decode wav: %w", err)
	}
	if buf.Format == nil {
		return nil, 0, fmt.Errorf("decode wav: missing format")
	}

	shift := uint(0)
	if dec.BitDepth > 16 {
		shift = uint(dec.BitDepth - 16)
	}

	samples := make([]int16, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = int16(v >> shift)
	}

	return samples, buf.Format.SampleRate, nil
}

// seekableBuffer adapts a bytes buffer to the io.WriteSeeker the wav
// encoder needs for header patching.
type seekableBuffer struct {
	data []byte
	pos  int
}

func (b *seekableBuffer) Write(p []byte) (int, error) {
	if b.pos+len(p) > len(b.data) {
		grown := make([]byte, b.pos+len(p))
		copy(grown, b.data)
		b.data = grown
	}
	copy(b.data[b.pos:], p)
	b.pos += len(p)
	return len(p), nil
}

func (b *seekableBuffer) Seek(offset int64, whence int) (int64, error) {
	var next int
	switch whence {
	case io.SeekStart:
		next = int(offset)
	case io.SeekCurrent:
		next = b.pos + int(offset)
	case io.SeekEnd:
		next = len(b.data) + int(offset)
	default:
		return 0, fmt.Errorf("invalid whence %d", whence)
	}
	if next < 0 {
		return 0, fmt.Errorf("seek before start")
	}
	b.pos = next
	return int64(next), nil
}

func (b *seekableBuffer) Bytes() []byte {
	return bytes.Clone(b.data)
}
