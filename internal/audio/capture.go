package audio

import (
	"encoding/binary"
	"fmt"
	"strings"
	"sync"

	"github.com/gen2brain/malgo"
)

// Recorder captures microphone audio as signed 16-bit PCM. Frames are
// either accumulated in an internal buffer (push-to-talk) or handed to a
// sink callback as they arrive (continuous dictation).
type Recorder struct {
	ctx        *malgo.AllocatedContext
	device     *malgo.Device
	deviceID   *malgo.DeviceID
	sampleRate uint32
	channels   uint32

	mu        sync.Mutex
	buf       []int16
	sink      func([]int16)
	recording bool
}

// NewRecorder creates a recorder bound to the default capture device, or
// to the first device whose name contains deviceName when it is non-empty.
// Call Close when done.
func NewRecorder(sampleRate, channels uint32, deviceName string) (*Recorder, error) {
	ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
	if err != nil {
		return nil, fmt.Errorf("initialize audio context: %w", err)
	}

	r := &Recorder{
		ctx:        ctx,
		sampleRate: sampleRate,
		channels:   channels,
	}

	if deviceName != "" {
		id, err := findCaptureDevice(ctx, deviceName)
		if err != nil {
			_ = ctx.Uninit()
			ctx.Free()
			return nil, err
		}
		r.deviceID = id
	}

	return r, nil
}

// Start begins capturing. A nil sink buffers samples internally until
// Stop; a non-nil sink receives each frame as it arrives.
func (r *Recorder) Start(sink func([]int16)) error {
	r.mu.Lock()
	if r.recording {
		r.mu.Unlock()
		return fmt.Errorf("already recording")
	}
	r.buf = r.buf[:0]
	r.sink = sink
	r.recording = true
	r.mu.Unlock()

	deviceCfg := malgo.DefaultDeviceConfig(malgo.Capture)
	deviceCfg.Capture.Format = malgo.FormatS16
	deviceCfg.Capture.Channels = r.channels
	deviceCfg.SampleRate = r.sampleRate
	if r.deviceID != nil {
		deviceCfg.Capture.DeviceID = r.deviceID.Pointer()
	}

	device, err := malgo.InitDevice(r.ctx.Context, deviceCfg, malgo.DeviceCallbacks{Data: r.onData})
	if err != nil {
		r.reset()
		return fmt.Errorf("initialize capture device: %w", err)
	}

	if err := device.Start(); err != nil {
		device.Uninit()
		r.reset()
		return fmt.Errorf("start capture device: %w", err)
	}

	r.mu.Lock()
	r.device = device
	r.mu.Unlock()

	return nil
}

// Stop ends the capture and returns the buffered samples. When a sink was
// provided, the returned slice is empty.
func (r *Recorder) Stop() []int16 {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.recording {
		return nil
	}

	if r.device != nil {
		r.device.Uninit()
		r.device = nil
	}
	r.recording = false
	r.sink = nil

	out := make([]int16, len(r.buf))
	copy(out, r.buf)
	return out
}

func (r *Recorder) IsRecording() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.recording
}

// Close releases all audio resources.
func (r *Recorder) Close() error {
	r.mu.Lock()
	if r.device != nil {
		r.device.Uninit()
		r.device = nil
	}
	r.recording = false
	r.mu.Unlock()

	if r.ctx != nil {
		if err := r.ctx.Uninit(); err != nil {
			return fmt.Errorf("uninitialize audio context: %w", err)
		}
		r.ctx.Free()
		r.ctx = nil
	}

	return nil
}

func (r *Recorder) reset() {
	r.mu.Lock()
	r.recording = false
	r.sink = nil
	r.mu.Unlock()
}

func (r *Recorder) onData(_, pSample []byte, frameCount uint32) {
	samples := bytesToInt16(pSample, frameCount*r.channels)

	r.mu.Lock()
	sink := r.sink
	if sink == nil {
		r.buf = append(r.buf, samples...)
	}
	r.mu.Unlock()

	if sink != nil {
		sink(samples)
	}
}

// Device describes a capture device known to the audio backend.
type Device struct {
	Name      string
	IsDefault bool
}

// ListCaptureDevices enumerates capture devices.
func ListCaptureDevices() ([]Device, error) {
	ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
	if err != nil {
		return nil, fmt.Errorf("initialize audio context: %w", err)
	}
	defer func() {
		_ = ctx.Uninit()
		ctx.Free()
	}()

	infos, err := ctx.Devices(malgo.Capture)
	if err != nil {
		return nil, fmt.Errorf("enumerate capture devices: %w", err)
	}

	devices := make([]Device, 0, len(infos))
	for _, info := range infos {
		devices = append(devices, Device{
			Name:      info.Name(),
			IsDefault: info.IsDefault != 0,
		})
	}
	return devices, nil
}

func findCaptureDevice(ctx *malgo.AllocatedContext, name string) (*malgo.DeviceID, error) {
	infos, err := ctx.Devices(malgo.Capture)
	if err != nil {
		return nil, fmt.Errorf("enumerate capture devices: %w", err)
	}

	for _, info := range infos {
		if strings.Contains(info.Name(), name) {
			id := info.ID
			return &id, nil
		}
	}

	return nil, fmt.Errorf("capture device %q not found", name)
}

func bytesToInt16(data []byte, sampleCount uint32) []int16 {
	samples := make([]int16, 0, sampleCount)
	for i := uint32(0); i < sampleCount; i++ {
		offset := i * 2
		if offset+2 > uint32(len(data)) {
			break
		}
		samples = append(samples, int16(binary.LittleEndian.Uint16(data[offset:offset+2])))
	}
	return samples
}
