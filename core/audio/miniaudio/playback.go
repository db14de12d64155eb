package miniaudio

import (
	"fmt"
	"sync"

	"github.com/gen2brain/malgo"
	"github.com/koscakluka/lakshmi-path/core/audio"
)

type playbackClient struct {
	device       *malgo.Device
	config       malgo.DeviceConfig
	encodingInfo audio.EncodingInfo

	mu sync.Mutex

	// bufferMu guards queued and marks, which the device callback consumes.
	bufferMu sync.Mutex
	queued   []byte
	marks    []playbackMark
}

type playbackMark struct {
	name     string
	position int
	callback func(string)
}

func (c *playbackClient) Init(audioContext *malgo.AllocatedContext, encodingInfo audio.EncodingInfo) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if encodingInfo.Format != audio.EncodingLinear16 {
		return fmt.Errorf("unsupported playback format %q", encodingInfo.Format.Name())
	}

	sampleRate := uint32(encodingInfo.SampleRate)
	channels := 1
	format := malgo.FormatS16
	bytesPerFrame := malgo.SampleSizeInBytes(format) * channels

	c.encodingInfo = encodingInfo
	c.config = malgo.DefaultDeviceConfig(malgo.Playback)
	c.config.SampleRate = sampleRate
	c.config.Playback.Format = format
	c.config.Playback.Channels = uint32(channels)
	c.config.Alsa.NoMMap = 1
	c.config.PeriodSizeInFrames = sampleRate / 10 // ~100ms of audio
	c.config.Periods = 4

	var err error
	if c.device, err = malgo.InitDevice(
		audioContext.Context,
		c.config,
		malgo.DeviceCallbacks{Data: c.processAudio(bytesPerFrame)},
	); err != nil {
		return err
	}

	return nil
}

func (c *playbackClient) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.device == nil {
		return fmt.Errorf("device not initialized")
	}

	if err := c.device.Start(); err != nil {
		return fmt.Errorf("failed to start playback device: %w", err)
	}
	return nil
}

func (c *playbackClient) Stop() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.device == nil {
		return fmt.Errorf("device not initialized")
	}

	if err := c.device.Stop(); err != nil {
		return fmt.Errorf("failed to stop playback device: %w", err)
	}

	c.ClearBuffer()
	return nil
}

func (c *playbackClient) SendAudio(audio []byte) error {
	c.mu.Lock()
	started := c.device != nil && c.device.IsStarted()
	c.mu.Unlock()
	if !started {
		return fmt.Errorf("device not started")
	}

	c.bufferMu.Lock()
	defer c.bufferMu.Unlock()
	c.queued = append(c.queued, audio...)
	return nil
}

func (c *playbackClient) ClearBuffer() {
	c.bufferMu.Lock()
	defer c.bufferMu.Unlock()
	c.queued = nil
	c.marks = nil
}

func (c *playbackClient) Mark(name string, callback func(string)) error {
	c.bufferMu.Lock()
	defer c.bufferMu.Unlock()
	c.marks = append(c.marks, playbackMark{
		name:     name,
		position: len(c.queued),
		callback: callback,
	})
	return nil
}

func (c *playbackClient) Uninit() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.device == nil {
		return fmt.Errorf("device not initialized")
	}

	c.device.Uninit()
	c.device = nil
	return nil
}

func (c *playbackClient) processAudio(bytesPerFrame int) malgo.DataProc {
	return func(pOutput, _ []byte, frameCount uint32) {
		need := int(frameCount) * bytesPerFrame

		c.bufferMu.Lock()
		played := copy(pOutput[:need], c.queued)
		c.queued = c.queued[played:]
		passed := c.advanceMarksLocked(played)
		c.bufferMu.Unlock()

		// The device buffer is not zeroed between callbacks.
		clear(pOutput[played:need])

		if len(passed) > 0 {
			go func() {
				for _, mark := range passed {
					mark.callback(mark.name)
				}
			}()
		}
	}
}

// advanceMarksLocked moves marks forward by played bytes and returns the
// marks that were reached. A mark on an empty queue is reached on the next
// callback.
func (c *playbackClient) advanceMarksLocked(played int) []playbackMark {
	passed := 0
	for i := range c.marks {
		if c.marks[i].position > played {
			c.marks[i].position -= played
			continue
		}
		passed++
	}
	if passed == 0 {
		return nil
	}
	reached := c.marks[:passed:passed]
	c.marks = c.marks[passed:]
	return reached
}
