// Package portaudio plays narration through the default output device using
// PortAudio's blocking stream API.
package portaudio

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/gordonklaus/portaudio"
	"github.com/koscakluka/lakshmi-path/core/audio"
)

const DefaultBufferSize = 1024

type Client struct {
	bufferSize int
	stream     *portaudio.Stream
	out        []int16

	// mu serializes writes to the stream; Write blocks until the device
	// accepted the buffer.
	mu      sync.Mutex
	pending []byte
}

var _ audio.Output = (*Client)(nil)

func NewClient(bufferSize int) (*Client, error) {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize portaudio: %w", err)
	}

	out := make([]int16, bufferSize)
	stream, err := portaudio.OpenDefaultStream(0, 1, audio.DefaultSampleRate, bufferSize, out)
	if err != nil {
		portaudio.Terminate()
		return nil, fmt.Errorf("failed to open portaudio stream: %w", err)
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return nil, fmt.Errorf("failed to start portaudio stream: %w", err)
	}

	return &Client{bufferSize: bufferSize, stream: stream, out: out}, nil
}

func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.stream.Stop()
	_ = c.stream.Close()
	portaudio.Terminate()
}

// SendAudio writes every whole buffer of audio to the device and keeps the
// remainder for the next call.
func (c *Client) SendAudio(audio []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pending = append(c.pending, audio...)
	return c.writeLocked(false)
}

func (c *Client) ClearBuffer() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = nil
}

// Mark pads the remaining audio with silence, writes it, and calls callback
// once the device took it.
func (c *Client) Mark(name string, callback func(string)) error {
	c.mu.Lock()
	err := c.writeLocked(true)
	c.mu.Unlock()

	if err != nil {
		return err
	}
	go callback(name)
	return nil
}

func (c *Client) EncodingInfo() audio.EncodingInfo {
	return audio.EncodingInfo{
		SampleRate: audio.DefaultSampleRate,
		Format:     audio.EncodingLinear16,
	}
}

func (c *Client) writeLocked(padded bool) error {
	frameBytes := c.bufferSize * 2
	if padded && len(c.pending)%frameBytes != 0 {
		c.pending = append(c.pending, make([]byte, frameBytes-len(c.pending)%frameBytes)...)
	}

	for len(c.pending) >= frameBytes {
		if err := binary.Read(bytes.NewReader(c.pending[:frameBytes]), binary.LittleEndian, c.out); err != nil {
			return fmt.Errorf("failed to decode audio: %w", err)
		}
		c.pending = c.pending[frameBytes:]
		if err := c.stream.Write(); err != nil {
			return fmt.Errorf("failed to write to portaudio stream: %w", err)
		}
	}
	return nil
}
