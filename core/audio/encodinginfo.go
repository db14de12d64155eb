package audio

import "time"

const (
	DefaultSampleRate = 16000
	DefaultFormat     = "linear16"
)

func GetDefaultEncodingInfo() EncodingInfo {
	return EncodingInfo{SampleRate: DefaultSampleRate, Format: EncodingLinear16}
}

// EncodingInfo describes mono audio as exchanged between speech engines and
// outputs.
type EncodingInfo struct {
	SampleRate int
	Format     encodingFormat
}

func (e EncodingInfo) IsZero() bool {
	return e.SampleRate == 0 || e.Format.Name() == ""
}

func (e EncodingInfo) SilenceValue() byte {
	switch e.Format {
	case EncodingALaw:
		return 0x55
	case EncodingMulaw:
		return 0xFF
	}
	return 0
}

// BytesFor returns the size of d worth of audio, rounded down to whole
// samples.
func (e EncodingInfo) BytesFor(d time.Duration) int {
	size := e.Format.ByteSize()
	if size <= 0 || e.SampleRate <= 0 || d <= 0 {
		return 0
	}
	samples := int(d * time.Duration(e.SampleRate) / time.Second)
	return samples * size
}

// Duration returns how long n bytes of audio play.
func (e EncodingInfo) Duration(n int) time.Duration {
	size := e.Format.ByteSize()
	if size <= 0 || e.SampleRate <= 0 {
		return 0
	}
	return time.Duration(n/size) * time.Second / time.Duration(e.SampleRate)
}

// Silence returns d worth of silent audio.
func (e EncodingInfo) Silence(d time.Duration) []byte {
	silence := make([]byte, e.BytesFor(d))
	if value := e.SilenceValue(); value != 0 {
		for i := range silence {
			silence[i] = value
		}
	}
	return silence
}

type encodingFormat string

func (e encodingFormat) Name() string {
	return string(e)
}

func (e encodingFormat) ByteSize() int {
	switch e {
	case EncodingMulaw, EncodingALaw:
		return 1
	case EncodingLinear16:
		return 2
	}
	return -1
}

const (
	EncodingMulaw    encodingFormat = "mulaw"
	EncodingALaw     encodingFormat = "alaw"
	EncodingLinear16 encodingFormat = "linear16"
)
