package audio

// Output plays audio produced by a speech engine.
type Output interface {
	EncodingInfo() EncodingInfo
	// SendAudio queues audio for playback.
	SendAudio(audio []byte) error
	// ClearBuffer drops queued audio and pending marks.
	ClearBuffer()
	// Mark calls callback once everything queued before the mark has played.
	// Marks dropped by ClearBuffer are never called.
	Mark(name string, callback func(name string)) error
}
