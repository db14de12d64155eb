package main

import (
	"fmt"

	"github.com/koscakluka/lakshmi-path/core/audio"
	"github.com/koscakluka/lakshmi-path/core/audio/miniaudio"
	"github.com/koscakluka/lakshmi-path/core/audio/portaudio"
	"github.com/koscakluka/lakshmi-path/core/speech"
	"github.com/koscakluka/lakshmi-path/core/texttospeech/deepgram"
	"github.com/koscakluka/lakshmi-path/core/texttospeech/simulated"
	"github.com/koscakluka/lakshmi-path/internal/config"
)

func newAudioOutput(backend string) (audio.Output, func(), error) {
	switch backend {
	case config.AudioMiniaudio:
		client, err := miniaudio.NewClient()
		if err != nil {
			return nil, nil, err
		}
		return client, client.Close, nil
	case config.AudioPortaudio:
		client, err := portaudio.NewClient(portaudio.DefaultBufferSize)
		if err != nil {
			return nil, nil, err
		}
		return client, client.Close, nil
	}
	return nil, func() {}, nil
}

// newSpeechEngine builds the configured engine. A nil engine narrates
// silently.
func newSpeechEngine(cfg config.Config) (speech.Engine, func(), error) {
	if cfg.SpeechEngine == config.EngineSilent {
		return nil, func() {}, nil
	}

	output, closeOutput, err := newAudioOutput(cfg.AudioBackend)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open audio output: %w", err)
	}

	switch cfg.SpeechEngine {
	case config.EngineDeepgram:
		opts := []deepgram.Option{deepgram.WithAPIKey(cfg.DeepgramAPIKey)}
		if cfg.DeepgramVoice != "" {
			opts = append(opts, deepgram.WithDefaultVoice(deepgram.Voice(cfg.DeepgramVoice)))
		}
		engine, err := deepgram.NewEngine(output, opts...)
		if err != nil {
			closeOutput()
			return nil, nil, fmt.Errorf("failed to create deepgram engine: %w", err)
		}
		return engine, closeOutput, nil
	default:
		var opts []simulated.Option
		if output != nil {
			opts = append(opts, simulated.WithOutput(output))
		}
		return simulated.NewEngine(opts...), closeOutput, nil
	}
}
