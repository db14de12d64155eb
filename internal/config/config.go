// Package config loads the CLI's process configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	EngineSimulated = "simulated"
	EngineDeepgram  = "deepgram"
	EngineSilent    = "silent"

	AudioMiniaudio = "miniaudio"
	AudioPortaudio = "portaudio"
	AudioNone      = "none"
)

type Config struct {
	SpeechEngine      string        `env:"LAKSHMI_SPEECH_ENGINE" envDefault:"simulated"`
	AudioBackend      string        `env:"LAKSHMI_AUDIO_BACKEND" envDefault:"none"`
	DeepgramAPIKey    string        `env:"DEEPGRAM_API_KEY"`
	DeepgramVoice     string        `env:"LAKSHMI_DEEPGRAM_VOICE"`
	ChatResponseDelay time.Duration `env:"LAKSHMI_CHAT_RESPONSE_DELAY" envDefault:"1s"`
	ContentFile       string        `env:"LAKSHMI_CONTENT_FILE"`
	LogFile           string        `env:"LAKSHMI_LOG_FILE"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses and validates the configuration.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	switch c.SpeechEngine {
	case EngineSimulated, EngineSilent:
	case EngineDeepgram:
		if c.DeepgramAPIKey == "" {
			errs = append(errs, errors.New("deepgram speech engine needs DEEPGRAM_API_KEY"))
		}
		if c.AudioBackend == AudioNone {
			errs = append(errs, errors.New("deepgram speech engine needs an audio backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown speech engine %q", c.SpeechEngine))
	}

	switch c.AudioBackend {
	case AudioMiniaudio, AudioPortaudio, AudioNone:
	default:
		errs = append(errs, fmt.Errorf("unknown audio backend %q", c.AudioBackend))
	}

	if c.ChatResponseDelay < 0 {
		errs = append(errs, fmt.Errorf("chat response delay must not be negative, got %s", c.ChatResponseDelay))
	}
	return errors.Join(errs...)
}
