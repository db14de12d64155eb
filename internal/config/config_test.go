package config

import (
	"os"
	"strings"
	"testing"
	"time"
)

func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("unset %s: %v", key, err)
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	unsetenv(t, "LAKSHMI_SPEECH_ENGINE", "LAKSHMI_AUDIO_BACKEND", "LAKSHMI_CHAT_RESPONSE_DELAY")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected defaults to load, got %v", err)
	}
	if cfg.SpeechEngine != EngineSimulated {
		t.Fatalf("expected simulated engine, got %q", cfg.SpeechEngine)
	}
	if cfg.AudioBackend != AudioNone {
		t.Fatalf("expected no audio backend, got %q", cfg.AudioBackend)
	}
	if cfg.ChatResponseDelay != time.Second {
		t.Fatalf("expected 1s chat delay, got %s", cfg.ChatResponseDelay)
	}
}

func TestLoadDeepgram(t *testing.T) {
	t.Setenv("LAKSHMI_SPEECH_ENGINE", EngineDeepgram)
	t.Setenv("LAKSHMI_AUDIO_BACKEND", AudioMiniaudio)
	t.Setenv("DEEPGRAM_API_KEY", "secret")
	t.Setenv("LAKSHMI_CHAT_RESPONSE_DELAY", "250ms")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected config, got %v", err)
	}
	if cfg.DeepgramAPIKey != "secret" {
		t.Fatalf("expected api key, got %q", cfg.DeepgramAPIKey)
	}
	if cfg.ChatResponseDelay != 250*time.Millisecond {
		t.Fatalf("expected 250ms chat delay, got %s", cfg.ChatResponseDelay)
	}
}

func TestLoadRejectsDeepgramWithoutKeyOrAudio(t *testing.T) {
	t.Setenv("LAKSHMI_SPEECH_ENGINE", EngineDeepgram)
	t.Setenv("LAKSHMI_AUDIO_BACKEND", AudioNone)
	t.Setenv("DEEPGRAM_API_KEY", "")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "DEEPGRAM_API_KEY") || !strings.Contains(err.Error(), "audio backend") {
		t.Fatalf("expected both problems reported, got %v", err)
	}
}

func TestParseEnvError(t *testing.T) {
	t.Setenv("LAKSHMI_CHAT_RESPONSE_DELAY", "soon")

	var cfg Config
	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
