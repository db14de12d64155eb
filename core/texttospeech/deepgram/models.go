package deepgram

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// VoiceInfo describes a text to speech model offered by Deepgram.
type VoiceInfo struct {
	Name          string   `json:"name"`
	CanonicalName string   `json:"canonical_name"`
	Architecture  string   `json:"architecture"`
	Languages     []string `json:"languages"`
	Metadata      struct {
		Accent string   `json:"accent"`
		Tags   []string `json:"tags"`
	} `json:"metadata"`
}

func (v VoiceInfo) Voice() Voice { return Voice(v.CanonicalName) }

// ListVoices returns the text to speech models available to the API key.
func (e *Engine) ListVoices(ctx context.Context) ([]VoiceInfo, error) {
	ctx, span := tracer.Start(ctx, "deepgram list voices")
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.modelsURL.String(), nil)
	if err != nil {
		err = fmt.Errorf("error creating HTTP request: %w", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	for key, values := range e.authorization() {
		req.Header[key] = values
	}

	resp, err := e.httpClient.Do(req)
	if err != nil {
		err = fmt.Errorf("error sending HTTP request: %w", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("unexpected status listing models: %s", resp.Status)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	var body struct {
		TTS []VoiceInfo `json:"tts"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		err = fmt.Errorf("error decoding models: %w", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("deepgram.voices", len(body.TTS)))
	return body.TTS, nil
}
