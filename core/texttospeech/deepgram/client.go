// Package deepgram speaks utterances with Deepgram's streaming text to
// speech API and plays them on an [audio.Output].
package deepgram

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/koscakluka/lakshmi-path/core/audio"
	"github.com/koscakluka/lakshmi-path/core/speech"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	DefaultBaseURL = "https://api.deepgram.com"
	apiKeyEnv      = "DEEPGRAM_API_KEY"
)

var ErrMissingAPIKey = errors.New("deepgram api key not found")

type Option func(*Engine)

// WithAPIKey sets the API key. By default it is read from DEEPGRAM_API_KEY.
func WithAPIKey(apiKey string) Option {
	return func(e *Engine) { e.apiKey = apiKey }
}

// WithBaseURL points the engine at another Deepgram deployment.
func WithBaseURL(baseURL string) Option {
	return func(e *Engine) { e.baseURL = baseURL }
}

// WithVoice uses voice for locale and every locale close to it.
func WithVoice(locale string, voice Voice) Option {
	return func(e *Engine) { e.voices[locale] = voice }
}

// WithDefaultVoice sets the voice for locales without a configured voice.
func WithDefaultVoice(voice Voice) Option {
	return func(e *Engine) { e.defaultVoice = voice }
}

func WithHTTPClient(client *http.Client) Option {
	return func(e *Engine) {
		if client != nil {
			e.httpClient = client
		}
	}
}

type Engine struct {
	apiKey       string
	baseURL      string
	voices       map[string]Voice
	defaultVoice Voice

	output     audio.Output
	voiceTable *voiceTable
	speakURL   *url.URL
	modelsURL  *url.URL
	dialer     *websocket.Dialer
	httpClient *http.Client

	mu     sync.Mutex
	active map[*websocket.Conn]struct{}
}

var _ speech.Engine = (*Engine)(nil)

func NewEngine(output audio.Output, opts ...Option) (*Engine, error) {
	if output == nil {
		return nil, fmt.Errorf("deepgram engine needs an audio output")
	}

	e := &Engine{
		apiKey:       os.Getenv(apiKeyEnv),
		baseURL:      DefaultBaseURL,
		voices:       DefaultVoices(),
		defaultVoice: DefaultVoice,
		output:       output,
		dialer:       websocket.DefaultDialer,
		httpClient:   &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},
		active:       map[*websocket.Conn]struct{}{},
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if encodingInfo := output.EncodingInfo(); encodingInfo.IsZero() {
		return nil, fmt.Errorf("audio output has no encoding")
	}

	base, err := url.Parse(e.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	e.modelsURL = base.JoinPath("v1", "models")
	e.speakURL = base.JoinPath("v1", "speak")
	switch base.Scheme {
	case "https":
		e.speakURL.Scheme = "wss"
	case "http":
		e.speakURL.Scheme = "ws"
	default:
		return nil, fmt.Errorf("unsupported base url scheme %q", base.Scheme)
	}

	if e.voiceTable, err = newVoiceTable(e.voices, e.defaultVoice); err != nil {
		return nil, err
	}
	return e, nil
}

// CancelAll drops every connection in use and the audio queued for playback.
func (e *Engine) CancelAll() {
	e.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(e.active))
	for conn := range e.active {
		conns = append(conns, conn)
	}
	e.mu.Unlock()

	for _, conn := range conns {
		_ = conn.Close()
	}
	e.output.ClearBuffer()
}

func (e *Engine) authorization() http.Header {
	return http.Header{"Authorization": {"Token " + e.apiKey}}
}

func (e *Engine) track(conn *websocket.Conn) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.active[conn] = struct{}{}
}

func (e *Engine) untrack(conn *websocket.Conn) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.active, conn)
}
