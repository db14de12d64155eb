package deepgram

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/koscakluka/lakshmi-path/core/audio"
	"github.com/koscakluka/lakshmi-path/core/speech"
)

type recordingOutput struct {
	mu      sync.Mutex
	audio   []byte
	marks   []string
	cleared int
}

func (o *recordingOutput) EncodingInfo() audio.EncodingInfo {
	return audio.GetDefaultEncodingInfo()
}

func (o *recordingOutput) SendAudio(audio []byte) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.audio = append(o.audio, audio...)
	return nil
}

func (o *recordingOutput) ClearBuffer() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.cleared++
}

func (o *recordingOutput) Mark(name string, callback func(string)) error {
	o.mu.Lock()
	o.marks = append(o.marks, name)
	o.mu.Unlock()
	go callback(name)
	return nil
}

type speakServer struct {
	t        *testing.T
	upgrader websocket.Upgrader
	respond  bool

	requests chan *http.Request
	messages chan textMessage
}

func newSpeakServer(t *testing.T, respond bool) (*httptest.Server, *speakServer) {
	t.Helper()
	s := &speakServer{
		t:        t,
		respond:  respond,
		requests: make(chan *http.Request, 1),
		messages: make(chan textMessage, 8),
	}
	server := httptest.NewServer(s)
	t.Cleanup(server.Close)
	return server, s
}

func (s *speakServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/v1/models" {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"tts":[{"name":"thalia","canonical_name":"aura-2-thalia-en","architecture":"aura-2","languages":["en","en-US"],"metadata":{"accent":"American","tags":["feminine"]}}]}`))
		return
	}

	s.requests <- r
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.t.Errorf("failed to upgrade: %v", err)
		return
	}
	defer conn.Close()

	for {
		var msg textMessage
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}
		s.messages <- msg
		if msg.Type == "Flush" && s.respond {
			_ = conn.WriteMessage(websocket.BinaryMessage, []byte{1, 2, 3, 4})
			_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"Flushed","sequence_id":0}`))
		}
	}
}

func (s *speakServer) nextMessage(t *testing.T) textMessage {
	t.Helper()
	select {
	case msg := <-s.messages:
		return msg
	case <-time.After(time.Second):
		t.Fatalf("expected a message from the engine")
	}
	return textMessage{}
}

func TestSpeakStreamsAudioToOutput(t *testing.T) {
	server, s := newSpeakServer(t, true)
	output := &recordingOutput{}
	engine, err := NewEngine(output, WithAPIKey("secret"), WithBaseURL(server.URL))
	if err != nil {
		t.Fatalf("expected engine, got %v", err)
	}

	err = engine.Speak(context.Background(), speech.Utterance{Text: "Hello", LocaleTag: "en-IN"})
	if err != nil {
		t.Fatalf("expected speech to complete, got %v", err)
	}

	req := <-s.requests
	if got := req.Header.Get("Authorization"); got != "Token secret" {
		t.Fatalf("expected token authorization, got %q", got)
	}
	if got := req.URL.Query().Get("model"); got != string(VoiceThalia) {
		t.Fatalf("expected model %q, got %q", VoiceThalia, got)
	}
	if got := req.URL.Query().Get("encoding"); got != "linear16" {
		t.Fatalf("expected linear16 encoding, got %q", got)
	}

	if msg := s.nextMessage(t); msg.Type != "Speak" || msg.Text != "Hello" {
		t.Fatalf("expected speak message, got %+v", msg)
	}
	if msg := s.nextMessage(t); msg.Type != "Flush" {
		t.Fatalf("expected flush message, got %+v", msg)
	}
	if msg := s.nextMessage(t); msg.Type != "Close" {
		t.Fatalf("expected close message, got %+v", msg)
	}

	output.mu.Lock()
	defer output.mu.Unlock()
	if len(output.audio) != 4 {
		t.Fatalf("expected 4 bytes of audio, got %d", len(output.audio))
	}
	if len(output.marks) != 1 || output.marks[0] != "Hello" {
		t.Fatalf("expected one mark for the utterance, got %v", output.marks)
	}
}

func TestSpeakCancelClearsSynthesis(t *testing.T) {
	server, s := newSpeakServer(t, false)
	output := &recordingOutput{}
	engine, err := NewEngine(output, WithAPIKey("secret"), WithBaseURL(server.URL))
	if err != nil {
		t.Fatalf("expected engine, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	result := make(chan error, 1)
	go func() {
		result <- engine.Speak(ctx, speech.Utterance{Text: "नमस्ते", LocaleTag: "hi-IN"})
	}()

	s.nextMessage(t)
	if msg := s.nextMessage(t); msg.Type != "Flush" {
		t.Fatalf("expected flush message, got %+v", msg)
	}
	cancel()

	select {
	case err := <-result:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatalf("expected speak to return after cancel")
	}
	if msg := s.nextMessage(t); msg.Type != "Clear" {
		t.Fatalf("expected clear message, got %+v", msg)
	}

	output.mu.Lock()
	defer output.mu.Unlock()
	if output.cleared != 1 {
		t.Fatalf("expected output to be cleared once, got %d", output.cleared)
	}
}

func TestListVoices(t *testing.T) {
	server, _ := newSpeakServer(t, false)
	engine, err := NewEngine(&recordingOutput{}, WithAPIKey("secret"), WithBaseURL(server.URL))
	if err != nil {
		t.Fatalf("expected engine, got %v", err)
	}

	voices, err := engine.ListVoices(context.Background())
	if err != nil {
		t.Fatalf("expected voices, got %v", err)
	}
	if len(voices) != 1 {
		t.Fatalf("expected one voice, got %d", len(voices))
	}
	if voices[0].Voice() != VoiceThalia {
		t.Fatalf("expected %q, got %q", VoiceThalia, voices[0].Voice())
	}
	if voices[0].Metadata.Accent != "American" {
		t.Fatalf("expected accent metadata, got %+v", voices[0].Metadata)
	}
}

func TestNewEngineRequiresAPIKey(t *testing.T) {
	t.Setenv(apiKeyEnv, "")
	if _, err := NewEngine(&recordingOutput{}); !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
}

func TestVoiceForLocale(t *testing.T) {
	table, err := newVoiceTable(DefaultVoices(), DefaultVoice)
	if err != nil {
		t.Fatalf("expected voice table, got %v", err)
	}

	tests := []struct {
		locale  string
		voice   Voice
		matched bool
	}{
		{locale: "en-IN", voice: VoiceThalia, matched: true},
		{locale: "es-MX", voice: VoiceCeleste, matched: true},
		{locale: "hi-IN", voice: DefaultVoice, matched: false},
		{locale: "not a locale", voice: DefaultVoice, matched: false},
	}
	for _, tt := range tests {
		voice, matched := table.For(tt.locale)
		if voice != tt.voice || matched != tt.matched {
			t.Fatalf("%s: expected %q (%v), got %q (%v)", tt.locale, tt.voice, tt.matched, voice, matched)
		}
	}
}

func TestMessagesEncodeLikeDeepgramExpects(t *testing.T) {
	data, err := json.Marshal(flushMsg)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if string(data) != `{"type":"Flush"}` {
		t.Fatalf("expected flush without text, got %s", data)
	}
}
