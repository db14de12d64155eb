package deepgram

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/koscakluka/lakshmi-path/core/speech"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type textMessage struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

var (
	flushMsg = textMessage{Type: "Flush"}
	clearMsg = textMessage{Type: "Clear"}
	closeMsg = textMessage{Type: "Close"}
)

func speakMsg(text string) textMessage { return textMessage{Type: "Speak", Text: text} }

// Speak synthesizes the utterance over a dedicated connection and returns
// once the output played all of it. Cancelling ctx clears the synthesis and
// the audio queued on the output.
func (e *Engine) Speak(ctx context.Context, utterance speech.Utterance) error {
	voice, matched := e.voiceTable.For(utterance.LocaleTag)
	ctx, span := tracer.Start(ctx, "deepgram speak", trace.WithAttributes(
		attribute.String("deepgram.voice", string(voice)),
		attribute.String("deepgram.locale", utterance.LocaleTag),
		attribute.Int("deepgram.text_length", len(utterance.Text)),
	))
	defer span.End()

	if !matched {
		voiceFallbacks.Add(ctx, 1)
		logger.DebugContext(ctx, "no voice for locale, using the default voice",
			"locale", utterance.LocaleTag, "voice", voice)
	}

	err := e.speak(ctx, voice, utterance)
	if err != nil && ctx.Err() == nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (e *Engine) speak(ctx context.Context, voice Voice, utterance speech.Utterance) error {
	conn, err := e.dial(ctx, voice)
	if err != nil {
		return err
	}
	e.track(conn)
	defer func() {
		e.untrack(conn)
		_ = conn.Close()
	}()

	req := &speakRequest{engine: e, ctx: ctx, mark: utterance.Text, done: make(chan error, 1)}
	go req.processIncomingMessages(conn)

	if err := conn.WriteJSON(speakMsg(utterance.Text)); err != nil {
		return fmt.Errorf("failed to send text to deepgram: %w", err)
	}
	if err := conn.WriteJSON(flushMsg); err != nil {
		return fmt.Errorf("failed to flush deepgram buffer: %w", err)
	}

	select {
	case err := <-req.done:
		if err != nil {
			return err
		}
		_ = conn.WriteJSON(closeMsg)
		return nil
	case <-ctx.Done():
		_ = conn.WriteJSON(clearMsg)
		e.output.ClearBuffer()
		return ctx.Err()
	}
}

func (e *Engine) dial(ctx context.Context, voice Voice) (*websocket.Conn, error) {
	encodingInfo := e.output.EncodingInfo()

	speakURL := *e.speakURL
	query := speakURL.Query()
	query.Set("model", string(voice))
	query.Set("encoding", encodingInfo.Format.Name())
	query.Set("sample_rate", strconv.Itoa(encodingInfo.SampleRate))
	query.Set("container", "none")
	speakURL.RawQuery = query.Encode()

	conn, _, err := e.dialer.DialContext(ctx, speakURL.String(), e.authorization())
	if err != nil {
		return nil, fmt.Errorf("failed to open socket connection to deepgram: %w", err)
	}
	return conn, nil
}

type speakRequest struct {
	engine *Engine
	ctx    context.Context
	mark   string

	done     chan error
	doneOnce sync.Once
}

func (r *speakRequest) finish(err error) {
	r.doneOnce.Do(func() { r.done <- err })
}

func (r *speakRequest) processIncomingMessages(conn *websocket.Conn) {
	for {
		msgType, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				r.finish(errors.New("deepgram closed the connection before the speech was flushed"))
			} else {
				r.finish(fmt.Errorf("failed to read from deepgram: %w", err))
			}
			return
		}

		switch msgType {
		case websocket.BinaryMessage:
			if len(msg) == 0 {
				continue
			}
			audioBytes.Add(r.ctx, int64(len(msg)))
			if err := r.engine.output.SendAudio(msg); err != nil {
				r.finish(fmt.Errorf("failed to play deepgram audio: %w", err))
				return
			}
		case websocket.TextMessage:
			var parsedMsg struct {
				Type        string `json:"type"`
				Description string `json:"description"`
			}
			if err := json.Unmarshal(msg, &parsedMsg); err != nil {
				logger.WarnContext(r.ctx, "failed to parse deepgram message", "error", err)
				continue
			}

			switch parsedMsg.Type {
			case "Flushed":
				if err := r.engine.output.Mark(r.mark, func(string) { r.finish(nil) }); err != nil {
					r.finish(fmt.Errorf("failed to mark end of speech: %w", err))
				}
			case "Warning":
				logger.WarnContext(r.ctx, "deepgram warning", "description", parsedMsg.Description)
			case "Error":
				r.finish(fmt.Errorf("deepgram error: %s", parsedMsg.Description))
			}
		}
	}
}
