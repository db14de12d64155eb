// Package simulated provides a speech engine that takes as long to "speak"
// as a person reading the text aloud, without producing any sound unless an
// audio output is attached.
package simulated

import (
	"context"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/koscakluka/lakshmi-path/core/audio"
	"github.com/koscakluka/lakshmi-path/core/speech"
)

const (
	DefaultPerRune = 60 * time.Millisecond
	DefaultMinimum = 300 * time.Millisecond
)

type Option func(*Engine)

// WithPace sets the time spent per rune and the shortest utterance.
func WithPace(perRune, minimum time.Duration) Option {
	return func(e *Engine) {
		e.perRune = perRune
		e.minimum = minimum
	}
}

// WithOutput plays silence of the utterance's length on output, so
// utterances end when the device finished playing.
func WithOutput(output audio.Output) Option {
	return func(e *Engine) { e.output = output }
}

// WithSpokenCallback is called with every utterance the engine starts.
func WithSpokenCallback(callback func(speech.Utterance)) Option {
	return func(e *Engine) { e.onSpoken = callback }
}

type Engine struct {
	perRune  time.Duration
	minimum  time.Duration
	output   audio.Output
	onSpoken func(speech.Utterance)

	mu       sync.Mutex
	inFlight map[*context.CancelFunc]struct{}
}

var _ speech.Engine = (*Engine)(nil)

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		perRune:  DefaultPerRune,
		minimum:  DefaultMinimum,
		inFlight: map[*context.CancelFunc]struct{}{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Duration returns how long the engine takes to speak text.
func (e *Engine) Duration(text string) time.Duration {
	return max(time.Duration(utf8.RuneCountInString(text))*e.perRune, e.minimum)
}

func (e *Engine) Speak(ctx context.Context, utterance speech.Utterance) error {
	ctx, cancel := context.WithCancel(ctx)
	e.mu.Lock()
	e.inFlight[&cancel] = struct{}{}
	e.mu.Unlock()
	defer func() {
		e.mu.Lock()
		delete(e.inFlight, &cancel)
		e.mu.Unlock()
		cancel()
	}()

	if e.onSpoken != nil {
		e.onSpoken(utterance)
	}

	duration := e.Duration(utterance.Text)
	if e.output == nil {
		timer := time.NewTimer(duration)
		defer timer.Stop()
		select {
		case <-timer.C:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	if err := e.output.SendAudio(e.output.EncodingInfo().Silence(duration)); err != nil {
		return err
	}
	played := make(chan struct{})
	if err := e.output.Mark(utterance.Text, func(string) { close(played) }); err != nil {
		return err
	}
	select {
	case <-played:
		return nil
	case <-ctx.Done():
		e.output.ClearBuffer()
		return ctx.Err()
	}
}

// CancelAll cancels every utterance being spoken.
func (e *Engine) CancelAll() {
	e.mu.Lock()
	defer e.mu.Unlock()
	for cancel := range e.inFlight {
		(*cancel)()
	}
}
