package speech

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type sessionCallbacks struct {
	id string

	onUtteranceStarted func(index int, utterance Utterance)
	onUtteranceEnded   func(index int, utterance Utterance)
	onCompleted        func()
	onFailed           func(err error)
}

type SessionOption func(*sessionCallbacks)

// WithSessionID names the session instead of a generated UUID, so a caller
// can correlate events it records before the session starts.
func WithSessionID(id string) SessionOption {
	return func(c *sessionCallbacks) { c.id = id }
}

func WithUtteranceStartedCallback(callback func(index int, utterance Utterance)) SessionOption {
	return func(c *sessionCallbacks) { c.onUtteranceStarted = callback }
}

func WithUtteranceEndedCallback(callback func(index int, utterance Utterance)) SessionOption {
	return func(c *sessionCallbacks) { c.onUtteranceEnded = callback }
}

// WithCompletedCallback registers a callback for a session whose every
// utterance played successfully.
func WithCompletedCallback(callback func()) SessionOption {
	return func(c *sessionCallbacks) { c.onCompleted = callback }
}

// WithFailedCallback registers a callback receiving the [*EngineError] that
// aborted the session.
func WithFailedCallback(callback func(err error)) SessionOption {
	return func(c *sessionCallbacks) { c.onFailed = callback }
}

type SessionState int

const (
	SessionPending SessionState = iota
	SessionPlaying
	SessionCompleted
	SessionFailed
	SessionCancelled
)

func (s SessionState) String() string {
	switch s {
	case SessionPending:
		return "pending"
	case SessionPlaying:
		return "playing"
	case SessionCompleted:
		return "completed"
	case SessionFailed:
		return "failed"
	case SessionCancelled:
		return "cancelled"
	}
	return fmt.Sprintf("SessionState(%d)", int(s))
}

// Session is an ordered, cancellable group of utterances. A session never
// restarts; once cancelled or settled it is discarded.
type Session struct {
	ID         string
	generation uint64

	orchestrator *Orchestrator
	scope        *Scope
	queue        []Utterance
	callbacks    sessionCallbacks

	ctx    context.Context
	cancel context.CancelFunc

	// Guarded by orchestrator.mu.
	cursor    int
	state     SessionState
	playing   bool
	released  bool
	cancelled bool
	err       error

	done     chan struct{}
	doneOnce sync.Once

	// exited is closed when the session stopped calling the engine. drain
	// lists the cancelled sessions that must exit before this one starts.
	exited chan struct{}
	drain  []chan struct{}
}

func (o *Orchestrator) newSessionLocked(
	ctx context.Context,
	scope *Scope,
	generation uint64,
	utterances []Utterance,
	opts []SessionOption,
) *Session {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)

	s := &Session{
		generation:   generation,
		orchestrator: o,
		scope:        scope,
		queue:        slices.Clone(utterances),
		ctx:          ctx,
		cancel:       cancel,
		done:         make(chan struct{}),
		exited:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(&s.callbacks)
	}
	s.ID = s.callbacks.id
	if s.ID == "" {
		s.ID = uuid.NewString()
	}

	if o.closed || (scope != nil && scope.closed) {
		s.state = SessionCancelled
		s.released = true
		s.cancelled = true
		s.err = ErrOrchestratorClosed
		s.cancel()
		s.closeDone()
		return s
	}

	o.sessions[s] = struct{}{}
	return s
}

// Generation is the scope generation the session was started in. Sessions
// started directly on the orchestrator have generation 0.
func (s *Session) Generation() uint64 { return s.generation }

// Utterances returns a copy of the session's queue.
func (s *Session) Utterances() []Utterance { return slices.Clone(s.queue) }

// Cursor is the index of the next utterance to be issued to the engine.
func (s *Session) Cursor() int {
	s.orchestrator.mu.Lock()
	defer s.orchestrator.mu.Unlock()
	return s.cursor
}

func (s *Session) State() SessionState {
	s.orchestrator.mu.Lock()
	defer s.orchestrator.mu.Unlock()
	return s.state
}

// IsSpeaking reports whether one of the session's utterances is playing.
func (s *Session) IsSpeaking() bool {
	s.orchestrator.mu.Lock()
	defer s.orchestrator.mu.Unlock()
	return s.playing
}

// Err returns the [*EngineError] of a failed session.
func (s *Session) Err() error {
	s.orchestrator.mu.Lock()
	defer s.orchestrator.mu.Unlock()
	return s.err
}

// Done is closed once the session completed, failed, or was cancelled.
func (s *Session) Done() <-chan struct{} { return s.done }

// Cancel stops the session. It is idempotent and safe after the session
// settled. Once Cancel returns, no engine completion belonging to the
// session issues further playback or delivers a callback; an engine call
// already in flight is cancelled through its context and its result is
// discarded.
func (s *Session) Cancel() {
	if s == nil {
		return
	}

	o := s.orchestrator
	o.mu.Lock()
	if s.cancelled {
		o.mu.Unlock()
		return
	}
	s.cancelled = true
	wasActive := !s.released
	speakingChanged := false
	if wasActive {
		speakingChanged = s.releaseLocked()
		s.state = SessionCancelled
	}
	o.mu.Unlock()

	s.cancel()
	s.closeDone()
	if wasActive {
		sessionsCancelled.Add(context.WithoutCancel(s.ctx), 1)
	}
	if speakingChanged {
		o.notifySpeakingChanged()
	}
}

// releaseLocked detaches the session from the orchestrator and reports
// whether the speaking flag flipped.
func (s *Session) releaseLocked() bool {
	o := s.orchestrator
	s.released = true
	delete(o.sessions, s)

	if !s.playing {
		return false
	}
	s.playing = false
	return o.setPlayingLocked(-1)
}

func (s *Session) staleLocked() bool {
	if s.released {
		return true
	}
	return s.scope != nil && s.scope.generation != s.generation
}

func (s *Session) isDone() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

func (s *Session) closeDone() {
	s.doneOnce.Do(func() { close(s.done) })
}

func (s *Session) run() {
	defer func() {
		o := s.orchestrator
		o.mu.Lock()
		delete(o.running, s)
		o.mu.Unlock()
		close(s.exited)
	}()
	for _, exited := range s.drain {
		<-exited
	}
	s.drain = nil

	ctx, span := tracer.Start(s.ctx, "narration session", trace.WithAttributes(
		attribute.String("narration.session_id", s.ID),
		attribute.String("narration.scope", s.scopeName()),
		attribute.Int64("narration.generation", int64(s.generation)),
		attribute.Int("narration.utterances", len(s.queue)),
	))
	defer span.End()

	for {
		index, utterance, ok := s.begin()
		if !ok {
			break
		}
		s.deliver(func() {
			if s.callbacks.onUtteranceStarted != nil {
				s.callbacks.onUtteranceStarted(index, utterance)
			}
		})

		err := s.orchestrator.engine.Speak(ctx, utterance)
		if !s.settle(ctx, span, index, utterance, err) {
			break
		}
	}

	span.SetAttributes(attribute.String("narration.state", s.State().String()))
}

// begin claims the next utterance, or reports false when the session is
// stale or drained.
func (s *Session) begin() (int, Utterance, bool) {
	o := s.orchestrator
	o.mu.Lock()
	if s.staleLocked() || s.cursor >= len(s.queue) {
		finished := !s.staleLocked()
		if finished {
			s.state = SessionCompleted
			s.releaseLocked()
		}
		o.mu.Unlock()
		if finished {
			s.closeDone()
			s.deliver(func() {
				if s.callbacks.onCompleted != nil {
					s.callbacks.onCompleted()
				}
			})
		}
		return 0, Utterance{}, false
	}

	index := s.cursor
	s.cursor++
	s.state = SessionPlaying
	s.playing = true
	speakingChanged := o.setPlayingLocked(1)
	o.mu.Unlock()

	if speakingChanged {
		o.notifySpeakingChanged()
	}
	return index, s.queue[index], true
}

// settle records the outcome of one engine call and reports whether the
// session continues with the next utterance.
func (s *Session) settle(ctx context.Context, span trace.Span, index int, utterance Utterance, err error) bool {
	o := s.orchestrator
	o.mu.Lock()
	if s.staleLocked() {
		speakingChanged := false
		if !s.released {
			speakingChanged = s.releaseLocked()
			s.state = SessionCancelled
		}
		o.mu.Unlock()
		s.closeDone()
		if speakingChanged {
			o.notifySpeakingChanged()
		}
		return false
	}

	s.playing = false
	speakingChanged := o.setPlayingLocked(-1)

	if err != nil {
		engineErr := &EngineError{SessionID: s.ID, Index: index, Utterance: utterance, Err: err}
		s.err = engineErr
		s.state = SessionFailed
		s.releaseLocked()
		o.mu.Unlock()

		s.closeDone()
		if speakingChanged {
			o.notifySpeakingChanged()
		}

		utteranceFailures.Add(ctx, 1)
		span.RecordError(engineErr)
		span.SetStatus(codes.Error, engineErr.Error())
		logger.WarnContext(ctx, "narration aborted after speech engine error",
			"session", s.ID,
			"scope", s.scopeName(),
			"utterance", index,
			"locale", utterance.LocaleTag,
			"error", err,
		)

		s.deliver(func() {
			if s.callbacks.onFailed != nil {
				s.callbacks.onFailed(engineErr)
			}
		})
		return false
	}
	o.mu.Unlock()

	if speakingChanged {
		o.notifySpeakingChanged()
	}
	s.deliver(func() {
		if s.callbacks.onUtteranceEnded != nil {
			s.callbacks.onUtteranceEnded(index, utterance)
		}
	})
	return true
}

// deliver hands f to the dispatcher and drops it if the session went stale
// in the meantime. Terminal callbacks are delivered after release, so only
// an explicit cancel or a newer scope generation suppresses them.
func (s *Session) deliver(f func()) {
	s.orchestrator.dispatch(func() {
		if s.suppressed() {
			return
		}
		f()
	})
}

func (s *Session) suppressed() bool {
	o := s.orchestrator
	o.mu.Lock()
	defer o.mu.Unlock()

	if s.cancelled || s.state == SessionCancelled {
		return true
	}
	return s.scope != nil && s.scope.generation != s.generation
}

func (s *Session) scopeName() string {
	if s.scope == nil {
		return ""
	}
	return s.scope.name
}
