package speech

import (
	"context"
	"sync"
)

type Option func(*Orchestrator)

// WithDispatcher routes every completion callback through dispatch. A UI
// event loop uses it to resume work on its own goroutine. The default runs
// callbacks inline on the goroutine that observed the completion.
func WithDispatcher(dispatch func(func())) Option {
	return func(o *Orchestrator) {
		if dispatch != nil {
			o.dispatch = dispatch
		}
	}
}

// WithSpeakingChangedCallback registers a callback for changes of
// [Orchestrator.IsSpeaking]. It is delivered through the dispatcher.
func WithSpeakingChangedCallback(callback func(isSpeaking bool)) Option {
	return func(o *Orchestrator) {
		o.onSpeakingChanged = callback
	}
}

// Orchestrator plays sessions of utterances on an [Engine].
//
// It does not stop a caller from running several sessions at once; callers
// that need "one live session" semantics narrate through a [Scope].
type Orchestrator struct {
	engine            Engine
	dispatch          func(func())
	onSpeakingChanged func(bool)

	// mu guards the state of every session and scope created by this
	// orchestrator.
	mu       sync.Mutex
	sessions map[*Session]struct{}
	// running holds the sessions whose run goroutine has not returned.
	running map[*Session]struct{}
	playing  int
	closed   bool

	closeOnce sync.Once
}

func NewOrchestrator(engine Engine, opts ...Option) *Orchestrator {
	if engine == nil {
		engine = silentEngine{}
	}

	o := &Orchestrator{
		engine:   engine,
		dispatch: func(f func()) { f() },
		sessions: map[*Session]struct{}{},
		running:  map[*Session]struct{}{},
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Start plays utterances in order as a new session. The engine call for an
// utterance is issued only after the previous one settled.
//
// Start does not cancel anything; the caller cancels its previous session
// first (see [Scope.Narrate]).
func (o *Orchestrator) Start(ctx context.Context, utterances []Utterance, opts ...SessionOption) *Session {
	o.mu.Lock()
	s := o.newSessionLocked(ctx, nil, 0, utterances, opts)
	o.mu.Unlock()

	o.launch(s)
	return s
}

// Cancel cancels s. See [Session.Cancel].
func (o *Orchestrator) Cancel(s *Session) { s.Cancel() }

// IsSpeaking reports whether any session has an utterance playing.
func (o *Orchestrator) IsSpeaking() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.playing > 0
}

// NewScope creates a narration scope. name is used in traces and logs.
func (o *Orchestrator) NewScope(name string) *Scope {
	return &Scope{name: name, orchestrator: o}
}

// Close cancels every live session, stops the engine, and makes further
// sessions start cancelled.
func (o *Orchestrator) Close() {
	o.closeOnce.Do(func() {
		o.mu.Lock()
		o.closed = true
		live := make([]*Session, 0, len(o.sessions))
		for s := range o.sessions {
			live = append(live, s)
		}
		o.mu.Unlock()

		for _, s := range live {
			s.Cancel()
		}
		o.engine.CancelAll()
	})
}

// launch runs s once every cancelled session still inside the engine has
// returned from it. Cancelled engine calls may clear the shared audio
// output on their way out, which would drop the new session's audio.
func (o *Orchestrator) launch(s *Session) {
	o.mu.Lock()
	if s.isDone() {
		o.mu.Unlock()
		close(s.exited)
		return
	}
	for r := range o.running {
		if r.cancelled {
			s.drain = append(s.drain, r.exited)
		}
	}
	o.running[s] = struct{}{}
	o.mu.Unlock()

	sessionsStarted.Add(s.ctx, 1)
	go s.run()
}

// setPlayingLocked updates the playing counter and reports whether the
// speaking flag flipped.
func (o *Orchestrator) setPlayingLocked(delta int) bool {
	before := o.playing > 0
	o.playing += delta
	if o.playing < 0 {
		o.playing = 0
	}
	return before != (o.playing > 0)
}

func (o *Orchestrator) notifySpeakingChanged() {
	if o.onSpeakingChanged == nil {
		return
	}
	o.dispatch(func() {
		o.onSpeakingChanged(o.IsSpeaking())
	})
}

// silentEngine settles every utterance immediately.
type silentEngine struct{}

func (silentEngine) Speak(ctx context.Context, _ Utterance) error { return ctx.Err() }
func (silentEngine) CancelAll()                                    {}
