package speech

import "context"

// Scope owns the narration of one component lifetime: at most one of its
// sessions is live at any time. Pass the scope to whatever narrates on the
// component's behalf and Close it when the component goes away.
type Scope struct {
	name         string
	orchestrator *Orchestrator

	// Guarded by orchestrator.mu.
	generation uint64
	current    *Session
	closed     bool
}

func (sc *Scope) Name() string { return sc.name }

// Narrate cancels the scope's current session and starts a new one with the
// next generation. Completions of the superseded session that are still in
// flight are discarded.
func (sc *Scope) Narrate(ctx context.Context, utterances []Utterance, opts ...SessionOption) *Session {
	o := sc.orchestrator

	o.mu.Lock()
	previous := sc.current
	sc.generation++
	s := o.newSessionLocked(ctx, sc, sc.generation, utterances, opts)
	sc.current = s
	o.mu.Unlock()

	previous.Cancel()
	o.launch(s)
	return s
}

// Current returns the most recent session started in the scope, which may
// already have settled.
func (sc *Scope) Current() *Session {
	sc.orchestrator.mu.Lock()
	defer sc.orchestrator.mu.Unlock()
	return sc.current
}

func (sc *Scope) Generation() uint64 {
	sc.orchestrator.mu.Lock()
	defer sc.orchestrator.mu.Unlock()
	return sc.generation
}

// Cancel cancels the current session and invalidates any of its callbacks
// still waiting in the dispatcher. The scope stays usable.
func (sc *Scope) Cancel() {
	o := sc.orchestrator
	o.mu.Lock()
	current := sc.current
	sc.generation++
	o.mu.Unlock()

	current.Cancel()
}

// Close cancels the current session; sessions narrated afterwards start
// cancelled. Close is idempotent.
func (sc *Scope) Close() {
	o := sc.orchestrator
	o.mu.Lock()
	if sc.closed {
		o.mu.Unlock()
		return
	}
	sc.closed = true
	o.mu.Unlock()

	sc.Cancel()
}
