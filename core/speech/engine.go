// Package speech sequences narration over a speech engine.
//
// An [Orchestrator] plays ordered groups of utterances ([Session]) one at a
// time per group and exposes idempotent cancellation. Components that own a
// narration lifetime hold a [Scope]; narrating through a scope supersedes the
// scope's previous session, and every late completion belonging to a
// superseded session is discarded by comparing generations.
package speech

import (
	"context"
	"errors"
	"fmt"
)

// Utterance is one unit of text spoken in one locale.
type Utterance struct {
	Text      string
	LocaleTag string
}

// Engine wraps a platform narration facility.
type Engine interface {
	// Speak plays the utterance and returns once playback settled. It must
	// return promptly after ctx is cancelled; the returned error is then
	// ignored by the orchestrator. New sessions wait for cancelled calls to
	// return before their first call.
	Speak(ctx context.Context, utterance Utterance) error
	// CancelAll stops any playback in flight.
	CancelAll()
}

var ErrOrchestratorClosed = errors.New("speech orchestrator closed")

// EngineError reports an utterance the engine failed to play. The rest of
// the session's queue is abandoned.
type EngineError struct {
	SessionID string
	Index     int
	Utterance Utterance
	Err       error
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("speech engine failed on utterance %d of session %s: %v", e.Index, e.SessionID, e.Err)
}

func (e *EngineError) Unwrap() error { return e.Err }
