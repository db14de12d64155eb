package wizard

import (
	"github.com/google/uuid"
	"github.com/koscakluka/lakshmi-path/core/events"
	"github.com/koscakluka/lakshmi-path/core/speech"
)

type eventEmitter func(events.Event)

func noopEventEmitter(events.Event) {}

func newEventEmitter(handler events.Handler) eventEmitter {
	if handler == nil {
		return noopEventEmitter
	}
	return eventEmitter(handler)
}

// narration reports a new session as started and returns the options that
// report its progress. onSettled runs after the session completed or failed,
// never after it was cancelled.
func (emit eventEmitter) narration(scope string, utterances []speech.Utterance, onSettled func()) []speech.SessionOption {
	id := uuid.NewString()
	texts := make([]string, len(utterances))
	for i, utterance := range utterances {
		texts[i] = utterance.Text
	}
	emit(events.NewNarrationStarted(scope, id, texts))

	settled := func() {
		if onSettled != nil {
			onSettled()
		}
	}
	return []speech.SessionOption{
		speech.WithSessionID(id),
		speech.WithUtteranceStartedCallback(func(index int, utterance speech.Utterance) {
			emit(events.NewUtteranceStarted(scope, id, index, utterance.Text, utterance.LocaleTag))
		}),
		speech.WithUtteranceEndedCallback(func(index int, utterance speech.Utterance) {
			emit(events.NewUtteranceEnded(scope, id, index, utterance.Text))
		}),
		speech.WithCompletedCallback(func() {
			settled()
			emit(events.NewNarrationCompleted(scope, id))
		}),
		speech.WithFailedCallback(func(err error) {
			settled()
			emit(events.NewNarrationFailed(scope, id, err))
		}),
	}
}
