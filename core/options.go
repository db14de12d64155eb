package wizard

import (
	"time"

	"github.com/koscakluka/lakshmi-path/core/chat"
	"github.com/koscakluka/lakshmi-path/core/events"
	"github.com/koscakluka/lakshmi-path/core/regions"
	"github.com/koscakluka/lakshmi-path/core/speech"
)

type Option func(*Wizard)

// WithSpeechEngine sets the engine narration is played on. Without one the
// wizard narrates silently.
func WithSpeechEngine(engine speech.Engine) Option {
	return func(w *Wizard) { w.engine = engine }
}

func WithContentProvider(provider regions.Provider) Option {
	return func(w *Wizard) {
		if provider != nil {
			w.provider = provider
		}
	}
}

// WithEventHandler registers a handler for every [events.Event] of the
// wizard. Events caused by a UI call are reported before the call returns;
// events of narration progress and chat replies arrive through the
// dispatcher.
func WithEventHandler(handler events.Handler) Option {
	return func(w *Wizard) { w.handler = handler }
}

// WithDispatcher sets the function asynchronous completions are handed to,
// see [speech.WithDispatcher]. A UI event loop passes a function that posts
// to its own queue.
func WithDispatcher(dispatch func(func())) Option {
	return func(w *Wizard) {
		if dispatch != nil {
			w.dispatch = dispatch
		}
	}
}

// WithResponseDelay sets how long the chat waits before replying. The
// default is [chat.DefaultResponseDelay].
func WithResponseDelay(delay time.Duration) Option {
	return func(w *Wizard) {
		if delay >= 0 {
			w.responseDelay = delay
		}
	}
}

// WithChatIntents adds scripted chat answers. They are tested before the
// built-in ones.
func WithChatIntents(intents ...chat.Intent) Option {
	return func(w *Wizard) { w.intents = append(w.intents, intents...) }
}
