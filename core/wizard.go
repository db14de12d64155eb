// Package wizard drives the Lakshmi Path onboarding flow: choose a region,
// fill in a profile, hear the advice, then chat. Every step is narrated in
// the region's language.
//
// A Wizard is the boundary a UI talks to. Its On* methods never block on
// speech or chat replies; progress arrives as [events.Event] values through
// the handler and the dispatcher configured with [WithEventHandler] and
// [WithDispatcher].
package wizard

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/koscakluka/lakshmi-path/core/chat"
	"github.com/koscakluka/lakshmi-path/core/events"
	"github.com/koscakluka/lakshmi-path/core/profile"
	"github.com/koscakluka/lakshmi-path/core/regions"
	"github.com/koscakluka/lakshmi-path/core/speech"
)

// ErrChatUnavailable is returned when the chat is opened before the advice
// narration settled.
var ErrChatUnavailable = errors.New("chat is not available yet")

type Wizard struct {
	engine        speech.Engine
	provider      regions.Provider
	handler       events.Handler
	dispatch      func(func())
	responseDelay time.Duration
	intents       []chat.Intent

	orchestrator *speech.Orchestrator
	stages       *StageController
	emit         eventEmitter

	mu    sync.Mutex
	panel *chat.Panel

	closeOnce sync.Once
}

func New(opts ...Option) *Wizard {
	w := &Wizard{
		provider:      regions.NewStaticProvider(),
		dispatch:      func(f func()) { f() },
		responseDelay: chat.DefaultResponseDelay,
	}
	for _, opt := range opts {
		opt(w)
	}

	w.emit = newEventEmitter(w.handler)
	w.orchestrator = speech.NewOrchestrator(w.engine,
		speech.WithDispatcher(w.dispatch),
		speech.WithSpeakingChangedCallback(func(isSpeaking bool) {
			w.emit(events.NewSpeakingChanged(isSpeaking))
		}),
	)
	w.stages = NewStageController(w.orchestrator, w.provider, w.handler)
	return w
}

// OnRegionSelected picks the region and moves on to the profile form.
func (w *Wizard) OnRegionSelected(ctx context.Context, region regions.Region) error {
	return w.stages.SelectRegion(ctx, region)
}

// OnRegionPreview speaks a region's name while the region is being chosen.
func (w *Wizard) OnRegionPreview(ctx context.Context, region regions.Region) error {
	return w.stages.PreviewRegion(ctx, region)
}

// OnFieldPromptRequested speaks the label of a profile form field.
func (w *Wizard) OnFieldPromptRequested(ctx context.Context, field profile.Field) error {
	return w.stages.SpeakFieldPrompt(ctx, field)
}

// OnProfileSubmitted validates info and moves on to the advice. An invalid
// profile leaves the wizard on the form.
func (w *Wizard) OnProfileSubmitted(ctx context.Context, info profile.Info) error {
	if err := info.Validate(); err != nil {
		return fmt.Errorf("submit profile: %w", err)
	}
	if err := w.stages.SubmitProfile(ctx, info); err != nil {
		return err
	}

	content := w.stages.Content()
	intents := append(w.intents[:len(w.intents):len(w.intents)], chat.DefaultIntents(content.Strings)...)
	panel := chat.NewPanel(w.orchestrator.NewScope("chat"), content,
		chat.WithResponder(chat.NewResponder(content.Strings.ChatbotDefaultResponse, intents...)),
		chat.WithResponseDelay(w.responseDelay),
		chat.WithDispatcher(w.dispatch),
		chat.WithMessageAppendedCallback(func(message chat.Message) {
			w.emit(events.NewChatMessageAppended(message.ID, message.Text, message.FromUser))
		}),
		chat.WithStateChangedCallback(func(state chat.PanelState) {
			if state == chat.PanelOpen {
				w.emit(events.NewChatOpened())
			} else {
				w.emit(events.NewChatClosed())
			}
		}),
		chat.WithNarrationOptions(func(utterances []speech.Utterance) []speech.SessionOption {
			return w.emit.narration("chat", utterances, nil)
		}),
	)

	w.mu.Lock()
	w.panel = panel
	w.mu.Unlock()
	return nil
}

// OnChatOpened opens the chat panel. It fails until the advice narration
// has settled.
func (w *Wizard) OnChatOpened(ctx context.Context) error {
	panel := w.chatPanel()
	if panel == nil || !w.stages.ChatAvailable() {
		return ErrChatUnavailable
	}
	panel.Open(ctx)
	return nil
}

func (w *Wizard) OnChatClosed() {
	if panel := w.chatPanel(); panel != nil {
		panel.Close()
	}
}

// OnChatMessageSent posts a message to the open chat. The reply follows
// after the response delay.
func (w *Wizard) OnChatMessageSent(ctx context.Context, text string) error {
	panel := w.chatPanel()
	if panel == nil {
		return chat.ErrPanelClosed
	}
	return panel.Send(ctx, text)
}

func (w *Wizard) Stage() Stage { return w.stages.Stage() }

func (w *Wizard) Region() regions.Region { return w.stages.Region() }

func (w *Wizard) Content() regions.Content { return w.stages.Content() }

// Conversation returns a snapshot of the chat log.
func (w *Wizard) Conversation() []chat.Message {
	if panel := w.chatPanel(); panel != nil {
		return panel.Messages()
	}
	return nil
}

func (w *Wizard) ChatOpen() bool {
	panel := w.chatPanel()
	return panel != nil && panel.IsOpen()
}

func (w *Wizard) ChatAvailable() bool { return w.stages.ChatAvailable() }

// IsSpeaking reports whether any narration is playing.
func (w *Wizard) IsSpeaking() bool { return w.orchestrator.IsSpeaking() }

// Close stops all narration and pending chat replies and releases the
// speech engine.
func (w *Wizard) Close() {
	w.closeOnce.Do(func() {
		if panel := w.chatPanel(); panel != nil {
			panel.Close()
		}
		w.stages.Close()
		w.orchestrator.Close()
	})
}

func (w *Wizard) chatPanel() *chat.Panel {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.panel
}
