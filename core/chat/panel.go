package chat

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/koscakluka/lakshmi-path/core/regions"
	"github.com/koscakluka/lakshmi-path/core/speech"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var ErrPanelClosed = errors.New("chat panel is closed")

const DefaultResponseDelay = time.Second

type PanelState int

const (
	PanelClosed PanelState = iota
	PanelOpen
)

func (s PanelState) String() string {
	if s == PanelOpen {
		return "open"
	}
	return "closed"
}

type Option func(*Panel)

// WithResponseDelay sets how long the panel waits before it appends a reply.
func WithResponseDelay(delay time.Duration) Option {
	return func(p *Panel) {
		if delay >= 0 {
			p.delay = delay
		}
	}
}

// WithDispatcher routes delayed replies through dispatch, see
// [speech.WithDispatcher].
func WithDispatcher(dispatch func(func())) Option {
	return func(p *Panel) {
		if dispatch != nil {
			p.dispatch = dispatch
		}
	}
}

func WithResponder(responder *Responder) Option {
	return func(p *Panel) {
		if responder != nil {
			p.responder = responder
		}
	}
}

// WithConversation makes the panel append to an existing log.
func WithConversation(conversation *Conversation) Option {
	return func(p *Panel) {
		if conversation != nil {
			p.conversation = conversation
		}
	}
}

func WithMessageAppendedCallback(callback func(Message)) Option {
	return func(p *Panel) { p.onMessageAppended = callback }
}

func WithStateChangedCallback(callback func(PanelState)) Option {
	return func(p *Panel) { p.onStateChanged = callback }
}

// WithNarrationOptions is asked for the session options of every narration
// the panel starts.
func WithNarrationOptions(build func(utterances []speech.Utterance) []speech.SessionOption) Option {
	return func(p *Panel) { p.narrationOptions = build }
}

// Panel is the chat window of the advice stage. It narrates the welcome
// message and every reply in its own scope, so closing the panel silences
// the chat without touching other narration.
type Panel struct {
	scope        *speech.Scope
	content      regions.Content
	responder    *Responder
	conversation *Conversation
	delay        time.Duration
	dispatch     func(func())

	onMessageAppended func(Message)
	onStateChanged    func(PanelState)
	narrationOptions  func([]speech.Utterance) []speech.SessionOption

	mu    sync.Mutex
	state PanelState
	// epoch changes whenever the panel closes; replies scheduled in an older
	// epoch are dropped.
	epoch     uint64
	nextReply uint64
	pending   map[uint64]*time.Timer
}

func NewPanel(scope *speech.Scope, content regions.Content, opts ...Option) *Panel {
	p := &Panel{
		scope:        scope,
		content:      content,
		responder:    NewDefaultResponder(content.Strings),
		conversation: &Conversation{},
		delay:        DefaultResponseDelay,
		dispatch:     func(f func()) { f() },
		pending:      map[uint64]*time.Timer{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Panel) State() PanelState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *Panel) IsOpen() bool { return p.State() == PanelOpen }

func (p *Panel) Conversation() *Conversation { return p.conversation }

func (p *Panel) Messages() []Message { return p.conversation.Messages() }

// Open shows the panel, appends the welcome message, and narrates it.
// Opening an open panel does nothing.
func (p *Panel) Open(ctx context.Context) {
	p.mu.Lock()
	if p.state == PanelOpen {
		p.mu.Unlock()
		return
	}
	p.state = PanelOpen
	p.mu.Unlock()

	p.stateChanged(PanelOpen)
	welcome := p.conversation.Append(p.content.Strings.ChatbotWelcome, false)
	p.messageAppended(welcome)
	p.narrate(ctx, welcome.Text)
}

// Close hides the panel, stops its narration and drops replies that have
// not been appended yet. Closing a closed panel does nothing.
func (p *Panel) Close() {
	p.mu.Lock()
	if p.state == PanelClosed {
		p.mu.Unlock()
		return
	}
	p.state = PanelClosed
	p.epoch++
	for _, timer := range p.pending {
		if timer.Stop() {
			repliesDropped.Add(context.Background(), 1)
		}
	}
	clear(p.pending)
	p.mu.Unlock()

	p.scope.Cancel()
	p.stateChanged(PanelClosed)
}

// Send appends the user's message and schedules the reply. Blank input is
// ignored. Send never blocks on the reply.
func (p *Panel) Send(ctx context.Context, text string) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	if !p.IsOpen() {
		return ErrPanelClosed
	}

	ctx, span := tracer.Start(ctx, "chat reply", trace.WithAttributes(
		attribute.Int64("chat.delay_ms", p.delay.Milliseconds()),
	))
	defer span.End()
	reply, intent := p.responder.respond(ctx, text)
	span.SetAttributes(attribute.String("chat.intent", intent))

	// The state check and the append share the lock Close takes, so a
	// closed panel never gains a message.
	ctx = context.WithoutCancel(ctx)
	p.mu.Lock()
	if p.state != PanelOpen {
		p.mu.Unlock()
		return ErrPanelClosed
	}
	message := p.conversation.Append(text, true)
	epoch := p.epoch
	p.mu.Unlock()

	p.messageAppended(message)

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.epoch != epoch {
		repliesDropped.Add(ctx, 1)
		return nil
	}
	p.nextReply++
	id := p.nextReply
	p.pending[id] = time.AfterFunc(p.delay, func() {
		p.dispatch(func() { p.deliverReply(ctx, id, epoch, reply) })
	})
	return nil
}

func (p *Panel) deliverReply(ctx context.Context, id, epoch uint64, reply string) {
	p.mu.Lock()
	delete(p.pending, id)
	if p.state != PanelOpen || p.epoch != epoch {
		p.mu.Unlock()
		repliesDropped.Add(ctx, 1)
		logger.DebugContext(ctx, "dropping chat reply of a closed panel")
		return
	}
	p.mu.Unlock()

	message := p.conversation.Append(reply, false)
	p.messageAppended(message)
	p.narrate(ctx, message.Text)
}

func (p *Panel) narrate(ctx context.Context, text string) *speech.Session {
	utterances := []speech.Utterance{{Text: text, LocaleTag: p.content.LocaleTag}}
	var opts []speech.SessionOption
	if p.narrationOptions != nil {
		opts = p.narrationOptions(utterances)
	}
	return p.scope.Narrate(ctx, utterances, opts...)
}

func (p *Panel) messageAppended(message Message) {
	if p.onMessageAppended != nil {
		p.onMessageAppended(message)
	}
}

func (p *Panel) stateChanged(state PanelState) {
	if p.onStateChanged != nil {
		p.onStateChanged(state)
	}
}
