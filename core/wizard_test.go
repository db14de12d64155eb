package wizard

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/koscakluka/lakshmi-path/core/chat"
	"github.com/koscakluka/lakshmi-path/core/events"
	"github.com/koscakluka/lakshmi-path/core/profile"
	"github.com/koscakluka/lakshmi-path/core/regions"
	"github.com/koscakluka/lakshmi-path/core/speech"
)

type recordingEngine struct {
	mu        sync.Mutex
	spoken    []speech.Utterance
	cancelAll int
	fail      map[string]error
}

func (e *recordingEngine) Speak(_ context.Context, utterance speech.Utterance) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.spoken = append(e.spoken, utterance)
	return e.fail[utterance.Text]
}

func (e *recordingEngine) CancelAll() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cancelAll++
}

func (e *recordingEngine) utterances() []speech.Utterance {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]speech.Utterance(nil), e.spoken...)
}

type engineCall struct {
	speech.Utterance
	result chan error
}

type blockingEngine struct {
	started chan engineCall
}

func (e *blockingEngine) Speak(ctx context.Context, utterance speech.Utterance) error {
	call := engineCall{Utterance: utterance, result: make(chan error, 1)}
	e.started <- call
	select {
	case err := <-call.result:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (e *blockingEngine) CancelAll() {}

func (e *blockingEngine) expect(t *testing.T, text string) engineCall {
	t.Helper()
	select {
	case call := <-e.started:
		if call.Text != text {
			t.Fatalf("expected engine to start %q, got %q", text, call.Text)
		}
		return call
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for engine to start %q", text)
	}
	return engineCall{}
}

type emptyProvider struct{}

func (emptyProvider) Content(region regions.Region) (regions.Content, error) {
	return regions.Content{}, regions.ErrContentNotFound
}

type eventRecorder struct {
	mu     sync.Mutex
	events []events.Event
	seen   chan events.Event
}

func newEventRecorder() *eventRecorder {
	return &eventRecorder{seen: make(chan events.Event, 128)}
}

func (r *eventRecorder) handle(event events.Event) {
	r.mu.Lock()
	r.events = append(r.events, event)
	r.mu.Unlock()
	r.seen <- event
}

func (r *eventRecorder) waitFor(t *testing.T, kind events.Kind) events.Event {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case event := <-r.seen:
			if event.Kind() == kind {
				return event
			}
		case <-deadline:
			t.Fatalf("timed out waiting for %s event", kind)
			return nil
		}
	}
}

func (r *eventRecorder) kinds() []events.Kind {
	r.mu.Lock()
	defer r.mu.Unlock()
	kinds := make([]events.Kind, len(r.events))
	for i, event := range r.events {
		kinds[i] = event.Kind()
	}
	return kinds
}

func delhi(t *testing.T) regions.Content {
	t.Helper()
	content, err := regions.NewStaticProvider().Content(regions.Delhi)
	if err != nil {
		t.Fatalf("expected Delhi content, got %v", err)
	}
	return content
}

func validProfile() profile.Info {
	return profile.Info{
		Name:           "Meena",
		Age:            34,
		Category:       profile.CategoryST,
		IsTribal:       true,
		MonthlyIncome:  8000,
		HasBankAccount: false,
	}
}

func texts(utterances []speech.Utterance) []string {
	out := make([]string, len(utterances))
	for i, utterance := range utterances {
		out[i] = utterance.Text
	}
	return out
}

func TestSelectRegionNarratesWelcomeThenFillDetails(t *testing.T) {
	engine := &recordingEngine{}
	recorder := newEventRecorder()
	w := New(WithSpeechEngine(engine), WithEventHandler(recorder.handle))
	defer w.Close()

	if err := w.OnRegionSelected(context.Background(), regions.Delhi); err != nil {
		t.Fatalf("expected region selection to succeed, got %v", err)
	}
	if got := w.Stage(); got != StageCollectProfile {
		t.Fatalf("expected collect_profile stage, got %v", got)
	}
	recorder.waitFor(t, events.KindNarrationCompleted)

	content := delhi(t)
	spoken := engine.utterances()
	if len(spoken) != 2 ||
		spoken[0].Text != content.Strings.Welcome ||
		spoken[1].Text != content.Strings.FillDetails {
		t.Fatalf("expected [welcome fillDetails], got %v", texts(spoken))
	}
	for _, utterance := range spoken {
		if utterance.LocaleTag != "hi-IN" {
			t.Fatalf("expected hi-IN narration, got %q", utterance.LocaleTag)
		}
	}
	if w.Region() != regions.Delhi || w.Content().LocaleTag != "hi-IN" {
		t.Fatalf("expected Delhi to be selected, got %v (%s)", w.Region(), w.Content().LocaleTag)
	}
}

func TestStagesOnlyMoveForward(t *testing.T) {
	w := New()
	defer w.Close()
	ctx := context.Background()

	err := w.OnProfileSubmitted(ctx, validProfile())
	var transitionErr *TransitionError
	if !errors.As(err, &transitionErr) || !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected invalid transition, got %v", err)
	}
	if transitionErr.From != StageSelectRegion || transitionErr.To != StageShowAdvice {
		t.Fatalf("expected select_region -> show_advice, got %v -> %v", transitionErr.From, transitionErr.To)
	}
	if got := w.Stage(); got != StageSelectRegion {
		t.Fatalf("expected stage to stay select_region, got %v", got)
	}

	if err := w.OnRegionSelected(ctx, regions.TamilNadu); err != nil {
		t.Fatalf("expected region selection to succeed, got %v", err)
	}
	if err := w.OnRegionSelected(ctx, regions.Delhi); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected second region selection to fail, got %v", err)
	}
	if got := w.Region(); got != regions.TamilNadu {
		t.Fatalf("expected region to stay Tamil Nadu, got %v", got)
	}

	if err := w.OnProfileSubmitted(ctx, validProfile()); err != nil {
		t.Fatalf("expected profile submission to succeed, got %v", err)
	}
	if err := w.OnProfileSubmitted(ctx, validProfile()); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected advice stage to be terminal, got %v", err)
	}
	if got := w.Stage(); got != StageShowAdvice {
		t.Fatalf("expected show_advice stage, got %v", got)
	}
}

func TestUnknownRegionIsRejected(t *testing.T) {
	engine := &recordingEngine{}
	w := New(WithSpeechEngine(engine))
	defer w.Close()

	if err := w.OnRegionSelected(context.Background(), regions.Region(42)); !errors.Is(err, regions.ErrUnknownRegion) {
		t.Fatalf("expected ErrUnknownRegion, got %v", err)
	}
	if got := w.Stage(); got != StageSelectRegion {
		t.Fatalf("expected stage to stay select_region, got %v", got)
	}
	time.Sleep(20 * time.Millisecond)
	if got := engine.utterances(); len(got) != 0 {
		t.Fatalf("expected nothing narrated, got %v", texts(got))
	}
}

func TestTransitionSilencesPreviousStage(t *testing.T) {
	engine := &blockingEngine{started: make(chan engineCall, 16)}
	w := New(WithSpeechEngine(engine))
	defer w.Close()
	ctx := context.Background()
	content := delhi(t)

	if err := w.OnRegionSelected(ctx, regions.Delhi); err != nil {
		t.Fatalf("expected region selection to succeed, got %v", err)
	}
	engine.expect(t, content.Strings.Welcome)

	if err := w.OnProfileSubmitted(ctx, validProfile()); err != nil {
		t.Fatalf("expected profile submission to succeed, got %v", err)
	}
	engine.expect(t, content.Strings.Advice).result <- nil
	engine.expect(t, content.Strings.ChatbotPrompt).result <- nil

	select {
	case call := <-engine.started:
		t.Fatalf("expected profile narration to stay silent, got %q", call.Text)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestMissingContentFallsBackToEnglish(t *testing.T) {
	engine := &recordingEngine{}
	recorder := newEventRecorder()
	w := New(
		WithSpeechEngine(engine),
		WithContentProvider(emptyProvider{}),
		WithEventHandler(recorder.handle),
	)
	defer w.Close()

	if err := w.OnRegionSelected(context.Background(), regions.WestBengal); err != nil {
		t.Fatalf("expected fallback instead of an error, got %v", err)
	}
	recorder.waitFor(t, events.KindNarrationCompleted)

	fallback := regions.Fallback()
	spoken := engine.utterances()
	if len(spoken) != 2 || spoken[0].Text != fallback.Strings.Welcome || spoken[0].LocaleTag != "en-IN" {
		t.Fatalf("expected English fallback narration, got %v", texts(spoken))
	}
	if got := w.Region(); got != regions.WestBengal {
		t.Fatalf("expected region to be kept, got %v", got)
	}
}

func TestChatOpensOnlyAfterAdviceSettles(t *testing.T) {
	engine := &blockingEngine{started: make(chan engineCall, 16)}
	recorder := newEventRecorder()
	w := New(WithSpeechEngine(engine), WithEventHandler(recorder.handle))
	defer w.Close()
	ctx := context.Background()
	content := delhi(t)

	if err := w.OnRegionSelected(ctx, regions.Delhi); err != nil {
		t.Fatalf("expected region selection to succeed, got %v", err)
	}
	engine.expect(t, content.Strings.Welcome)
	if err := w.OnProfileSubmitted(ctx, validProfile()); err != nil {
		t.Fatalf("expected profile submission to succeed, got %v", err)
	}

	engine.expect(t, content.Strings.Advice).result <- nil
	prompt := engine.expect(t, content.Strings.ChatbotPrompt)
	if w.ChatAvailable() {
		t.Fatalf("expected chat to wait for the advice narration")
	}
	if err := w.OnChatOpened(ctx); !errors.Is(err, ErrChatUnavailable) {
		t.Fatalf("expected ErrChatUnavailable, got %v", err)
	}

	prompt.result <- errors.New("speaker unplugged")
	recorder.waitFor(t, events.KindNarrationFailed)
	if !w.ChatAvailable() {
		t.Fatalf("expected chat to be available after the advice narration failed")
	}

	if err := w.OnChatOpened(ctx); err != nil {
		t.Fatalf("expected chat to open, got %v", err)
	}
	engine.expect(t, content.Strings.ChatbotWelcome)
	if !w.ChatOpen() {
		t.Fatalf("expected chat to be open")
	}
	if got := w.Conversation(); len(got) != 1 || got[0].Text != content.Strings.ChatbotWelcome {
		t.Fatalf("expected one welcome message, got %v", got)
	}
}

func TestChatConversationFlow(t *testing.T) {
	engine := &recordingEngine{}
	recorder := newEventRecorder()
	w := New(
		WithSpeechEngine(engine),
		WithEventHandler(recorder.handle),
		WithResponseDelay(20*time.Millisecond),
		WithChatIntents(chat.Intent{
			Name:     "greeting",
			Triggers: []chat.Trigger{{Kind: chat.Exact, Phrase: "namaste"}},
			Reply:    "namaste ji",
		}),
	)
	defer w.Close()
	ctx := context.Background()
	content := delhi(t)

	if err := w.OnRegionSelected(ctx, regions.Delhi); err != nil {
		t.Fatalf("expected region selection to succeed, got %v", err)
	}
	if err := w.OnProfileSubmitted(ctx, validProfile()); err != nil {
		t.Fatalf("expected profile submission to succeed, got %v", err)
	}
	deadline := time.After(2 * time.Second)
	for !w.ChatAvailable() {
		select {
		case <-deadline:
			t.Fatalf("timed out waiting for the chat to become available")
		case <-time.After(5 * time.Millisecond):
		}
	}

	if err := w.OnChatOpened(ctx); err != nil {
		t.Fatalf("expected chat to open, got %v", err)
	}
	recorder.waitFor(t, events.KindChatMessageAppended)

	if err := w.OnChatMessageSent(ctx, "Jan Dhan Yojana"); err != nil {
		t.Fatalf("expected message to be sent, got %v", err)
	}
	recorder.waitFor(t, events.KindChatMessageAppended)
	reply := recorder.waitFor(t, events.KindChatMessageAppended).(events.ChatMessageAppended)
	if reply.FromUser || reply.Text != content.Strings.SchemeInfo {
		t.Fatalf("expected scheme info reply, got %+v", reply)
	}

	if err := w.OnChatMessageSent(ctx, "Namaste"); err != nil {
		t.Fatalf("expected message to be sent, got %v", err)
	}
	recorder.waitFor(t, events.KindChatMessageAppended)
	reply = recorder.waitFor(t, events.KindChatMessageAppended).(events.ChatMessageAppended)
	if reply.Text != "namaste ji" {
		t.Fatalf("expected custom intent reply, got %q", reply.Text)
	}

	w.OnChatClosed()
	recorder.waitFor(t, events.KindChatClosed)
	if err := w.OnChatMessageSent(ctx, "hello"); !errors.Is(err, chat.ErrPanelClosed) {
		t.Fatalf("expected ErrPanelClosed after closing, got %v", err)
	}
	if got := len(w.Conversation()); got != 5 {
		t.Fatalf("expected 5 messages in the conversation, got %d", got)
	}
}

func TestPreviewRegionOnlyWhileSelecting(t *testing.T) {
	engine := &recordingEngine{}
	recorder := newEventRecorder()
	w := New(WithSpeechEngine(engine), WithEventHandler(recorder.handle))
	defer w.Close()
	ctx := context.Background()

	if err := w.OnRegionPreview(ctx, regions.TamilNadu); err != nil {
		t.Fatalf("expected preview to succeed, got %v", err)
	}
	recorder.waitFor(t, events.KindNarrationCompleted)

	tamil, _ := regions.NewStaticProvider().Content(regions.TamilNadu)
	spoken := engine.utterances()
	if len(spoken) != 1 || spoken[0].Text != tamil.Strings.StateName || spoken[0].LocaleTag != "ta-IN" {
		t.Fatalf("expected Tamil state name, got %v", spoken)
	}
	if got := w.Stage(); got != StageSelectRegion {
		t.Fatalf("expected preview not to change the stage, got %v", got)
	}

	if err := w.OnRegionSelected(ctx, regions.TamilNadu); err != nil {
		t.Fatalf("expected region selection to succeed, got %v", err)
	}
	if err := w.OnRegionPreview(ctx, regions.Delhi); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected preview to be unavailable after selection, got %v", err)
	}
}

func TestFieldPromptReplacesStageNarration(t *testing.T) {
	engine := &blockingEngine{started: make(chan engineCall, 16)}
	w := New(WithSpeechEngine(engine))
	defer w.Close()
	ctx := context.Background()
	content := delhi(t)

	if err := w.OnFieldPromptRequested(ctx, profile.FieldAge); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected field prompt to be unavailable before region selection, got %v", err)
	}

	if err := w.OnRegionSelected(ctx, regions.Delhi); err != nil {
		t.Fatalf("expected region selection to succeed, got %v", err)
	}
	engine.expect(t, content.Strings.Welcome)

	if err := w.OnFieldPromptRequested(ctx, profile.FieldMonthlyIncome); err != nil {
		t.Fatalf("expected field prompt to succeed, got %v", err)
	}
	engine.expect(t, content.Strings.MonthlyIncome).result <- nil

	select {
	case call := <-engine.started:
		t.Fatalf("expected the rest of the stage narration to be dropped, got %q", call.Text)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestInvalidProfileKeepsTheForm(t *testing.T) {
	w := New()
	defer w.Close()
	ctx := context.Background()

	if err := w.OnRegionSelected(ctx, regions.WestBengal); err != nil {
		t.Fatalf("expected region selection to succeed, got %v", err)
	}
	info := validProfile()
	info.Age = 0
	if err := w.OnProfileSubmitted(ctx, info); !errors.Is(err, profile.ErrInvalidProfile) {
		t.Fatalf("expected ErrInvalidProfile, got %v", err)
	}
	if got := w.Stage(); got != StageCollectProfile {
		t.Fatalf("expected to stay on the form, got %v", got)
	}
}

func TestStageChangesAreReported(t *testing.T) {
	recorder := newEventRecorder()
	w := New(WithEventHandler(recorder.handle))
	defer w.Close()

	if err := w.OnRegionSelected(context.Background(), regions.Delhi); err != nil {
		t.Fatalf("expected region selection to succeed, got %v", err)
	}

	changed := recorder.waitFor(t, events.KindStageChanged).(events.StageChanged)
	if changed.From != "select_region" || changed.To != "collect_profile" || changed.Region != regions.Delhi {
		t.Fatalf("unexpected stage change %+v", changed)
	}
	kinds := recorder.kinds()
	if len(kinds) < 2 || kinds[0] != events.KindStageChanged || kinds[1] != events.KindNarrationStarted {
		t.Fatalf("expected stage change before narration, got %v", kinds)
	}
}

func TestCloseSilencesEverything(t *testing.T) {
	engine := &recordingEngine{}
	w := New(WithSpeechEngine(engine))

	w.Close()
	w.Close()

	engine.mu.Lock()
	cancelAll := engine.cancelAll
	engine.mu.Unlock()
	if cancelAll != 1 {
		t.Fatalf("expected engine CancelAll once, got %d", cancelAll)
	}
	if err := w.OnRegionSelected(context.Background(), regions.Delhi); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected closed wizard to refuse transitions, got %v", err)
	}
	if w.IsSpeaking() {
		t.Fatalf("expected closed wizard to be silent")
	}
}
