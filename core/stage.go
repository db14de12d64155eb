package wizard

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/koscakluka/lakshmi-path/core/events"
	"github.com/koscakluka/lakshmi-path/core/profile"
	"github.com/koscakluka/lakshmi-path/core/regions"
	"github.com/koscakluka/lakshmi-path/core/speech"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

type Stage int

const (
	StageSelectRegion Stage = iota
	StageCollectProfile
	StageShowAdvice
)

func (s Stage) String() string {
	switch s {
	case StageSelectRegion:
		return "select_region"
	case StageCollectProfile:
		return "collect_profile"
	case StageShowAdvice:
		return "show_advice"
	}
	return fmt.Sprintf("Stage(%d)", int(s))
}

var (
	ErrInvalidTransition = errors.New("invalid stage transition")
	// ErrUnavailable is returned for actions the current stage does not offer.
	ErrUnavailable = errors.New("not available in the current stage")
)

// TransitionError is returned when a transition is requested from the wrong
// stage. The stage is left unchanged.
type TransitionError struct {
	From Stage
	To   Stage
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: cannot move from %s to %s", ErrInvalidTransition, e.From, e.To)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }

// StageController moves the wizard forward through its stages. Every stage
// narrates in its own scope; leaving a stage closes the scope so nothing
// from the previous stage is heard after the transition.
type StageController struct {
	orchestrator *speech.Orchestrator
	provider     regions.Provider
	emit         eventEmitter

	mu            sync.Mutex
	stage         Stage
	region        regions.Region
	content       regions.Content
	profile       *profile.Info
	scope         *speech.Scope
	chatAvailable bool
	closed        bool
}

func NewStageController(orchestrator *speech.Orchestrator, provider regions.Provider, handler events.Handler) *StageController {
	if provider == nil {
		provider = regions.NewStaticProvider()
	}
	return &StageController{
		orchestrator: orchestrator,
		provider:     provider,
		emit:         newEventEmitter(handler),
		stage:        StageSelectRegion,
		content:      regions.Fallback(),
		scope:        orchestrator.NewScope(StageSelectRegion.String()),
	}
}

func (c *StageController) Stage() Stage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stage
}

// Region returns the selected region, or 0 before one is selected.
func (c *StageController) Region() regions.Region {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.region
}

// Content returns the content of the selected region. Before a region is
// selected it is the fallback content.
func (c *StageController) Content() regions.Content {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.content
}

func (c *StageController) Profile() (profile.Info, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.profile == nil {
		return profile.Info{}, false
	}
	return *c.profile, true
}

// ChatAvailable reports whether the advice narration has settled.
func (c *StageController) ChatAvailable() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.chatAvailable
}

// SelectRegion moves from region selection to the profile form and narrates
// the region's welcome followed by the form instructions.
func (c *StageController) SelectRegion(ctx context.Context, region regions.Region) error {
	if !region.Valid() {
		return fmt.Errorf("select region %d: %w", int(region), regions.ErrUnknownRegion)
	}

	ctx, span := tracer.Start(ctx, "select region", trace.WithAttributes(
		attribute.String("wizard.region", region.ID()),
	))
	defer span.End()

	if err := c.expectStage(StageSelectRegion, StageCollectProfile); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	content := c.lookup(ctx, region)
	scope, err := c.transition(StageSelectRegion, StageCollectProfile, func() {
		c.region = region
		c.content = content
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	c.narrate(ctx, scope, nil, content.LocaleTag, content.Strings.Welcome, content.Strings.FillDetails)
	return nil
}

// SubmitProfile moves from the profile form to the advice and narrates the
// advice followed by the invitation to chat. The chat becomes available
// once that narration settles.
func (c *StageController) SubmitProfile(ctx context.Context, info profile.Info) error {
	ctx, span := tracer.Start(ctx, "submit profile")
	defer span.End()

	scope, err := c.transition(StageCollectProfile, StageShowAdvice, func() {
		c.profile = &info
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	content := c.Content()
	c.narrate(ctx, scope, c.adviceSettled, content.LocaleTag, content.Strings.Advice, content.Strings.ChatbotPrompt)
	return nil
}

// PreviewRegion speaks the name of a region in its own language. It is only
// offered while the region is being chosen.
func (c *StageController) PreviewRegion(ctx context.Context, region regions.Region) error {
	if !region.Valid() {
		return fmt.Errorf("preview region %d: %w", int(region), regions.ErrUnknownRegion)
	}

	c.mu.Lock()
	stage, scope := c.stage, c.scope
	c.mu.Unlock()
	if stage != StageSelectRegion {
		return fmt.Errorf("preview region in %s: %w", stage, ErrUnavailable)
	}

	content := c.lookup(ctx, region)
	c.narrate(ctx, scope, nil, content.LocaleTag, content.Strings.StateName)
	return nil
}

// SpeakFieldPrompt speaks the label of a profile field. It replaces whatever
// the profile stage was narrating.
func (c *StageController) SpeakFieldPrompt(ctx context.Context, field profile.Field) error {
	c.mu.Lock()
	stage, scope, content := c.stage, c.scope, c.content
	c.mu.Unlock()
	if stage != StageCollectProfile {
		return fmt.Errorf("speak %s prompt in %s: %w", field, stage, ErrUnavailable)
	}

	c.narrate(ctx, scope, nil, content.LocaleTag, profile.Label(content.Strings, field))
	return nil
}

// Close silences the current stage. The controller accepts no further
// transitions.
func (c *StageController) Close() {
	c.mu.Lock()
	c.closed = true
	scope := c.scope
	c.mu.Unlock()

	scope.Close()
}

func (c *StageController) expectStage(from, to Stage) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.stage != from {
		return &TransitionError{From: c.stage, To: to}
	}
	return nil
}

// transition swaps the stage scope and applies update while holding the
// lock, then silences the outgoing stage.
func (c *StageController) transition(from, to Stage, update func()) (*speech.Scope, error) {
	c.mu.Lock()
	if c.closed || c.stage != from {
		err := &TransitionError{From: c.stage, To: to}
		c.mu.Unlock()
		return nil, err
	}
	previous := c.scope
	c.scope = c.orchestrator.NewScope(to.String())
	c.stage = to
	update()
	scope, region := c.scope, c.region
	c.mu.Unlock()

	previous.Close()
	stageTransitions.Add(context.Background(), 1, metric.WithAttributes(attribute.String("wizard.stage", to.String())))
	c.emit(events.NewStageChanged(from.String(), to.String(), region))
	return scope, nil
}

func (c *StageController) lookup(ctx context.Context, region regions.Region) regions.Content {
	content, err := c.provider.Content(region)
	if err == nil {
		return content
	}

	contentFallbacks.Add(ctx, 1)
	trace.SpanFromContext(ctx).RecordError(err)
	logger.WarnContext(ctx, "no content for region, narrating the fallback",
		"region", region.ID(),
		"locale", regions.Fallback().LocaleTag,
		"error", err,
	)
	return regions.Fallback()
}

func (c *StageController) narrate(ctx context.Context, scope *speech.Scope, onSettled func(), localeTag string, texts ...string) *speech.Session {
	utterances := make([]speech.Utterance, len(texts))
	for i, text := range texts {
		utterances[i] = speech.Utterance{Text: text, LocaleTag: localeTag}
	}
	return scope.Narrate(ctx, utterances, c.emit.narration(scope.Name(), utterances, onSettled)...)
}

func (c *StageController) adviceSettled() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.chatAvailable = true
}
