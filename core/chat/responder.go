package chat

import (
	"context"
	"strings"

	"github.com/koscakluka/lakshmi-path/core/regions"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type MatchKind int

const (
	// Contains matches when the phrase appears anywhere in the input.
	Contains MatchKind = iota
	// Exact matches only the whole input.
	Exact
)

type Trigger struct {
	Kind   MatchKind
	Phrase string
}

func (t Trigger) matches(normalized string) bool {
	switch t.Kind {
	case Exact:
		return normalized == t.Phrase
	default:
		return strings.Contains(normalized, t.Phrase)
	}
}

// Intent is a scripted answer and the phrases that select it.
type Intent struct {
	Name     string
	Triggers []Trigger
	Reply    string
}

// Responder picks a scripted reply for chat input. Intents are tested in
// declaration order and the first match wins.
type Responder struct {
	intents  []Intent
	fallback string
}

func NewResponder(fallback string, intents ...Intent) *Responder {
	normalized := make([]Intent, 0, len(intents))
	for _, intent := range intents {
		triggers := make([]Trigger, 0, len(intent.Triggers))
		for _, trigger := range intent.Triggers {
			phrase := Normalize(trigger.Phrase)
			if phrase == "" {
				continue
			}
			triggers = append(triggers, Trigger{Kind: trigger.Kind, Phrase: phrase})
		}
		intent.Triggers = triggers
		normalized = append(normalized, intent)
	}
	return &Responder{intents: normalized, fallback: fallback}
}

const SchemeInfoIntent = "scheme_info"

// DefaultIntents answers questions about the Pradhan Mantri Jan Dhan Yojana
// in English transliteration and in Hindi.
func DefaultIntents(text regions.Strings) []Intent {
	return []Intent{
		{
			Name: SchemeInfoIntent,
			Triggers: []Trigger{
				{Kind: Contains, Phrase: "jan dhan yojana"},
				{Kind: Contains, Phrase: "जन धन योजना"},
				{Kind: Exact, Phrase: "प्रधान मंत्री जन धन योजना क्या है?"},
				{Kind: Exact, Phrase: "pradhan mantri jan dhan yojana kya hai?"},
			},
			Reply: text.SchemeInfo,
		},
	}
}

// NewDefaultResponder answers with the region's scheme information or its
// default chatbot response.
func NewDefaultResponder(text regions.Strings) *Responder {
	return NewResponder(text.ChatbotDefaultResponse, DefaultIntents(text)...)
}

// Match returns the first intent with a trigger matching input.
func (r *Responder) Match(input string) (Intent, bool) {
	normalized := Normalize(input)
	if normalized == "" {
		return Intent{}, false
	}
	for _, intent := range r.intents {
		for _, trigger := range intent.Triggers {
			if trigger.matches(normalized) {
				return intent, true
			}
		}
	}
	return Intent{}, false
}

// Respond returns the reply of the matching intent or the fallback.
func (r *Responder) Respond(input string) string {
	reply, _ := r.respond(context.Background(), input)
	return reply
}

func (r *Responder) respond(ctx context.Context, input string) (string, string) {
	intent, ok := r.Match(input)
	if !ok {
		fallbackReplies.Add(ctx, 1)
		return r.fallback, ""
	}
	intentsMatched.Add(ctx, 1, metric.WithAttributes(attribute.String("chat.intent", intent.Name)))
	return intent.Reply, intent.Name
}
