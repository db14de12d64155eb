package events

const (
	// KindNarrationStarted identifies the start of a narration session.
	KindNarrationStarted Kind = "narration.started"
	// KindUtteranceStarted identifies the start of one utterance.
	KindUtteranceStarted Kind = "narration.utterance_started"
	// KindUtteranceEnded identifies the end of one utterance.
	KindUtteranceEnded Kind = "narration.utterance_ended"
	// KindNarrationCompleted identifies a session that played every utterance.
	KindNarrationCompleted Kind = "narration.completed"
	// KindNarrationFailed identifies a session aborted by an engine error.
	KindNarrationFailed Kind = "narration.failed"
	// KindSpeakingChanged identifies a change of the speaking flag.
	KindSpeakingChanged Kind = "narration.speaking_changed"
)

// NarrationStarted carries the scope and the texts of a new session.
type NarrationStarted struct {
	Base
	Scope     string
	SessionID string
	Texts     []string
}

func NewNarrationStarted(scope, sessionID string, texts []string) NarrationStarted {
	return NarrationStarted{Base: NewBase(KindNarrationStarted), Scope: scope, SessionID: sessionID, Texts: texts}
}

// UtteranceStarted carries the utterance handed to the speech engine.
type UtteranceStarted struct {
	Base
	Scope     string
	SessionID string
	Index     int
	Text      string
	LocaleTag string
}

func NewUtteranceStarted(scope, sessionID string, index int, text, localeTag string) UtteranceStarted {
	return UtteranceStarted{
		Base:      NewBase(KindUtteranceStarted),
		Scope:     scope,
		SessionID: sessionID,
		Index:     index,
		Text:      text,
		LocaleTag: localeTag,
	}
}

// UtteranceEnded carries the utterance that finished playing.
type UtteranceEnded struct {
	Base
	Scope     string
	SessionID string
	Index     int
	Text      string
}

func NewUtteranceEnded(scope, sessionID string, index int, text string) UtteranceEnded {
	return UtteranceEnded{Base: NewBase(KindUtteranceEnded), Scope: scope, SessionID: sessionID, Index: index, Text: text}
}

type NarrationCompleted struct {
	Base
	Scope     string
	SessionID string
}

func NewNarrationCompleted(scope, sessionID string) NarrationCompleted {
	return NarrationCompleted{Base: NewBase(KindNarrationCompleted), Scope: scope, SessionID: sessionID}
}

// NarrationFailed carries the engine error that aborted a session.
type NarrationFailed struct {
	Base
	Scope     string
	SessionID string
	Err       error
}

func NewNarrationFailed(scope, sessionID string, err error) NarrationFailed {
	return NarrationFailed{Base: NewBase(KindNarrationFailed), Scope: scope, SessionID: sessionID, Err: err}
}

type SpeakingChanged struct {
	Base
	IsSpeaking bool
}

func NewSpeakingChanged(isSpeaking bool) SpeakingChanged {
	return SpeakingChanged{Base: NewBase(KindSpeakingChanged), IsSpeaking: isSpeaking}
}
