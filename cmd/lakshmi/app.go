package main

import (
	wizard "github.com/koscakluka/lakshmi-path/core"
	"github.com/koscakluka/lakshmi-path/core/events"
)

// app is the state shared by the model copies bubbletea passes around. The
// wizard reports events either during an Update call or through a
// dispatchMsg, so handle always runs on the event loop.
type app struct {
	wizard *wizard.Wizard

	speaking string
	notice   string
}

func (a *app) handle(e events.Event) {
	switch e := e.(type) {
	case events.UtteranceStarted:
		a.speaking = e.Text
	case events.NarrationCompleted:
		a.speaking = ""
	case events.NarrationFailed:
		a.speaking = ""
		a.notice = "narration failed: " + e.Err.Error()
	case events.SpeakingChanged:
		if !e.IsSpeaking {
			a.speaking = ""
		}
	case events.StageChanged:
		a.notice = ""
	}
}
