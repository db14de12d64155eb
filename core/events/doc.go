// Package events defines the typed events a wizard reports to its host.
//
// Event kinds are grouped by namespace:
//
//   - stage.*
//   - narration.*
//   - chat.*
//
// stage events
//
//   - StageChanged (stage.changed): the wizard moved to the next stage.
//
// narration events
//
//   - NarrationStarted (narration.started): a narration session was started
//     in a scope.
//   - UtteranceStarted (narration.utterance_started): the speech engine began
//     playing an utterance.
//   - UtteranceEnded (narration.utterance_ended): an utterance finished
//     playing.
//   - NarrationCompleted (narration.completed): every utterance of the session
//     played.
//   - NarrationFailed (narration.failed): the speech engine failed and the
//     rest of the session was dropped.
//   - SpeakingChanged (narration.speaking_changed): the "is speaking" flag
//     flipped.
//
// chat events
//
//   - ChatOpened (chat.opened): the chat panel was opened.
//   - ChatClosed (chat.closed): the chat panel was closed.
//   - ChatMessageAppended (chat.message_appended): a user message or a reply
//     was added to the conversation.
//
// Sessions that are cancelled or superseded report nothing further, so a
// NarrationStarted is not always followed by a terminal event.
package events
