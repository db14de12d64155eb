package events

const (
	KindChatOpened          Kind = "chat.opened"
	KindChatClosed          Kind = "chat.closed"
	KindChatMessageAppended Kind = "chat.message_appended"
)

type ChatOpened struct{ Base }

func NewChatOpened() ChatOpened {
	return ChatOpened{Base: NewBase(KindChatOpened)}
}

type ChatClosed struct{ Base }

func NewChatClosed() ChatClosed {
	return ChatClosed{Base: NewBase(KindChatClosed)}
}

// ChatMessageAppended carries a message added to the conversation.
type ChatMessageAppended struct {
	Base
	MessageID string
	Text      string
	FromUser  bool
}

func NewChatMessageAppended(messageID, text string, fromUser bool) ChatMessageAppended {
	return ChatMessageAppended{
		Base:      NewBase(KindChatMessageAppended),
		MessageID: messageID,
		Text:      text,
		FromUser:  fromUser,
	}
}
