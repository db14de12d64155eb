package chat

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type Message struct {
	ID       string
	Text     string
	FromUser bool
	At       time.Time
}

// Conversation is an append-only chat log. It is safe for concurrent use.
type Conversation struct {
	mu       sync.Mutex
	messages []Message
}

func (c *Conversation) Append(text string, fromUser bool) Message {
	message := Message{
		ID:       uuid.NewString(),
		Text:     text,
		FromUser: fromUser,
		At:       time.Now(),
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, message)
	return message
}

// Messages returns a snapshot of the log in append order.
func (c *Conversation) Messages() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.messages) == 0 {
		return nil
	}
	var messages []Message
	if err := copier.Copy(&messages, c.messages); err != nil {
		logger.WarnContext(context.Background(), "failed to copy conversation, returning a plain clone", "error", err)
		return slices.Clone(c.messages)
	}
	return messages
}

func (c *Conversation) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.messages)
}
