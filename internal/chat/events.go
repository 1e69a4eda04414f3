package chat

import "time"

// Event is a deferred lifecycle transition produced by SendMessage.
type Event interface {
	event()
	// Conversation returns the ID of the conversation the event applies to.
	Conversation() string
}

// DeliveredEvent advances one message to delivered.
type DeliveredEvent struct {
	ConversationID string
	MessageID      string
}

// ReadEvent advances every message the current user sent in a conversation to read.
type ReadEvent struct {
	ConversationID string
}

// ReplyEvent appends the scripted reply from the other participant.
type ReplyEvent struct {
	ConversationID string
	Content        string
}

func (DeliveredEvent) event() {}
func (ReadEvent) event()      {}
func (ReplyEvent) event()     {}

func (e DeliveredEvent) Conversation() string { return e.ConversationID }
func (e ReadEvent) Conversation() string      { return e.ConversationID }
func (e ReplyEvent) Conversation() string     { return e.ConversationID }

// Scheduled pairs an event with the delay after which it is due.
type Scheduled struct {
	Delay time.Duration
	Event Event
}

// Notification is raised when a reply arrives.
type Notification struct {
	ConversationID string
	Title          string // sender name
	Body           string // message text
}
