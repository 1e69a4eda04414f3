// Package chat holds the conversation model and the message lifecycle controller.
//
// The controller owns every conversation and the active selection. Outgoing messages
// move through sent, delivered and read on a simulated schedule: SendMessage returns the
// deferred events and the caller delivers them back through Apply when they are due.
package chat

import (
	"slices"
	"strings"

	"github.com/rivo/uniseg"
)

// Status is the delivery state of a message.
type Status string

const (
	StatusSent      Status = "sent"
	StatusDelivered Status = "delivered"
	StatusRead      Status = "read"
)

// rank orders statuses along sent -> delivered -> read.
func (s Status) rank() int {
	switch s {
	case StatusSent:
		return 1
	case StatusDelivered:
		return 2
	case StatusRead:
		return 3
	default:
		return 0
	}
}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	return s.rank() > 0
}

// Advance returns the later of s and to. A status never moves backwards.
func (s Status) Advance(to Status) Status {
	if to.rank() > s.rank() {
		return to
	}
	return s
}

// User is a chat participant. Users are never modified after creation.
type User struct {
	ID       string
	Name     string
	Avatar   string
	Status   string // "online" when present
	LastSeen string // display label such as "5 minutes ago"
}

// IsOnline reports whether the user is currently online.
func (u User) IsOnline() bool {
	return u.Status == "online"
}

// Presence returns the header subtitle for the user.
func (u User) Presence() string {
	if u.IsOnline() {
		return "online"
	}
	if u.LastSeen == "" {
		return ""
	}
	return "last seen " + u.LastSeen
}

// Initials returns up to two leading graphemes of the user's name, used as the avatar.
func (u User) Initials() string {
	var b strings.Builder
	n := 0
	for _, word := range strings.Fields(u.Name) {
		if n == 2 {
			break
		}
		g := uniseg.NewGraphemes(word)
		if g.Next() {
			b.WriteString(strings.ToUpper(g.Str()))
			n++
		}
	}
	if n == 0 {
		return "?"
	}
	return b.String()
}

// Message is a single chat message. Timestamp is a display label, not a sortable instant.
type Message struct {
	ID        string
	Content   string
	SenderID  string
	Timestamp string
	Status    Status
}

// Conversation is a two-party thread. Messages are kept in display order.
type Conversation struct {
	ID           string
	Participants []User
	Messages     []Message
	UnreadCount  int
}

// LastMessage returns the tail of the message sequence.
func (c Conversation) LastMessage() (Message, bool) {
	if len(c.Messages) == 0 {
		return Message{}, false
	}
	return c.Messages[len(c.Messages)-1], true
}

// OtherParticipant returns the participant that is not currentUserID.
func (c Conversation) OtherParticipant(currentUserID string) (User, bool) {
	for _, p := range c.Participants {
		if p.ID != currentUserID {
			return p, true
		}
	}
	return User{}, false
}

// Clone returns a deep copy of the conversation.
func (c Conversation) Clone() Conversation {
	c.Participants = slices.Clone(c.Participants)
	c.Messages = slices.Clone(c.Messages)
	return c
}

// IsSequential reports whether cur continues a run started by prev: same sender and
// the same display timestamp. It is a grouping heuristic, not a time-window check.
func IsSequential(prev, cur Message) bool {
	return prev.SenderID == cur.SenderID && prev.Timestamp == cur.Timestamp
}

// FilterConversations returns the conversations whose other participant's name or last
// message content contains query, ignoring case. An empty query returns every conversation.
func FilterConversations(convs []Conversation, currentUserID, query string) []Conversation {
	query = strings.ToLower(query)
	if query == "" {
		return convs
	}

	var out []Conversation
	for _, conv := range convs {
		if other, ok := conv.OtherParticipant(currentUserID); ok &&
			strings.Contains(strings.ToLower(other.Name), query) {
			out = append(out, conv)
			continue
		}
		if last, ok := conv.LastMessage(); ok &&
			strings.Contains(strings.ToLower(last.Content), query) {
			out = append(out, conv)
		}
	}
	return out
}
