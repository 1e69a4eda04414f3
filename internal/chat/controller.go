package chat

import (
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/zhubert/wachat/internal/logger"
)

// Default lifecycle timings and the scripted demo reply.
const (
	DefaultDeliveryDelay = 1000 * time.Millisecond
	DefaultReadDelay     = 2500 * time.Millisecond
	DefaultReplyDelay    = 5000 * time.Millisecond

	DefaultReplyConversation = "conv1"
	DefaultReplyContent      = "Thanks for the update! Looking forward to seeing it."

	// TimestampLayout renders a short local time, e.g. "03:04 PM".
	TimestampLayout = "03:04 PM"
)

// Options configures a Controller.
type Options struct {
	CurrentUser User

	DeliveryDelay time.Duration
	ReadDelay     time.Duration
	ReplyDelay    time.Duration

	// ReplyConversationID names the one conversation that gets a scripted reply.
	// Empty disables the reply.
	ReplyConversationID string
	ReplyContent        string

	// Now and NewID are overridable for tests and the demo executor.
	Now   func() time.Time
	NewID func() string
}

// DefaultOptions returns the stock timings for the given current user.
func DefaultOptions(currentUser User) Options {
	return Options{
		CurrentUser:         currentUser,
		DeliveryDelay:       DefaultDeliveryDelay,
		ReadDelay:           DefaultReadDelay,
		ReplyDelay:          DefaultReplyDelay,
		ReplyConversationID: DefaultReplyConversation,
		ReplyContent:        DefaultReplyContent,
	}
}

// Controller owns the conversation list and the active selection.
// It is not safe for concurrent use; the UI drives it from a single event loop.
type Controller struct {
	opts          Options
	conversations []Conversation
	activeID      string
	log           *slog.Logger
}

// NewController copies seed and makes its first conversation active.
func NewController(seed []Conversation, opts Options) *Controller {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = func() string { return "msg_" + uuid.NewString() }
	}

	convs := make([]Conversation, len(seed))
	for i, conv := range seed {
		convs[i] = conv.Clone()
	}

	c := &Controller{
		opts:          opts,
		conversations: convs,
		log:           logger.WithComponent("chat"),
	}
	if len(convs) > 0 {
		c.activeID = convs[0].ID
	}
	return c
}

// CurrentUser returns the user sending messages from this client.
func (c *Controller) CurrentUser() User {
	return c.opts.CurrentUser
}

// Conversations returns a snapshot of every conversation in seed order.
func (c *Controller) Conversations() []Conversation {
	out := make([]Conversation, len(c.conversations))
	for i, conv := range c.conversations {
		out[i] = conv.Clone()
	}
	return out
}

// Conversation returns a snapshot of the conversation with the given ID.
func (c *Controller) Conversation(id string) (Conversation, bool) {
	i := c.index(id)
	if i < 0 {
		return Conversation{}, false
	}
	return c.conversations[i].Clone(), true
}

// Active returns a snapshot of the active conversation.
func (c *Controller) Active() (Conversation, bool) {
	if c.activeID == "" {
		return Conversation{}, false
	}
	return c.Conversation(c.activeID)
}

// ActiveID returns the active conversation ID, or "" when nothing is selected.
func (c *Controller) ActiveID() string {
	return c.activeID
}

// SelectConversation makes id active and clears its unread count.
// It reports false and changes nothing when id is unknown.
func (c *Controller) SelectConversation(id string) bool {
	i := c.index(id)
	if i < 0 {
		return false
	}
	c.conversations[i].UnreadCount = 0
	c.activeID = id
	c.log.Debug("conversation selected", "conversationID", id)
	return true
}

// SendMessage appends content to the active conversation as a new sent message and
// returns the transitions the caller must deliver back through Apply once due.
// Blank content or a missing active conversation is a no-op.
func (c *Controller) SendMessage(content string) (Message, []Scheduled, bool) {
	if strings.TrimSpace(content) == "" {
		return Message{}, nil, false
	}
	i := c.index(c.activeID)
	if i < 0 {
		return Message{}, nil, false
	}

	conv := &c.conversations[i]
	msg := Message{
		ID:        c.opts.NewID(),
		Content:   content,
		SenderID:  c.opts.CurrentUser.ID,
		Timestamp: c.opts.Now().Format(TimestampLayout),
		Status:    StatusSent,
	}
	conv.Messages = append(conv.Messages, msg)

	scheduled := []Scheduled{
		{Delay: c.opts.DeliveryDelay, Event: DeliveredEvent{ConversationID: conv.ID, MessageID: msg.ID}},
		{Delay: c.opts.ReadDelay, Event: ReadEvent{ConversationID: conv.ID}},
	}
	if c.opts.ReplyConversationID != "" && conv.ID == c.opts.ReplyConversationID {
		scheduled = append(scheduled, Scheduled{
			Delay: c.opts.ReplyDelay,
			Event: ReplyEvent{ConversationID: conv.ID, Content: c.opts.ReplyContent},
		})
	}

	c.log.Debug("message sent",
		"conversationID", conv.ID,
		"messageID", msg.ID,
		"scheduled", len(scheduled),
	)
	return msg, scheduled, true
}

// Apply performs a deferred transition against the conversation the event captured,
// whether or not it is still active. It returns a notification when a reply arrives.
// Events for unknown conversations or messages are ignored.
func (c *Controller) Apply(ev Event) *Notification {
	i := c.index(ev.Conversation())
	if i < 0 {
		c.log.Warn("event for unknown conversation", "conversationID", ev.Conversation())
		return nil
	}
	conv := &c.conversations[i]

	switch e := ev.(type) {
	case DeliveredEvent:
		for j := range conv.Messages {
			if conv.Messages[j].ID == e.MessageID {
				conv.Messages[j].Status = conv.Messages[j].Status.Advance(StatusDelivered)
				c.log.Debug("message delivered", "conversationID", conv.ID, "messageID", e.MessageID)
				return nil
			}
		}
		c.log.Warn("delivered event for unknown message", "conversationID", conv.ID, "messageID", e.MessageID)

	case ReadEvent:
		n := 0
		for j := range conv.Messages {
			if conv.Messages[j].SenderID == c.opts.CurrentUser.ID {
				conv.Messages[j].Status = conv.Messages[j].Status.Advance(StatusRead)
				n++
			}
		}
		c.log.Debug("messages read", "conversationID", conv.ID, "count", n)

	case ReplyEvent:
		other, ok := conv.OtherParticipant(c.opts.CurrentUser.ID)
		if !ok {
			return nil
		}
		reply := Message{
			ID:        c.opts.NewID(),
			Content:   e.Content,
			SenderID:  other.ID,
			Timestamp: c.opts.Now().Format(TimestampLayout),
			Status:    StatusRead,
		}
		conv.Messages = append(conv.Messages, reply)
		if conv.ID != c.activeID {
			conv.UnreadCount++
		}
		c.log.Info("reply received", "conversationID", conv.ID, "from", other.Name)
		return &Notification{
			ConversationID: conv.ID,
			Title:          other.Name,
			Body:           reply.Content,
		}
	}
	return nil
}

func (c *Controller) index(id string) int {
	if id == "" {
		return -1
	}
	for i := range c.conversations {
		if c.conversations[i].ID == id {
			return i
		}
	}
	return -1
}
