package chat

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/zhubert/wachat/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Reset()
	logger.Init(os.DevNull)

	code := m.Run()

	logger.Reset()
	os.Exit(code)
}

var (
	me    = User{ID: "me", Name: "You", Status: "online"}
	alice = User{ID: "alice", Name: "Alice Example", Status: "online"}
	bob   = User{ID: "bob", Name: "Bob Builder", LastSeen: "2 hours ago"}
)

func fixture() []Conversation {
	return []Conversation{
		{
			ID:           "c1",
			Participants: []User{me, alice},
			Messages: []Message{
				{ID: "m1", Content: "hi", SenderID: "alice", Timestamp: "10:00 AM", Status: StatusRead},
				{ID: "m2", Content: "hello", SenderID: "me", Timestamp: "10:01 AM", Status: StatusDelivered},
			},
		},
		{
			ID:           "c2",
			Participants: []User{me, bob},
			Messages: []Message{
				{ID: "m3", Content: "Lunch tomorrow?", SenderID: "bob", Timestamp: "Monday", Status: StatusRead},
			},
			UnreadCount: 3,
		},
		{
			ID:           "solo",
			Participants: []User{me},
		},
	}
}

// testController returns a controller with a fixed clock and sequential IDs.
func testController(t *testing.T) *Controller {
	t.Helper()
	n := 0
	opts := DefaultOptions(me)
	opts.ReplyConversationID = "c1"
	opts.Now = func() time.Time { return time.Date(2024, 5, 1, 14, 7, 0, 0, time.Local) }
	opts.NewID = func() string {
		n++
		return fmt.Sprintf("gen%d", n)
	}
	return NewController(fixture(), opts)
}

func mustConversation(t *testing.T, c *Controller, id string) Conversation {
	t.Helper()
	conv, ok := c.Conversation(id)
	if !ok {
		t.Fatalf("conversation %s not found", id)
	}
	return conv
}

func TestNewController_FirstConversationActive(t *testing.T) {
	c := testController(t)

	active, ok := c.Active()
	if !ok {
		t.Fatal("expected an active conversation")
	}
	if active.ID != "c1" {
		t.Errorf("expected c1 active, got %s", active.ID)
	}
}

func TestNewController_EmptySeed(t *testing.T) {
	c := NewController(nil, DefaultOptions(me))

	if _, ok := c.Active(); ok {
		t.Error("expected no active conversation")
	}
	if _, sched, ok := c.SendMessage("hello"); ok || sched != nil {
		t.Error("SendMessage without an active conversation should be a no-op")
	}
}

func TestNewController_CopiesSeed(t *testing.T) {
	seed := fixture()
	c := NewController(seed, DefaultOptions(me))

	c.SendMessage("new")
	if len(seed[0].Messages) != 2 {
		t.Errorf("seed should be untouched, got %d messages", len(seed[0].Messages))
	}
}

func TestSendMessage_Appends(t *testing.T) {
	c := testController(t)

	msg, sched, ok := c.SendMessage("Sure, sounds good")
	if !ok {
		t.Fatal("expected message to be sent")
	}
	if msg.ID != "gen1" {
		t.Errorf("expected generated id gen1, got %s", msg.ID)
	}
	if msg.SenderID != me.ID {
		t.Errorf("expected sender %s, got %s", me.ID, msg.SenderID)
	}
	if msg.Status != StatusSent {
		t.Errorf("expected status sent, got %s", msg.Status)
	}
	if msg.Timestamp != "02:07 PM" {
		t.Errorf("expected timestamp 02:07 PM, got %s", msg.Timestamp)
	}

	conv := mustConversation(t, c, "c1")
	if len(conv.Messages) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(conv.Messages))
	}
	last, _ := conv.LastMessage()
	if last != msg {
		t.Errorf("last message = %+v, want %+v", last, msg)
	}

	active, _ := c.Active()
	if len(active.Messages) != len(conv.Messages) {
		t.Error("active view diverged from the stored conversation")
	}

	if len(sched) != 3 {
		t.Fatalf("expected 3 scheduled events for the reply conversation, got %d", len(sched))
	}
}

func TestSendMessage_Blank(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty", ""},
		{"spaces", "   "},
		{"newlines and tabs", "\n\t \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testController(t)
			before := mustConversation(t, c, "c1")

			_, sched, ok := c.SendMessage(tt.content)
			if ok {
				t.Error("expected blank content to be ignored")
			}
			if len(sched) != 0 {
				t.Errorf("expected no scheduled events, got %d", len(sched))
			}

			after := mustConversation(t, c, "c1")
			if len(after.Messages) != len(before.Messages) {
				t.Errorf("message count changed from %d to %d", len(before.Messages), len(after.Messages))
			}
			bl, _ := before.LastMessage()
			al, _ := after.LastMessage()
			if bl != al {
				t.Error("last message changed")
			}
		})
	}
}

func TestSendMessage_KeepsContentVerbatim(t *testing.T) {
	c := testController(t)

	msg, _, ok := c.SendMessage("  padded  ")
	if !ok {
		t.Fatal("expected message to be sent")
	}
	if msg.Content != "  padded  " {
		t.Errorf("content should be stored as given, got %q", msg.Content)
	}
}

func TestSendMessage_Schedule(t *testing.T) {
	c := testController(t)

	msg, sched, _ := c.SendMessage("ping")

	want := []Scheduled{
		{Delay: DefaultDeliveryDelay, Event: DeliveredEvent{ConversationID: "c1", MessageID: msg.ID}},
		{Delay: DefaultReadDelay, Event: ReadEvent{ConversationID: "c1"}},
		{Delay: DefaultReplyDelay, Event: ReplyEvent{ConversationID: "c1", Content: DefaultReplyContent}},
	}
	if len(sched) != len(want) {
		t.Fatalf("expected %d events, got %d", len(want), len(sched))
	}
	for i := range want {
		if sched[i] != want[i] {
			t.Errorf("event %d = %+v, want %+v", i, sched[i], want[i])
		}
	}
}

func TestSendMessage_NoReplyOutsideScriptedConversation(t *testing.T) {
	c := testController(t)
	c.SelectConversation("c2")

	_, sched, _ := c.SendMessage("ping")
	if len(sched) != 2 {
		t.Fatalf("expected delivered and read only, got %d events", len(sched))
	}
	for _, s := range sched {
		if _, ok := s.Event.(ReplyEvent); ok {
			t.Error("unexpected reply event for c2")
		}
	}
}

func TestSendMessage_ReplyDisabled(t *testing.T) {
	opts := DefaultOptions(me)
	opts.ReplyConversationID = ""
	c := NewController(fixture(), opts)

	_, sched, _ := c.SendMessage("ping")
	if len(sched) != 2 {
		t.Errorf("expected 2 events with replies disabled, got %d", len(sched))
	}
}

func TestApply_Delivered(t *testing.T) {
	c := testController(t)
	msg, sched, _ := c.SendMessage("ping")

	if n := c.Apply(sched[0].Event); n != nil {
		t.Errorf("delivered should not notify, got %+v", n)
	}

	conv := mustConversation(t, c, "c1")
	last, _ := conv.LastMessage()
	if last.ID != msg.ID || last.Status != StatusDelivered {
		t.Errorf("expected %s delivered, got %s %s", msg.ID, last.ID, last.Status)
	}
	// Other messages are untouched.
	if conv.Messages[0].Status != StatusRead {
		t.Errorf("m1 status changed to %s", conv.Messages[0].Status)
	}
}

func TestApply_DeliveredAfterReadDoesNotRegress(t *testing.T) {
	c := testController(t)
	_, sched, _ := c.SendMessage("ping")

	c.Apply(sched[1].Event) // read first
	c.Apply(sched[0].Event) // late delivered

	last, _ := mustConversation(t, c, "c1").LastMessage()
	if last.Status != StatusRead {
		t.Errorf("status regressed to %s", last.Status)
	}
}

func TestApply_DeliveredIsIdempotent(t *testing.T) {
	c := testController(t)
	_, sched, _ := c.SendMessage("ping")

	c.Apply(sched[0].Event)
	c.Apply(sched[0].Event)

	last, _ := mustConversation(t, c, "c1").LastMessage()
	if last.Status != StatusDelivered {
		t.Errorf("expected delivered, got %s", last.Status)
	}
}

func TestApply_ReadMarksAllOwnMessages(t *testing.T) {
	c := testController(t)
	c.SendMessage("one")
	_, sched, _ := c.SendMessage("two")

	c.Apply(sched[1].Event)

	conv := mustConversation(t, c, "c1")
	for _, m := range conv.Messages {
		if m.SenderID == me.ID && m.Status != StatusRead {
			t.Errorf("message %s from current user has status %s, want read", m.ID, m.Status)
		}
	}
	if conv.Messages[0].Status != StatusRead {
		t.Errorf("incoming message status changed to %s", conv.Messages[0].Status)
	}
}

func TestApply_ReplyWhileActive(t *testing.T) {
	c := testController(t)
	_, sched, _ := c.SendMessage("ping")

	n := c.Apply(sched[2].Event)
	if n == nil {
		t.Fatal("expected a notification")
	}
	if n.Title != alice.Name || n.Body != DefaultReplyContent || n.ConversationID != "c1" {
		t.Errorf("unexpected notification %+v", n)
	}

	conv := mustConversation(t, c, "c1")
	last, _ := conv.LastMessage()
	if last.SenderID != alice.ID {
		t.Errorf("expected reply from %s, got %s", alice.ID, last.SenderID)
	}
	if last.Status != StatusRead {
		t.Errorf("expected reply status read, got %s", last.Status)
	}
	if last.ID != "gen2" {
		t.Errorf("expected generated reply id gen2, got %s", last.ID)
	}
	if conv.UnreadCount != 0 {
		t.Errorf("active conversation should stay read, got unread %d", conv.UnreadCount)
	}
}

func TestApply_TimersFollowCapturedConversation(t *testing.T) {
	c := testController(t)
	msg, sched, _ := c.SendMessage("ping")

	// Switch away before any timer fires.
	c.SelectConversation("c2")

	for _, s := range sched {
		c.Apply(s.Event)
	}

	c1 := mustConversation(t, c, "c1")
	if len(c1.Messages) != 4 {
		t.Fatalf("expected sent message plus reply in c1, got %d messages", len(c1.Messages))
	}
	if c1.Messages[2].ID != msg.ID || c1.Messages[2].Status != StatusRead {
		t.Errorf("sent message should be read in c1, got %+v", c1.Messages[2])
	}
	if c1.UnreadCount != 1 {
		t.Errorf("reply to an inactive conversation should count as unread, got %d", c1.UnreadCount)
	}

	c2 := mustConversation(t, c, "c2")
	if len(c2.Messages) != 1 {
		t.Errorf("c2 should be untouched, got %d messages", len(c2.Messages))
	}
	if c.ActiveID() != "c2" {
		t.Errorf("reply should not change the selection, active is %s", c.ActiveID())
	}
}

func TestApply_ReplyWithoutOtherParticipant(t *testing.T) {
	c := testController(t)

	n := c.Apply(ReplyEvent{ConversationID: "solo", Content: "hi"})
	if n != nil {
		t.Errorf("expected no notification, got %+v", n)
	}
	if conv := mustConversation(t, c, "solo"); len(conv.Messages) != 0 {
		t.Errorf("expected no messages, got %d", len(conv.Messages))
	}
}

func TestApply_UnknownTargets(t *testing.T) {
	tests := []struct {
		name string
		ev   Event
	}{
		{"unknown conversation delivered", DeliveredEvent{ConversationID: "nope", MessageID: "m2"}},
		{"unknown conversation read", ReadEvent{ConversationID: "nope"}},
		{"unknown conversation reply", ReplyEvent{ConversationID: "nope", Content: "x"}},
		{"unknown message", DeliveredEvent{ConversationID: "c1", MessageID: "nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testController(t)
			before := c.Conversations()

			if n := c.Apply(tt.ev); n != nil {
				t.Errorf("expected nil notification, got %+v", n)
			}

			after := c.Conversations()
			for i := range before {
				if len(before[i].Messages) != len(after[i].Messages) {
					t.Errorf("%s changed", before[i].ID)
				}
				for j := range before[i].Messages {
					if before[i].Messages[j] != after[i].Messages[j] {
						t.Errorf("%s message %d changed", before[i].ID, j)
					}
				}
			}
		})
	}
}

func TestSelectConversation(t *testing.T) {
	c := testController(t)

	if !c.SelectConversation("c2") {
		t.Fatal("expected c2 to be selectable")
	}
	active, _ := c.Active()
	if active.ID != "c2" || active.UnreadCount != 0 {
		t.Errorf("expected c2 active with 0 unread, got %s with %d", active.ID, active.UnreadCount)
	}

	// Idempotent.
	c.SelectConversation("c2")
	if got := mustConversation(t, c, "c2").UnreadCount; got != 0 {
		t.Errorf("expected 0 unread after reselect, got %d", got)
	}

	// Zeroed count persists after switching away and back.
	c.SelectConversation("c1")
	if got := mustConversation(t, c, "c2").UnreadCount; got != 0 {
		t.Errorf("expected 0 unread to persist, got %d", got)
	}
}

func TestSelectConversation_LeavesPreviousUntouched(t *testing.T) {
	c := testController(t)
	before := mustConversation(t, c, "c1")

	c.SelectConversation("c2")

	after := mustConversation(t, c, "c1")
	if before.UnreadCount != after.UnreadCount || len(before.Messages) != len(after.Messages) {
		t.Error("previously active conversation was modified")
	}
}

func TestSelectConversation_Unknown(t *testing.T) {
	c := testController(t)

	if c.SelectConversation("missing") {
		t.Error("expected unknown conversation to be rejected")
	}
	if c.ActiveID() != "c1" {
		t.Errorf("selection changed to %s", c.ActiveID())
	}
}

func TestSnapshotsAreIsolated(t *testing.T) {
	c := testController(t)

	snap, _ := c.Active()
	snap.Messages[0].Content = "mutated"
	snap.Messages = append(snap.Messages, Message{ID: "extra"})
	snap.UnreadCount = 99

	fresh, _ := c.Active()
	if fresh.Messages[0].Content == "mutated" || len(fresh.Messages) != 2 || fresh.UnreadCount == 99 {
		t.Error("mutating a snapshot leaked into controller state")
	}
}
