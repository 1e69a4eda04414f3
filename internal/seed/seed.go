// Package seed provides the static demo users and conversations loaded at startup.
// Every accessor returns a fresh copy, so callers may modify the result freely.
package seed

import "github.com/zhubert/wachat/internal/chat"

const avatarBase = "https://ui-avatars.com/api/?name="

// CurrentUser returns the user of this client.
func CurrentUser() chat.User {
	return chat.User{
		ID:     "user1",
		Name:   "You",
		Avatar: avatarBase + "You&background=25D366&color=fff",
		Status: "online",
	}
}

// Users returns the demo contacts.
func Users() []chat.User {
	return []chat.User{
		{
			ID:       "user2",
			Name:     "Sarah Johnson",
			Avatar:   avatarBase + "Sarah+Johnson&background=5E35B1&color=fff",
			Status:   "online",
			LastSeen: "online",
		},
		{
			ID:       "user3",
			Name:     "Mike Chen",
			Avatar:   avatarBase + "Mike+Chen&background=1E88E5&color=fff",
			LastSeen: "5 minutes ago",
		},
		{
			ID:       "user4",
			Name:     "Alex Morgan",
			Avatar:   avatarBase + "Alex+Morgan&background=D81B60&color=fff",
			LastSeen: "2 hours ago",
		},
		{
			ID:       "user5",
			Name:     "Carlos Rodriguez",
			Avatar:   avatarBase + "Carlos+Rodriguez&background=43A047&color=fff",
			Status:   "online",
			LastSeen: "online",
		},
		{
			ID:       "user6",
			Name:     "Emma Wilson",
			Avatar:   avatarBase + "Emma+Wilson&background=FB8C00&color=fff",
			LastSeen: "yesterday",
		},
	}
}

// Conversations returns the demo conversations, conv1 first.
func Conversations() []chat.Conversation {
	me := CurrentUser()
	contacts := Users()

	return []chat.Conversation{
		{
			ID:           "conv1",
			Participants: []chat.User{me, contacts[0]},
			Messages: []chat.Message{
				msg("msg1", "Hey, how are you doing?", "10:30 AM", "user2", chat.StatusRead),
				msg("msg2", "I'm good, thanks! Just finished the project we were working on.", "10:32 AM", "user1", chat.StatusRead),
				msg("msg3", "That's great news! Can you share the results?", "10:33 AM", "user2", chat.StatusRead),
				msg("msg4", "Sure, I'll send them over in a bit.", "10:35 AM", "user1", chat.StatusRead),
			},
		},
		{
			ID:           "conv2",
			Participants: []chat.User{me, contacts[1]},
			Messages: []chat.Message{
				msg("msg5", "Did you see the game last night?", "Yesterday", "user3", chat.StatusRead),
				msg("msg6", "Yes! It was amazing!", "Yesterday", "user1", chat.StatusRead),
			},
		},
		{
			ID:           "conv3",
			Participants: []chat.User{me, contacts[2]},
			Messages: []chat.Message{
				msg("msg7", "Meeting tomorrow at 9?", "2 days ago", "user4", chat.StatusRead),
				msg("msg8", "Confirmed. I'll be there.", "2 days ago", "user1", chat.StatusRead),
				msg("msg9", "Great! Don't forget to bring the presentation.", "2 days ago", "user4", chat.StatusRead),
			},
			UnreadCount: 1,
		},
		{
			ID:           "conv4",
			Participants: []chat.User{me, contacts[3]},
			Messages: []chat.Message{
				msg("msg10", "How's the new house?", "Monday", "user5", chat.StatusDelivered),
			},
		},
		{
			ID:           "conv5",
			Participants: []chat.User{me, contacts[4]},
			Messages: []chat.Message{
				msg("msg11", "Can we reschedule our dinner to next week?", "Last week", "user6", chat.StatusRead),
				msg("msg12", "Sure, no problem. How about Tuesday?", "Last week", "user1", chat.StatusRead),
			},
		},
	}
}

func msg(id, content, ts, sender string, status chat.Status) chat.Message {
	return chat.Message{ID: id, Content: content, Timestamp: ts, SenderID: sender, Status: status}
}
