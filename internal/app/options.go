package app

import (
	"github.com/zhubert/wachat/internal/chat"
	"github.com/zhubert/wachat/internal/seed"
)

// Options configures a Model beyond the persisted preferences.
type Options struct {
	// Version is logged at startup
	Version string

	// Chat configures the lifecycle controller (current user, delays, scripted reply)
	Chat chat.Options

	// Seed is the conversation list loaded at startup
	Seed []chat.Conversation

	// Scheduler turns deferred transitions into messages. Nil uses TickScheduler.
	Scheduler Scheduler

	// DisableNotifications suppresses desktop notifications regardless of the saved preference
	DisableNotifications bool
}

// DefaultOptions returns the stock demo data and timings.
func DefaultOptions(version string) Options {
	return Options{
		Version: version,
		Chat:    chat.DefaultOptions(seed.CurrentUser()),
		Seed:    seed.Conversations(),
	}
}
