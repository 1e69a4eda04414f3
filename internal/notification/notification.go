// Package notification sends desktop notifications through beeep
// (notify-send/D-Bus on Linux, AppleScript on macOS, toast on Windows).
package notification

import (
	_ "embed"
	"sync"
	"time"

	"github.com/gen2brain/beeep"
	"golang.org/x/time/rate"

	"github.com/zhubert/wachat/internal/errors"
	"github.com/zhubert/wachat/internal/logger"
)

// AppName is used as the notification title when no sender applies.
const AppName = "wachat"

// MinReplyInterval is the shortest gap between two reply notifications.
const MinReplyInterval = 2 * time.Second

//go:embed icon.png
var icon []byte

var (
	mu       sync.Mutex
	notifier = beeep.Notify
	limiter  = newLimiter()
)

func newLimiter() *rate.Limiter {
	return rate.NewLimiter(rate.Every(MinReplyInterval), 1)
}

// SetNotifier replaces the function used to deliver notifications. Used by tests.
func SetNotifier(fn func(title, message string, icon any) error) {
	mu.Lock()
	defer mu.Unlock()
	notifier = fn
}

// ResetNotifier restores beeep and clears the reply throttle.
func ResetNotifier() {
	mu.Lock()
	defer mu.Unlock()
	notifier = beeep.Notify
	limiter = newLimiter()
}

// Send delivers a desktop notification immediately.
func Send(title, message string) error {
	mu.Lock()
	fn := notifier
	mu.Unlock()

	log := logger.WithComponent("notification")
	log.Debug("sending notification", "title", title)
	if err := fn(title, message, icon); err != nil {
		log.Warn("notification failed", "error", err)
		return errors.NotificationFailed(err)
	}
	return nil
}

// ReplyReceived notifies that sender replied with text. Bursts are throttled to
// one notification per MinReplyInterval; dropped notifications are not an error.
func ReplyReceived(sender, text string) error {
	mu.Lock()
	allowed := limiter.Allow()
	mu.Unlock()

	if !allowed {
		logger.WithComponent("notification").Debug("reply notification throttled", "sender", sender)
		return nil
	}
	if sender == "" {
		sender = AppName
	}
	return Send(sender, text)
}
