package app

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/wachat/internal/chat"
	"github.com/zhubert/wachat/internal/notification"
)

// LifecycleMsg carries a deferred transition back into Update once it is due.
type LifecycleMsg struct {
	Event chat.Event
}

// NotificationErrorMsg is sent when a desktop notification could not be shown
type NotificationErrorMsg struct {
	Error error
}

// Scheduler turns the transitions returned by SendMessage into commands.
type Scheduler interface {
	Schedule(items []chat.Scheduled) tea.Cmd
}

// TickScheduler fires each transition after its delay with tea.Tick.
// Timers are never cancelled; a transition for a conversation that is no
// longer active still applies to that conversation.
type TickScheduler struct{}

// Schedule implements Scheduler.
func (TickScheduler) Schedule(items []chat.Scheduled) tea.Cmd {
	if len(items) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(items))
	for _, item := range items {
		ev := item.Event
		cmds = append(cmds, tea.Tick(item.Delay, func(time.Time) tea.Msg {
			return LifecycleMsg{Event: ev}
		}))
	}
	return tea.Batch(cmds...)
}

// handleLifecycleMsg applies a due transition and surfaces any reply.
func (m *Model) handleLifecycleMsg(msg LifecycleMsg) (tea.Model, tea.Cmd) {
	if msg.Event == nil {
		return m, nil
	}

	n := m.controller.Apply(msg.Event)
	m.refreshViews()
	if n == nil {
		return m, nil
	}

	cmds := []tea.Cmd{m.ShowFlashInfo(n.Title + ": " + n.Body)}
	if m.notificationsEnabled() {
		cmds = append(cmds, notifyReply(*n))
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) notificationsEnabled() bool {
	return !m.opts.DisableNotifications && m.config.GetNotificationsEnabled()
}

// notifyReply shows the desktop notification off the event loop
func notifyReply(n chat.Notification) tea.Cmd {
	return func() tea.Msg {
		if err := notification.ReplyReceived(n.Title, n.Body); err != nil {
			return NotificationErrorMsg{Error: err}
		}
		return nil
	}
}
