package notification

import (
	"errors"
	"os"
	"testing"

	werrors "github.com/zhubert/wachat/internal/errors"
	"github.com/zhubert/wachat/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Reset()
	logger.Init(os.DevNull)

	code := m.Run()

	logger.Reset()
	os.Exit(code)
}

type notifyCall struct {
	title   string
	message string
	icon    any
}

// mockNotification records calls to the notification function
type mockNotification struct {
	calls []notifyCall
	err   error
}

func (m *mockNotification) notify(title, message string, icon any) error {
	m.calls = append(m.calls, notifyCall{title, message, icon})
	return m.err
}

func TestSend(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		message     string
		mockErr     error
		expectError bool
	}{
		{"successful notification", "Sarah Johnson", "Thanks!", nil, false},
		{"notification error", "Title", "Message", errors.New("no dbus"), true},
		{"empty message", "Title", "", nil, false},
		{"unicode content", "Émile", "🎉 ça marche", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockNotification{err: tt.mockErr}
			SetNotifier(mock.notify)
			defer ResetNotifier()

			err := Send(tt.title, tt.message)

			if tt.expectError {
				if err == nil {
					t.Fatal("expected error but got nil")
				}
				if !werrors.Is(err, werrors.KindPlatform) {
					t.Errorf("expected KindPlatform, got %v", werrors.GetKind(err))
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}

			if len(mock.calls) != 1 {
				t.Fatalf("expected 1 call, got %d", len(mock.calls))
			}
			call := mock.calls[0]
			if call.title != tt.title || call.message != tt.message {
				t.Errorf("got (%q, %q), want (%q, %q)", call.title, call.message, tt.title, tt.message)
			}
			iconBytes, ok := call.icon.([]byte)
			if !ok || len(iconBytes) == 0 {
				t.Errorf("icon should be the embedded PNG bytes, got %T", call.icon)
			}
		})
	}
}

func TestReplyReceived(t *testing.T) {
	mock := &mockNotification{}
	SetNotifier(mock.notify)
	defer ResetNotifier()

	if err := ReplyReceived("Sarah Johnson", "Thanks for the update!"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mock.calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(mock.calls))
	}
	if mock.calls[0].title != "Sarah Johnson" {
		t.Errorf("title = %q, want sender name", mock.calls[0].title)
	}
}

func TestReplyReceived_Throttled(t *testing.T) {
	mock := &mockNotification{}
	SetNotifier(mock.notify)
	defer ResetNotifier()

	for range 5 {
		if err := ReplyReceived("Sarah Johnson", "hi"); err != nil {
			t.Fatalf("throttled notifications should not error: %v", err)
		}
	}
	if len(mock.calls) != 1 {
		t.Errorf("expected burst to collapse into 1 notification, got %d", len(mock.calls))
	}

	ResetNotifier()
	SetNotifier(mock.notify)
	ReplyReceived("Sarah Johnson", "again")
	if len(mock.calls) != 2 {
		t.Errorf("reset should clear the throttle, got %d calls", len(mock.calls))
	}
}

func TestReplyReceived_EmptySender(t *testing.T) {
	mock := &mockNotification{}
	SetNotifier(mock.notify)
	defer ResetNotifier()

	ReplyReceived("", "hi")
	if len(mock.calls) != 1 || mock.calls[0].title != AppName {
		t.Errorf("expected title %q, got %+v", AppName, mock.calls)
	}
}
