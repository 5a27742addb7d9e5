//go:build linux

package notify

import (
	"os"
	"testing"
)

func requireSessionBus(t *testing.T) {
	t.Helper()
	if os.Getenv("DBUS_SESSION_BUS_ADDRESS") == "" {
		t.Skip("no D-Bus session available")
	}
}

func TestSendAndReplace(t *testing.T) {
	requireSessionBus(t)

	notifier, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	id1, err := notifier.Send(Message{
		Summary:  "Action bound",
		Body:     "jump (space / gamepad_a)",
		Level:    LevelLow,
		ExpireMs: 1000,
	})
	if err != nil {
		t.Fatalf("Send() error: %v", err)
	}
	if id1 == 0 {
		t.Error("Send() returned id 0, want a server-assigned id")
	}

	id2, err := notifier.Send(Message{
		Summary:  "Action rebound",
		Body:     "jump (j / gamepad_a)",
		Replaces: id1,
		ExpireMs: 1000,
	})
	if err != nil {
		t.Fatalf("replacing Send() error: %v", err)
	}
	if id2 != id1 {
		t.Errorf("replacing message got id %d, want %d", id2, id1)
	}

	if err := notifier.Dismiss(id2); err != nil {
		t.Errorf("Dismiss() error: %v", err)
	}
}
