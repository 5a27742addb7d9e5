// Package notify raises desktop notifications for binding changes: a
// Notifier talks to the platform notification service, and an Announcer
// mirrors registry signals through one.
package notify

// Level selects how insistently the desktop presents a message. The
// values are the freedesktop urgency bytes.
type Level byte

const (
	LevelLow    Level = 0
	LevelNormal Level = 1
)

// Message is one desktop notification.
type Message struct {
	Summary  string // headline
	Body     string // detail line, may be empty
	Icon     string // themed icon name, empty for the server default
	Level    Level
	Replaces uint32 // id of an earlier message to swap out, 0 for a new one
	ExpireMs int32  // -1 lets the server decide, 0 pins the message
}

// Notifier delivers messages to the desktop.
type Notifier interface {
	// Send delivers m and returns the server-assigned id, usable as
	// Replaces on a later message. A session without a notification
	// service reports id 0 with no error.
	Send(m Message) (uint32, error)
	// Dismiss retracts an earlier message.
	Dismiss(id uint32) error
}

// noopNotifier drops every message. It backs platforms and sessions
// that have no notification service.
type noopNotifier struct{}

func (noopNotifier) Send(Message) (uint32, error) { return 0, nil }

func (noopNotifier) Dismiss(uint32) error { return nil }
