package notify

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/llehouerou/crest"
)

// announceExpireMs keeps binding toasts short-lived.
const announceExpireMs = 3000

// Announcer mirrors registry change signals as desktop notifications.
// Binding changes are sent at normal urgency, callback churn at low.
// Consecutive announcements replace each other so a burst of rebinds
// does not stack toasts.
type Announcer struct {
	notifier Notifier

	mu     sync.Mutex
	lastID uint32
	unsubs []func()
}

// NewAnnouncer wraps n. Announcements start once Watch is called.
func NewAnnouncer(n Notifier) *Announcer {
	return &Announcer{notifier: n}
}

// Watch subscribes to every signal of events until Close.
func (a *Announcer) Watch(events *crest.Events) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.unsubs = append(a.unsubs,
		events.Bound.Subscribe(func(e crest.BindingEvent) {
			a.send("Action bound", bindingBody(e), LevelNormal)
		}),
		events.Updated.Subscribe(func(e crest.BindingEvent) {
			a.send("Action rebound", bindingBody(e), LevelNormal)
		}),
		events.Unbound.Subscribe(func(name string) {
			a.send("Action unbound", name, LevelNormal)
		}),
		events.CallbackAdded.Subscribe(func(name string) {
			a.send("Callback added", name, LevelLow)
		}),
		events.CallbackRemoved.Subscribe(func(name string) {
			a.send("Callback removed", name, LevelLow)
		}),
	)
}

// Close unsubscribes from all watched signals. Safe to call more than
// once.
func (a *Announcer) Close() {
	a.mu.Lock()
	unsubs := a.unsubs
	a.unsubs = nil
	a.mu.Unlock()
	for _, unsub := range unsubs {
		unsub()
	}
}

func (a *Announcer) send(summary, body string, level Level) {
	a.mu.Lock()
	replaces := a.lastID
	a.mu.Unlock()

	id, err := a.notifier.Send(Message{
		Summary:  summary,
		Body:     body,
		Icon:     "input-keyboard",
		Level:    level,
		Replaces: replaces,
		ExpireMs: announceExpireMs,
	})
	if err != nil {
		log.Debug().Err(err).Str("summary", summary).Msg("binding notification failed")
		return
	}
	if id != 0 {
		a.mu.Lock()
		a.lastID = id
		a.mu.Unlock()
	}
}

func bindingBody(e crest.BindingEvent) string {
	switch {
	case e.DesktopKey != "" && e.AltKey != "":
		return fmt.Sprintf("%s (%s / %s)", e.Name, e.DesktopKey, e.AltKey)
	case e.DesktopKey != "":
		return fmt.Sprintf("%s (%s)", e.Name, e.DesktopKey)
	case e.AltKey != "":
		return fmt.Sprintf("%s (%s)", e.Name, e.AltKey)
	default:
		return e.Name
	}
}
