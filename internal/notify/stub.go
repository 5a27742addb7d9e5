//go:build !linux

package notify

// New returns the no-op notifier; desktop notifications are only wired
// up on linux.
func New() (Notifier, error) {
	return noopNotifier{}, nil
}
