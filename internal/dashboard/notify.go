package dashboard

import "sync"

// Level classifies a notification.
type Level string

// Notification levels.
const (
	LevelInfo  Level = "info"
	LevelError Level = "error"
)

// Notification is a structured user-facing message emitted by the dashboard
// workflows in place of ad-hoc alert dialogs, so tests and frontends can
// consume them from a single channel.
type Notification struct {
	Level   Level
	Title   string
	Message string
}

// Notifier receives dashboard notifications.
type Notifier interface {
	Notify(n Notification)
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

// Notify implements Notifier.
func (NopNotifier) Notify(Notification) {}

// Recorder is a Notifier that records every notification. Safe for
// concurrent use.
type Recorder struct {
	mu            sync.Mutex
	notifications []Notification
}

// Notify implements Notifier.
func (r *Recorder) Notify(n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = append(r.notifications, n)
}

// Notifications returns a copy of the recorded notifications in order.
func (r *Recorder) Notifications() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.notifications))
	copy(out, r.notifications)
	return out
}

// Last returns the most recent notification, or a zero value when none has
// been recorded.
func (r *Recorder) Last() Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.notifications) == 0 {
		return Notification{}
	}
	return r.notifications[len(r.notifications)-1]
}
