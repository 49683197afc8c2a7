package services

// Notifier delivers booking-related emails. Implementations must treat
// delivery as best-effort: the booking service logs and audits failures
// but never rolls back a committed booking because of one.
type Notifier interface {
	Send(template, recipient string, data map[string]any) error
}

// NopNotifier drops every notification. Used when no mail channel is
// configured and in tests that do not assert on notifications.
type NopNotifier struct{}

func (NopNotifier) Send(string, string, map[string]any) error { return nil }
