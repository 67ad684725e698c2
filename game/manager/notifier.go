package manager

// Severity classifies a notification for display.
type Severity int

const (
	SeverityInfo Severity = iota
	SeveritySuccess
	SeverityWarning
)

// Notifier receives transient user-facing messages. Delivery is
// fire-and-forget; the game never waits on it.
type Notifier interface {
	Notify(title, message string, severity Severity)
}
