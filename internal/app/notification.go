package app

// Severity grades a transient notification.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notification is a single transient, dismissible user message. The state
// manager keeps at most one: a new notification overwrites any unacknowledged
// one.
type Notification struct {
	Message  string
	Severity Severity
}
