package inventory

import "fmt"

// Level classifies a user-facing notification, mirroring the four transient
// message kinds surfaced by the UI.
type Level string

const (
	// LevelSuccess reports a completed mutation.
	LevelSuccess Level = "success"
	// LevelWarning reports a destructive or attention-worthy outcome.
	LevelWarning Level = "warning"
	// LevelError reports a validation failure; the operation did not mutate state.
	LevelError Level = "error"
	// LevelInfo reports a neutral outcome, such as a no-op.
	LevelInfo Level = "info"
)

// Notification is a short-lived, categorized user-facing message produced by
// a store mutation. Rendering is the caller's concern; the store never
// touches the presentation layer.
type Notification struct {
	Level   Level
	Message string
}

func notifySuccess(format string, args ...any) Notification {
	return Notification{Level: LevelSuccess, Message: fmt.Sprintf(format, args...)}
}

func notifyWarning(format string, args ...any) Notification {
	return Notification{Level: LevelWarning, Message: fmt.Sprintf(format, args...)}
}

func notifyError(format string, args ...any) Notification {
	return Notification{Level: LevelError, Message: fmt.Sprintf(format, args...)}
}

func notifyInfo(format string, args ...any) Notification {
	return Notification{Level: LevelInfo, Message: fmt.Sprintf(format, args...)}
}
