// Package notify defines transient user notifications shown as toasts.
package notify

import "time"

// Level represents the severity of a notification.
type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notification represents a single notification event.
type Notification struct {
	Level     Level
	Message   string
	CreatedAt time.Time
}

// Info returns an info-level notification stamped with the current time.
func Info(msg string) Notification {
	return Notification{Level: LevelInfo, Message: msg, CreatedAt: time.Now()}
}

// Warning returns a warning-level notification stamped with the current time.
func Warning(msg string) Notification {
	return Notification{Level: LevelWarning, Message: msg, CreatedAt: time.Now()}
}

// Error returns an error-level notification stamped with the current time.
func Error(msg string) Notification {
	return Notification{Level: LevelError, Message: msg, CreatedAt: time.Now()}
}
