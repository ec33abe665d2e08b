package model

// Notifier surfaces transient user-facing messages, the terminal equivalent
// of the web client's toasts.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}
