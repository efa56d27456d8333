package notify

import "github.com/google/uuid"

type Kind string

const (
	KindSuccess     Kind = "success"
	KindWarning     Kind = "warning"
	KindDestructive Kind = "destructive"
)

// Notification is a transient user-facing toast. Screens emit these
// instead of touching presentation concerns directly.
type Notification struct {
	ID      string `json:"id"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

type Notifier interface {
	Notify(n Notification)
}

func New(kind Kind, message string) Notification {
	return Notification{
		ID:      uuid.NewString(),
		Kind:    kind,
		Message: message,
	}
}

// Convenience constructors so call sites read like the intent.

func Success(message string) Notification     { return New(KindSuccess, message) }
func Warning(message string) Notification     { return New(KindWarning, message) }
func Destructive(message string) Notification { return New(KindDestructive, message) }
