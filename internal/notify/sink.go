package notify

import "time"

// Notification event types
const (
	TypeApplicationReceived = "application_received"
	TypeApplicationAccepted = "application_accepted"
	TypeGigCompleted        = "gig_completed"
	TypeGigCancelled        = "gig_cancelled"
)

type Notification struct {
	RecipientID string            `json:"recipient_id"`
	Type        string            `json:"type"`
	Title       string            `json:"title"`
	Message     string            `json:"message"`
	Context     map[string]string `json:"context,omitempty"`
	SentAt      time.Time         `json:"sent_at"`
}

// Sink accepts notifications fire-and-forget. Implementations must never
// block the caller or surface delivery failures to it.
type Sink interface {
	Notify(n Notification)
}
