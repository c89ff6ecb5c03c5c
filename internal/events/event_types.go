package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered EventType = "user_registered"
	EventProfileUpdated EventType = "profile_updated"
	EventAccountDeleted EventType = "account_deleted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	UserID    string      `json:"user_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ProfileUpdatedPayload payload.
type ProfileUpdatedPayload struct {
	Status string `json:"status"`
	Skills int    `json:"skills"`
}

// AccountDeletedPayload payload.
type AccountDeletedPayload struct {
	Email string `json:"email"`
}
