package domain

import "time"

// Notification is an in-app notification row, written after a
// committed mutation so crew see what changed on their next sync.
type Notification struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"userID"`
	Title         string    `json:"title"`
	Message       string    `json:"message"`
	Type          string    `json:"type"`
	EventID       int64     `json:"eventID"`
	ReferenceID   int64     `json:"referenceID"`
	ReferenceType string    `json:"referenceType"`
	CreatedAt     time.Time `json:"createdAt"`
}

const (
	NotificationTypeEventUpdated     = "event_updated"
	NotificationTypeEventCanceled    = "event_canceled"
	NotificationTypeEventClosed      = "event_closed"
	NotificationTypePositionCanceled = "position_canceled"
	NotificationTypeJobStatus        = "job_status"
)
