package models

import (
	"time"

	"github.com/google/uuid"
)

type NotificationStatus string

const (
	NotificationPending NotificationStatus = "pending"
	NotificationSent    NotificationStatus = "sent"
	NotificationFailed  NotificationStatus = "failed"
	NotificationSkipped NotificationStatus = "skipped"
)

// Notification is one security notice addressed to a user, kept as an audit
// trail of what was (or could not be) delivered.
type Notification struct {
	ID           uuid.UUID          `json:"id"`
	UserID       uuid.UUID          `json:"userId"`
	Template     string             `json:"template"`
	Lang         string             `json:"lang"`
	Recipient    string             `json:"recipient"`
	Subject      string             `json:"subject"`
	Status       NotificationStatus `json:"status"`
	ErrorMessage string             `json:"errorMessage,omitempty"`
	CreatedAt    time.Time          `json:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt"`
}

type NotificationFilter struct {
	UserID   *uuid.UUID
	Status   NotificationStatus
	Page     int
	PageSize int
}

func (s NotificationStatus) Valid() bool {
	switch s {
	case NotificationPending, NotificationSent, NotificationFailed, NotificationSkipped:
		return true
	}

	return false
}
