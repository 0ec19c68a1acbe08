package domain

import (
	"time"

	"github.com/google/uuid"
)

type NotificationStatus string

const (
	NotificationSent        NotificationStatus = "Sent"
	NotificationScheduled   NotificationStatus = "Scheduled"
	NotificationDeactivated NotificationStatus = "Deactivated"
)

type NotificationPriority string

const (
	PriorityLow    NotificationPriority = "low"
	PriorityNormal NotificationPriority = "normal"
	PriorityHigh   NotificationPriority = "high"
)

type Notification struct {
	ID        uuid.UUID            `db:"id"`
	Title     string               `db:"title"`
	Message   string               `db:"message"`
	Audience  string               `db:"audience"`
	Priority  NotificationPriority `db:"priority"`
	Status    NotificationStatus   `db:"status"`
	CreatedBy uuid.UUID            `db:"created_by"`
	CreatedAt time.Time            `db:"created_at"`
	UpdatedAt time.Time            `db:"updated_at"`
}
