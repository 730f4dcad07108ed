package domain

import "time"

// NotificationType mirrors the event that produced the notification.
type NotificationType string

const (
	NotificationUpdate   NotificationType = "update"
	NotificationCreation NotificationType = "creation"
	NotificationAssign   NotificationType = "assign"
	NotificationDeletion NotificationType = "deletion"
	NotificationOther    NotificationType = "other"
)

// Notification is a per-recipient record created as a side effect of a case
// mutation. It is self-contained (carries case and service names) so it
// stays readable after the case it refers to is deleted. Only the Read flag
// is ever mutated.
type Notification struct {
	ID          string           `json:"_id"`
	Type        NotificationType `json:"type"`
	Message     string           `json:"message"`
	UserID      string           `json:"userId"`
	UserName    string           `json:"userName"`
	CaseID      string           `json:"caseId,omitempty"`
	CaseName    string           `json:"caseName,omitempty"`
	ServiceID   string           `json:"serviceId,omitempty"`
	ServiceName string           `json:"serviceName,omitempty"`
	CreatedBy   string           `json:"createdBy,omitempty"`
	Read        bool             `json:"read"`
	Timestamp   time.Time        `json:"timestamp"`
}
