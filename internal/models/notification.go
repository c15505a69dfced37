package models

import (
	"time"

	"github.com/google/uuid"
)

// Типы уведомлений
const (
	NotificationTypeEmergency = "emergency"
	NotificationTypeAlert     = "alert"
	NotificationTypeUpdate    = "update"
)

// Notification представляет запись в ленте уведомлений получателя
type Notification struct {
	ID          int64      `json:"id"`
	RecipientID string     `json:"recipient_id"`
	AlertID     *uuid.UUID `json:"alert_id,omitempty"`
	Type        string     `json:"type"`
	Title       string     `json:"title"`
	Message     string     `json:"message"`
	Read        bool       `json:"read"`
	CreatedAt   time.Time  `json:"created_at"`
}
