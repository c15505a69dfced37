package v1

import (
	"time"

	"github.com/google/uuid"
)

// CreateAlertRequest DTO для создания тревоги
// @Description DTO для создания тревоги
type CreateAlertRequest struct {
	Title       string   `json:"title,omitempty" validate:"max=255"`
	Description string   `json:"description,omitempty" validate:"max=2000"`
	Latitude    *float64 `json:"latitude" validate:"required,latitude"`
	Longitude   *float64 `json:"longitude" validate:"required,longitude"`
	Accuracy    *float64 `json:"accuracy,omitempty" validate:"omitempty,gte=0"`
}

// RecordTapRequest DTO для записи тапа
// @Description DTO для записи тапа
type RecordTapRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
}

// UpdateStatusRequest DTO для смены статуса тревоги
// @Description DTO для смены статуса тревоги
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active escalated resolved false-alarm"`
}

// UpdateRecordingRequest DTO для смены состояния записи
// @Description DTO для смены состояния записи
type UpdateRecordingRequest struct {
	IsRecording *bool `json:"is_recording" validate:"required"`
	IsStreaming *bool `json:"is_streaming,omitempty"`
}

// AttachMediaRequest DTO для привязки медиа к тревоге
// @Description DTO для привязки медиа к тревоге
type AttachMediaRequest struct {
	StorageID string `json:"storage_id" validate:"required"`
	MediaURL  string `json:"media_url" validate:"required,url"`
}

// SyncUserRequest DTO для синхронизации профиля пользователя
// @Description DTO для синхронизации профиля пользователя
type SyncUserRequest struct {
	Email        string  `json:"email" validate:"required,email"`
	FullName     string  `json:"full_name" validate:"required,min=1,max=255"`
	ProfileImage *string `json:"profile_image,omitempty"`
}

// UpdateLocationRequest DTO для обновления координаты пользователя
// @Description DTO для обновления координаты пользователя
type UpdateLocationRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
	Accuracy  *float64 `json:"accuracy,omitempty" validate:"omitempty,gte=0"`
}

// AlertResponse DTO для ответа с информацией о тревоге
// @Description DTO для ответа с информацией о тревоге
type AlertResponse struct {
	ID             uuid.UUID  `json:"id"`
	ReporterID     string     `json:"reporter_id"`
	Title          string     `json:"title,omitempty"`
	Description    string     `json:"description,omitempty"`
	Latitude       float64    `json:"latitude"`
	Longitude      float64    `json:"longitude"`
	Accuracy       *float64   `json:"accuracy,omitempty"`
	SeverityScore  int        `json:"severity_score"`
	TapCount       int        `json:"tap_count"`
	TapFrequency   float64    `json:"tap_frequency"`
	LastTapAt      time.Time  `json:"last_tap_at"`
	MediaURL       *string    `json:"media_url,omitempty"`
	IsRecording    bool       `json:"is_recording"`
	IsStreaming    bool       `json:"is_streaming"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	ResolvedAt     *time.Time `json:"resolved_at,omitempty"`
}

// AlertDetailsResponse DTO для ответа с тревогой и производными метриками
// @Description DTO для ответа с тревогой и производными метриками
type AlertDetailsResponse struct {
	AlertResponse
	RecentTapCount       int     `json:"recent_tap_count"`
	UniqueReporters      int     `json:"unique_reporters"`
	SeverityLevel        string  `json:"severity_level"`
	NotificationRadiusKm float64 `json:"notification_radius_km"`
}

// AlertWithDistanceResponse DTO для ответа с тревогой и расстоянием до неё
// @Description DTO для ответа с тревогой и расстоянием до неё
type AlertWithDistanceResponse struct {
	AlertResponse
	DistanceKm float64 `json:"distance_km"`
}

// TapResultResponse DTO для ответа с результатом записи тапа
// @Description DTO для ответа с результатом записи тапа
type TapResultResponse struct {
	AlertID        uuid.UUID `json:"alert_id"`
	SeverityScore  int       `json:"severity_score"`
	TapCount       int       `json:"tap_count"`
	TapFrequency   float64   `json:"tap_frequency"`
	Escalated      bool      `json:"escalated"`
	EscalationEdge int       `json:"escalation_edge,omitempty"`
}

// NotificationResponse DTO для ответа с уведомлением
// @Description DTO для ответа с уведомлением
type NotificationResponse struct {
	ID          int64      `json:"id"`
	RecipientID string     `json:"recipient_id"`
	AlertID     *uuid.UUID `json:"alert_id,omitempty"`
	Type        string     `json:"type"`
	Title       string     `json:"title"`
	Message     string     `json:"message"`
	Read        bool       `json:"read"`
	CreatedAt   time.Time  `json:"created_at"`
}

// UnreadCountResponse DTO для ответа со счётчиком непрочитанных
// @Description DTO для ответа со счётчиком непрочитанных
type UnreadCountResponse struct {
	Count int `json:"count"`
}

// MarkAllReadResponse DTO для ответа с числом помеченных уведомлений
// @Description DTO для ответа с числом помеченных уведомлений
type MarkAllReadResponse struct {
	Updated int `json:"updated"`
}

// UserResponse DTO для ответа с профилем пользователя
// @Description DTO для ответа с профилем пользователя
type UserResponse struct {
	ID                   string    `json:"id"`
	Email                string    `json:"email"`
	FullName             string    `json:"full_name"`
	ProfileImage         *string   `json:"profile_image,omitempty"`
	NotificationsEnabled bool      `json:"notifications_enabled"`
	CreatedAt            time.Time `json:"created_at"`
}
