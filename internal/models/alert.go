package models

import (
	"time"

	"github.com/google/uuid"
)

// Статусы тревоги. Терминальные статусы (resolved, false-alarm) окончательны.
// Пересчёт метрик может только повысить статус до escalated; обратный переход
// доступен автору через явную смену статуса.
const (
	AlertStatusActive     = "active"
	AlertStatusEscalated  = "escalated"
	AlertStatusResolved   = "resolved"
	AlertStatusFalseAlarm = "false-alarm"
)

// Alert представляет один активный инцидент с накопленными метриками
type Alert struct {
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
	MediaStorageID *string    `json:"media_storage_id,omitempty"`
	MediaURL       *string    `json:"media_url,omitempty"`
	IsRecording    bool       `json:"is_recording"`
	IsStreaming    bool       `json:"is_streaming"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	ResolvedAt     *time.Time `json:"resolved_at,omitempty"`
}

// IsClosed сообщает, находится ли тревога в терминальном статусе
func (a *Alert) IsClosed() bool {
	return a.Status == AlertStatusResolved || a.Status == AlertStatusFalseAlarm
}
