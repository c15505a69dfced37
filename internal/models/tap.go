package models

import (
	"time"

	"github.com/google/uuid"
)

// Tap представляет одно подтверждение тревоги. Записи неизменяемы:
// журнал тапов append-only, метрики тревоги всегда выводятся из него заново.
type Tap struct {
	ID         int64     `json:"id"`
	AlertID    uuid.UUID `json:"alert_id"`
	ReporterID string    `json:"reporter_id"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	CreatedAt  time.Time `json:"created_at"`
}
