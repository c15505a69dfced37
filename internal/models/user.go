package models

import (
	"time"
)

// UserProfile представляет профиль пользователя, синхронизированный из внешнего
// провайдера идентификации. Последняя известная координата образует справочник
// местоположений для рассылки уведомлений.
type UserProfile struct {
	ID                   string    `json:"id"`
	Email                string    `json:"email"`
	FullName             string    `json:"full_name"`
	ProfileImage         *string   `json:"profile_image,omitempty"`
	NotificationsEnabled bool      `json:"notifications_enabled"`
	LastKnownLatitude    *float64  `json:"last_known_latitude,omitempty"`
	LastKnownLongitude   *float64  `json:"last_known_longitude,omitempty"`
	LocationAccuracy     *float64  `json:"location_accuracy,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// HasLocation сообщает, известна ли последняя координата пользователя
func (u *UserProfile) HasLocation() bool {
	return u.LastKnownLatitude != nil && u.LastKnownLongitude != nil
}
