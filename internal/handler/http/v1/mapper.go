package v1

import (
	"github.com/shenikar/crowd_alert_system/internal/models"
	"github.com/shenikar/crowd_alert_system/internal/service"
)

// ModelToAlertResponse преобразует доменную модель в DTO для ответа
func ModelToAlertResponse(model *models.Alert) AlertResponse {
	return AlertResponse{
		ID:            model.ID,
		ReporterID:    model.ReporterID,
		Title:         model.Title,
		Description:   model.Description,
		Latitude:      model.Latitude,
		Longitude:     model.Longitude,
		Accuracy:      model.Accuracy,
		SeverityScore: model.SeverityScore,
		TapCount:      model.TapCount,
		TapFrequency:  model.TapFrequency,
		LastTapAt:     model.LastTapAt,
		MediaURL:      model.MediaURL,
		IsRecording:   model.IsRecording,
		IsStreaming:   model.IsStreaming,
		Status:        model.Status,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
		ResolvedAt:    model.ResolvedAt,
	}
}

// ModelsToAlertResponses преобразует слайс моделей в слайс DTO
func ModelsToAlertResponses(models []*models.Alert) []AlertResponse {
	responses := make([]AlertResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToAlertResponse(model)
	}
	return responses
}

// DetailsToResponse преобразует тревогу с метриками в DTO для ответа
func DetailsToResponse(details *service.AlertDetails) AlertDetailsResponse {
	return AlertDetailsResponse{
		AlertResponse:        ModelToAlertResponse(details.Alert),
		RecentTapCount:       details.RecentTapCount,
		UniqueReporters:      details.UniqueReporters,
		SeverityLevel:        details.SeverityLevel,
		NotificationRadiusKm: details.NotificationRadiusKm,
	}
}

// WithDistanceToResponses преобразует слайс тревог с расстояниями в слайс DTO
func WithDistanceToResponses(alerts []*service.AlertWithDistance) []AlertWithDistanceResponse {
	responses := make([]AlertWithDistanceResponse, len(alerts))
	for i, a := range alerts {
		responses[i] = AlertWithDistanceResponse{
			AlertResponse: ModelToAlertResponse(a.Alert),
			DistanceKm:    a.DistanceKm,
		}
	}
	return responses
}

// TapResultToResponse преобразует результат записи тапа в DTO для ответа
func TapResultToResponse(result *service.TapResult) TapResultResponse {
	return TapResultResponse{
		AlertID:        result.AlertID,
		SeverityScore:  result.SeverityScore,
		TapCount:       result.TapCount,
		TapFrequency:   result.TapFrequency,
		Escalated:      result.Escalated,
		EscalationEdge: result.EscalationEdge,
	}
}

// ModelToNotificationResponse преобразует уведомление в DTO для ответа
func ModelToNotificationResponse(model *models.Notification) NotificationResponse {
	return NotificationResponse{
		ID:          model.ID,
		RecipientID: model.RecipientID,
		AlertID:     model.AlertID,
		Type:        model.Type,
		Title:       model.Title,
		Message:     model.Message,
		Read:        model.Read,
		CreatedAt:   model.CreatedAt,
	}
}

// ModelsToNotificationResponses преобразует слайс уведомлений в слайс DTO
func ModelsToNotificationResponses(models []*models.Notification) []NotificationResponse {
	responses := make([]NotificationResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToNotificationResponse(model)
	}
	return responses
}

// ModelToUserResponse преобразует профиль пользователя в DTO для ответа
func ModelToUserResponse(model *models.UserProfile) UserResponse {
	return UserResponse{
		ID:                   model.ID,
		Email:                model.Email,
		FullName:             model.FullName,
		ProfileImage:         model.ProfileImage,
		NotificationsEnabled: model.NotificationsEnabled,
		CreatedAt:            model.CreatedAt,
	}
}
