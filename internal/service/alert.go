package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/crowd_alert_system/internal/config"
	"github.com/shenikar/crowd_alert_system/internal/geo"
	"github.com/shenikar/crowd_alert_system/internal/models"
	"github.com/shenikar/crowd_alert_system/internal/notifier"
	"github.com/shenikar/crowd_alert_system/internal/severity"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=alert.go -destination=mocks/mock_alert.go -package=mocks -exclude_interfaces=AlertService

// AlertRepository определяет контракт для работы с бд тревог и журналом тапов
type AlertRepository interface {
	CreateAlertWithTap(ctx context.Context, alert *models.Alert, tap *models.Tap) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Alert, error)
	AppendTapAndUpdateAlert(ctx context.Context, tap *models.Tap, alert *models.Alert) error
	ListTaps(ctx context.Context, alertID uuid.UUID) ([]*models.Tap, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string, resolvedAt *time.Time) error
	UpdateRecording(ctx context.Context, id uuid.UUID, isRecording bool, isStreaming *bool) error
	AttachMedia(ctx context.Context, id uuid.UUID, storageID, mediaURL string) error
	ListActive(ctx context.Context) ([]*models.Alert, error)
	ListActiveByReporter(ctx context.Context, reporterID string) ([]*models.Alert, error)
	ListSince(ctx context.Context, since time.Time) ([]*models.Alert, error)
	GetAlertFromCache(ctx context.Context, id uuid.UUID) (*models.Alert, error)
	SetAlertCache(ctx context.Context, alert *models.Alert) error
	InvalidateAlertCache(ctx context.Context, id uuid.UUID) error
}

// CreateAlertInput - входные данные создания тревоги
type CreateAlertInput struct {
	Title       string
	Description string
	Latitude    float64
	Longitude   float64
	Accuracy    *float64
}

// TapResult - результат записи тапа с пересчитанными метриками
type TapResult struct {
	AlertID        uuid.UUID `json:"alert_id"`
	SeverityScore  int       `json:"severity_score"`
	TapCount       int       `json:"tap_count"`
	TapFrequency   float64   `json:"tap_frequency"`
	Escalated      bool      `json:"escalated"`
	EscalationEdge int       `json:"escalation_edge,omitempty"`
}

// AlertDetails - тревога вместе с производными метриками
type AlertDetails struct {
	Alert                *models.Alert `json:"alert"`
	RecentTapCount       int           `json:"recent_tap_count"`
	UniqueReporters      int           `json:"unique_reporters"`
	SeverityLevel        string        `json:"severity_level"`
	NotificationRadiusKm float64       `json:"notification_radius_km"`
}

// AlertWithDistance - тревога с расстоянием до точки запроса
type AlertWithDistance struct {
	Alert      *models.Alert `json:"alert"`
	DistanceKm float64       `json:"distance_km"`
}

// AlertService определяет контракт для бизнес-логики эскалации тревог
type AlertService interface {
	CreateAlert(ctx context.Context, reporterID string, input CreateAlertInput) (*models.Alert, error)
	RecordTap(ctx context.Context, alertID uuid.UUID, reporterID string, lat, lon float64) (*TapResult, error)
	UpdateStatus(ctx context.Context, alertID uuid.UUID, requesterID, status string) error
	UpdateRecording(ctx context.Context, alertID uuid.UUID, requesterID string, isRecording bool, isStreaming *bool) error
	AttachMedia(ctx context.Context, alertID uuid.UUID, requesterID, storageID, mediaURL string) error
	GetAlertWithMetrics(ctx context.Context, alertID uuid.UUID) (*AlertDetails, error)
	ListActiveAlerts(ctx context.Context) ([]*models.Alert, error)
	ListReporterAlerts(ctx context.Context, reporterID string) ([]*models.Alert, error)
	NearbyAlerts(ctx context.Context, reporterID string, lat, lon, radiusKm float64) ([]*AlertWithDistance, error)
	AlertHistory(ctx context.Context, lat, lon, radiusKm float64) ([]*AlertWithDistance, error)
}

type alertService struct {
	repo      AlertRepository
	users     UserRepository
	notifs    NotificationRepository
	publisher notifier.Publisher
	logger    *logrus.Logger
	cfg       *config.Config
	now       func() time.Time
}

func NewAlertService(repo AlertRepository, users UserRepository, notifs NotificationRepository, publisher notifier.Publisher, logger *logrus.Logger, cfg *config.Config) AlertService {
	return &alertService{
		repo:      repo,
		users:     users,
		notifs:    notifs,
		publisher: publisher,
		logger:    logger,
		cfg:       cfg,
		now:       time.Now,
	}
}

// CreateAlert создает тревогу с первым тапом и выполняет первичную рассылку
// в начальном радиусе независимо от оценки: первое сообщение всегда доходит
// до ближайших соседей.
func (s *alertService) CreateAlert(ctx context.Context, reporterID string, input CreateAlertInput) (*models.Alert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "CreateAlert",
		"reporter": reporterID,
	})

	if reporterID == "" {
		return nil, ErrUnauthenticated
	}
	if err := validateCoordinate(input.Latitude, input.Longitude); err != nil {
		log.WithError(err).Warn("Rejected alert with invalid coordinate")
		return nil, err
	}

	log.Info("Attempting to create a new alert")

	now := s.now()
	alert := &models.Alert{
		ReporterID:    reporterID,
		Title:         input.Title,
		Description:   input.Description,
		Latitude:      input.Latitude,
		Longitude:     input.Longitude,
		Accuracy:      input.Accuracy,
		SeverityScore: 0,
		TapCount:      1,
		TapFrequency:  0,
		LastTapAt:     now,
		Status:        models.AlertStatusActive,
	}
	tap := &models.Tap{
		ReporterID: reporterID,
		Latitude:   input.Latitude,
		Longitude:  input.Longitude,
		CreatedAt:  now,
	}

	if err := s.repo.CreateAlertWithTap(ctx, alert, tap); err != nil {
		log.WithError(err).Error("Failed to create alert in repository")
		return nil, fmt.Errorf("service: could not create alert: %w", err)
	}

	log.WithField("alert_id", alert.ID).Info("Alert created successfully")

	// Первичная рассылка только после фиксации тревоги в бд
	s.notifyWithinRadius(ctx, alert, s.cfg.InitialRadiusKm, 0)

	return alert, nil
}

// RecordTap записывает подтверждение тревоги и пересчитывает метрики по
// полному журналу тапов. Метрики никогда не инкрементируются по закешированным
// счётчикам: повтор операции идемпотентен по tapCount.
func (s *alertService) RecordTap(ctx context.Context, alertID uuid.UUID, reporterID string, lat, lon float64) (*TapResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "RecordTap",
		"alert_id": alertID,
		"reporter": reporterID,
	})

	if reporterID == "" {
		return nil, ErrUnauthenticated
	}
	if err := validateCoordinate(lat, lon); err != nil {
		log.WithError(err).Warn("Rejected tap with invalid coordinate")
		return nil, err
	}

	alert, err := s.repo.GetByID(ctx, alertID)
	if err != nil {
		log.WithError(err).Warn("Failed to get alert for tap")
		return nil, fmt.Errorf("service: could not get alert for tap: %w", err)
	}
	if alert.IsClosed() {
		log.WithField("status", alert.Status).Warn("Rejected tap against closed alert")
		return nil, ErrAlertClosed
	}

	taps, err := s.repo.ListTaps(ctx, alertID)
	if err != nil {
		log.WithError(err).Error("Failed to list taps for alert")
		return nil, fmt.Errorf("service: could not list taps: %w", err)
	}

	now := s.now()
	tap := &models.Tap{
		AlertID:    alertID,
		ReporterID: reporterID,
		Latitude:   lat,
		Longitude:  lon,
		CreatedAt:  now,
	}

	// Пересчёт метрик по полному журналу, включая новый тап
	tapCount, frequency, uniqueReporters := recomputeMetrics(append(taps, tap), now, s.cfg.TapFrequencyWindow)

	oldScore := alert.SeverityScore
	newScore := severity.Score(tapCount, frequency, uniqueReporters, s.cfg.SeverityWeights)
	edge, crossed := severity.EscalationEdge(oldScore, newScore)

	alert.TapCount = tapCount
	alert.TapFrequency = frequency
	alert.LastTapAt = now
	alert.SeverityScore = newScore
	if crossed && edge >= 50 {
		alert.Status = models.AlertStatusEscalated
	}

	// Тап и обновлённые поля тревоги фиксируются одной транзакцией
	if err := s.repo.AppendTapAndUpdateAlert(ctx, tap, alert); err != nil {
		log.WithError(err).Error("Failed to persist tap with updated metrics")
		return nil, fmt.Errorf("service: could not record tap: %w", err)
	}

	if err := s.repo.InvalidateAlertCache(ctx, alertID); err != nil {
		log.WithError(err).Warn("Failed to invalidate alert cache")
	}

	log.WithFields(logrus.Fields{
		"severity_score": newScore,
		"tap_count":      tapCount,
		"unique_users":   uniqueReporters,
	}).Info("Tap recorded successfully")

	// Расширенная рассылка только после успешной фиксации и только при
	// пересечении порога эскалации >= 50
	if crossed && edge >= 50 {
		s.notifyWithinRadius(ctx, alert, severity.NotificationRadiusKm(newScore), edge)
	}

	result := &TapResult{
		AlertID:       alertID,
		SeverityScore: newScore,
		TapCount:      tapCount,
		TapFrequency:  frequency,
		Escalated:     crossed,
	}
	if crossed {
		result.EscalationEdge = edge
	}
	return result, nil
}

// UpdateStatus переводит тревогу в новый статус. Доступно только автору.
// Переход в терминальный статус фиксирует resolved_at; терминальные статусы окончательны.
func (s *alertService) UpdateStatus(ctx context.Context, alertID uuid.UUID, requesterID, status string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "UpdateStatus",
		"alert_id": alertID,
		"status":   status,
	})

	if requesterID == "" {
		return ErrUnauthenticated
	}

	alert, err := s.repo.GetByID(ctx, alertID)
	if err != nil {
		log.WithError(err).Warn("Attempted to update status of a non-existent alert")
		return fmt.Errorf("service: alert not found for status update: %w", err)
	}
	if alert.ReporterID != requesterID {
		log.Warn("Status update requested by non-reporter")
		return ErrUnauthorized
	}
	if alert.IsClosed() {
		log.WithField("current_status", alert.Status).Warn("Attempted to transition a closed alert")
		return ErrAlertClosed
	}

	var resolvedAt *time.Time
	if status == models.AlertStatusResolved || status == models.AlertStatusFalseAlarm {
		now := s.now()
		resolvedAt = &now
	}

	if err := s.repo.UpdateStatus(ctx, alertID, status, resolvedAt); err != nil {
		log.WithError(err).Error("Failed to update alert status in repository")
		return fmt.Errorf("service: could not update alert status: %w", err)
	}

	if err := s.repo.InvalidateAlertCache(ctx, alertID); err != nil {
		log.WithError(err).Warn("Failed to invalidate alert cache")
	}

	log.Info("Alert status updated successfully")
	return nil
}

// UpdateRecording обновляет состояние записи/трансляции. Доступно только автору.
func (s *alertService) UpdateRecording(ctx context.Context, alertID uuid.UUID, requesterID string, isRecording bool, isStreaming *bool) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "UpdateRecording",
		"alert_id": alertID,
	})

	if requesterID == "" {
		return ErrUnauthenticated
	}

	alert, err := s.repo.GetByID(ctx, alertID)
	if err != nil {
		log.WithError(err).Warn("Attempted to update recording of a non-existent alert")
		return fmt.Errorf("service: alert not found for recording update: %w", err)
	}
	if alert.ReporterID != requesterID {
		return ErrUnauthorized
	}

	if err := s.repo.UpdateRecording(ctx, alertID, isRecording, isStreaming); err != nil {
		log.WithError(err).Error("Failed to update recording state in repository")
		return fmt.Errorf("service: could not update recording state: %w", err)
	}

	if err := s.repo.InvalidateAlertCache(ctx, alertID); err != nil {
		log.WithError(err).Warn("Failed to invalidate alert cache")
	}
	return nil
}

// AttachMedia привязывает указатель на записанное медиа к тревоге.
// Содержимое медиа сервис не инспектирует.
func (s *alertService) AttachMedia(ctx context.Context, alertID uuid.UUID, requesterID, storageID, mediaURL string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "AttachMedia",
		"alert_id": alertID,
	})

	if requesterID == "" {
		return ErrUnauthenticated
	}

	alert, err := s.repo.GetByID(ctx, alertID)
	if err != nil {
		log.WithError(err).Warn("Attempted to attach media to a non-existent alert")
		return fmt.Errorf("service: alert not found for media attach: %w", err)
	}
	if alert.ReporterID != requesterID {
		return ErrUnauthorized
	}

	if err := s.repo.AttachMedia(ctx, alertID, storageID, mediaURL); err != nil {
		log.WithError(err).Error("Failed to attach media in repository")
		return fmt.Errorf("service: could not attach media: %w", err)
	}

	if err := s.repo.InvalidateAlertCache(ctx, alertID); err != nil {
		log.WithError(err).Warn("Failed to invalidate alert cache")
	}

	log.Info("Media attached successfully")
	return nil
}

// GetAlertWithMetrics возвращает тревогу вместе с производными метриками
func (s *alertService) GetAlertWithMetrics(ctx context.Context, alertID uuid.UUID) (*AlertDetails, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "GetAlertWithMetrics",
		"alert_id": alertID,
	})

	alert, err := s.repo.GetAlertFromCache(ctx, alertID)
	if err != nil {
		log.WithError(err).Warn("Failed to read alert from cache")
	}
	if alert == nil {
		alert, err = s.repo.GetByID(ctx, alertID)
		if err != nil {
			log.WithError(err).Warn("Failed to get alert from repository")
			return nil, fmt.Errorf("service: could not get alert: %w", err)
		}
		if err := s.repo.SetAlertCache(ctx, alert); err != nil {
			log.WithError(err).Warn("Failed to set alert cache")
		}
	}

	taps, err := s.repo.ListTaps(ctx, alertID)
	if err != nil {
		log.WithError(err).Error("Failed to list taps for alert metrics")
		return nil, fmt.Errorf("service: could not list taps: %w", err)
	}

	now := s.now()
	cutoff := now.Add(-s.cfg.RecentTapsWindow)
	recent := 0
	reporters := make(map[string]struct{})
	for _, t := range taps {
		reporters[t.ReporterID] = struct{}{}
		if t.CreatedAt.After(cutoff) {
			recent++
		}
	}

	return &AlertDetails{
		Alert:                alert,
		RecentTapCount:       recent,
		UniqueReporters:      len(reporters),
		SeverityLevel:        severity.Level(alert.SeverityScore),
		NotificationRadiusKm: severity.NotificationRadiusKm(alert.SeverityScore),
	}, nil
}

// ListActiveAlerts возвращает все активные и эскалированные тревоги
func (s *alertService) ListActiveAlerts(ctx context.Context) ([]*models.Alert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "alert",
		"method":  "ListActiveAlerts",
	})

	alerts, err := s.repo.ListActive(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list active alerts from repository")
		return nil, fmt.Errorf("service: could not list active alerts: %w", err)
	}
	return alerts, nil
}

// ListReporterAlerts возвращает активные тревоги автора.
// Без идентификатора чтение деградирует до пустого результата.
func (s *alertService) ListReporterAlerts(ctx context.Context, reporterID string) ([]*models.Alert, error) {
	if reporterID == "" {
		return []*models.Alert{}, nil
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "ListReporterAlerts",
		"reporter": reporterID,
	})

	alerts, err := s.repo.ListActiveByReporter(ctx, reporterID)
	if err != nil {
		log.WithError(err).Error("Failed to list reporter alerts from repository")
		return nil, fmt.Errorf("service: could not list reporter alerts: %w", err)
	}
	return alerts, nil
}

// NearbyAlerts возвращает активные тревоги в радиусе от точки запроса,
// ближайшие первыми. Без идентификатора возвращает пустой результат.
func (s *alertService) NearbyAlerts(ctx context.Context, reporterID string, lat, lon, radiusKm float64) ([]*AlertWithDistance, error) {
	if reporterID == "" {
		return []*AlertWithDistance{}, nil
	}
	if radiusKm <= 0 {
		radiusKm = s.cfg.DefaultNearbyKm
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "alert",
		"method":    "NearbyAlerts",
		"radius_km": radiusKm,
	})

	alerts, err := s.repo.ListActive(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list active alerts for nearby query")
		return nil, fmt.Errorf("service: could not list active alerts: %w", err)
	}

	nearby := filterByDistance(alerts, lat, lon, radiusKm)
	sort.Slice(nearby, func(i, j int) bool {
		return nearby[i].DistanceKm < nearby[j].DistanceKm
	})
	return nearby, nil
}

// AlertHistory возвращает тревоги любых статусов за окно истории,
// отфильтрованные по расстоянию от точки запроса
func (s *alertService) AlertHistory(ctx context.Context, lat, lon, radiusKm float64) ([]*AlertWithDistance, error) {
	if radiusKm <= 0 {
		radiusKm = s.cfg.DefaultHistoryKm
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "alert",
		"method":    "AlertHistory",
		"radius_km": radiusKm,
	})

	since := s.now().Add(-s.cfg.HistoryWindow)
	alerts, err := s.repo.ListSince(ctx, since)
	if err != nil {
		log.WithError(err).Error("Failed to list alert history from repository")
		return nil, fmt.Errorf("service: could not list alert history: %w", err)
	}

	return filterByDistance(alerts, lat, lon, radiusKm), nil
}

// notifyWithinRadius находит всех пользователей с известной координатой в
// радиусе от тревоги, пишет каждому уведомление и ставит одно событие
// доставки в очередь. Ошибки рассылки не отменяют уже зафиксированную
// операцию и только логируются.
func (s *alertService) notifyWithinRadius(ctx context.Context, alert *models.Alert, radiusKm float64, edge int) []string {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "alert",
		"method":    "notifyWithinRadius",
		"alert_id":  alert.ID,
		"radius_km": radiusKm,
	})

	users, err := s.users.ListWithLocation(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load location directory for fanout")
		return nil
	}

	title := alert.Title
	if title == "" {
		title = "Emergency incident"
	}

	notified := make([]string, 0)
	for _, user := range users {
		// Пользователи без известной координаты пропускаются
		if !user.HasLocation() {
			continue
		}

		distance := geo.DistanceKm(alert.Latitude, alert.Longitude, *user.LastKnownLatitude, *user.LastKnownLongitude)
		if distance > radiusKm {
			continue
		}

		notification := &models.Notification{
			RecipientID: user.ID,
			AlertID:     &alert.ID,
			Type:        models.NotificationTypeEmergency,
			Title:       "EMERGENCY ALERT",
			Message:     fmt.Sprintf("%s detected %.1fkm away. Tap to view details.", title, distance),
		}
		if err := s.notifs.Create(ctx, notification); err != nil {
			log.WithError(err).WithField("recipient", user.ID).Error("Failed to create notification")
			continue
		}
		notified = append(notified, user.ID)
	}

	if len(notified) > 0 {
		event := notifier.FanoutEvent{
			AlertID:        alert.ID,
			Title:          title,
			SeverityScore:  alert.SeverityScore,
			SeverityLevel:  severity.Level(alert.SeverityScore),
			EscalationEdge: edge,
			RadiusKm:       radiusKm,
			Latitude:       alert.Latitude,
			Longitude:      alert.Longitude,
			Recipients:     notified,
			Timestamp:      s.now(),
		}
		if err := s.publisher.Publish(ctx, event); err != nil {
			log.WithError(err).Error("Failed to publish fanout event")
		}
	}

	log.WithField("notified", len(notified)).Info("Fanout completed")
	return notified
}

// recomputeMetrics выводит метрики тревоги из полного журнала тапов:
// общее число, частоту в скользящем окне и число уникальных свидетелей.
// Порядок тапов в журнале на результат не влияет.
func recomputeMetrics(taps []*models.Tap, now time.Time, window time.Duration) (tapCount int, frequency float64, uniqueReporters int) {
	cutoff := now.Add(-window)
	recent := 0
	reporters := make(map[string]struct{})
	for _, t := range taps {
		reporters[t.ReporterID] = struct{}{}
		if t.CreatedAt.After(cutoff) {
			recent++
		}
	}
	return len(taps), float64(recent) / window.Seconds(), len(reporters)
}

func filterByDistance(alerts []*models.Alert, lat, lon, radiusKm float64) []*AlertWithDistance {
	result := make([]*AlertWithDistance, 0)
	for _, alert := range alerts {
		distance := geo.DistanceKm(lat, lon, alert.Latitude, alert.Longitude)
		if distance <= radiusKm {
			result = append(result, &AlertWithDistance{Alert: alert, DistanceKm: distance})
		}
	}
	return result
}

// validateCoordinate отклоняет координаты вне допустимых диапазонов
func validateCoordinate(lat, lon float64) error {
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return ErrInvalidLocation
	}
	return nil
}
