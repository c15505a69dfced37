package service

import (
	"context"
	"fmt"

	"github.com/shenikar/crowd_alert_system/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=notification.go -destination=mocks/mock_notification.go -package=mocks -exclude_interfaces=NotificationService

// NotificationRepository определяет контракт для работы с лентой уведомлений
type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	ListByRecipient(ctx context.Context, recipientID string) ([]*models.Notification, error)
	CountUnread(ctx context.Context, recipientID string) (int, error)
	MarkRead(ctx context.Context, id int64, recipientID string) error
	MarkAllRead(ctx context.Context, recipientID string) (int, error)
	Delete(ctx context.Context, id int64, recipientID string) error
}

// NotificationService определяет контракт для ленты уведомлений получателя
type NotificationService interface {
	ListForRecipient(ctx context.Context, recipientID string) ([]*models.Notification, error)
	UnreadCount(ctx context.Context, recipientID string) (int, error)
	MarkRead(ctx context.Context, id int64, recipientID string) error
	MarkAllRead(ctx context.Context, recipientID string) (int, error)
	Delete(ctx context.Context, id int64, recipientID string) error
}

type notificationService struct {
	repo   NotificationRepository
	logger *logrus.Logger
}

func NewNotificationService(repo NotificationRepository, logger *logrus.Logger) NotificationService {
	return &notificationService{
		repo:   repo,
		logger: logger,
	}
}

// ListForRecipient возвращает ленту уведомлений получателя.
// Без идентификатора чтение деградирует до пустого результата.
func (s *notificationService) ListForRecipient(ctx context.Context, recipientID string) ([]*models.Notification, error) {
	if recipientID == "" {
		return []*models.Notification{}, nil
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "notification",
		"method":    "ListForRecipient",
		"recipient": recipientID,
	})

	notifications, err := s.repo.ListByRecipient(ctx, recipientID)
	if err != nil {
		log.WithError(err).Error("Failed to list notifications from repository")
		return nil, fmt.Errorf("service: could not list notifications: %w", err)
	}
	return notifications, nil
}

// UnreadCount возвращает число непрочитанных уведомлений получателя
func (s *notificationService) UnreadCount(ctx context.Context, recipientID string) (int, error) {
	if recipientID == "" {
		return 0, nil
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "notification",
		"method":    "UnreadCount",
		"recipient": recipientID,
	})

	count, err := s.repo.CountUnread(ctx, recipientID)
	if err != nil {
		log.WithError(err).Error("Failed to count unread notifications")
		return 0, fmt.Errorf("service: could not count unread notifications: %w", err)
	}
	return count, nil
}

// MarkRead помечает уведомление получателя прочитанным
func (s *notificationService) MarkRead(ctx context.Context, id int64, recipientID string) error {
	if recipientID == "" {
		return ErrUnauthenticated
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":         "notification",
		"method":          "MarkRead",
		"notification_id": id,
	})

	if err := s.repo.MarkRead(ctx, id, recipientID); err != nil {
		log.WithError(err).Warn("Failed to mark notification as read")
		return fmt.Errorf("service: could not mark notification as read: %w", err)
	}
	return nil
}

// MarkAllRead помечает все уведомления получателя прочитанными,
// возвращает количество обновлённых записей
func (s *notificationService) MarkAllRead(ctx context.Context, recipientID string) (int, error) {
	if recipientID == "" {
		return 0, ErrUnauthenticated
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "notification",
		"method":    "MarkAllRead",
		"recipient": recipientID,
	})

	count, err := s.repo.MarkAllRead(ctx, recipientID)
	if err != nil {
		log.WithError(err).Error("Failed to mark all notifications as read")
		return 0, fmt.Errorf("service: could not mark all notifications as read: %w", err)
	}

	log.WithField("count", count).Info("Notifications marked as read")
	return count, nil
}

// Delete удаляет уведомление получателя
func (s *notificationService) Delete(ctx context.Context, id int64, recipientID string) error {
	if recipientID == "" {
		return ErrUnauthenticated
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":         "notification",
		"method":          "Delete",
		"notification_id": id,
	})

	if err := s.repo.Delete(ctx, id, recipientID); err != nil {
		log.WithError(err).Warn("Failed to delete notification")
		return fmt.Errorf("service: could not delete notification: %w", err)
	}
	return nil
}
