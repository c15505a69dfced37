package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/crowd_alert_system/internal/models"
	"github.com/shenikar/crowd_alert_system/internal/service"
)

type NotificationRepository struct {
	db *pgxpool.Pool
}

func NewNotificationRepository(db *pgxpool.Pool) service.NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create сохраняет уведомление для получателя
func (r *NotificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	query := `
		INSERT INTO notifications (recipient_id, alert_id, type, title, message, read)
		VALUES ($1, $2, $3, $4, $5, FALSE) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		notification.RecipientID,
		notification.AlertID,
		notification.Type,
		notification.Title,
		notification.Message,
	).Scan(&notification.ID, &notification.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// ListByRecipient возвращает ленту уведомлений получателя, новые первыми
func (r *NotificationRepository) ListByRecipient(ctx context.Context, recipientID string) ([]*models.Notification, error) {
	query := `
		SELECT id, recipient_id, alert_id, type, title, message, read, created_at
		FROM notifications
		WHERE recipient_id = $1
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, recipientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	notifications := make([]*models.Notification, 0)
	for rows.Next() {
		n := &models.Notification{}
		err := rows.Scan(
			&n.ID,
			&n.RecipientID,
			&n.AlertID,
			&n.Type,
			&n.Title,
			&n.Message,
			&n.Read,
			&n.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification row: %w", err)
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error notifications iteration: %w", err)
	}
	return notifications, nil
}

// CountUnread возвращает число непрочитанных уведомлений получателя
func (r *NotificationRepository) CountUnread(ctx context.Context, recipientID string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM notifications
		WHERE recipient_id = $1 AND read = FALSE;
	`
	var count int
	if err := r.db.QueryRow(ctx, query, recipientID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

// MarkRead помечает уведомление прочитанным. Фильтр по получателю гарантирует,
// что чужое уведомление выглядит как отсутствующее.
func (r *NotificationRepository) MarkRead(ctx context.Context, id int64, recipientID string) error {
	query := `
		UPDATE notifications SET read = TRUE
		WHERE id = $1 AND recipient_id = $2;
	`
	cmdTag, err := r.db.Exec(ctx, query, id, recipientID)
	if err != nil {
		return fmt.Errorf("failed to mark notification as read: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("notification with id %d: %w", id, service.ErrNotFound)
	}
	return nil
}

// MarkAllRead помечает все уведомления получателя прочитанными
func (r *NotificationRepository) MarkAllRead(ctx context.Context, recipientID string) (int, error) {
	query := `
		UPDATE notifications SET read = TRUE
		WHERE recipient_id = $1 AND read = FALSE;
	`
	cmdTag, err := r.db.Exec(ctx, query, recipientID)
	if err != nil {
		return 0, fmt.Errorf("failed to mark all notifications as read: %w", err)
	}
	return int(cmdTag.RowsAffected()), nil
}

// Delete удаляет уведомление получателя
func (r *NotificationRepository) Delete(ctx context.Context, id int64, recipientID string) error {
	query := `
		DELETE FROM notifications
		WHERE id = $1 AND recipient_id = $2;
	`
	cmdTag, err := r.db.Exec(ctx, query, id, recipientID)
	if err != nil {
		return fmt.Errorf("failed to delete notification: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("notification with id %d: %w", id, service.ErrNotFound)
	}
	return nil
}
