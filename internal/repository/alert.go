package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/crowd_alert_system/internal/models"
	"github.com/shenikar/crowd_alert_system/internal/service"
)

type AlertRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewAlertRepository(db *pgxpool.Pool, redisClient *redis.Client) service.AlertRepository {
	return &AlertRepository{
		db:          db,
		redisClient: redisClient,
	}
}

const alertColumns = `
	id,
	reporter_id,
	title,
	description,
	latitude,
	longitude,
	accuracy,
	severity_score,
	tap_count,
	tap_frequency,
	last_tap_at,
	media_storage_id,
	media_url,
	is_recording,
	is_streaming,
	status,
	created_at,
	updated_at,
	resolved_at
`

func scanAlert(row pgx.Row) (*models.Alert, error) {
	alert := &models.Alert{}
	err := row.Scan(
		&alert.ID,
		&alert.ReporterID,
		&alert.Title,
		&alert.Description,
		&alert.Latitude,
		&alert.Longitude,
		&alert.Accuracy,
		&alert.SeverityScore,
		&alert.TapCount,
		&alert.TapFrequency,
		&alert.LastTapAt,
		&alert.MediaStorageID,
		&alert.MediaURL,
		&alert.IsRecording,
		&alert.IsStreaming,
		&alert.Status,
		&alert.CreatedAt,
		&alert.UpdatedAt,
		&alert.ResolvedAt,
	)
	if err != nil {
		return nil, err
	}
	return alert, nil
}

func collectAlerts(rows pgx.Rows) ([]*models.Alert, error) {
	defer rows.Close()
	alerts := make([]*models.Alert, 0)
	for rows.Next() {
		alert, err := scanAlert(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan alert row: %w", err)
		}
		alerts = append(alerts, alert)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error alert rows iteration: %w", err)
	}
	return alerts, nil
}

// CreateAlertWithTap создает тревогу вместе с первым тапом одной транзакцией
func (r *AlertRepository) CreateAlertWithTap(ctx context.Context, alert *models.Alert, tap *models.Tap) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	alertQuery := `
		INSERT INTO alerts (reporter_id, title, description, latitude, longitude, accuracy,
			severity_score, tap_count, tap_frequency, last_tap_at, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at;
	`
	err = tx.QueryRow(ctx, alertQuery,
		alert.ReporterID,
		alert.Title,
		alert.Description,
		alert.Latitude,
		alert.Longitude,
		alert.Accuracy,
		alert.SeverityScore,
		alert.TapCount,
		alert.TapFrequency,
		alert.LastTapAt,
		alert.Status,
	).Scan(&alert.ID, &alert.CreatedAt, &alert.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create alert: %w", err)
	}

	tap.AlertID = alert.ID
	tapQuery := `
		INSERT INTO taps (alert_id, reporter_id, latitude, longitude, created_at)
		VALUES ($1, $2, $3, $4, $5) RETURNING id;
	`
	err = tx.QueryRow(ctx, tapQuery,
		tap.AlertID,
		tap.ReporterID,
		tap.Latitude,
		tap.Longitude,
		tap.CreatedAt,
	).Scan(&tap.ID)
	if err != nil {
		return fmt.Errorf("failed to create initial tap: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit alert creation: %w", err)
	}
	return nil
}

// GetByID возвращает тревогу по её UUID
func (r *AlertRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Alert, error) {
	query := `SELECT ` + alertColumns + ` FROM alerts WHERE id = $1;`
	alert, err := scanAlert(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("alert with id %s: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get alert by id: %w", err)
	}
	return alert, nil
}

// AppendTapAndUpdateAlert добавляет тап и фиксирует пересчитанные метрики
// тревоги одной транзакцией: рассылка никогда не видит незакоммиченное состояние
func (r *AlertRepository) AppendTapAndUpdateAlert(ctx context.Context, tap *models.Tap, alert *models.Alert) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tapQuery := `
		INSERT INTO taps (alert_id, reporter_id, latitude, longitude, created_at)
		VALUES ($1, $2, $3, $4, $5) RETURNING id;
	`
	err = tx.QueryRow(ctx, tapQuery,
		tap.AlertID,
		tap.ReporterID,
		tap.Latitude,
		tap.Longitude,
		tap.CreatedAt,
	).Scan(&tap.ID)
	if err != nil {
		return fmt.Errorf("failed to insert tap: %w", err)
	}

	alertQuery := `
		UPDATE alerts SET
			tap_count = $1,
			tap_frequency = $2,
			last_tap_at = $3,
			severity_score = $4,
			status = $5,
			updated_at = NOW()
		WHERE id = $6;
	`
	cmdTag, err := tx.Exec(ctx, alertQuery,
		alert.TapCount,
		alert.TapFrequency,
		alert.LastTapAt,
		alert.SeverityScore,
		alert.Status,
		alert.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update alert metrics: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("alert with id %s for tap: %w", alert.ID, service.ErrNotFound)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit tap: %w", err)
	}
	return nil
}

// ListTaps возвращает полный журнал тапов тревоги
func (r *AlertRepository) ListTaps(ctx context.Context, alertID uuid.UUID) ([]*models.Tap, error) {
	query := `
		SELECT id, alert_id, reporter_id, latitude, longitude, created_at
		FROM taps
		WHERE alert_id = $1
		ORDER BY created_at;
	`
	rows, err := r.db.Query(ctx, query, alertID)
	if err != nil {
		return nil, fmt.Errorf("failed to list taps: %w", err)
	}
	defer rows.Close()

	taps := make([]*models.Tap, 0)
	for rows.Next() {
		tap := &models.Tap{}
		err := rows.Scan(
			&tap.ID,
			&tap.AlertID,
			&tap.ReporterID,
			&tap.Latitude,
			&tap.Longitude,
			&tap.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tap row: %w", err)
		}
		taps = append(taps, tap)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error taps iteration: %w", err)
	}
	return taps, nil
}

// UpdateStatus устанавливает статус тревоги и, для терминальных статусов, resolved_at
func (r *AlertRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string, resolvedAt *time.Time) error {
	query := `
		UPDATE alerts SET
			status = $1,
			resolved_at = $2,
			updated_at = NOW()
		WHERE id = $3;
	`
	cmdTag, err := r.db.Exec(ctx, query, status, resolvedAt, id)
	if err != nil {
		return fmt.Errorf("failed to update alert status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("alert with id %s for status update: %w", id, service.ErrNotFound)
	}
	return nil
}

// UpdateRecording обновляет состояние записи/трансляции тревоги
func (r *AlertRepository) UpdateRecording(ctx context.Context, id uuid.UUID, isRecording bool, isStreaming *bool) error {
	query := `
		UPDATE alerts SET
			is_recording = $1,
			is_streaming = COALESCE($2, is_streaming),
			updated_at = NOW()
		WHERE id = $3;
	`
	cmdTag, err := r.db.Exec(ctx, query, isRecording, isStreaming, id)
	if err != nil {
		return fmt.Errorf("failed to update recording state: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("alert with id %s for recording update: %w", id, service.ErrNotFound)
	}
	return nil
}

// AttachMedia сохраняет указатель на медиа и снимает флаг записи
func (r *AlertRepository) AttachMedia(ctx context.Context, id uuid.UUID, storageID, mediaURL string) error {
	query := `
		UPDATE alerts SET
			media_storage_id = $1,
			media_url = $2,
			is_recording = FALSE,
			updated_at = NOW()
		WHERE id = $3;
	`
	cmdTag, err := r.db.Exec(ctx, query, storageID, mediaURL, id)
	if err != nil {
		return fmt.Errorf("failed to attach media: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("alert with id %s for media attach: %w", id, service.ErrNotFound)
	}
	return nil
}

// ListActive возвращает активные и эскалированные тревоги, новые первыми
func (r *AlertRepository) ListActive(ctx context.Context) ([]*models.Alert, error) {
	query := `
		SELECT ` + alertColumns + `
		FROM alerts
		WHERE status IN ('active', 'escalated')
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active alerts: %w", err)
	}
	return collectAlerts(rows)
}

// ListActiveByReporter возвращает активные и эскалированные тревоги автора
func (r *AlertRepository) ListActiveByReporter(ctx context.Context, reporterID string) ([]*models.Alert, error) {
	query := `
		SELECT ` + alertColumns + `
		FROM alerts
		WHERE reporter_id = $1 AND status IN ('active', 'escalated')
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, reporterID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reporter alerts: %w", err)
	}
	return collectAlerts(rows)
}

// ListSince возвращает тревоги любых статусов, созданные не раньше указанного момента
func (r *AlertRepository) ListSince(ctx context.Context, since time.Time) ([]*models.Alert, error) {
	query := `
		SELECT ` + alertColumns + `
		FROM alerts
		WHERE created_at >= $1
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list alert history: %w", err)
	}
	return collectAlerts(rows)
}

// GetAlertFromCache пытается получить тревогу из Redis
func (r *AlertRepository) GetAlertFromCache(ctx context.Context, id uuid.UUID) (*models.Alert, error) {
	key := fmt.Sprintf("alert:%s", id.String())
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get alert from cache: %w", err)
	}

	alert := &models.Alert{}
	if err := json.Unmarshal(val, alert); err != nil {
		return nil, fmt.Errorf("failed to unmarshal alert from cache: %w", err)
	}
	return alert, nil
}

// SetAlertCache сохраняет тревогу в Redis
func (r *AlertRepository) SetAlertCache(ctx context.Context, alert *models.Alert) error {
	key := fmt.Sprintf("alert:%s", alert.ID.String())
	val, err := json.Marshal(alert)
	if err != nil {
		return fmt.Errorf("failed to marshal alert for cache: %w", err)
	}
	// Устанавливаем срок жизни кэша, например, 5 минут
	if err := r.redisClient.Set(ctx, key, val, 5*time.Minute).Err(); err != nil {
		return fmt.Errorf("failed to set alert in cache: %w", err)
	}
	return nil
}

// InvalidateAlertCache удаляет тревогу из Redis кэша
func (r *AlertRepository) InvalidateAlertCache(ctx context.Context, id uuid.UUID) error {
	key := fmt.Sprintf("alert:%s", id.String())
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate alert cache: %w", err)
	}
	return nil
}
