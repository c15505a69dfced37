package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/crowd_alert_system/internal/models"
	"github.com/shenikar/crowd_alert_system/internal/service"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) service.UserRepository {
	return &UserRepository{db: db}
}

// Upsert создает профиль пользователя или обновляет данные существующего
func (r *UserRepository) Upsert(ctx context.Context, user *models.UserProfile) error {
	query := `
		INSERT INTO users (id, email, full_name, profile_image, notifications_enabled)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			email = EXCLUDED.email,
			full_name = EXCLUDED.full_name,
			profile_image = EXCLUDED.profile_image,
			updated_at = NOW()
		RETURNING created_at, updated_at, notifications_enabled;
	`
	err := r.db.QueryRow(ctx, query,
		user.ID,
		user.Email,
		user.FullName,
		user.ProfileImage,
		user.NotificationsEnabled,
	).Scan(&user.CreatedAt, &user.UpdatedAt, &user.NotificationsEnabled)
	if err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}
	return nil
}

// GetByID возвращает профиль пользователя по идентификатору
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.UserProfile, error) {
	user := &models.UserProfile{}
	query := `
		SELECT id, email, full_name, profile_image, notifications_enabled,
			last_known_latitude, last_known_longitude, location_accuracy,
			created_at, updated_at
		FROM users
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Email,
		&user.FullName,
		&user.ProfileImage,
		&user.NotificationsEnabled,
		&user.LastKnownLatitude,
		&user.LastKnownLongitude,
		&user.LocationAccuracy,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user with id %s: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}

// SaveLocation обновляет последнюю известную координату пользователя
func (r *UserRepository) SaveLocation(ctx context.Context, userID string, lat, lon float64, accuracy *float64) error {
	query := `
		UPDATE users SET
			last_known_latitude = $1,
			last_known_longitude = $2,
			location_accuracy = $3,
			updated_at = NOW()
		WHERE id = $4;
	`
	cmdTag, err := r.db.Exec(ctx, query, lat, lon, accuracy, userID)
	if err != nil {
		return fmt.Errorf("failed to save user location: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user with id %s for location update: %w", userID, service.ErrNotFound)
	}
	return nil
}

// ListWithLocation возвращает снимок справочника местоположений:
// всех пользователей с известной последней координатой
func (r *UserRepository) ListWithLocation(ctx context.Context) ([]*models.UserProfile, error) {
	query := `
		SELECT id, email, full_name, profile_image, notifications_enabled,
			last_known_latitude, last_known_longitude, location_accuracy,
			created_at, updated_at
		FROM users
		WHERE last_known_latitude IS NOT NULL AND last_known_longitude IS NOT NULL;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users with location: %w", err)
	}
	defer rows.Close()

	users := make([]*models.UserProfile, 0)
	for rows.Next() {
		user := &models.UserProfile{}
		err := rows.Scan(
			&user.ID,
			&user.Email,
			&user.FullName,
			&user.ProfileImage,
			&user.NotificationsEnabled,
			&user.LastKnownLatitude,
			&user.LastKnownLongitude,
			&user.LocationAccuracy,
			&user.CreatedAt,
			&user.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error users iteration: %w", err)
	}
	return users, nil
}
