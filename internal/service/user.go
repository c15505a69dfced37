package service

import (
	"context"
	"fmt"

	"github.com/shenikar/crowd_alert_system/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=user.go -destination=mocks/mock_user.go -package=mocks -exclude_interfaces=UserService

// UserRepository определяет контракт для работы с профилями пользователей
// и справочником последних известных координат
type UserRepository interface {
	Upsert(ctx context.Context, user *models.UserProfile) error
	GetByID(ctx context.Context, id string) (*models.UserProfile, error)
	SaveLocation(ctx context.Context, userID string, lat, lon float64, accuracy *float64) error
	ListWithLocation(ctx context.Context) ([]*models.UserProfile, error)
}

// SyncUserInput - данные профиля из внешнего провайдера идентификации
type SyncUserInput struct {
	ID           string
	Email        string
	FullName     string
	ProfileImage *string
}

// UserService определяет контракт для синхронизации профилей и координат
type UserService interface {
	SyncUser(ctx context.Context, input SyncUserInput) (*models.UserProfile, error)
	UpdateLocation(ctx context.Context, userID string, lat, lon float64, accuracy *float64) error
}

type userService struct {
	repo   UserRepository
	logger *logrus.Logger
}

func NewUserService(repo UserRepository, logger *logrus.Logger) UserService {
	return &userService{
		repo:   repo,
		logger: logger,
	}
}

// SyncUser создает или обновляет профиль пользователя из внешнего провайдера
func (s *userService) SyncUser(ctx context.Context, input SyncUserInput) (*models.UserProfile, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "user",
		"method":  "SyncUser",
		"user_id": input.ID,
	})

	if input.ID == "" {
		return nil, ErrUnauthenticated
	}

	user := &models.UserProfile{
		ID:                   input.ID,
		Email:                input.Email,
		FullName:             input.FullName,
		ProfileImage:         input.ProfileImage,
		NotificationsEnabled: true,
	}

	if err := s.repo.Upsert(ctx, user); err != nil {
		log.WithError(err).Error("Failed to upsert user in repository")
		return nil, fmt.Errorf("service: could not sync user: %w", err)
	}

	log.Info("User synced successfully")
	return user, nil
}

// UpdateLocation сохраняет последнюю известную координату пользователя.
// Это путь обновления справочника местоположений для рассылки.
func (s *userService) UpdateLocation(ctx context.Context, userID string, lat, lon float64, accuracy *float64) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "user",
		"method":  "UpdateLocation",
		"user_id": userID,
	})

	if userID == "" {
		return ErrUnauthenticated
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return ErrInvalidLocation
	}

	if err := s.repo.SaveLocation(ctx, userID, lat, lon, accuracy); err != nil {
		log.WithError(err).Error("Failed to save user location in repository")
		return fmt.Errorf("service: could not save user location: %w", err)
	}

	log.Info("User location updated successfully")
	return nil
}
