package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/shenikar/crowd_alert_system/internal/models"
	"github.com/shenikar/crowd_alert_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestUserService(t *testing.T) (*userService, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockUserRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	service := NewUserService(repoMock, logger)
	return service.(*userService), repoMock
}

func TestSyncUser_Unauthenticated(t *testing.T) {
	// Подготовка
	service, _ := newTestUserService(t)

	// Действие
	user, err := service.SyncUser(context.Background(), SyncUserInput{Email: "a@b.c"})

	// Проверки
	require.ErrorIs(t, err, ErrUnauthenticated)
	assert.Nil(t, user)
}

func TestSyncUser_Success(t *testing.T) {
	// Подготовка
	service, repoMock := newTestUserService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().
		Upsert(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, user *models.UserProfile) error {
			assert.Equal(t, "user-1", user.ID)
			assert.Equal(t, "a@b.c", user.Email)
			assert.True(t, user.NotificationsEnabled)
			return nil
		}).
		Times(1)

	// Действие
	user, err := service.SyncUser(ctx, SyncUserInput{
		ID:       "user-1",
		Email:    "a@b.c",
		FullName: "Test User",
	})

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, "Test User", user.FullName)
}

func TestSyncUser_RepositoryError(t *testing.T) {
	// Подготовка
	service, repoMock := newTestUserService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().Upsert(ctx, gomock.Any()).Return(fmt.Errorf("connection refused")).Times(1)

	// Действие
	user, err := service.SyncUser(ctx, SyncUserInput{ID: "user-1"})

	// Проверки
	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorContains(t, err, "could not sync user")
}

func TestUpdateLocation_Unauthenticated(t *testing.T) {
	// Подготовка
	service, _ := newTestUserService(t)

	// Действие
	err := service.UpdateLocation(context.Background(), "", 55.75, 37.61, nil)

	// Проверки
	require.ErrorIs(t, err, ErrUnauthenticated)
}

func TestUpdateLocation_InvalidCoordinate(t *testing.T) {
	// Подготовка
	service, _ := newTestUserService(t)

	// Действие
	err := service.UpdateLocation(context.Background(), "user-1", 55.75, 181, nil)

	// Проверки
	require.ErrorIs(t, err, ErrInvalidLocation)
}

func TestUpdateLocation_Success(t *testing.T) {
	// Подготовка
	service, repoMock := newTestUserService(t)
	ctx := context.Background()
	accuracy := 12.5

	// Ожидания
	repoMock.EXPECT().SaveLocation(ctx, "user-1", 55.75, 37.61, &accuracy).Return(nil).Times(1)

	// Действие
	err := service.UpdateLocation(ctx, "user-1", 55.75, 37.61, &accuracy)

	// Проверки
	require.NoError(t, err)
}
