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

func newTestNotificationService(t *testing.T) (*notificationService, *mocks.MockNotificationRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockNotificationRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	service := NewNotificationService(repoMock, logger)
	return service.(*notificationService), repoMock
}

func TestListForRecipient_EmptyWithoutIdentity(t *testing.T) {
	// Подготовка
	service, _ := newTestNotificationService(t)

	// Действие
	notifications, err := service.ListForRecipient(context.Background(), "")

	// Проверки
	require.NoError(t, err)
	assert.Empty(t, notifications)
}

func TestListForRecipient_Success(t *testing.T) {
	// Подготовка
	service, repoMock := newTestNotificationService(t)
	ctx := context.Background()
	expected := []*models.Notification{
		{ID: 2, RecipientID: "user-1", Title: "EMERGENCY ALERT"},
		{ID: 1, RecipientID: "user-1", Title: "EMERGENCY ALERT"},
	}

	// Ожидания
	repoMock.EXPECT().ListByRecipient(ctx, "user-1").Return(expected, nil).Times(1)

	// Действие
	notifications, err := service.ListForRecipient(ctx, "user-1")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, notifications)
}

func TestUnreadCount_ZeroWithoutIdentity(t *testing.T) {
	// Подготовка
	service, _ := newTestNotificationService(t)

	// Действие
	count, err := service.UnreadCount(context.Background(), "")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestMarkRead_Unauthenticated(t *testing.T) {
	// Подготовка
	service, _ := newTestNotificationService(t)

	// Действие
	err := service.MarkRead(context.Background(), 1, "")

	// Проверки
	require.ErrorIs(t, err, ErrUnauthenticated)
}

func TestMarkRead_NotFound(t *testing.T) {
	// Подготовка
	service, repoMock := newTestNotificationService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().
		MarkRead(ctx, int64(42), "user-1").
		Return(fmt.Errorf("notification with id 42: %w", ErrNotFound)).
		Times(1)

	// Действие
	err := service.MarkRead(ctx, 42, "user-1")

	// Проверки
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMarkAllRead_Success(t *testing.T) {
	// Подготовка
	service, repoMock := newTestNotificationService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().MarkAllRead(ctx, "user-1").Return(3, nil).Times(1)

	// Действие
	count, err := service.MarkAllRead(ctx, "user-1")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestDeleteNotification_Success(t *testing.T) {
	// Подготовка
	service, repoMock := newTestNotificationService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().Delete(ctx, int64(7), "user-1").Return(nil).Times(1)

	// Действие
	err := service.Delete(ctx, 7, "user-1")

	// Проверки
	require.NoError(t, err)
}
