package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/crowd_alert_system/internal/config"
	"github.com/shenikar/crowd_alert_system/internal/geo"
	"github.com/shenikar/crowd_alert_system/internal/models"
	"github.com/shenikar/crowd_alert_system/internal/notifier"
	notifier_mocks "github.com/shenikar/crowd_alert_system/internal/notifier/mocks"
	"github.com/shenikar/crowd_alert_system/internal/service/mocks"
	"github.com/shenikar/crowd_alert_system/internal/severity"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

// newTestAlertService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestAlertService(t *testing.T) (*alertService, *mocks.MockAlertRepository, *mocks.MockUserRepository, *mocks.MockNotificationRepository, *notifier_mocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockAlertRepository(ctrl)
	usersMock := mocks.NewMockUserRepository(ctrl)
	notifsMock := mocks.NewMockNotificationRepository(ctrl)
	publisherMock := notifier_mocks.NewMockPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		SeverityWeights:    severity.DefaultWeights,
		TapFrequencyWindow: 10 * time.Second,
		RecentTapsWindow:   time.Minute,
		InitialRadiusKm:    3,
		DefaultNearbyKm:    10,
		DefaultHistoryKm:   50,
		HistoryWindow:      168 * time.Hour,
	}

	svc := NewAlertService(repoMock, usersMock, notifsMock, publisherMock, logger, cfg)
	s := svc.(*alertService)
	s.now = func() time.Time { return testNow }
	return s, repoMock, usersMock, notifsMock, publisherMock
}

func floatPtr(v float64) *float64 { return &v }

func TestCreateAlert_Unauthenticated(t *testing.T) {
	// Подготовка
	service, _, _, _, _ := newTestAlertService(t)

	// Действие
	alert, err := service.CreateAlert(context.Background(), "", CreateAlertInput{Latitude: 55.75, Longitude: 37.61})

	// Проверки
	require.ErrorIs(t, err, ErrUnauthenticated)
	assert.Nil(t, alert)
}

func TestCreateAlert_InvalidLocation(t *testing.T) {
	// Подготовка
	service, _, _, _, _ := newTestAlertService(t)

	// Действие
	alert, err := service.CreateAlert(context.Background(), "user-1", CreateAlertInput{Latitude: 91, Longitude: 37.61})

	// Проверки
	require.ErrorIs(t, err, ErrInvalidLocation)
	assert.Nil(t, alert)
}

func TestCreateAlert_Success_InitialFanout(t *testing.T) {
	// Подготовка
	service, repoMock, usersMock, notifsMock, publisherMock := newTestAlertService(t)
	ctx := context.Background()
	alertID := uuid.New()

	nearUser := &models.UserProfile{
		ID:                 "near-user",
		LastKnownLatitude:  floatPtr(55.751),
		LastKnownLongitude: floatPtr(37.611),
	}
	farUser := &models.UserProfile{
		ID:                 "far-user",
		LastKnownLatitude:  floatPtr(56.75),
		LastKnownLongitude: floatPtr(37.61),
	}
	noLocationUser := &models.UserProfile{ID: "no-location"}

	// Ожидания
	repoMock.EXPECT().
		CreateAlertWithTap(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, alert *models.Alert, tap *models.Tap) error {
			// Репозиторий присваивает идентификатор при вставке
			alert.ID = alertID
			assert.Equal(t, 1, alert.TapCount)
			assert.Equal(t, 0, alert.SeverityScore)
			assert.Equal(t, models.AlertStatusActive, alert.Status)
			assert.Equal(t, "reporter-1", tap.ReporterID)
			return nil
		}).
		Times(1)

	usersMock.EXPECT().
		ListWithLocation(ctx).
		Return([]*models.UserProfile{nearUser, farUser, noLocationUser}, nil).
		Times(1)

	// Уведомление получает только пользователь в начальном радиусе
	notifsMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, n *models.Notification) error {
			assert.Equal(t, "near-user", n.RecipientID)
			assert.Equal(t, models.NotificationTypeEmergency, n.Type)
			require.NotNil(t, n.AlertID)
			assert.Equal(t, alertID, *n.AlertID)
			return nil
		}).
		Times(1)

	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event notifier.FanoutEvent) error {
			assert.Equal(t, alertID, event.AlertID)
			assert.Equal(t, 0, event.EscalationEdge)
			assert.Equal(t, 3.0, event.RadiusKm)
			assert.Equal(t, []string{"near-user"}, event.Recipients)
			return nil
		}).
		Times(1)

	// Действие
	alert, err := service.CreateAlert(ctx, "reporter-1", CreateAlertInput{
		Title:     "Fire",
		Latitude:  55.75,
		Longitude: 37.61,
	})

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, alertID, alert.ID)
	assert.Equal(t, testNow, alert.LastTapAt)
}

func TestCreateAlert_ZeroCoordinateAccepted(t *testing.T) {
	// Подготовка: точка (0, 0) лежит в допустимых диапазонах и не отклоняется
	service, repoMock, usersMock, _, _ := newTestAlertService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().CreateAlertWithTap(ctx, gomock.Any(), gomock.Any()).Return(nil).Times(1)
	usersMock.EXPECT().ListWithLocation(ctx).Return([]*models.UserProfile{}, nil).Times(1)

	// Действие
	alert, err := service.CreateAlert(ctx, "reporter-1", CreateAlertInput{Latitude: 0, Longitude: 0})

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 0.0, alert.Latitude)
	assert.Equal(t, 0.0, alert.Longitude)
}

func TestCreateAlert_RepositoryError_NoFanout(t *testing.T) {
	// Подготовка
	service, repoMock, _, _, _ := newTestAlertService(t)
	ctx := context.Background()

	// Ожидания: при ошибке вставки рассылка не запускается вовсе
	repoMock.EXPECT().
		CreateAlertWithTap(ctx, gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("connection refused")).
		Times(1)

	// Действие
	alert, err := service.CreateAlert(ctx, "reporter-1", CreateAlertInput{Latitude: 55.75, Longitude: 37.61})

	// Проверки
	require.Error(t, err)
	assert.Nil(t, alert)
	assert.ErrorContains(t, err, "could not create alert")
}

func TestRecordTap_Unauthenticated(t *testing.T) {
	// Подготовка
	service, _, _, _, _ := newTestAlertService(t)

	// Действие
	result, err := service.RecordTap(context.Background(), uuid.New(), "", 55.75, 37.61)

	// Проверки
	require.ErrorIs(t, err, ErrUnauthenticated)
	assert.Nil(t, result)
}

func TestRecordTap_NotFound(t *testing.T) {
	// Подготовка
	service, repoMock, _, _, _ := newTestAlertService(t)
	ctx := context.Background()
	alertID := uuid.New()

	// Ожидания
	repoMock.EXPECT().
		GetByID(ctx, alertID).
		Return(nil, fmt.Errorf("alert with id %s: %w", alertID, ErrNotFound)).
		Times(1)

	// Действие
	result, err := service.RecordTap(ctx, alertID, "reporter-2", 55.75, 37.61)

	// Проверки
	require.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, result)
}

func TestRecordTap_ClosedAlert(t *testing.T) {
	// Подготовка
	service, repoMock, _, _, _ := newTestAlertService(t)
	ctx := context.Background()
	alertID := uuid.New()
	closed := &models.Alert{
		ID:     alertID,
		Status: models.AlertStatusResolved,
	}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, alertID).Return(closed, nil).Times(1)

	// Действие
	result, err := service.RecordTap(ctx, alertID, "reporter-2", 55.75, 37.61)

	// Проверки
	require.ErrorIs(t, err, ErrAlertClosed)
	assert.Nil(t, result)
}

func TestRecordTap_RecomputesFromFullLog(t *testing.T) {
	// Подготовка: счётчики на самой тревоге устарели, пересчёт идёт по журналу
	service, repoMock, _, _, _ := newTestAlertService(t)
	ctx := context.Background()
	alertID := uuid.New()
	alert := &models.Alert{
		ID:            alertID,
		ReporterID:    "reporter-1",
		Latitude:      55.75,
		Longitude:     37.61,
		SeverityScore: 0,
		TapCount:      3, // расходится с журналом намеренно
		Status:        models.AlertStatusActive,
	}

	// 6 тапов от 4 уникальных свидетелей, все внутри окна частоты
	taps := []*models.Tap{
		{AlertID: alertID, ReporterID: "reporter-1", CreatedAt: testNow.Add(-5 * time.Second)},
		{AlertID: alertID, ReporterID: "reporter-1", CreatedAt: testNow.Add(-5 * time.Second)},
		{AlertID: alertID, ReporterID: "witness-1", CreatedAt: testNow.Add(-4 * time.Second)},
		{AlertID: alertID, ReporterID: "witness-2", CreatedAt: testNow.Add(-3 * time.Second)},
		{AlertID: alertID, ReporterID: "witness-3", CreatedAt: testNow.Add(-2 * time.Second)},
		{AlertID: alertID, ReporterID: "witness-3", CreatedAt: testNow.Add(-1 * time.Second)},
	}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, alertID).Return(alert, nil).Times(1)
	repoMock.EXPECT().ListTaps(ctx, alertID).Return(taps, nil).Times(1)
	repoMock.EXPECT().
		AppendTapAndUpdateAlert(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tap *models.Tap, updated *models.Alert) error {
			assert.Equal(t, "witness-4", tap.ReporterID)
			assert.Equal(t, 7, updated.TapCount)
			assert.InDelta(t, 0.7, updated.TapFrequency, 1e-9)
			// 20*(7/50) + 30*(0.7/5) + 50*(5/10) = 32
			assert.Equal(t, 32, updated.SeverityScore)
			// Порог 30 пересечён, но эскалация начинается с 50
			assert.Equal(t, models.AlertStatusActive, updated.Status)
			return nil
		}).
		Times(1)
	repoMock.EXPECT().InvalidateAlertCache(ctx, alertID).Return(nil).Times(1)

	// Действие
	result, err := service.RecordTap(ctx, alertID, "witness-4", 55.751, 37.611)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 7, result.TapCount)
	assert.Equal(t, 32, result.SeverityScore)
	assert.True(t, result.Escalated)
	assert.Equal(t, 30, result.EscalationEdge)
}

func TestRecordTap_EscalationFanout(t *testing.T) {
	// Подготовка: пересечение порога 50 переводит тревогу в escalated
	// и запускает рассылку в расширенном радиусе
	service, repoMock, usersMock, notifsMock, publisherMock := newTestAlertService(t)
	ctx := context.Background()
	alertID := uuid.New()
	alert := &models.Alert{
		ID:            alertID,
		ReporterID:    "reporter-1",
		Latitude:      55.75,
		Longitude:     37.61,
		SeverityScore: 45,
		Status:        models.AlertStatusActive,
	}

	// 9 старых тапов от 9 уникальных свидетелей вне окна частоты
	taps := make([]*models.Tap, 0, 9)
	for i := 0; i < 9; i++ {
		taps = append(taps, &models.Tap{
			AlertID:    alertID,
			ReporterID: fmt.Sprintf("witness-%d", i),
			CreatedAt:  testNow.Add(-30 * time.Second),
		})
	}

	nearUser := &models.UserProfile{
		ID:                 "near-user",
		LastKnownLatitude:  floatPtr(55.76),
		LastKnownLongitude: floatPtr(37.62),
	}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, alertID).Return(alert, nil).Times(1)
	repoMock.EXPECT().ListTaps(ctx, alertID).Return(taps, nil).Times(1)
	repoMock.EXPECT().
		AppendTapAndUpdateAlert(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *models.Tap, updated *models.Alert) error {
			// 20*(10/50) + 30*(0.1/5) + 50*(10/10) = 54.6 -> 55
			assert.Equal(t, 55, updated.SeverityScore)
			assert.Equal(t, models.AlertStatusEscalated, updated.Status)
			return nil
		}).
		Times(1)
	repoMock.EXPECT().InvalidateAlertCache(ctx, alertID).Return(nil).Times(1)

	usersMock.EXPECT().ListWithLocation(ctx).Return([]*models.UserProfile{nearUser}, nil).Times(1)
	notifsMock.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(1)
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event notifier.FanoutEvent) error {
			assert.Equal(t, 50, event.EscalationEdge)
			assert.Equal(t, 10.0, event.RadiusKm)
			assert.Equal(t, 55, event.SeverityScore)
			return nil
		}).
		Times(1)

	// Действие
	result, err := service.RecordTap(ctx, alertID, "witness-final", 55.751, 37.611)

	// Проверки
	require.NoError(t, err)
	assert.True(t, result.Escalated)
	assert.Equal(t, 50, result.EscalationEdge)
	assert.Equal(t, 55, result.SeverityScore)
}

func TestRecordTap_PersistFails_NoFanout(t *testing.T) {
	// Подготовка: при ошибке фиксации рассылка не запускается,
	// моки пользователей и уведомлений не должны вызываться
	service, repoMock, _, _, _ := newTestAlertService(t)
	ctx := context.Background()
	alertID := uuid.New()
	alert := &models.Alert{
		ID:         alertID,
		ReporterID: "reporter-1",
		Status:     models.AlertStatusActive,
	}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, alertID).Return(alert, nil).Times(1)
	repoMock.EXPECT().ListTaps(ctx, alertID).Return([]*models.Tap{}, nil).Times(1)
	repoMock.EXPECT().
		AppendTapAndUpdateAlert(ctx, gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("deadlock detected")).
		Times(1)

	// Действие
	result, err := service.RecordTap(ctx, alertID, "witness-1", 55.75, 37.61)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorContains(t, err, "could not record tap")
}

func TestUpdateStatus_Unauthorized(t *testing.T) {
	// Подготовка
	service, repoMock, _, _, _ := newTestAlertService(t)
	ctx := context.Background()
	alertID := uuid.New()
	alert := &models.Alert{
		ID:         alertID,
		ReporterID: "reporter-1",
		Status:     models.AlertStatusActive,
	}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, alertID).Return(alert, nil).Times(1)

	// Действие
	err := service.UpdateStatus(ctx, alertID, "somebody-else", models.AlertStatusResolved)

	// Проверки
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestUpdateStatus_Resolved_StampsTimestamp(t *testing.T) {
	// Подготовка
	service, repoMock, _, _, _ := newTestAlertService(t)
	ctx := context.Background()
	alertID := uuid.New()
	alert := &models.Alert{
		ID:         alertID,
		ReporterID: "reporter-1",
		Status:     models.AlertStatusEscalated,
	}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, alertID).Return(alert, nil).Times(1)
	repoMock.EXPECT().
		UpdateStatus(ctx, alertID, models.AlertStatusResolved, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _ string, resolvedAt *time.Time) error {
			require.NotNil(t, resolvedAt)
			assert.Equal(t, testNow, *resolvedAt)
			return nil
		}).
		Times(1)
	repoMock.EXPECT().InvalidateAlertCache(ctx, alertID).Return(nil).Times(1)

	// Действие
	err := service.UpdateStatus(ctx, alertID, "reporter-1", models.AlertStatusResolved)

	// Проверки
	require.NoError(t, err)
}

func TestUpdateStatus_TerminalIsFinal(t *testing.T) {
	// Подготовка: завершённая тревога не переводится ни в какой статус
	service, repoMock, _, _, _ := newTestAlertService(t)
	ctx := context.Background()
	alertID := uuid.New()
	alert := &models.Alert{
		ID:         alertID,
		ReporterID: "reporter-1",
		Status:     models.AlertStatusFalseAlarm,
	}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, alertID).Return(alert, nil).Times(1)

	// Действие
	err := service.UpdateStatus(ctx, alertID, "reporter-1", models.AlertStatusActive)

	// Проверки
	require.ErrorIs(t, err, ErrAlertClosed)
}

func TestGetAlertWithMetrics_FromCache(t *testing.T) {
	// Подготовка
	service, repoMock, _, _, _ := newTestAlertService(t)
	ctx := context.Background()
	alertID := uuid.New()
	alert := &models.Alert{
		ID:            alertID,
		SeverityScore: 62,
		Status:        models.AlertStatusEscalated,
	}
	taps := []*models.Tap{
		{AlertID: alertID, ReporterID: "reporter-1", CreatedAt: testNow.Add(-30 * time.Second)},
		{AlertID: alertID, ReporterID: "witness-1", CreatedAt: testNow.Add(-10 * time.Second)},
		{AlertID: alertID, ReporterID: "witness-1", CreatedAt: testNow.Add(-2 * time.Hour)},
	}

	// Ожидания
	repoMock.EXPECT().GetAlertFromCache(ctx, alertID).Return(alert, nil).Times(1)
	repoMock.EXPECT().ListTaps(ctx, alertID).Return(taps, nil).Times(1)

	// Действие
	details, err := service.GetAlertWithMetrics(ctx, alertID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, alert, details.Alert)
	assert.Equal(t, 2, details.RecentTapCount)
	assert.Equal(t, 2, details.UniqueReporters)
	assert.Equal(t, severity.LevelHigh, details.SeverityLevel)
	assert.Equal(t, 10.0, details.NotificationRadiusKm)
}

func TestGetAlertWithMetrics_CacheMiss_FallsBackToDB(t *testing.T) {
	// Подготовка
	service, repoMock, _, _, _ := newTestAlertService(t)
	ctx := context.Background()
	alertID := uuid.New()
	alert := &models.Alert{ID: alertID, Status: models.AlertStatusActive}

	// Ожидания
	repoMock.EXPECT().GetAlertFromCache(ctx, alertID).Return(nil, nil).Times(1)
	repoMock.EXPECT().GetByID(ctx, alertID).Return(alert, nil).Times(1)
	repoMock.EXPECT().SetAlertCache(ctx, alert).Return(nil).Times(1)
	repoMock.EXPECT().ListTaps(ctx, alertID).Return([]*models.Tap{}, nil).Times(1)

	// Действие
	details, err := service.GetAlertWithMetrics(ctx, alertID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, alert, details.Alert)
	assert.Equal(t, 0, details.RecentTapCount)
}

func TestNearbyAlerts_EmptyWithoutIdentity(t *testing.T) {
	// Подготовка
	service, _, _, _, _ := newTestAlertService(t)

	// Действие
	alerts, err := service.NearbyAlerts(context.Background(), "", 55.75, 37.61, 10)

	// Проверки
	require.NoError(t, err)
	assert.Empty(t, alerts)
}

func TestNearbyAlerts_BoundaryInclusive_SortedByDistance(t *testing.T) {
	// Подготовка
	service, repoMock, _, _, _ := newTestAlertService(t)
	ctx := context.Background()

	queryLat, queryLon := 55.75, 37.61
	onBoundary := &models.Alert{ID: uuid.New(), Latitude: 55.80, Longitude: 37.61, Status: models.AlertStatusActive}
	atCenter := &models.Alert{ID: uuid.New(), Latitude: 55.75, Longitude: 37.61, Status: models.AlertStatusActive}
	outside := &models.Alert{ID: uuid.New(), Latitude: 56.75, Longitude: 37.61, Status: models.AlertStatusActive}

	// Радиус равен точному расстоянию до граничной тревоги: d <= r включает её
	radius := geo.DistanceKm(queryLat, queryLon, onBoundary.Latitude, onBoundary.Longitude)

	// Ожидания
	repoMock.EXPECT().ListActive(ctx).Return([]*models.Alert{onBoundary, atCenter, outside}, nil).Times(1)

	// Действие
	alerts, err := service.NearbyAlerts(ctx, "user-1", queryLat, queryLon, radius)

	// Проверки
	require.NoError(t, err)
	require.Len(t, alerts, 2)
	assert.Equal(t, atCenter.ID, alerts[0].Alert.ID)
	assert.Equal(t, onBoundary.ID, alerts[1].Alert.ID)
	assert.Equal(t, 0.0, alerts[0].DistanceKm)
}

func TestNearbyAlerts_DefaultRadius(t *testing.T) {
	// Подготовка: при нулевом радиусе используется радиус по умолчанию
	service, repoMock, _, _, _ := newTestAlertService(t)
	ctx := context.Background()
	near := &models.Alert{ID: uuid.New(), Latitude: 55.76, Longitude: 37.61, Status: models.AlertStatusActive}

	// Ожидания
	repoMock.EXPECT().ListActive(ctx).Return([]*models.Alert{near}, nil).Times(1)

	// Действие
	alerts, err := service.NearbyAlerts(ctx, "user-1", 55.75, 37.61, 0)

	// Проверки
	require.NoError(t, err)
	require.Len(t, alerts, 1)
}

func TestAlertHistory_FiltersByWindowAndDistance(t *testing.T) {
	// Подготовка
	service, repoMock, _, _, _ := newTestAlertService(t)
	ctx := context.Background()
	resolved := &models.Alert{ID: uuid.New(), Latitude: 55.76, Longitude: 37.61, Status: models.AlertStatusResolved}
	distant := &models.Alert{ID: uuid.New(), Latitude: 45.0, Longitude: 37.61, Status: models.AlertStatusResolved}

	// Ожидания
	repoMock.EXPECT().
		ListSince(ctx, testNow.Add(-168*time.Hour)).
		Return([]*models.Alert{resolved, distant}, nil).
		Times(1)

	// Действие
	alerts, err := service.AlertHistory(ctx, 55.75, 37.61, 0)

	// Проверки
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, resolved.ID, alerts[0].Alert.ID)
}

func TestRecomputeMetrics_OrderIndependent(t *testing.T) {
	window := 10 * time.Second
	taps := []*models.Tap{
		{ReporterID: "a", CreatedAt: testNow.Add(-1 * time.Second)},
		{ReporterID: "b", CreatedAt: testNow.Add(-15 * time.Second)},
		{ReporterID: "a", CreatedAt: testNow.Add(-3 * time.Second)},
		{ReporterID: "c", CreatedAt: testNow.Add(-5 * time.Second)},
	}
	reversed := []*models.Tap{taps[3], taps[2], taps[1], taps[0]}

	count1, freq1, unique1 := recomputeMetrics(taps, testNow, window)
	count2, freq2, unique2 := recomputeMetrics(reversed, testNow, window)

	assert.Equal(t, count1, count2)
	assert.Equal(t, freq1, freq2)
	assert.Equal(t, unique1, unique2)
	assert.Equal(t, 4, count1)
	assert.Equal(t, 3, unique1)
	assert.InDelta(t, 0.3, freq1, 1e-9)
}
