package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/crowd_alert_system/internal/config"
	"github.com/shenikar/crowd_alert_system/internal/service"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -destination=mocks/mock_service.go -package=mocks github.com/shenikar/crowd_alert_system/internal/service AlertService,UserService,NotificationService

type Handler struct {
	alertService        service.AlertService
	userService         service.UserService
	notificationService service.NotificationService
	logger              *logrus.Logger
	validate            *validator.Validate
	cfg                 *config.Config
}

func NewHandler(alertService service.AlertService, userService service.UserService, notificationService service.NotificationService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		alertService:        alertService,
		userService:         userService,
		notificationService: notificationService,
		logger:              logger,
		validate:            validator.New(),
		cfg:                 cfg,
	}
}

// respondError отображает доменные ошибки сервиса на HTTP-статусы
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, service.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
	case errors.Is(err, service.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, service.ErrAlertClosed):
		c.JSON(http.StatusConflict, gin.H{"error": "alert is closed"})
	case errors.Is(err, service.ErrInvalidLocation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid location"})
	default:
		log.WithError(err).Error("Unhandled service error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// @Summary Create a new alert
// @Description Create a new emergency alert with the initial tap. Nearby users are notified immediately. Requires API key and user identity.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param alert body CreateAlertRequest true "Alert creation request"
// @Success 201 {object} AlertResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts [post]
func (h *Handler) createAlert(c *gin.Context) {
	var input CreateAlertRequest
	log := h.logger.WithField("method", "createAlert")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	alert, err := h.alertService.CreateAlert(c.Request.Context(), callerID(c), service.CreateAlertInput{
		Title:       input.Title,
		Description: input.Description,
		Latitude:    *input.Latitude,
		Longitude:   *input.Longitude,
		Accuracy:    input.Accuracy,
	})
	if err != nil {
		log.WithError(err).Warn("Failed to create alert in service")
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToAlertResponse(alert))
}

// @Summary Record a tap on an alert
// @Description Record a corroboration tap against an existing alert and recompute its severity. Requires API key and user identity.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Alert ID"
// @Param tap body RecordTapRequest true "Tap request"
// @Success 200 {object} TapResultResponse
// @Failure 400 {object} map[string]string "Invalid alert ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Alert not found"
// @Failure 409 {object} map[string]string "Alert is closed"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts/{id}/taps [post]
func (h *Handler) recordTap(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alert ID"})
		return
	}
	log := h.logger.WithField("method", "recordTap").WithField("id", id)

	var input RecordTapRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.alertService.RecordTap(c.Request.Context(), id, callerID(c), *input.Latitude, *input.Longitude)
	if err != nil {
		log.WithError(err).Warn("Failed to record tap in service")
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, TapResultToResponse(result))
}

// @Summary Update alert status
// @Description Transition an alert into a new status. Only the original reporter may do this. Requires API key and user identity.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Alert ID"
// @Param status body UpdateStatusRequest true "Status update request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid alert ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Alert not found"
// @Failure 409 {object} map[string]string "Alert is closed"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts/{id}/status [patch]
func (h *Handler) updateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alert ID"})
		return
	}
	log := h.logger.WithField("method", "updateStatus").WithField("id", id)

	var input UpdateStatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.alertService.UpdateStatus(c.Request.Context(), id, callerID(c), input.Status); err != nil {
		log.WithError(err).Warn("Failed to update alert status in service")
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Update recording state
// @Description Update the recording/streaming flags of an alert. Only the original reporter may do this. Requires API key and user identity.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Alert ID"
// @Param recording body UpdateRecordingRequest true "Recording state request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid alert ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Alert not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts/{id}/recording [patch]
func (h *Handler) updateRecording(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alert ID"})
		return
	}
	log := h.logger.WithField("method", "updateRecording").WithField("id", id)

	var input UpdateRecordingRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.alertService.UpdateRecording(c.Request.Context(), id, callerID(c), *input.IsRecording, input.IsStreaming); err != nil {
		log.WithError(err).Warn("Failed to update recording state in service")
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Attach media to an alert
// @Description Save a pointer to recorded media on an alert. Only the original reporter may do this. Requires API key and user identity.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Alert ID"
// @Param media body AttachMediaRequest true "Media attach request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid alert ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Alert not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts/{id}/media [post]
func (h *Handler) attachMedia(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alert ID"})
		return
	}
	log := h.logger.WithField("method", "attachMedia").WithField("id", id)

	var input AttachMediaRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.alertService.AttachMedia(c.Request.Context(), id, callerID(c), input.StorageID, input.MediaURL); err != nil {
		log.WithError(err).Warn("Failed to attach media in service")
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Get alert by ID with metrics
// @Description Get a single alert with derived metrics: recent tap count, unique reporters, severity level, notification radius. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Alert ID"
// @Success 200 {object} AlertDetailsResponse
// @Failure 400 {object} map[string]string "Invalid alert ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Alert not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts/{id} [get]
func (h *Handler) getAlert(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alert ID"})
		return
	}
	log := h.logger.WithField("method", "getAlert").WithField("id", id)

	details, err := h.alertService.GetAlertWithMetrics(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get alert from service")
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, DetailsToResponse(details))
}

// @Summary Get active alerts
// @Description Get all active and escalated alerts, most recent first. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} AlertResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts [get]
func (h *Handler) listActiveAlerts(c *gin.Context) {
	log := h.logger.WithField("method", "listActiveAlerts")

	alerts, err := h.alertService.ListActiveAlerts(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list active alerts from service")
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToAlertResponses(alerts))
}

// @Summary Get caller's active alerts
// @Description Get the calling user's active and escalated alerts. Returns an empty list without user identity. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} AlertResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts/mine [get]
func (h *Handler) listReporterAlerts(c *gin.Context) {
	log := h.logger.WithField("method", "listReporterAlerts")

	alerts, err := h.alertService.ListReporterAlerts(c.Request.Context(), callerID(c))
	if err != nil {
		log.WithError(err).Error("Failed to list reporter alerts from service")
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToAlertResponses(alerts))
}

// @Summary Get nearby active alerts
// @Description Get active alerts within a radius of a coordinate, closest first. Returns an empty list without user identity. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Param radius_km query number false "Radius in kilometers"
// @Success 200 {array} AlertWithDistanceResponse
// @Failure 400 {object} map[string]string "Invalid coordinates"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts/nearby [get]
func (h *Handler) nearbyAlerts(c *gin.Context) {
	log := h.logger.WithField("method", "nearbyAlerts")

	lat, err1 := strconv.ParseFloat(c.Query("lat"), 64)
	lon, err2 := strconv.ParseFloat(c.Query("lon"), 64)
	if err1 != nil || err2 != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid coordinates"})
		return
	}
	radiusKm, _ := strconv.ParseFloat(c.DefaultQuery("radius_km", "0"), 64)

	alerts, err := h.alertService.NearbyAlerts(c.Request.Context(), callerID(c), lat, lon, radiusKm)
	if err != nil {
		log.WithError(err).Error("Failed to list nearby alerts from service")
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, WithDistanceToResponses(alerts))
}

// @Summary Get alert history
// @Description Get alerts of any status within the history window, filtered by distance from a coordinate. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Param radius_km query number false "Radius in kilometers"
// @Success 200 {array} AlertWithDistanceResponse
// @Failure 400 {object} map[string]string "Invalid coordinates"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts/history [get]
func (h *Handler) alertHistory(c *gin.Context) {
	log := h.logger.WithField("method", "alertHistory")

	lat, err1 := strconv.ParseFloat(c.Query("lat"), 64)
	lon, err2 := strconv.ParseFloat(c.Query("lon"), 64)
	if err1 != nil || err2 != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid coordinates"})
		return
	}
	radiusKm, _ := strconv.ParseFloat(c.DefaultQuery("radius_km", "0"), 64)

	alerts, err := h.alertService.AlertHistory(c.Request.Context(), lat, lon, radiusKm)
	if err != nil {
		log.WithError(err).Error("Failed to list alert history from service")
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, WithDistanceToResponses(alerts))
}

// @Summary Sync user profile
// @Description Create or update the calling user's profile from the external identity provider. Requires API key and user identity.
// @Tags Users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param user body SyncUserRequest true "User sync request"
// @Success 200 {object} UserResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users/sync [post]
func (h *Handler) syncUser(c *gin.Context) {
	var input SyncUserRequest
	log := h.logger.WithField("method", "syncUser")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.SyncUser(c.Request.Context(), service.SyncUserInput{
		ID:           callerID(c),
		Email:        input.Email,
		FullName:     input.FullName,
		ProfileImage: input.ProfileImage,
	})
	if err != nil {
		log.WithError(err).Warn("Failed to sync user in service")
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToUserResponse(user))
}

// @Summary Report user location
// @Description Save the calling user's last known coordinate for proximity notifications. Requires API key and user identity.
// @Tags Users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param location body UpdateLocationRequest true "Location update request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users/location [put]
func (h *Handler) updateLocation(c *gin.Context) {
	var input UpdateLocationRequest
	log := h.logger.WithField("method", "updateLocation")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.userService.UpdateLocation(c.Request.Context(), callerID(c), *input.Latitude, *input.Longitude, input.Accuracy); err != nil {
		log.WithError(err).Warn("Failed to update user location in service")
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Get notification feed
// @Description Get the calling user's notifications, most recent first. Returns an empty list without user identity. Requires API key.
// @Tags Notifications
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} NotificationResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /notifications [get]
func (h *Handler) listNotifications(c *gin.Context) {
	log := h.logger.WithField("method", "listNotifications")

	notifications, err := h.notificationService.ListForRecipient(c.Request.Context(), callerID(c))
	if err != nil {
		log.WithError(err).Error("Failed to list notifications from service")
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToNotificationResponses(notifications))
}

// @Summary Get unread notification count
// @Description Get the number of unread notifications for the calling user. Requires API key.
// @Tags Notifications
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} UnreadCountResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /notifications/unread/count [get]
func (h *Handler) unreadCount(c *gin.Context) {
	log := h.logger.WithField("method", "unreadCount")

	count, err := h.notificationService.UnreadCount(c.Request.Context(), callerID(c))
	if err != nil {
		log.WithError(err).Error("Failed to count unread notifications in service")
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, UnreadCountResponse{Count: count})
}

// @Summary Mark notification as read
// @Description Mark one of the calling user's notifications as read. Requires API key and user identity.
// @Tags Notifications
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Notification ID"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid notification ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Notification not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /notifications/{id}/read [post]
func (h *Handler) markNotificationRead(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid notification ID"})
		return
	}
	log := h.logger.WithField("method", "markNotificationRead").WithField("id", id)

	if err := h.notificationService.MarkRead(c.Request.Context(), id, callerID(c)); err != nil {
		log.WithError(err).Warn("Failed to mark notification as read in service")
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Mark all notifications as read
// @Description Mark all of the calling user's notifications as read. Requires API key and user identity.
// @Tags Notifications
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} MarkAllReadResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /notifications/read-all [post]
func (h *Handler) markAllNotificationsRead(c *gin.Context) {
	log := h.logger.WithField("method", "markAllNotificationsRead")

	updated, err := h.notificationService.MarkAllRead(c.Request.Context(), callerID(c))
	if err != nil {
		log.WithError(err).Warn("Failed to mark all notifications as read in service")
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, MarkAllReadResponse{Updated: updated})
}

// @Summary Delete notification
// @Description Delete one of the calling user's notifications. Requires API key and user identity.
// @Tags Notifications
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Notification ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid notification ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Notification not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /notifications/{id} [delete]
func (h *Handler) deleteNotification(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid notification ID"})
		return
	}
	log := h.logger.WithField("method", "deleteNotification").WithField("id", id)

	if err := h.notificationService.Delete(c.Request.Context(), id, callerID(c)); err != nil {
		log.WithError(err).Warn("Failed to delete notification in service")
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
