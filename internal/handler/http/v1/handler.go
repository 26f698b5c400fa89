package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/tourist_safety_system/internal/config"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	detectionService service.DetectionService
	alertService     service.AlertService
	geofenceService  service.GeofenceService
	contactService   service.ContactService
	logger           *logrus.Logger
	validate         *validator.Validate
	cfg              *config.Config
}

func NewHandler(detection service.DetectionService, alerts service.AlertService, geofence service.GeofenceService, contacts service.ContactService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		detectionService: detection,
		alertService:     alerts,
		geofenceService:  geofence,
		contactService:   contacts,
		logger:           logger,
		validate:         validator.New(),
		cfg:              cfg,
	}
}

// @Summary Submit a detection request
// @Description Analyze sensor readings and location risk for a tourist, creating an alert when severity requires it. Requires API key.
// @Tags Detection
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param detection body DetectionRequest true "Detection request"
// @Success 200 {object} DetectionResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /detection [post]
func (h *Handler) detect(c *gin.Context) {
	var input DetectionRequest
	log := h.logger.WithField("method", "detect")

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

	result, err := h.detectionService.Detect(c.Request.Context(), DTOToDetectionInput(input))
	if err != nil {
		h.respondServiceError(c, log, err, "Failed to process detection request")
		return
	}
	c.JSON(http.StatusOK, ModelToDetectionResponse(result))
}

// @Summary Trigger a manual emergency
// @Description Manually trigger a critical emergency alert (SOS/panic). Always creates a critical alert with full notification protocol. Requires API key.
// @Tags Detection
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param trigger body ManualTriggerRequest true "Manual trigger request"
// @Success 201 {object} DetectionResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /emergency/trigger [post]
func (h *Handler) triggerManual(c *gin.Context) {
	var input ManualTriggerRequest
	log := h.logger.WithField("method", "triggerManual")

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

	result, err := h.detectionService.TriggerManual(c.Request.Context(), &models.DetectionInput{
		TouristID: input.TouristID,
		Category:  models.AlertType(input.Category),
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		Message:   input.Message,
	})
	if err != nil {
		h.respondServiceError(c, log, err, "Failed to trigger manual alert")
		return
	}
	c.JSON(http.StatusCreated, ModelToDetectionResponse(result))
}

// @Summary Submit a location update
// @Description Check a tourist location against registered danger zones, creating geofence alerts on violations. Requires API key.
// @Tags Location
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param location body LocationUpdateRequest true "Location update request"
// @Success 200 {object} GeofenceResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /location/update [post]
func (h *Handler) updateLocation(c *gin.Context) {
	var input LocationUpdateRequest
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

	result, err := h.geofenceService.CheckLocation(c.Request.Context(), input.TouristID, input.Latitude, input.Longitude)
	if err != nil {
		h.respondServiceError(c, log, err, "Failed to check location")
		return
	}
	c.JSON(http.StatusOK, ModelToGeofenceResponse(result))
}

// @Summary Get alert by ID
// @Description Get a single alert by its ID. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Alert ID"
// @Success 200 {object} AlertResponse
// @Failure 400 {object} map[string]string "Invalid alert ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Alert not found"
// @Router /alerts/{id} [get]
func (h *Handler) getAlert(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alert ID"})
		return
	}
	log := h.logger.WithField("method", "getAlert").WithField("id", id)

	alert, err := h.alertService.GetAlert(c.Request.Context(), id)
	if err != nil {
		h.respondServiceError(c, log, err, "Failed to get alert")
		return
	}
	c.JSON(http.StatusOK, ModelToAlertResponse(alert))
}

// @Summary List alerts
// @Description Get a paginated list of alerts, optionally filtered by tourist and status. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param tourist_id query string false "Tourist ID filter"
// @Param status query string false "Status filter" Enums(active, acknowledged, resolved)
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {array} AlertResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts [get]
func (h *Handler) listAlerts(c *gin.Context) {
	log := h.logger.WithField("method", "listAlerts")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	alerts, err := h.alertService.ListAlerts(
		c.Request.Context(),
		c.Query("tourist_id"),
		models.AlertStatus(c.Query("status")),
		page, pageSize,
	)
	if err != nil {
		h.respondServiceError(c, log, err, "Failed to list alerts")
		return
	}
	c.JSON(http.StatusOK, ModelsToAlertResponses(alerts))
}

// @Summary Acknowledge an alert
// @Description Acknowledge an active alert. Acknowledging an already acknowledged alert is a no-op. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Alert ID"
// @Param acknowledge body AcknowledgeRequest true "Acknowledge request"
// @Success 200 {object} AlertResponse
// @Failure 400 {object} map[string]string "Invalid alert ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Alert not found"
// @Failure 409 {object} map[string]string "Illegal state transition"
// @Router /alerts/{id}/acknowledge [post]
func (h *Handler) acknowledgeAlert(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alert ID"})
		return
	}
	log := h.logger.WithField("method", "acknowledgeAlert").WithField("id", id)

	var input AcknowledgeRequest
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

	alert, err := h.alertService.AcknowledgeAlert(c.Request.Context(), id, input.Actor)
	if err != nil {
		h.respondServiceError(c, log, err, "Failed to acknowledge alert")
		return
	}
	c.JSON(http.StatusOK, ModelToAlertResponse(alert))
}

// @Summary Resolve an alert
// @Description Resolve an alert with resolution notes. Resolving an already resolved alert is a no-op. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Alert ID"
// @Param resolve body ResolveRequest true "Resolve request"
// @Success 200 {object} AlertResponse
// @Failure 400 {object} map[string]string "Invalid alert ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Alert not found"
// @Router /alerts/{id}/resolve [post]
func (h *Handler) resolveAlert(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alert ID"})
		return
	}
	log := h.logger.WithField("method", "resolveAlert").WithField("id", id)

	var input ResolveRequest
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

	alert, err := h.alertService.ResolveAlert(c.Request.Context(), id, input.Actor, input.Notes)
	if err != nil {
		h.respondServiceError(c, log, err, "Failed to resolve alert")
		return
	}
	c.JSON(http.StatusOK, ModelToAlertResponse(alert))
}

// @Summary Replace emergency contacts
// @Description Fully replace the emergency contact list of a tourist. Requires API key.
// @Tags Contacts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Tourist ID"
// @Param contacts body ReplaceContactsRequest true "Replacement contact list"
// @Success 200 {array} ContactResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /tourists/{id}/contacts [put]
func (h *Handler) replaceContacts(c *gin.Context) {
	touristID := c.Param("id")
	log := h.logger.WithField("method", "replaceContacts").WithField("tourist_id", touristID)

	var input ReplaceContactsRequest
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

	contacts, err := h.contactService.ReplaceContacts(c.Request.Context(), touristID, DTOToContacts(input))
	if err != nil {
		h.respondServiceError(c, log, err, "Failed to replace contacts")
		return
	}
	c.JSON(http.StatusOK, ModelsToContactResponses(contacts))
}

// @Summary List emergency contacts
// @Description Get the emergency contact list of a tourist in priority order. Requires API key.
// @Tags Contacts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Tourist ID"
// @Success 200 {array} ContactResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /tourists/{id}/contacts [get]
func (h *Handler) listContacts(c *gin.Context) {
	touristID := c.Param("id")
	log := h.logger.WithField("method", "listContacts").WithField("tourist_id", touristID)

	contacts, err := h.contactService.ListContacts(c.Request.Context(), touristID)
	if err != nil {
		h.respondServiceError(c, log, err, "Failed to list contacts")
		return
	}
	c.JSON(http.StatusOK, ModelsToContactResponses(contacts))
}

// @Summary Get tracking statistics
// @Description Get the count of distinct tourists with recent location checks. Requires API key.
// @Tags Admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	count, err := h.geofenceService.GetStats(c.Request.Context())
	if err != nil {
		h.respondServiceError(c, log, err, "Failed to get stats")
		return
	}
	c.JSON(http.StatusOK, StatsResponse{TouristCount: count})
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

// respondServiceError сопоставляет доменные ошибки с HTTP-статусами
func (h *Handler) respondServiceError(c *gin.Context, log *logrus.Entry, err error, msg string) {
	switch {
	case errors.Is(err, models.ErrAlertNotFound):
		log.WithError(err).Warn(msg)
		c.JSON(http.StatusNotFound, gin.H{"error": "alert not found"})
	case errors.Is(err, models.ErrStateConflict):
		log.WithError(err).Warn(msg)
		c.JSON(http.StatusConflict, gin.H{"error": "illegal alert state transition"})
	case errors.Is(err, models.ErrValidation):
		log.WithError(err).Warn(msg)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.WithError(err).Error(msg)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
