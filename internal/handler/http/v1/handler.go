package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/sentinel_monitoring_system/internal/config"
	"github.com/shenikar/sentinel_monitoring_system/internal/replay"
	"github.com/shenikar/sentinel_monitoring_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	monitorService service.MonitorService
	replayCtrl     *replay.Controller
	logger         *logrus.Logger
	validate       *validator.Validate
	cfg            *config.Config
}

func NewHandler(monitorService service.MonitorService, replayCtrl *replay.Controller, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		monitorService: monitorService,
		replayCtrl:     replayCtrl,
		logger:         logger,
		validate:       validator.New(),
		cfg:            cfg,
	}
}

// @Summary Get device positions
// @Description Get the current reconciled positions of all devices, optionally filtered by risk class. Requires API key.
// @Tags Monitor
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param filter query string false "Risk filter" Enums(ALL, HIGH_RISK, SAFE) default(ALL)
// @Success 200 {array} PositionResponse
// @Failure 400 {object} map[string]string "Unknown filter value"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /monitor/positions [get]
func (h *Handler) getPositions(c *gin.Context) {
	log := h.logger.WithField("method", "getPositions")

	positions, err := h.monitorService.Positions(c.DefaultQuery("filter", "ALL"))
	if err != nil {
		log.WithError(err).Warn("Rejected positions request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown filter value"})
		return
	}

	c.JSON(http.StatusOK, ModelsToPositionResponses(positions))
}

// @Summary Get alert feed
// @Description Get all known alerts, critical ones first, newest first within each group. Requires API key.
// @Tags Monitor
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} AlertResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /monitor/alerts [get]
func (h *Handler) getAlerts(c *gin.Context) {
	c.JSON(http.StatusOK, ModelsToAlertResponses(h.monitorService.OrderedAlerts()))
}

// @Summary Get aggregate counters
// @Description Get the active/safe/danger counters derived from the current state. Requires API key.
// @Tags Monitor
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /monitor/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	stats := h.monitorService.Stats()
	c.JSON(http.StatusOK, StatsResponse{
		Active: stats.Active,
		Safe:   stats.Safe,
		Danger: stats.Danger,
	})
}

// @Summary Acknowledge an alert
// @Description Acknowledge an alert on the command backend and mirror the status locally. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Alert ID"
// @Success 200 "OK"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Backend rejected the operation"
// @Router /alerts/{id}/acknowledge [post]
func (h *Handler) acknowledgeAlert(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "acknowledgeAlert").WithField("alert_id", id)

	if err := h.monitorService.AcknowledgeAlert(c.Request.Context(), id); err != nil {
		log.WithError(err).Error("Failed to acknowledge alert in service")
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to acknowledge alert"})
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Resolve an alert
// @Description Resolve an alert on the command backend and mirror the status locally. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Alert ID"
// @Success 200 "OK"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Backend rejected the operation"
// @Router /alerts/{id}/resolve [post]
func (h *Handler) resolveAlert(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "resolveAlert").WithField("alert_id", id)

	if err := h.monitorService.ResolveAlert(c.Request.Context(), id); err != nil {
		log.WithError(err).Error("Failed to resolve alert in service")
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to resolve alert"})
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Claim an incident
// @Description Assign an owner to an incident on the command backend. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Alert ID"
// @Param claim body ClaimRequest true "Claim request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Backend rejected the operation"
// @Router /alerts/{id}/claim [post]
func (h *Handler) claimIncident(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "claimIncident").WithField("alert_id", id)

	var input ClaimRequest
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

	if err := h.monitorService.ClaimIncident(c.Request.Context(), id, input.OwnerID); err != nil {
		log.WithError(err).Error("Failed to claim incident in service")
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to claim incident"})
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Attest an alert
// @Description Request attestation of an alert on the command backend. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Alert ID"
// @Success 200 "OK"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Backend rejected the operation"
// @Router /alerts/{id}/attest [post]
func (h *Handler) attestAlert(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "attestAlert").WithField("alert_id", id)

	if err := h.monitorService.AttestAlert(c.Request.Context(), id); err != nil {
		log.WithError(err).Error("Failed to attest alert in service")
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to attest alert"})
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Get replay status
// @Description Get the current state of the history replay controller. Requires API key.
// @Tags Replay
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} ReplayStatusResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /replay/status [get]
func (h *Handler) getReplayStatus(c *gin.Context) {
	c.JSON(http.StatusOK, ReplayStatusToResponse(h.replayCtrl.Status()))
}

// @Summary Select replay device
// @Description Load the history window of a device into the replay controller. Requires API key.
// @Tags Replay
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param selection body ReplaySelectRequest true "Device selection request"
// @Success 200 {object} ReplayStatusResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "History fetch failed"
// @Router /replay/select [post]
func (h *Handler) selectReplayDevice(c *gin.Context) {
	log := h.logger.WithField("method", "selectReplayDevice")

	var input ReplaySelectRequest
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

	if err := h.replayCtrl.Select(c.Request.Context(), input.DeviceID); err != nil {
		log.WithError(err).WithField("device_id", input.DeviceID).Error("Failed to load replay history")
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to load replay history"})
		return
	}
	c.JSON(http.StatusOK, ReplayStatusToResponse(h.replayCtrl.Status()))
}

// @Summary Start replay playback
// @Description Start automatic frame advancement from the current position. Requires API key.
// @Tags Replay
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} ReplayStatusResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "No frames loaded"
// @Router /replay/play [post]
func (h *Handler) playReplay(c *gin.Context) {
	log := h.logger.WithField("method", "playReplay")

	if err := h.replayCtrl.Play(); err != nil {
		log.WithError(err).Warn("Failed to start playback")
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ReplayStatusToResponse(h.replayCtrl.Status()))
}

// @Summary Pause replay playback
// @Description Stop automatic frame advancement, keeping the current position. Requires API key.
// @Tags Replay
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} ReplayStatusResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /replay/pause [post]
func (h *Handler) pauseReplay(c *gin.Context) {
	h.replayCtrl.Pause()
	c.JSON(http.StatusOK, ReplayStatusToResponse(h.replayCtrl.Status()))
}

// @Summary Seek replay position
// @Description Move the frame pointer to a specific index, pausing playback. Requires API key.
// @Tags Replay
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param seek body ReplaySeekRequest true "Seek request"
// @Success 200 {object} ReplayStatusResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "No frames loaded"
// @Router /replay/seek [post]
func (h *Handler) seekReplay(c *gin.Context) {
	log := h.logger.WithField("method", "seekReplay")

	var input ReplaySeekRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.replayCtrl.Seek(input.Index); err != nil {
		log.WithError(err).Warn("Failed to seek")
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ReplayStatusToResponse(h.replayCtrl.Status()))
}

// @Summary Close replay session
// @Description Reset the replay controller to idle and discard loaded frames. Requires API key.
// @Tags Replay
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} ReplayStatusResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /replay [delete]
func (h *Handler) closeReplay(c *gin.Context) {
	h.replayCtrl.Close()
	c.JSON(http.StatusOK, ReplayStatusToResponse(h.replayCtrl.Status()))
}

// @Summary Get alert journal
// @Description Get the most recent entries of the persistent alert journal. Requires API key.
// @Tags Journal
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "Maximum entries to return" default(50)
// @Success 200 {array} JournalEntryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /journal/alerts [get]
func (h *Handler) getJournal(c *gin.Context) {
	log := h.logger.WithField("method", "getJournal")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	entries, err := h.monitorService.RecentJournal(c.Request.Context(), limit)
	if err != nil {
		log.WithError(err).Error("Failed to get journal from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, JournalEntriesToResponses(entries))
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
