package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/airspace_alert_system/internal/config"
	"github.com/shenikar/airspace_alert_system/internal/models"
	"github.com/shenikar/airspace_alert_system/internal/service"
)

// SnapshotReader - источник последнего опубликованного снимка (кеш Redis)
type SnapshotReader interface {
	Latest(ctx context.Context) (*models.Snapshot, error)
}

// StreamHandler - WebSocket-рассылка снимков
type StreamHandler interface {
	http.Handler
	ClientCount() int
}

type Handler struct {
	simulationService service.SimulationService
	stream            StreamHandler
	snapshots         SnapshotReader
	logger            *logrus.Logger
	validate          *validator.Validate
	cfg               *config.Config
}

// NewHandler создаёт обработчики API. stream и snapshots могут быть nil.
func NewHandler(simulationService service.SimulationService, logger *logrus.Logger, cfg *config.Config, stream StreamHandler, snapshots SnapshotReader) *Handler {
	return &Handler{
		simulationService: simulationService,
		stream:            stream,
		snapshots:         snapshots,
		logger:            logger,
		validate:          validator.New(),
		cfg:               cfg,
	}
}

// @Summary List aircraft
// @Description Get the current state of every aircraft in the airspace.
// @Tags Simulation
// @Produce json
// @Success 200 {array} AircraftResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /aircraft [get]
func (h *Handler) listAircraft(c *gin.Context) {
	log := h.logger.WithField("method", "listAircraft")

	fleet, err := h.simulationService.ListAircraft(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list aircraft from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToAircraftResponses(fleet))
}

// @Summary Collision history
// @Description Get the collision history of the current run in recording order.
// @Tags Simulation
// @Produce json
// @Success 200 {array} HistoryRecordResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /history [get]
func (h *Handler) listHistory(c *gin.Context) {
	log := h.logger.WithField("method", "listHistory")

	records, err := h.simulationService.ListHistory(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list history from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToHistoryRecordResponses(records))
}

// @Summary Simulation statistics
// @Description Get run id, tick number, aircraft counts per collision state and history size.
// @Tags Simulation
// @Produce json
// @Success 200 {object} StatsResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /simulation/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	stats, err := h.simulationService.GetStats(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get stats from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelToStatsResponse(stats))
}

// @Summary Start a new run
// @Description Spawn a new set of aircraft and restart the simulation. Count 0 or empty body spawns a random number. Requires API key.
// @Tags Control
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body ResetSimulationRequest false "Reset request"
// @Success 200 {object} ResetSimulationResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /simulation/reset [post]
func (h *Handler) resetSimulation(c *gin.Context) {
	var input ResetSimulationRequest
	log := h.logger.WithField("method", "resetSimulation")

	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			log.WithError(err).Warn("Failed to bind JSON")
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fleet, err := h.simulationService.Reset(c.Request.Context(), input.Count)
	if err != nil {
		log.WithError(err).Error("Failed to reset simulation in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ResetSimulationResponse{
		Count:    len(fleet),
		Aircraft: ModelsToAircraftResponses(fleet),
	})
}

// @Summary Advance one tick
// @Description Run one simulation tick immediately. Requires API key.
// @Tags Control
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} TickResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /simulation/tick [post]
func (h *Handler) stepSimulation(c *gin.Context) {
	log := h.logger.WithField("method", "stepSimulation")

	report, err := h.simulationService.Step(c.Request.Context())
	if report == nil {
		log.WithError(err).Error("Failed to run tick in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if err != nil {
		// тик применён, упал только внешний приёмник
		log.WithError(err).Warn("Tick applied with sink errors")
	}

	c.JSON(http.StatusOK, ReportToTickResponse(report))
}

// @Summary Live snapshot stream
// @Description WebSocket endpoint. Every tick a binary msgpack snapshot (aircraft and collision history) is sent.
// @Tags Simulation
// @Success 101 "Switching Protocols"
// @Failure 503 {object} map[string]string "Stream disabled or too many connections"
// @Router /stream [get]
func (h *Handler) streamSnapshots(c *gin.Context) {
	if h.stream == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "stream disabled"})
		return
	}
	h.stream.ServeHTTP(c.Writer, c.Request)
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	resp := HealthResponse{Status: "ok"}
	if h.stream != nil {
		resp.StreamClients = h.stream.ClientCount()
	}
	if h.snapshots != nil {
		snapshot, err := h.snapshots.Latest(c.Request.Context())
		if err != nil {
			h.logger.WithField("method", "healthCheck").WithError(err).Warn("Snapshot cache unavailable")
			resp.Status = "degraded"
		} else if snapshot != nil {
			resp.CachedTick = &snapshot.Tick
		}
	}
	c.JSON(http.StatusOK, resp)
}
