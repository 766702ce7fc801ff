package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apptracking "github.com/coldchain/backend/internal/application/tracking"
	"github.com/coldchain/backend/internal/infrastructure/logger"
	"github.com/coldchain/backend/internal/interfaces/http/middleware"
)

// ShipmentHandler handles shipment CRUD and telemetry endpoints
type ShipmentHandler struct {
	BaseHandler
	shipmentService *apptracking.ShipmentService
}

// NewShipmentHandler creates a new ShipmentHandler
func NewShipmentHandler(shipmentService *apptracking.ShipmentService) *ShipmentHandler {
	return &ShipmentHandler{shipmentService: shipmentService}
}

// Create godoc
// @ID           createShipment
// @Summary      Register a shipment
// @Description  Register a shipment by tracking number; duplicates are rejected
// @Tags         shipments
// @Accept       json
// @Produce      json
// @Param        request body tracking.CreateShipmentRequest true "Shipment creation request"
// @Success      201 {object} dto.Response
// @Failure      400 {object} dto.Response
// @Failure      500 {object} dto.Response
// @Router       /shipments [post]
func (h *ShipmentHandler) Create(c *gin.Context) {
	var req apptracking.CreateShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, middleware.BindingErrorMessage(err))
		return
	}

	resp, err := h.shipmentService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Get godoc
// @ID           getShipment
// @Summary      Get a shipment
// @Description  Retrieve a shipment by its tracking number
// @Tags         shipments
// @Produce      json
// @Param        trackingNumber path string true "Tracking number"
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Failure      500 {object} dto.Response
// @Router       /shipments/{trackingNumber} [get]
func (h *ShipmentHandler) Get(c *gin.Context) {
	resp, err := h.shipmentService.GetByTrackingNumber(c.Request.Context(), c.Param("trackingNumber"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ListStatus godoc
// @ID           listShipmentStatus
// @Summary      List status history
// @Description  List a shipment's status events, oldest first
// @Tags         shipments
// @Produce      json
// @Param        trackingNumber path string true "Tracking number"
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Failure      500 {object} dto.Response
// @Router       /shipments/{trackingNumber}/status [get]
func (h *ShipmentHandler) ListStatus(c *gin.Context) {
	events, err := h.shipmentService.ListStatus(c.Request.Context(), c.Param("trackingNumber"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, events)
}

// AppendStatus godoc
// @ID           appendShipmentStatus
// @Summary      Add a status event
// @Description  Append a status event and promote it to the shipment's current status
// @Tags         shipments
// @Accept       json
// @Produce      json
// @Param        trackingNumber path string true "Tracking number"
// @Param        request body tracking.AppendStatusRequest true "Status event"
// @Success      201 {object} dto.Response
// @Failure      400 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Failure      500 {object} dto.Response
// @Router       /shipments/{trackingNumber}/status [post]
func (h *ShipmentHandler) AppendStatus(c *gin.Context) {
	var req apptracking.AppendStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, middleware.BindingErrorMessage(err))
		return
	}

	if err := h.shipmentService.AppendStatus(c.Request.Context(), c.Param("trackingNumber"), req); err != nil {
		h.HandleError(c, err)
		return
	}
	h.CreatedMessage(c, "Status added")
}

// ListSensor godoc
// @ID           listShipmentSensorData
// @Summary      List sensor readings
// @Description  List a shipment's sensor readings, oldest first
// @Tags         shipments
// @Produce      json
// @Param        trackingNumber path string true "Tracking number"
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Failure      500 {object} dto.Response
// @Router       /shipments/{trackingNumber}/sensor [get]
func (h *ShipmentHandler) ListSensor(c *gin.Context) {
	readings, err := h.shipmentService.ListSensor(c.Request.Context(), c.Param("trackingNumber"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, readings)
}

// AppendSensor godoc
// @ID           appendShipmentSensorData
// @Summary      Add a sensor reading
// @Description  Store a sensor reading and evaluate it against the configured temperature range
// @Tags         shipments
// @Accept       json
// @Produce      json
// @Param        trackingNumber path string true "Tracking number"
// @Param        request body tracking.AppendSensorRequest true "Sensor reading"
// @Success      201 {object} dto.Response
// @Failure      400 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Failure      500 {object} dto.Response
// @Router       /shipments/{trackingNumber}/sensor [post]
func (h *ShipmentHandler) AppendSensor(c *gin.Context) {
	var req apptracking.AppendSensorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, middleware.BindingErrorMessage(err))
		return
	}

	if err := h.shipmentService.AppendSensorReading(c.Request.Context(), c.Param("trackingNumber"), req); err != nil {
		logger.FromGin(c).Error("Failed to store sensor reading", zap.Error(err))
		h.HandleError(c, err)
		return
	}
	h.CreatedMessage(c, "Sensor data added")
}

// ListAlerts godoc
// @ID           listShipmentAlerts
// @Summary      List temperature alerts
// @Description  List a shipment's temperature alerts, oldest first
// @Tags         shipments
// @Produce      json
// @Param        trackingNumber path string true "Tracking number"
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Failure      500 {object} dto.Response
// @Router       /shipments/{trackingNumber}/alerts [get]
func (h *ShipmentHandler) ListAlerts(c *gin.Context) {
	alerts, err := h.shipmentService.ListAlerts(c.Request.Context(), c.Param("trackingNumber"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, alerts)
}
