package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apptracking "github.com/coldchain/backend/internal/application/tracking"
	"github.com/coldchain/backend/internal/infrastructure/logger"
	"github.com/coldchain/backend/internal/interfaces/http/middleware"
)

// IngestHandler handles provider ingestion endpoints
type IngestHandler struct {
	BaseHandler
	ingestService *apptracking.IngestService
	importService *apptracking.ImportService
}

// NewIngestHandler creates a new IngestHandler
func NewIngestHandler(ingestService *apptracking.IngestService, importService *apptracking.ImportService) *IngestHandler {
	return &IngestHandler{
		ingestService: ingestService,
		importService: importService,
	}
}

// Ingest godoc
// @ID           ingestData
// @Summary      Ingest tracking and sensor data
// @Description  Pull carrier tracking and sensor telemetry for one shipment/sensor pair and persist it
// @Tags         ingestion
// @Accept       json
// @Produce      json
// @Param        request body tracking.IngestRequest true "Ingestion request"
// @Success      200 {object} dto.Response
// @Failure      400 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Failure      502 {object} dto.Response
// @Failure      500 {object} dto.Response
// @Router       /ingest [post]
func (h *IngestHandler) Ingest(c *gin.Context) {
	var req apptracking.IngestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, middleware.BindingErrorMessage(err))
		return
	}

	if err := h.ingestService.Ingest(c.Request.Context(), req); err != nil {
		logger.FromGin(c).Error("Ingestion failed",
			zap.String("tracking_number", req.TrackingNumber),
			zap.Error(err),
		)
		h.HandleError(c, err)
		return
	}
	h.Message(c, "Data ingested successfully")
}

// FetchShipments godoc
// @ID           fetchShipments
// @Summary      Bulk-import shipments
// @Description  Fetch a JSON shipment feed from the given URL and store unknown shipments
// @Tags         ingestion
// @Accept       json
// @Produce      json
// @Param        request body tracking.FetchShipmentsRequest true "Feed location"
// @Success      200 {object} dto.Response
// @Failure      400 {object} dto.Response
// @Failure      500 {object} dto.Response
// @Router       /fetch-shipments [post]
func (h *IngestHandler) FetchShipments(c *gin.Context) {
	var req apptracking.FetchShipmentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "API URL is required")
		return
	}

	if err := h.importService.FetchShipments(c.Request.Context(), req.APIURL); err != nil {
		logger.FromGin(c).Error("Shipment feed import failed",
			zap.String("api_url", req.APIURL),
			zap.Error(err),
		)
		h.InternalError(c, "Failed to fetch shipment data")
		return
	}
	h.Message(c, "Shipment data fetched and added to the database.")
}
