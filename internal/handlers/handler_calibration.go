package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/konskyyy/ewidencja-sprzetu/internal/core/ports/services"
	"github.com/konskyyy/ewidencja-sprzetu/internal/dto"
)

type calibrationHandler struct {
	calibrationService portssvc.CalibrationSvc
}

// RegisterCalibrationRoutes registers the per-device and overview calibration routes.
func RegisterCalibrationRoutes(rg *gin.RouterGroup, calibrationService portssvc.CalibrationSvc) {
	h := &calibrationHandler{calibrationService: calibrationService}

	rg.GET("/points/:id/calibration", h.getDeviceCalibration)
	rg.GET("/calibration", h.listCalibrations)
}

// getDeviceCalibration godoc
// @Summary Calibration status of one device
// @Tags calibration
// @Produce json
// @Param id path int true "Device ID"
// @Success 200 {object} dto.DeviceCalibrationResponse
// @Failure 404 {object} map[string]string "Device not found"
// @Security BearerAuth
// @Router /points/{id}/calibration [get]
func (h *calibrationHandler) getDeviceCalibration(c *gin.Context) {
	deviceID, err := parseIDParam(c, "id")
	if err != nil {
		respondError(c, err, "")
		return
	}

	dc, err := h.calibrationService.GetDeviceCalibration(c.Request.Context(), deviceID)
	if err != nil {
		respondError(c, err, "Failed to load calibration")
		return
	}
	c.JSON(http.StatusOK, dto.ToDeviceCalibrationResponse(*dc))
}

// listCalibrations godoc
// @Summary Calibration overview
// @Description All devices, most urgent first
// @Tags calibration
// @Produce json
// @Param tone query string false "overdue, warn, ok or none"
// @Success 200 {array} dto.DeviceCalibrationResponse
// @Failure 400 {object} map[string]string "Unknown tone"
// @Security BearerAuth
// @Router /calibration [get]
func (h *calibrationHandler) listCalibrations(c *gin.Context) {
	var params dto.ListCalibrationsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, "query parameters", err)
		return
	}

	items, err := h.calibrationService.ListDeviceCalibrations(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list calibrations")
		return
	}
	c.JSON(http.StatusOK, dto.ToDeviceCalibrationResponses(items))
}
