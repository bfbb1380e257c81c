package handler

import (
	"campus_security_backend/internal/core/domain"
	"campus_security_backend/internal/core/port"
	"net/http"

	"github.com/gin-gonic/gin"
)

type DeviceHandler struct {
	svc port.DeviceService
}

func NewDeviceHandler(svc port.DeviceService) *DeviceHandler {
	return &DeviceHandler{svc: svc}
}

// ListDevices
// @Summary List network devices
// @Tags Network
// @Produce json
// @Success 200 {array} domain.Device
// @Failure 500 {object} domain.ErrorResponse
// @Router /api/network/devices [get]
func (h *DeviceHandler) ListDevices(c *gin.Context) {
	devices, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "", "Error fetching devices")
		return
	}
	c.JSON(http.StatusOK, devices)
}

// CreateDevice
// @Summary Register a network device
// @Tags Network
// @Accept json
// @Produce json
// @Param device body domain.DeviceRequest true "New device"
// @Success 200 {object} domain.Device
// @Failure 422 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /api/network/devices [post]
func (h *DeviceHandler) CreateDevice(c *gin.Context) {
	var req domain.DeviceRequest
	if !bindJSON(c, &req) {
		return
	}

	device, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "", "Error creating device")
		return
	}
	c.JSON(http.StatusOK, device)
}

// GetDevice
// @Summary Get a network device
// @Tags Network
// @Produce json
// @Param id path string true "Device ID"
// @Success 200 {object} domain.Device
// @Failure 404 {object} domain.ErrorResponse
// @Router /api/network/devices/{id} [get]
func (h *DeviceHandler) GetDevice(c *gin.Context) {
	device, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Device not found", "Error fetching device")
		return
	}
	c.JSON(http.StatusOK, device)
}

// UpdateDevice
// @Summary Replace a network device
// @Description The payload replaces every field; omitted optional fields fall back to their defaults.
// @Tags Network
// @Accept json
// @Produce json
// @Param id path string true "Device ID"
// @Param device body domain.DeviceRequest true "Full device"
// @Success 200 {object} domain.Device
// @Failure 404 {object} domain.ErrorResponse
// @Failure 422 {object} domain.ErrorResponse
// @Router /api/network/devices/{id} [put]
func (h *DeviceHandler) UpdateDevice(c *gin.Context) {
	var req domain.DeviceRequest
	if !bindJSON(c, &req) {
		return
	}

	device, err := h.svc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Device not found", "Error updating device")
		return
	}
	c.JSON(http.StatusOK, device)
}

// DeleteDevice
// @Summary Delete a network device
// @Tags Network
// @Produce json
// @Param id path string true "Device ID"
// @Success 200 {object} domain.MessageResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /api/network/devices/{id} [delete]
func (h *DeviceHandler) DeleteDevice(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Device not found", "Error deleting device")
		return
	}
	c.JSON(http.StatusOK, domain.MessageResponse{Message: "Device deleted successfully"})
}
