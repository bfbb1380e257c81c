package handler

import (
	"campus_security_backend/internal/core/domain"
	"campus_security_backend/internal/core/port"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AlertHandler struct {
	svc port.AlertService
}

func NewAlertHandler(svc port.AlertService) *AlertHandler {
	return &AlertHandler{svc: svc}
}

// ListAlerts
// @Summary List security alerts, newest first
// @Tags Alerts
// @Produce json
// @Success 200 {array} domain.Alert
// @Failure 500 {object} domain.ErrorResponse
// @Router /api/alerts [get]
func (h *AlertHandler) ListAlerts(c *gin.Context) {
	alerts, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "", "Error fetching alerts")
		return
	}
	c.JSON(http.StatusOK, alerts)
}

// CreateAlert
// @Summary Record a security alert
// @Tags Alerts
// @Accept json
// @Produce json
// @Param alert body domain.AlertCreateRequest true "New alert"
// @Success 200 {object} domain.Alert
// @Failure 422 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /api/alerts [post]
func (h *AlertHandler) CreateAlert(c *gin.Context) {
	var req domain.AlertCreateRequest
	if !bindJSON(c, &req) {
		return
	}

	alert, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "", "Error creating alert")
		return
	}
	c.JSON(http.StatusOK, alert)
}

// ResolveAlert
// @Summary Resolve a security alert
// @Description Resolving an already resolved alert refreshes resolved_at.
// @Tags Alerts
// @Produce json
// @Param id path string true "Alert ID"
// @Success 200 {object} domain.MessageResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /api/alerts/{id}/resolve [put]
func (h *AlertHandler) ResolveAlert(c *gin.Context) {
	if err := h.svc.Resolve(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Alert not found", "Error resolving alert")
		return
	}
	c.JSON(http.StatusOK, domain.MessageResponse{Message: "Alert resolved successfully"})
}
