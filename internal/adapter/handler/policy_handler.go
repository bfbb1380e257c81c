package handler

import (
	"campus_security_backend/internal/core/domain"
	"campus_security_backend/internal/core/port"
	"net/http"

	"github.com/gin-gonic/gin"
)

type PolicyHandler struct {
	svc port.PolicyService
}

func NewPolicyHandler(svc port.PolicyService) *PolicyHandler {
	return &PolicyHandler{svc: svc}
}

// ListPolicies
// @Summary List web filtering policies
// @Tags Policies
// @Produce json
// @Success 200 {array} domain.Policy
// @Failure 500 {object} domain.ErrorResponse
// @Router /api/policies [get]
func (h *PolicyHandler) ListPolicies(c *gin.Context) {
	policies, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "", "Error fetching policies")
		return
	}
	c.JSON(http.StatusOK, policies)
}

// CreatePolicy
// @Summary Create a web filtering policy
// @Tags Policies
// @Accept json
// @Produce json
// @Param policy body domain.PolicyCreateRequest true "New policy"
// @Success 200 {object} domain.Policy
// @Failure 422 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /api/policies [post]
func (h *PolicyHandler) CreatePolicy(c *gin.Context) {
	var req domain.PolicyCreateRequest
	if !bindJSON(c, &req) {
		return
	}

	policy, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "", "Error creating policy")
		return
	}
	c.JSON(http.StatusOK, policy)
}

// GetPolicy
// @Summary Get a web filtering policy
// @Tags Policies
// @Produce json
// @Param id path string true "Policy ID"
// @Success 200 {object} domain.Policy
// @Failure 404 {object} domain.ErrorResponse
// @Router /api/policies/{id} [get]
func (h *PolicyHandler) GetPolicy(c *gin.Context) {
	policy, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Policy not found", "Error fetching policy")
		return
	}
	c.JSON(http.StatusOK, policy)
}

// UpdatePolicy
// @Summary Update a web filtering policy
// @Description Only the supplied fields change; updated_at is always refreshed.
// @Tags Policies
// @Accept json
// @Produce json
// @Param id path string true "Policy ID"
// @Param policy body domain.PolicyUpdateRequest true "Fields to change"
// @Success 200 {object} domain.Policy
// @Failure 404 {object} domain.ErrorResponse
// @Failure 422 {object} domain.ErrorResponse
// @Router /api/policies/{id} [put]
func (h *PolicyHandler) UpdatePolicy(c *gin.Context) {
	var req domain.PolicyUpdateRequest
	if !bindJSON(c, &req) {
		return
	}

	policy, err := h.svc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Policy not found", "Error updating policy")
		return
	}
	c.JSON(http.StatusOK, policy)
}

// DeletePolicy
// @Summary Delete a web filtering policy
// @Tags Policies
// @Produce json
// @Param id path string true "Policy ID"
// @Success 200 {object} domain.MessageResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /api/policies/{id} [delete]
func (h *PolicyHandler) DeletePolicy(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Policy not found", "Error deleting policy")
		return
	}
	c.JSON(http.StatusOK, domain.MessageResponse{Message: "Policy deleted successfully"})
}
