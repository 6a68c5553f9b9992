package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apierrors "github.com/calebwray/lintel/internal/errors"
	"github.com/calebwray/lintel/internal/middleware"
	"github.com/calebwray/lintel/internal/services"
)

// ViolationHandler handles violation listing HTTP requests.
type ViolationHandler struct {
	service services.ViolationService
}

// NewViolationHandler creates a new ViolationHandler instance.
func NewViolationHandler(service services.ViolationService) *ViolationHandler {
	return &ViolationHandler{
		service: service,
	}
}

// ListRequest represents the query parameters for the violations endpoint.
type ListRequest struct {
	OpenOnly bool `form:"open_only"`
}

// List handles GET /api/v1/properties/:id/violations.
// Each violation is returned with its severity classification; aged open
// violations are split into a suppressed section instead of being counted
// as active.
func (h *ViolationHandler) List(c *gin.Context) {
	log := middleware.GetLogger(c)

	var req ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		// Check if it's a validation error
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			apierrors.ValidationError(c, validationErrors)
			return
		}
		// Generic bad request for other binding errors
		apierrors.BadRequest(c, "Invalid query parameters", nil)
		return
	}

	id := c.Param("id")
	if log != nil {
		log.Info("Processing violation list request", map[string]interface{}{
			"property_id": id,
			"open_only":   req.OpenOnly,
		})
	}

	report, err := h.service.GetViolationReport(c.Request.Context(), id, req.OpenOnly)
	if err != nil {
		if errors.Is(err, services.ErrMissingID) {
			apierrors.BadRequest(c, "Property id is required", nil)
			return
		}
		// Database or other unexpected errors
		apierrors.InternalServerError(c, "Failed to build violation report", err)
		return
	}

	c.JSON(http.StatusOK, report)
}
