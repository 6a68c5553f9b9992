package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/calebwray/lintel/internal/errors"
	"github.com/calebwray/lintel/internal/middleware"
	"github.com/calebwray/lintel/internal/services"
)

// ComplianceHandler handles compliance evaluation HTTP requests.
type ComplianceHandler struct {
	service services.ComplianceService
}

// NewComplianceHandler creates a new ComplianceHandler instance.
func NewComplianceHandler(service services.ComplianceService) *ComplianceHandler {
	return &ComplianceHandler{
		service: service,
	}
}

// Evaluate handles GET /api/v1/properties/:id/compliance.
// It runs the full requirement catalog against the property and returns the
// sorted requirement list with summary counts.
func (h *ComplianceHandler) Evaluate(c *gin.Context) {
	log := middleware.GetLogger(c)

	id := c.Param("id")
	if log != nil {
		log.Info("Processing compliance evaluation request", map[string]interface{}{
			"property_id": id,
		})
	}

	result, err := h.service.EvaluateProperty(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Summary handles GET /api/v1/properties/:id/compliance/summary.
// It returns only the status counts for the dashboard header.
func (h *ComplianceHandler) Summary(c *gin.Context) {
	id := c.Param("id")

	summary, err := h.service.GetSummary(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *ComplianceHandler) writeServiceError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrMissingID) {
		apierrors.BadRequest(c, "Property id is required", nil)
		return
	}
	if errors.Is(err, services.ErrPropertyNotFound) {
		apierrors.NotFound(c, "No property found with this id")
		return
	}
	// Database or other unexpected errors
	apierrors.InternalServerError(c, "Failed to evaluate property compliance", err)
}
