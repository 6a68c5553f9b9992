package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/calebwray/lintel/internal/compliance"
	"github.com/calebwray/lintel/internal/logger"
	"github.com/calebwray/lintel/internal/middleware"
	"github.com/calebwray/lintel/internal/services"
)

// MockComplianceService is a mock implementation of ComplianceService for testing
type MockComplianceService struct {
	mock.Mock
}

func (m *MockComplianceService) EvaluateProperty(ctx context.Context, id string) (*services.ComplianceResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.ComplianceResult), args.Error(1)
}

func (m *MockComplianceService) GetSummary(ctx context.Context, id string) (*compliance.Summary, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*compliance.Summary), args.Error(1)
}

// setupComplianceTestRouter creates a test router with middleware and compliance handlers.
func setupComplianceTestRouter(handler *ComplianceHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	log := logger.New("test")
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))

	v1 := router.Group("/api/v1")
	{
		properties := v1.Group("/properties")
		{
			properties.GET("/:id/compliance", handler.Evaluate)
			properties.GET("/:id/compliance/summary", handler.Summary)
		}
	}

	return router
}

func TestComplianceHandler_Evaluate_Success(t *testing.T) {
	mockService := new(MockComplianceService)
	handler := NewComplianceHandler(mockService)
	router := setupComplianceTestRouter(handler)

	result := &services.ComplianceResult{
		PropertyID:  "prop-1",
		EvaluatedAt: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		Requirements: []compliance.LocalLawRequirement{
			{LawCode: "LL11", Applies: true, Status: compliance.StatusOverdue},
		},
		Summary: compliance.Summary{Total: 1, Overdue: 1},
	}
	mockService.On("EvaluateProperty", mock.Anything, "prop-1").Return(result, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/properties/prop-1/compliance", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body services.ComplianceResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "prop-1", body.PropertyID)
	require.Len(t, body.Requirements, 1)
	assert.Equal(t, "LL11", body.Requirements[0].LawCode)
	assert.Equal(t, compliance.StatusOverdue, body.Requirements[0].Status)
	mockService.AssertExpectations(t)
}

func TestComplianceHandler_Evaluate_NotFound(t *testing.T) {
	mockService := new(MockComplianceService)
	handler := NewComplianceHandler(mockService)
	router := setupComplianceTestRouter(handler)

	mockService.On("EvaluateProperty", mock.Anything, "missing").Return(nil, services.ErrPropertyNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/properties/missing/compliance", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")
}

func TestComplianceHandler_Evaluate_ServiceFailure(t *testing.T) {
	mockService := new(MockComplianceService)
	handler := NewComplianceHandler(mockService)
	router := setupComplianceTestRouter(handler)

	mockService.On("EvaluateProperty", mock.Anything, "prop-1").Return(nil, errors.New("pool exhausted"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/properties/prop-1/compliance", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	// Internal details must not leak to the client
	assert.NotContains(t, w.Body.String(), "pool exhausted")
}

func TestComplianceHandler_Summary_Success(t *testing.T) {
	mockService := new(MockComplianceService)
	handler := NewComplianceHandler(mockService)
	router := setupComplianceTestRouter(handler)

	summary := &compliance.Summary{Total: 4, Overdue: 1, DueSoon: 1, Pending: 2, Exempt: 7}
	mockService.On("GetSummary", mock.Anything, "prop-1").Return(summary, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/properties/prop-1/compliance/summary", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body compliance.Summary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, *summary, body)
	mockService.AssertExpectations(t)
}

func TestComplianceHandler_RequestIDPropagated(t *testing.T) {
	mockService := new(MockComplianceService)
	handler := NewComplianceHandler(mockService)
	router := setupComplianceTestRouter(handler)

	mockService.On("EvaluateProperty", mock.Anything, "missing").Return(nil, services.ErrPropertyNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/properties/missing/compliance", nil)
	req.Header.Set("X-Request-ID", "test-request-id")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "test-request-id", w.Header().Get("X-Request-ID"))
	assert.Contains(t, w.Body.String(), "test-request-id")
}
