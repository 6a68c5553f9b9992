package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/calebwray/lintel/internal/compliance"
	"github.com/calebwray/lintel/internal/logger"
	"github.com/calebwray/lintel/internal/metrics"
	"github.com/calebwray/lintel/internal/models"
	"github.com/calebwray/lintel/internal/repository"
)

// Service-level errors
var (
	ErrPropertyNotFound = errors.New("property not found")
	ErrMissingID        = errors.New("property id is required")
)

// ComplianceResult pairs the sorted requirement list with its summary counts,
// both derived from the same captured evaluation time.
type ComplianceResult struct {
	PropertyID   string                           `json:"propertyId"`
	EvaluatedAt  time.Time                        `json:"evaluatedAt"`
	Requirements []compliance.LocalLawRequirement `json:"requirements"`
	Summary      compliance.Summary               `json:"summary"`
}

// ComplianceService defines the interface for compliance evaluation
// operations.
type ComplianceService interface {
	// EvaluateProperty loads a property profile and runs the full requirement
	// catalog against it.
	// Returns ErrMissingID when id is empty.
	// Returns ErrPropertyNotFound if the property does not exist.
	// Returns error for database failures.
	EvaluateProperty(ctx context.Context, id string) (*ComplianceResult, error)

	// GetSummary evaluates a property and returns only the status counts.
	GetSummary(ctx context.Context, id string) (*compliance.Summary, error)
}

// complianceService is the concrete implementation of ComplianceService.
type complianceService struct {
	repo repository.PropertyRepository
	log  *logger.Logger
	// now is captured once per evaluation so every schedule decision in a
	// result is internally consistent. Overridable for deterministic tests.
	now func() time.Time
}

// NewComplianceService creates a new instance of ComplianceService.
func NewComplianceService(repo repository.PropertyRepository, log *logger.Logger) ComplianceService {
	return &complianceService{
		repo: repo,
		log:  log,
		now:  time.Now,
	}
}

func (s *complianceService) EvaluateProperty(ctx context.Context, id string) (*ComplianceResult, error) {
	profile, err := s.loadProfile(ctx, id)
	if err != nil {
		return nil, err
	}

	evaluatedAt := s.now().UTC()
	requirements := compliance.Evaluate(*profile, evaluatedAt)
	summary := compliance.Summarize(requirements)

	metrics.EvaluationsTotal.Inc()
	for _, r := range requirements {
		metrics.RequirementsByStatus.WithLabelValues(string(r.Status)).Inc()
	}

	s.log.Info("Evaluated property compliance", map[string]interface{}{
		"property_id": id,
		"applicable":  summary.Total,
		"overdue":     summary.Overdue,
		"due_soon":    summary.DueSoon,
	})

	return &ComplianceResult{
		PropertyID:   profile.ID,
		EvaluatedAt:  evaluatedAt,
		Requirements: requirements,
		Summary:      summary,
	}, nil
}

func (s *complianceService) GetSummary(ctx context.Context, id string) (*compliance.Summary, error) {
	result, err := s.EvaluateProperty(ctx, id)
	if err != nil {
		return nil, err
	}
	return &result.Summary, nil
}

func (s *complianceService) loadProfile(ctx context.Context, id string) (*models.PropertyProfile, error) {
	if id == "" {
		s.log.Warn("Missing property id", nil)
		return nil, ErrMissingID
	}

	profile, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to load property profile", err, map[string]interface{}{
			"property_id": id,
		})
		return nil, fmt.Errorf("failed to load property: %w", err)
	}

	// Repository returns nil, nil when no property found - transform to
	// domain error
	if profile == nil {
		s.log.Debug("Property not found", map[string]interface{}{
			"property_id": id,
		})
		return nil, ErrPropertyNotFound
	}

	return profile, nil
}
