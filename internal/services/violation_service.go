package services

import (
	"context"
	"fmt"
	"time"

	"github.com/calebwray/lintel/internal/compliance"
	"github.com/calebwray/lintel/internal/logger"
	"github.com/calebwray/lintel/internal/metrics"
	"github.com/calebwray/lintel/internal/models"
	"github.com/calebwray/lintel/internal/repository"
)

// ClassifiedViolation is a violation record decorated with its severity
// classification and aging decision.
type ClassifiedViolation struct {
	Violation models.Violation         `json:"violation"`
	Severity  compliance.SeverityInfo  `json:"severity"`
	Aging     compliance.AgingDecision `json:"aging"`
}

// ViolationReport is the dashboard view of a property's violations. Active
// holds violations that count against the property; Suppressed holds aged
// open violations the aging filter excluded.
type ViolationReport struct {
	PropertyID      string                `json:"propertyId"`
	Active          []ClassifiedViolation `json:"active"`
	Suppressed      []ClassifiedViolation `json:"suppressed"`
	ActiveCount     int                   `json:"activeCount"`
	SuppressedCount int                   `json:"suppressedCount"`
}

// ViolationService defines the interface for violation listing and
// classification operations.
type ViolationService interface {
	// GetViolationReport lists a property's violations with severity and
	// aging annotations. When openOnly is true, only open violations are
	// considered.
	// Returns ErrMissingID when id is empty.
	// Returns error for database failures.
	GetViolationReport(ctx context.Context, propertyID string, openOnly bool) (*ViolationReport, error)
}

// violationService is the concrete implementation of ViolationService.
type violationService struct {
	repo repository.ViolationRepository
	log  *logger.Logger
	now  func() time.Time
}

// NewViolationService creates a new instance of ViolationService.
func NewViolationService(repo repository.ViolationRepository, log *logger.Logger) ViolationService {
	return &violationService{
		repo: repo,
		log:  log,
		now:  time.Now,
	}
}

func (s *violationService) GetViolationReport(ctx context.Context, propertyID string, openOnly bool) (*ViolationReport, error) {
	if propertyID == "" {
		s.log.Warn("Missing property id", nil)
		return nil, ErrMissingID
	}

	var (
		violations []models.Violation
		err        error
	)
	if openOnly {
		violations, err = s.repo.ListOpenByProperty(ctx, propertyID)
	} else {
		violations, err = s.repo.ListByProperty(ctx, propertyID)
	}
	if err != nil {
		s.log.Error("Failed to list violations", err, map[string]interface{}{
			"property_id": propertyID,
		})
		return nil, fmt.Errorf("failed to list violations: %w", err)
	}

	now := s.now().UTC()
	report := &ViolationReport{
		PropertyID: propertyID,
		Active:     make([]ClassifiedViolation, 0, len(violations)),
		Suppressed: make([]ClassifiedViolation, 0),
	}

	for _, v := range violations {
		cv := ClassifiedViolation{
			Violation: v,
			Severity:  compliance.ClassifySeverity(v),
			Aging:     compliance.EvaluateAging(v, now),
		}
		metrics.ViolationsClassified.WithLabelValues(string(cv.Severity.Level)).Inc()

		if cv.Aging.Suppress {
			metrics.ViolationsSuppressed.Inc()
			report.Suppressed = append(report.Suppressed, cv)
			continue
		}
		report.Active = append(report.Active, cv)
	}

	report.ActiveCount = len(report.Active)
	report.SuppressedCount = len(report.Suppressed)

	s.log.Info("Built violation report", map[string]interface{}{
		"property_id": propertyID,
		"active":      report.ActiveCount,
		"suppressed":  report.SuppressedCount,
	})

	return report, nil
}
