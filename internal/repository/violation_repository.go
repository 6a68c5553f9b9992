package repository

import (
	"context"
	"fmt"

	"github.com/calebwray/lintel/internal/database"
	"github.com/calebwray/lintel/internal/models"
)

// ViolationRepository defines the interface for violation data access.
type ViolationRepository interface {
	// ListByProperty returns all violation records for a property, newest
	// first. Returns an empty slice if none exist (not an error).
	ListByProperty(ctx context.Context, propertyID string) ([]models.Violation, error)

	// ListOpenByProperty returns only the violations whose status is "open",
	// newest first.
	ListOpenByProperty(ctx context.Context, propertyID string) ([]models.Violation, error)
}

// violationRepository is the concrete implementation of ViolationRepository.
type violationRepository struct {
	db *database.Database
}

// NewViolationRepository creates a new instance of ViolationRepository.
func NewViolationRepository(db *database.Database) ViolationRepository {
	return &violationRepository{
		db: db,
	}
}

const violationColumns = `
	id,
	property_id,
	agency,
	description,
	violation_type,
	violation_class,
	severity_hint,
	is_stop_work_order,
	is_vacate_order,
	penalty_amount,
	issued_at,
	status`

func (r *violationRepository) ListByProperty(ctx context.Context, propertyID string) ([]models.Violation, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM violations
		WHERE property_id = $1
		ORDER BY issued_at DESC NULLS LAST, id`, violationColumns)

	return r.queryList(ctx, query, propertyID)
}

func (r *violationRepository) ListOpenByProperty(ctx context.Context, propertyID string) ([]models.Violation, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM violations
		WHERE property_id = $1 AND LOWER(status) = 'open'
		ORDER BY issued_at DESC NULLS LAST, id`, violationColumns)

	return r.queryList(ctx, query, propertyID)
}

func (r *violationRepository) queryList(ctx context.Context, query, propertyID string) ([]models.Violation, error) {
	rows, err := r.db.Pool.Query(ctx, query, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query violations: %w", err)
	}
	defer rows.Close()

	violations := make([]models.Violation, 0)
	for rows.Next() {
		var v models.Violation
		err := rows.Scan(
			&v.ID,
			&v.PropertyID,
			&v.Agency,
			&v.Description,
			&v.ViolationType,
			&v.ViolationClass,
			&v.SeverityHint,
			&v.IsStopWorkOrder,
			&v.IsVacateOrder,
			&v.PenaltyAmount,
			&v.IssuedAt,
			&v.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan violation row: %w", err)
		}
		violations = append(violations, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating violation rows: %w", err)
	}

	return violations, nil
}
