package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/calebwray/lintel/internal/database"
	"github.com/calebwray/lintel/internal/models"
)

// propertyColumns is the select list shared by every property query.
const propertyColumns = `
	id,
	bbl,
	stories,
	gross_sqft,
	building_area_sqft,
	dwelling_units,
	has_gas,
	has_elevator,
	has_boiler,
	has_sprinkler,
	building_class,
	occupancy_group,
	year_built,
	height_ft,
	is_landmark,
	building_count,
	primary_use_group,
	use_type`

// PropertyRepository defines the interface for property data access.
type PropertyRepository interface {
	// FindByID loads the profile for a property.
	// Returns nil, nil if the property does not exist (not an error).
	// Returns error only for actual database failures.
	FindByID(ctx context.Context, id string) (*models.PropertyProfile, error)

	// FindByBBL loads the profile for the property with the given tax-parcel
	// identifier. Returns nil, nil when no property matches.
	FindByBBL(ctx context.Context, bbl string) (*models.PropertyProfile, error)
}

// propertyRepository is the concrete implementation of PropertyRepository.
type propertyRepository struct {
	db *database.Database
}

// NewPropertyRepository creates a new instance of PropertyRepository.
func NewPropertyRepository(db *database.Database) PropertyRepository {
	return &propertyRepository{
		db: db,
	}
}

func (r *propertyRepository) FindByID(ctx context.Context, id string) (*models.PropertyProfile, error) {
	query := fmt.Sprintf("SELECT %s FROM properties WHERE id = $1", propertyColumns)
	return r.queryOne(ctx, query, id)
}

func (r *propertyRepository) FindByBBL(ctx context.Context, bbl string) (*models.PropertyProfile, error) {
	query := fmt.Sprintf("SELECT %s FROM properties WHERE bbl = $1", propertyColumns)
	return r.queryOne(ctx, query, bbl)
}

// queryOne runs a single-row property query and scans the nullable columns
// straight into the profile's pointer fields.
func (r *propertyRepository) queryOne(ctx context.Context, query string, arg any) (*models.PropertyProfile, error) {
	var p models.PropertyProfile

	err := r.db.Pool.QueryRow(ctx, query, arg).Scan(
		&p.ID,
		&p.BBL,
		&p.Stories,
		&p.GrossSqft,
		&p.BuildingAreaSqft,
		&p.DwellingUnits,
		&p.HasGas,
		&p.HasElevator,
		&p.HasBoiler,
		&p.HasSprinkler,
		&p.BuildingClass,
		&p.OccupancyGroup,
		&p.YearBuilt,
		&p.HeightFt,
		&p.IsLandmark,
		&p.BuildingCount,
		&p.PrimaryUseGroup,
		&p.UseType,
	)
	if err != nil {
		// No rows means the property doesn't exist - not a database error
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query property: %w", err)
	}

	return &p, nil
}
