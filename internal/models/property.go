package models

// PropertyProfile represents the physical and administrative attributes of a
// building as assembled from city open-data feeds and manual entry.
// All attribute fields use pointers to distinguish between zero values and
// "not reported" — the compliance engine treats absence as false/zero/unknown,
// never as an error.
type PropertyProfile struct {
	ID               string   `json:"id"`
	BBL              *string  `json:"bbl,omitempty"`
	Stories          *int     `json:"stories,omitempty"`
	GrossSqft        *float64 `json:"grossSqft,omitempty"`
	BuildingAreaSqft *float64 `json:"buildingAreaSqft,omitempty"`
	DwellingUnits    *int     `json:"dwellingUnits,omitempty"`
	HasGas           *bool    `json:"hasGas,omitempty"`
	HasElevator      *bool    `json:"hasElevator,omitempty"`
	HasBoiler        *bool    `json:"hasBoiler,omitempty"`
	HasSprinkler     *bool    `json:"hasSprinkler,omitempty"`
	BuildingClass    *string  `json:"buildingClass,omitempty"`
	OccupancyGroup   *string  `json:"occupancyGroup,omitempty"`
	YearBuilt        *int     `json:"yearBuilt,omitempty"`
	HeightFt         *float64 `json:"heightFt,omitempty"`
	IsLandmark       *bool    `json:"isLandmark,omitempty"`
	BuildingCount    *int     `json:"buildingCount,omitempty"`
	PrimaryUseGroup  *string  `json:"primaryUseGroup,omitempty"`
	UseType          *string  `json:"useType,omitempty"`
}
