package compliance

import (
	"time"

	"github.com/calebwray/lintel/internal/models"
)

// LocalLawRequirement is the result of evaluating one catalog entry against
// a property. It is constructed fresh on every evaluation and never stored
// by this package. Nullable fields use pointers: a requirement with no
// computable schedule carries nil CycleYear/NextDue/FilingDeadline, and
// penalty fields are only populated when the requirement applies.
type LocalLawRequirement struct {
	LawCode            string     `json:"lawCode"`
	Name               string     `json:"name"`
	Description        string     `json:"description"`
	Applies            bool       `json:"applies"`
	Reason             string     `json:"reason"`
	CycleYear          *int       `json:"cycleYear,omitempty"`
	NextDue            *time.Time `json:"nextDue,omitempty"`
	FilingDeadline     *time.Time `json:"filingDeadline,omitempty"`
	PenaltyAmount      *float64   `json:"penaltyAmount,omitempty"`
	PenaltyDescription *string    `json:"penaltyDescription,omitempty"`
	Status             Status     `json:"status"`
	ReferenceURL       string     `json:"referenceUrl"`
	Tooltip            string     `json:"tooltip"`
}

// Check represents a single requirement evaluator in the catalog.
type Check struct {
	Code string
	Name string
	// Eval inspects the profile and returns the requirement result for the
	// captured evaluation time. It must not mutate the profile or retain
	// state between calls.
	Eval func(p models.PropertyProfile, now time.Time) LocalLawRequirement
}

// catalog is the fixed requirement catalog. Declaration order is load-bearing:
// it is the tie-break for the stable sort in Evaluate, so entries must not be
// reordered without updating the tests that pin it.
var catalog = []Check{
	{Code: "LL11", Name: "Facade Inspection (FISP)", Eval: evalFacadeInspection},
	{Code: "LL84", Name: "Energy Benchmarking", Eval: evalEnergyBenchmarking},
	{Code: "LL97", Name: "Carbon Emissions Reporting", Eval: evalCarbonEmissions},
	{Code: "LL87", Name: "Energy Audit & Retro-Commissioning", Eval: evalEnergyAudit},
	{Code: "LL88", Name: "Lighting Upgrade & Sub-Metering", Eval: evalLightingUpgrade},
	{Code: "LL152", Name: "Gas Piping Inspection", Eval: evalGasPiping},
	{Code: "ELV-CAT1", Name: "Elevator Category 1 Test", Eval: evalElevatorCat1},
	{Code: "LL62", Name: "Boiler Annual Inspection", Eval: evalBoilerInspection},
	{Code: "CRANE-WP", Name: "Crane Wind-Action Plan", Eval: evalCraneWindPlan},
	{Code: "PIS", Name: "Post-Incident Structural Inspection", Eval: evalPostIncident},
	{Code: "LL26", Name: "Sprinkler Retrofit", Eval: evalSprinklerRetrofit},
}

// Catalog returns the fixed requirement catalog in declaration order.
func Catalog() []Check {
	out := make([]Check, len(catalog))
	copy(out, catalog)
	return out
}
