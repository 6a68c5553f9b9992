package compliance

import (
	"fmt"
	"time"

	"github.com/calebwray/lintel/internal/models"
)

// gasPipingCycleYears maps the block digit to the inspection year of the
// current four-year cycle: digits 0-3 file in 2024, 4-6 in 2025, 7-9 in 2026.
var gasPipingCycleYears = []struct {
	maxDigit int
	year     int
}{
	{3, 2024},
	{6, 2025},
	{9, 2026},
}

func evalGasPiping(p models.PropertyProfile, now time.Time) LocalLawRequirement {
	req := LocalLawRequirement{
		LawCode:      "LL152",
		Name:         "Gas Piping Inspection",
		Description:  "Buildings with gas service must have exposed gas piping inspected by a licensed master plumber every four years, staggered by tax block.",
		ReferenceURL: "https://www.nyc.gov/site/buildings/safety/gas-piping-inspections.page",
		Tooltip:      "Periodic gas piping inspection for buildings with gas service.",
	}

	if !boolVal(p.HasGas) {
		req.Reason = "No gas service on record; the piping inspection requirement does not apply."
		req.Status = StatusExempt
		return req
	}

	req.Applies = true
	req.PenaltyAmount = floatPtr(10000)
	req.PenaltyDescription = strPtr("Up to $10,000 for failure to file a gas piping inspection certification.")

	digit, ok := blockDigit(strVal(p.BBL))
	if !ok {
		req.Reason = "Building has gas service and requires periodic piping inspection; the inspection year could not be determined from the tax lot."
		req.Status = StatusPending
		return req
	}

	for _, c := range gasPipingCycleYears {
		if digit <= c.maxDigit {
			due := dateOf(c.year, time.December, 31)
			req.Reason = fmt.Sprintf("Building has gas service; the current inspection cycle year is %d (block digit %d).", c.year, digit)
			req.CycleYear = intPtr(c.year)
			req.NextDue = datePtr(due)
			req.FilingDeadline = req.NextDue
			req.Status = scheduleStatus(now, req.NextDue, 12)
			return req
		}
	}

	req.Status = StatusPending
	return req
}
