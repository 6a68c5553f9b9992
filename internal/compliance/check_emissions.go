package compliance

import (
	"fmt"
	"time"

	"github.com/calebwray/lintel/internal/models"
)

func evalCarbonEmissions(p models.PropertyProfile, now time.Time) LocalLawRequirement {
	req := LocalLawRequirement{
		LawCode:      "LL97",
		Name:         "Carbon Emissions Reporting",
		Description:  "Buildings of 25,000 square feet or more must file an annual greenhouse gas emissions report and stay under their emissions cap.",
		ReferenceURL: "https://www.nyc.gov/site/sustainablebuildings/ll97/local-law-97.page",
		Tooltip:      "Annual emissions report for large buildings, due each May 1.",
	}

	sqft := effectiveSqft(p)
	if sqft < areaThresholdSqft {
		req.Reason = fmt.Sprintf("Building area is %.0f sq ft; emissions reporting covers buildings of %d sq ft or more.", sqft, areaThresholdSqft)
		req.Status = StatusExempt
		return req
	}

	req.Applies = true
	req.Reason = fmt.Sprintf("Building area is %.0f sq ft, at or above the %d sq ft emissions threshold.", sqft, areaThresholdSqft)
	req.PenaltyAmount = floatPtr(268)
	req.PenaltyDescription = strPtr("$268 per metric ton of CO2e over the building's annual emissions limit.")

	// Same fixed annual date as benchmarking: May 1 of the current year, no
	// roll-forward once passed.
	due := dateOf(now.Year(), time.May, 1)
	req.CycleYear = intPtr(due.Year())
	req.NextDue = datePtr(due)
	req.FilingDeadline = req.NextDue
	req.Status = scheduleStatus(now, req.NextDue, 12)
	return req
}
