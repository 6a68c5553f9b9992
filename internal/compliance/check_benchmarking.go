package compliance

import (
	"fmt"
	"time"

	"github.com/calebwray/lintel/internal/models"
)

// areaThresholdSqft is the floor shared by the energy benchmarking, carbon
// emissions, energy audit, and lighting upgrade rules. The boundary is
// inclusive: a building at exactly 25,000 square feet is covered.
const areaThresholdSqft = 25000

func evalEnergyBenchmarking(p models.PropertyProfile, now time.Time) LocalLawRequirement {
	req := LocalLawRequirement{
		LawCode:      "LL84",
		Name:         "Energy Benchmarking",
		Description:  "Buildings of 25,000 square feet or more must report annual energy and water usage through the city benchmarking portal.",
		ReferenceURL: "https://www.nyc.gov/site/buildings/codes/benchmarking.page",
		Tooltip:      "Annual energy and water usage report, due each May 1.",
	}

	sqft := effectiveSqft(p)
	if sqft < areaThresholdSqft {
		req.Reason = fmt.Sprintf("Building area is %.0f sq ft; benchmarking covers buildings of %d sq ft or more.", sqft, areaThresholdSqft)
		req.Status = StatusExempt
		return req
	}

	req.Applies = true
	req.Reason = fmt.Sprintf("Building area is %.0f sq ft, at or above the %d sq ft benchmarking threshold.", sqft, areaThresholdSqft)
	req.PenaltyAmount = floatPtr(500)
	req.PenaltyDescription = strPtr("$500 per quarter of continued non-compliance, up to $2,000 per year.")

	// The report is due May 1 of the current year. Once that date passes the
	// requirement reads overdue for the remainder of the year; it does not
	// roll forward to next May.
	due := dateOf(now.Year(), time.May, 1)
	req.CycleYear = intPtr(due.Year())
	req.NextDue = datePtr(due)
	req.FilingDeadline = req.NextDue
	req.Status = scheduleStatus(now, req.NextDue, 3)
	return req
}
