package compliance

import (
	"time"

	"github.com/calebwray/lintel/internal/models"
)

func evalBoilerInspection(p models.PropertyProfile, now time.Time) LocalLawRequirement {
	req := LocalLawRequirement{
		LawCode:      "LL62",
		Name:         "Boiler Annual Inspection",
		Description:  "Low-pressure boilers must be inspected annually and the inspection report filed with the department by the end of the calendar year.",
		ReferenceURL: "https://www.nyc.gov/site/buildings/safety/boilers.page",
		Tooltip:      "Annual boiler inspection filing, due by December 31.",
	}

	if !boolVal(p.HasBoiler) {
		req.Reason = "No boiler on record; the annual boiler inspection does not apply."
		req.Status = StatusExempt
		return req
	}

	req.Applies = true
	req.Reason = "Building has a boiler on record; an annual inspection filing is required."
	req.PenaltyAmount = floatPtr(1000)
	req.PenaltyDescription = strPtr("$1,000 per boiler per year for failure to file the annual inspection report.")

	due := dateOf(now.Year(), time.December, 31)
	req.CycleYear = intPtr(due.Year())
	req.NextDue = datePtr(due)
	req.FilingDeadline = req.NextDue
	req.Status = scheduleStatus(now, req.NextDue, 3)
	return req
}
