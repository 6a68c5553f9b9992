package compliance

import (
	"time"

	"github.com/calebwray/lintel/internal/models"
)

func evalElevatorCat1(p models.PropertyProfile, now time.Time) LocalLawRequirement {
	req := LocalLawRequirement{
		LawCode:      "ELV-CAT1",
		Name:         "Elevator Category 1 Test",
		Description:  "Every elevator must receive a Category 1 no-load safety test each calendar year, performed by an approved agency and filed with the department.",
		ReferenceURL: "https://www.nyc.gov/site/buildings/safety/elevators.page",
		Tooltip:      "Annual no-load elevator safety test, due by December 31.",
	}

	if !boolVal(p.HasElevator) {
		req.Reason = "No elevator on record; annual elevator testing does not apply."
		req.Status = StatusExempt
		return req
	}

	req.Applies = true
	req.Reason = "Building has at least one elevator; a Category 1 test is required each calendar year."
	req.PenaltyAmount = floatPtr(3000)
	req.PenaltyDescription = strPtr("$3,000 per elevator for failure to perform and file the annual test.")

	due := dateOf(now.Year(), time.December, 31)
	req.CycleYear = intPtr(due.Year())
	req.NextDue = datePtr(due)
	req.FilingDeadline = req.NextDue
	req.Status = scheduleStatus(now, req.NextDue, 3)
	return req
}
