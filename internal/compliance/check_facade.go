package compliance

import (
	"fmt"
	"time"

	"github.com/calebwray/lintel/internal/models"
)

// Facade inspection sub-cycles are staggered by the last digit of the tax
// block: 0-3 is sub-cycle A, 4-6 is B, 7-9 is C.
var facadeSubCycles = []struct {
	label    string
	maxDigit int
	due      time.Time
}{
	{"A", 3, dateOf(2023, time.February, 21)},
	{"B", 6, dateOf(2026, time.February, 21)},
	{"C", 9, dateOf(2029, time.February, 21)},
}

func evalFacadeInspection(p models.PropertyProfile, now time.Time) LocalLawRequirement {
	req := LocalLawRequirement{
		LawCode:      "LL11",
		Name:         "Facade Inspection (FISP)",
		Description:  "Exterior walls and appurtenances of buildings taller than six stories must be periodically inspected and a report filed under the Facade Inspection & Safety Program.",
		ReferenceURL: "https://www.nyc.gov/site/buildings/safety/facades.page",
		Tooltip:      "Periodic facade inspection filing for buildings over six stories.",
	}

	stories := intVal(p.Stories)
	if stories <= 6 {
		req.Reason = fmt.Sprintf("Building has %d stories; only buildings taller than six stories are covered.", stories)
		req.Status = StatusExempt
		return req
	}

	req.Applies = true
	req.PenaltyAmount = floatPtr(1000)
	req.PenaltyDescription = strPtr("$1,000 per month for failure to file a facade report.")

	digit, ok := blockDigit(strVal(p.BBL))
	if !ok {
		req.Reason = fmt.Sprintf("Building has %d stories and requires periodic facade inspection; the filing sub-cycle could not be determined from the tax lot.", stories)
		req.Status = StatusPending
		return req
	}

	for _, sc := range facadeSubCycles {
		if digit <= sc.maxDigit {
			due := sc.due
			req.Reason = fmt.Sprintf("Building has %d stories; facade filing falls in sub-cycle %s (block digit %d).", stories, sc.label, digit)
			req.CycleYear = intPtr(due.Year())
			req.NextDue = datePtr(due)
			req.FilingDeadline = req.NextDue
			req.Status = scheduleStatus(now, req.NextDue, 12)
			return req
		}
	}

	// Unreachable: blockDigit always returns 0-9.
	req.Status = StatusPending
	return req
}
