package compliance

import (
	"fmt"
	"time"

	"github.com/calebwray/lintel/internal/models"
)

func evalCraneWindPlan(p models.PropertyProfile, now time.Time) LocalLawRequirement {
	req := LocalLawRequirement{
		LawCode:      "CRANE-WP",
		Name:         "Crane Wind-Action Plan",
		Description:  "High-rise buildings must keep an engineer-approved wind-action plan on site whenever a tower crane or derrick is in use.",
		ReferenceURL: "https://www.nyc.gov/site/buildings/safety/cranes-derricks.page",
		Tooltip:      "Wind-action plan requirement for crane work at high-rise buildings.",
	}

	stories := intVal(p.Stories)
	if stories <= 15 {
		req.Reason = fmt.Sprintf("Building has %d stories; the plan requirement covers buildings taller than fifteen stories.", stories)
		req.Status = StatusExempt
		return req
	}

	// Event-driven requirement: there is no filing calendar, the plan must
	// simply exist before crane work begins.
	req.Applies = true
	req.Reason = fmt.Sprintf("Building has %d stories; a wind-action plan is required before any crane or derrick operation.", stories)
	req.PenaltyAmount = floatPtr(10000)
	req.PenaltyDescription = strPtr("Up to $10,000 and a stop-work order for crane operation without an approved plan.")
	req.Status = StatusPending
	return req
}
