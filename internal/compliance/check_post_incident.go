package compliance

import (
	"fmt"
	"time"

	"github.com/calebwray/lintel/internal/models"
)

func evalPostIncident(p models.PropertyProfile, now time.Time) LocalLawRequirement {
	req := LocalLawRequirement{
		LawCode:      "PIS",
		Name:         "Post-Incident Structural Inspection",
		Description:  "Larger commercial buildings must be inspected by a registered design professional after any structural incident, fire, or vehicle impact before normal occupancy resumes.",
		ReferenceURL: "https://www.nyc.gov/site/buildings/safety/structural-safety.page",
		Tooltip:      "Structural inspection required after damage events at larger commercial buildings.",
	}

	stories := intVal(p.Stories)
	switch {
	case stories <= 7:
		req.Reason = fmt.Sprintf("Building has %d stories; the inspection requirement covers commercial buildings taller than seven stories.", stories)
		req.Status = StatusExempt
	case !isCommercialOffice(p):
		req.Reason = "Building is not commercial or office-classified; the post-incident inspection requirement does not apply."
		req.Status = StatusExempt
	default:
		// Triggered by incidents, not by a calendar, so there is never a
		// computable due date.
		req.Applies = true
		req.Reason = fmt.Sprintf("Building is a commercial structure with %d stories; post-incident inspections are required after any damage event.", stories)
		req.PenaltyAmount = floatPtr(2500)
		req.PenaltyDescription = strPtr("Civil penalties for resuming occupancy without a post-incident inspection report.")
		req.Status = StatusPending
	}
	return req
}
