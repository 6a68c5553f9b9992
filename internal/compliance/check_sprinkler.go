package compliance

import (
	"fmt"
	"time"

	"github.com/calebwray/lintel/internal/models"
)

// sprinklerHeightFt is the building height at which the retrofit mandate
// takes effect.
const sprinklerHeightFt = 100

// evalSprinklerRetrofit is the one evaluator whose status depends on a
// non-date attribute: an applicable building with a sprinkler system already
// installed reads compliant, and one without reads overdue. The retrofit
// deadline itself has lapsed, so there is no forward-looking schedule.
func evalSprinklerRetrofit(p models.PropertyProfile, now time.Time) LocalLawRequirement {
	req := LocalLawRequirement{
		LawCode:      "LL26",
		Name:         "Sprinkler Retrofit",
		Description:  "Buildings 100 feet or taller must be fully protected by an automatic sprinkler system.",
		ReferenceURL: "https://www.nyc.gov/site/buildings/codes/sprinkler-requirements.page",
		Tooltip:      "Full sprinkler coverage mandate for buildings 100 feet and taller.",
	}

	height := floatVal(p.HeightFt)
	if height < sprinklerHeightFt {
		req.Reason = fmt.Sprintf("Building height is %.0f ft; the retrofit mandate covers buildings %d ft and taller.", height, sprinklerHeightFt)
		req.Status = StatusExempt
		return req
	}

	req.Applies = true
	req.PenaltyAmount = floatPtr(5000)
	req.PenaltyDescription = strPtr("Civil penalties and possible vacate proceedings for occupying an unprotected building.")

	if boolVal(p.HasSprinkler) {
		req.Reason = fmt.Sprintf("Building height is %.0f ft and a sprinkler system is on record.", height)
		req.Status = StatusCompliant
		return req
	}

	req.Reason = fmt.Sprintf("Building height is %.0f ft with no sprinkler system on record; the retrofit deadline has passed.", height)
	req.Status = StatusOverdue
	return req
}
