package compliance

import (
	"fmt"
	"time"

	"github.com/calebwray/lintel/internal/models"
)

func evalLightingUpgrade(p models.PropertyProfile, now time.Time) LocalLawRequirement {
	req := LocalLawRequirement{
		LawCode:      "LL88",
		Name:         "Lighting Upgrade & Sub-Metering",
		Description:  "Non-residential buildings of 25,000 square feet or more must upgrade lighting to current code and install electrical sub-meters for large tenant spaces.",
		ReferenceURL: "https://www.nyc.gov/site/buildings/codes/lighting-submetering.page",
		Tooltip:      "One-time lighting and sub-metering upgrade for large non-residential buildings.",
	}

	sqft := effectiveSqft(p)
	switch {
	case sqft < areaThresholdSqft:
		req.Reason = fmt.Sprintf("Building area is %.0f sq ft; the upgrade requirement covers buildings of %d sq ft or more.", sqft, areaThresholdSqft)
		req.Status = StatusExempt
	case isResidentialClass(p):
		req.Reason = "Building is residential-classified; the lighting upgrade requirement covers non-residential buildings only."
		req.Status = StatusExempt
	default:
		// No filing schedule is published for this requirement; compliance is
		// verified at the next alteration filing.
		req.Applies = true
		req.Reason = fmt.Sprintf("Building is non-residential with %.0f sq ft, at or above the %d sq ft threshold.", sqft, areaThresholdSqft)
		req.PenaltyAmount = floatPtr(1500)
		req.PenaltyDescription = strPtr("Civil penalties assessed at audit if upgrades are not certified.")
		req.Status = StatusPending
	}
	return req
}
