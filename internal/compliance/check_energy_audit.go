package compliance

import (
	"fmt"
	"time"

	"github.com/calebwray/lintel/internal/models"
)

// energyAuditBaseYear anchors the rolling 10-year audit cycle. A building's
// first cycle year is the base year plus its block digit; the cycle then
// advances in 10-year steps.
const energyAuditBaseYear = 2020

func evalEnergyAudit(p models.PropertyProfile, now time.Time) LocalLawRequirement {
	req := LocalLawRequirement{
		LawCode:      "LL87",
		Name:         "Energy Audit & Retro-Commissioning",
		Description:  "Buildings of 25,000 square feet or more must undergo an energy audit and retro-commissioning once every ten years and file an Energy Efficiency Report.",
		ReferenceURL: "https://www.nyc.gov/site/buildings/codes/energy-audits.page",
		Tooltip:      "Ten-year energy audit cycle staggered by tax block.",
	}

	sqft := effectiveSqft(p)
	if sqft < areaThresholdSqft {
		req.Reason = fmt.Sprintf("Building area is %.0f sq ft; the audit requirement covers buildings of %d sq ft or more.", sqft, areaThresholdSqft)
		req.Status = StatusExempt
		return req
	}

	req.Applies = true
	req.PenaltyAmount = floatPtr(3000)
	req.PenaltyDescription = strPtr("$3,000 for the first year an Energy Efficiency Report is late, $5,000 each year after.")

	digit, ok := blockDigit(strVal(p.BBL))
	if !ok {
		req.Reason = fmt.Sprintf("Building area is %.0f sq ft and requires a periodic energy audit; the cycle year could not be determined from the tax lot.", sqft)
		req.Status = StatusPending
		return req
	}

	// Advance the cycle until it lands no earlier than last year, so a report
	// that was due last year still shows as the current (overdue) cycle.
	year := energyAuditBaseYear + digit
	for year < now.Year()-1 {
		year += 10
	}
	due := dateOf(year, time.December, 31)

	req.Reason = fmt.Sprintf("Building area is %.0f sq ft; the current audit cycle year is %d (block digit %d).", sqft, year, digit)
	req.CycleYear = intPtr(year)
	req.NextDue = datePtr(due)
	req.FilingDeadline = req.NextDue
	req.Status = scheduleStatus(now, req.NextDue, 12)
	return req
}
