package compliance

import (
	"fmt"
	"strings"
	"time"

	"github.com/calebwray/lintel/internal/models"
)

// AgencyAgingRule suppresses aged open violations for agencies whose public
// feeds are known to lag actual dispositions.
type AgencyAgingRule struct {
	Agency        string
	ThresholdDays int
	Rationale     string
}

// agingRules is the static suppression table. Agencies not listed here are
// never suppressed by age.
var agingRules = []AgencyAgingRule{
	{
		Agency:        "ECB",
		ThresholdDays: 730,
		Rationale:     "ECB violations are frequently resolved at hearings without the disposition reaching the public feed",
	},
	{
		Agency:        "DOB",
		ThresholdDays: 1095,
		Rationale:     "DOB violations older than three years are commonly dismissed or administratively closed without a feed update",
	},
	{
		Agency:        "HPD",
		ThresholdDays: 1095,
		Rationale:     "HPD violations are often certified as corrected years before the open-data record catches up",
	},
}

// AgingDecision records whether a violation should be excluded from active
// counts, and why.
type AgingDecision struct {
	Suppress bool   `json:"suppress"`
	Reason   string `json:"reason,omitempty"`
}

// AgingRules returns the static suppression table.
func AgingRules() []AgencyAgingRule {
	out := make([]AgencyAgingRule, len(agingRules))
	copy(out, agingRules)
	return out
}

// EvaluateAging decides whether a still-open violation is old enough that the
// source system has almost certainly lagged reality. Only violations whose
// status is "open" can be suppressed, and only when the days elapsed since
// issue exceed the agency's threshold. A violation at exactly the threshold
// is kept.
func EvaluateAging(v models.Violation, now time.Time) AgingDecision {
	if !strings.EqualFold(strings.TrimSpace(strVal(v.Status)), "open") {
		return AgingDecision{}
	}
	if v.IssuedAt == nil {
		return AgingDecision{}
	}

	elapsedDays := int(now.Sub(*v.IssuedAt).Hours() / 24)
	agency := strings.ToUpper(strings.TrimSpace(strVal(v.Agency)))

	for _, rule := range agingRules {
		if rule.Agency != agency {
			continue
		}
		if elapsedDays <= rule.ThresholdDays {
			return AgingDecision{}
		}
		years := elapsedDays / 365
		age := fmt.Sprintf("%d years", years)
		if years == 1 {
			age = "1 year"
		}
		return AgingDecision{
			Suppress: true,
			Reason:   fmt.Sprintf("%s (violation is %s old)", rule.Rationale, age),
		}
	}

	return AgingDecision{}
}
