package compliance

import (
	"fmt"
	"strings"

	"github.com/calebwray/lintel/internal/models"
)

// SeverityLevel bands violations for dashboard badges and digest ordering.
type SeverityLevel string

const (
	SeverityCritical SeverityLevel = "Critical"
	SeverityHigh     SeverityLevel = "High"
	SeverityMedium   SeverityLevel = "Medium"
	SeverityLow      SeverityLevel = "Low"
)

// SeverityInfo is the classification result for one violation: the level,
// a foreground/background color pair for badges, and the explanation and
// recommended action rendered in digests.
type SeverityInfo struct {
	Level             SeverityLevel `json:"level"`
	Color             string        `json:"color"`
	Background        string        `json:"background"`
	Explanation       string        `json:"explanation"`
	RecommendedAction string        `json:"recommendedAction"`
}

// fdnyAgency forces High severity regardless of keyword content.
const fdnyAgency = "FDNY"

// highPenaltyFloor is the penalty amount at which an otherwise unmatched
// violation is bumped to Medium.
const highPenaltyFloor = 5000

// Keyword lists are ordered slices evaluated top to bottom; the lists
// overlap, and only declaration order resolves which band wins, so these
// must never be converted to maps or sets.
var (
	criticalKeywords = []string{
		"vacate",
		"stop work",
		"unsafe",
		"imminent danger",
		"collapse",
		"emergency",
		"no permit",
		"cease",
		"life safety",
		"fire escape",
		"illegal conversion",
		"work without permit",
	}

	highKeywords = []string{
		"safety",
		"structural",
		"facade",
		"local law 11",
		"local law 196",
		"scaffold",
		"sidewalk shed",
		"parapet",
		"exterior wall",
		"retaining wall",
		"gas",
		"boiler",
		"elevator",
		"sprinkler",
		"standpipe",
		"egress",
		"fire alarm",
		"fire suppression",
	}

	mediumKeywords = []string{
		"complaint",
		"quality of life",
		"permit",
		"noise",
		"construction fence",
		"signage",
		"certificate of occupancy",
		"plumbing",
		"electrical",
		"hvac",
		"maintenance",
		"zoning",
		"alteration",
		"administrative",
	}
)

func severityColors(level SeverityLevel) (color, background string) {
	switch level {
	case SeverityCritical:
		return "#7f1d1d", "#fee2e2"
	case SeverityHigh:
		return "#9a3412", "#ffedd5"
	case SeverityMedium:
		return "#854d0e", "#fef9c3"
	default:
		return "#1e3a5f", "#e0ecf7"
	}
}

func severityInfo(level SeverityLevel, explanation, action string) SeverityInfo {
	color, background := severityColors(level)
	return SeverityInfo{
		Level:             level,
		Color:             color,
		Background:        background,
		Explanation:       explanation,
		RecommendedAction: action,
	}
}

// ClassifySeverity maps a violation record to a severity band. The cascade
// order is load-bearing: order flags are checked before any keyword match,
// keyword bands are checked from critical down, and the penalty floor only
// catches violations nothing else matched.
func ClassifySeverity(v models.Violation) SeverityInfo {
	if boolVal(v.IsStopWorkOrder) {
		return severityInfo(SeverityCritical,
			"An active stop-work order halts all construction activity at the property.",
			"Correct the cited condition and request a rescission inspection immediately.")
	}
	if boolVal(v.IsVacateOrder) {
		return severityInfo(SeverityCritical,
			"An active vacate order requires occupants to leave until the condition is corrected.",
			"Engage a registered design professional and resolve the hazardous condition before re-occupancy.")
	}

	text := strings.ToLower(strings.Join([]string{
		strVal(v.Description),
		strVal(v.ViolationType),
		strVal(v.ViolationClass),
		strVal(v.SeverityHint),
	}, " "))

	for _, kw := range criticalKeywords {
		if strings.Contains(text, kw) {
			return severityInfo(SeverityCritical,
				"The violation describes an immediate safety hazard.",
				"Address the condition immediately and retain a licensed professional to certify correction.")
		}
	}

	if matchesHigh(text) || strings.EqualFold(strVal(v.Agency), fdnyAgency) {
		return severityInfo(SeverityHigh,
			"The violation involves a building system or structural condition with safety implications.",
			"Schedule corrective work promptly and file the required certification of correction.")
	}

	for _, kw := range mediumKeywords {
		if strings.Contains(text, kw) {
			return severityInfo(SeverityMedium,
				"The violation is administrative or quality-of-life in nature.",
				"Review the cited condition and resolve it before the next hearing or filing deadline.")
		}
	}

	if penalty := floatVal(v.PenaltyAmount); penalty >= highPenaltyFloor {
		return severityInfo(SeverityMedium,
			fmt.Sprintf("The violation carries a penalty of $%.0f, indicating an elevated enforcement action.", penalty),
			"Review the penalty notice and respond before the cure date to avoid default judgment.")
	}

	return severityInfo(SeverityLow,
		"The violation has no indicators of immediate safety impact.",
		"Resolve during the next scheduled maintenance cycle.")
}

func matchesHigh(text string) bool {
	for _, kw := range highKeywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
