package compliance

import (
	"strconv"
	"strings"

	"github.com/calebwray/lintel/internal/models"
)

// Nil-safe accessors. Absent profile fields always read as the zero value;
// the evaluators fold that default into their applicability decisions.

func strVal(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func intVal(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func floatVal(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

func boolVal(p *bool) bool {
	if p == nil {
		return false
	}
	return *p
}

// effectiveSqft returns the square footage used by every area-threshold rule:
// building area when reported, gross area as fallback, else zero.
func effectiveSqft(p models.PropertyProfile) float64 {
	if p.BuildingAreaSqft != nil {
		return *p.BuildingAreaSqft
	}
	if p.GrossSqft != nil {
		return *p.GrossSqft
	}
	return 0
}

// blockDigit derives the scheduling digit from the block segment of a BBL
// (borough digit + 5-digit block + 4-digit lot). The upstream system reads
// the five-digit block segment starting at the third character, and every
// staggered schedule in production was assigned under that reading, so it is
// kept as-is. The second return value is false when the BBL is missing, too
// short, or has a non-numeric block segment; callers must degrade to
// applicable-but-unscheduled in that case.
func blockDigit(bbl string) (int, bool) {
	bbl = strings.TrimSpace(bbl)
	if len(bbl) < 7 {
		return 0, false
	}
	block, err := strconv.Atoi(bbl[2:7])
	if err != nil || block < 0 {
		return 0, false
	}
	return block % 10, true
}

// isResidentialClass reports whether the building is residential-classified,
// from the building class letter (A through D and R are residential classes)
// or an R occupancy group.
func isResidentialClass(p models.PropertyProfile) bool {
	class := strings.ToUpper(strings.TrimSpace(strVal(p.BuildingClass)))
	if class != "" {
		switch class[0] {
		case 'A', 'B', 'C', 'D', 'R':
			return true
		}
	}
	occ := strings.ToUpper(strings.TrimSpace(strVal(p.OccupancyGroup)))
	return strings.HasPrefix(occ, "R")
}

// isCommercialOffice reports whether the building is commercial or
// office-classified, from the O building class, the B occupancy group, or an
// explicit commercial/office use type.
func isCommercialOffice(p models.PropertyProfile) bool {
	class := strings.ToUpper(strings.TrimSpace(strVal(p.BuildingClass)))
	if class != "" && class[0] == 'O' {
		return true
	}
	occ := strings.ToUpper(strings.TrimSpace(strVal(p.OccupancyGroup)))
	if occ == "B" || strings.HasPrefix(occ, "B-") {
		return true
	}
	use := strings.ToLower(strVal(p.UseType) + " " + strVal(p.PrimaryUseGroup))
	return strings.Contains(use, "office") || strings.Contains(use, "commercial")
}
