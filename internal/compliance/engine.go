package compliance

import (
	"sort"
	"time"

	"github.com/calebwray/lintel/internal/models"
)

// Evaluate runs every catalog check against the profile using one captured
// evaluation time, so all applicability and schedule decisions in the result
// are internally consistent. Results are sorted with applicable requirements
// first, then by status urgency; the sort is stable so catalog declaration
// order breaks ties.
func Evaluate(p models.PropertyProfile, now time.Time) []LocalLawRequirement {
	results := make([]LocalLawRequirement, 0, len(catalog))
	for _, c := range catalog {
		results = append(results, c.Eval(p, now))
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Applies != results[j].Applies {
			return results[i].Applies
		}
		return results[i].Status.Rank() < results[j].Status.Rank()
	})

	return results
}
