// Package compliance implements the evaluation core of the dashboard: the
// fixed local-law requirement catalog, violation severity classification, and
// age-based suppression of stale open violations.
//
// Everything in this package is a pure function over immutable inputs. "Now"
// is always an explicit parameter so evaluations are deterministic and safe
// to run concurrently.
package compliance

// Status is the compliance state of a single requirement for a property.
type Status string

const (
	StatusOverdue   Status = "overdue"
	StatusDueSoon   Status = "due_soon"
	StatusPending   Status = "pending"
	StatusCompliant Status = "compliant"
	StatusExempt    Status = "exempt"
)

// statusRank orders statuses by urgency for sorting. Lower sorts first.
var statusRank = map[Status]int{
	StatusOverdue:   0,
	StatusDueSoon:   1,
	StatusPending:   2,
	StatusCompliant: 3,
	StatusExempt:    4,
}

// Rank returns the sort position of the status, most urgent first.
// Unknown statuses sort last.
func (s Status) Rank() int {
	if r, ok := statusRank[s]; ok {
		return r
	}
	return len(statusRank)
}
