package compliance

// Summary aggregates a requirement list into dashboard counts. Total and the
// four status counts cover applicable requirements only; Exempt counts the
// requirements that do not apply.
type Summary struct {
	Total     int `json:"total"`
	Overdue   int `json:"overdue"`
	DueSoon   int `json:"dueSoon"`
	Compliant int `json:"compliant"`
	Pending   int `json:"pending"`
	Exempt    int `json:"exempt"`
}

// Summarize counts requirement statuses for the dashboard header.
func Summarize(reqs []LocalLawRequirement) Summary {
	var s Summary
	for _, r := range reqs {
		if !r.Applies {
			s.Exempt++
			continue
		}
		s.Total++
		switch r.Status {
		case StatusOverdue:
			s.Overdue++
		case StatusDueSoon:
			s.DueSoon++
		case StatusCompliant:
			s.Compliant++
		case StatusPending:
			s.Pending++
		}
	}
	return s
}
