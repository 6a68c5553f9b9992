package compliance

import "time"

// daysPerMonth is the divisor used to express a remaining interval in months
// for due-soon window checks. The 90-day benchmarking window is expressed as
// 3 months under this convention.
const daysPerMonth = 30

// monthsUntil returns the whole number of 30-day months between now and due.
// Negative when due has passed.
func monthsUntil(now, due time.Time) int {
	return int(due.Sub(now).Hours() / 24 / daysPerMonth)
}

// scheduleStatus derives a requirement status from its due date. A nil due
// date means the schedule could not be computed and the requirement stays
// pending. A due date strictly before now is overdue; within windowMonths of
// now it is due soon; otherwise pending.
func scheduleStatus(now time.Time, due *time.Time, windowMonths int) Status {
	if due == nil {
		return StatusPending
	}
	if due.Before(now) {
		return StatusOverdue
	}
	if monthsUntil(now, *due) <= windowMonths {
		return StatusDueSoon
	}
	return StatusPending
}

// dateOf builds a UTC calendar date. All catalog due dates are whole days.
func dateOf(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func datePtr(t time.Time) *time.Time { return &t }

func intPtr(v int) *int { return &v }

func boolPtr(v bool) *bool { return &v }

func floatPtr(v float64) *float64 { return &v }

func strPtr(s string) *string { return &s }
