package domain

import "time"

// CheckIn is an append-only admission event. A registration may accumulate
// several (one per event day); "already checked in today" is derived by
// calendar date, never stored.
type CheckIn struct {
	ID             string    `json:"id"`
	RegistrationID string    `json:"registration_id"`
	CheckedInBy    string    `json:"checked_in_by"`
	CheckedInAt    time.Time `json:"checked_in_at"`
}

// CheckedInToday reports whether any of the events fall on the same
// calendar date as now, in now's location.
func CheckedInToday(events []CheckIn, now time.Time) bool {
	y, m, d := now.Date()
	for _, e := range events {
		ey, em, ed := e.CheckedInAt.In(now.Location()).Date()
		if ey == y && em == m && ed == d {
			return true
		}
	}
	return false
}
