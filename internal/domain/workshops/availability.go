package workshops

import (
	"sort"
	"time"
)

const DateLayout = "2006-01-02"

func AvailableSpots(s Schedule) int {
	return s.SpotsTotal - s.SpotsTaken
}

func IsFull(s Schedule) bool {
	return AvailableSpots(s) <= 0
}

// upcoming reports whether the session date, read as midnight UTC, is not
// before now. Dates that do not parse are never upcoming.
func upcoming(s Schedule, now time.Time) bool {
	d, err := time.Parse(DateLayout, s.Date)
	if err != nil {
		return false
	}
	return !d.Before(now)
}

// UpcomingSchedules keeps sessions dated now or later, in stored order.
func UpcomingSchedules(w Workshop, now time.Time) []Schedule {
	out := make([]Schedule, 0, len(w.Schedules))
	for _, s := range w.Schedules {
		if upcoming(s, now) {
			out = append(out, s)
		}
	}
	return out
}

// NextSchedule returns the earliest upcoming session that still has seats.
// Sessions on the same date keep their stored order.
func NextSchedule(w Workshop, now time.Time) (Schedule, bool) {
	open := make([]Schedule, 0, len(w.Schedules))
	for _, s := range UpcomingSchedules(w, now) {
		if !IsFull(s) {
			open = append(open, s)
		}
	}
	if len(open) == 0 {
		return Schedule{}, false
	}
	sort.SliceStable(open, func(i, j int) bool { return open[i].Date < open[j].Date })
	return open[0], true
}

// IsActive is false when the admin switched the workshop off, otherwise true
// when any session is upcoming, full or not.
func IsActive(w Workshop, now time.Time) bool {
	if !w.Enabled() {
		return false
	}
	return len(UpcomingSchedules(w, now)) > 0
}

// IsSoldOut is true when nothing is upcoming or every upcoming session is full.
func IsSoldOut(w Workshop, now time.Time) bool {
	for _, s := range UpcomingSchedules(w, now) {
		if !IsFull(s) {
			return false
		}
	}
	return true
}

func FilterByAudience(ws []Workshop, audience Audience) []Workshop {
	out := make([]Workshop, 0, len(ws))
	for _, w := range ws {
		if w.Audience == audience {
			out = append(out, w)
		}
	}
	return out
}

// FilterEnabled drops workshops whose active flag is explicitly false.
func FilterEnabled(ws []Workshop) []Workshop {
	out := make([]Workshop, 0, len(ws))
	for _, w := range ws {
		if w.Enabled() {
			out = append(out, w)
		}
	}
	return out
}
