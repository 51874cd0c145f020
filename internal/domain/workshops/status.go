package workshops

import "time"

type Status string

const (
	StatusInactive Status = "inactive"
	StatusActive   Status = "active"
	StatusSoldOut  Status = "sold_out"
)

// ComputeStatus folds IsActive and IsSoldOut into one tag. Inactive wins over
// sold out, so a switched-off workshop never shows as sold out.
func ComputeStatus(w Workshop, now time.Time) Status {
	switch {
	case !IsActive(w, now):
		return StatusInactive
	case IsSoldOut(w, now):
		return StatusSoldOut
	default:
		return StatusActive
	}
}

// View is the public projection of a workshop with its computed availability.
type View struct {
	Workshop
	Status         Status    `json:"status"`
	IsActive       bool      `json:"isActive"`
	IsSoldOut      bool      `json:"isSoldOut"`
	NextSchedule   *Schedule `json:"nextSchedule"`
	AvailableSpots int       `json:"availableSpots"`
}

func NewView(w Workshop, now time.Time) View {
	v := View{
		Workshop:  w,
		Status:    ComputeStatus(w, now),
		IsActive:  IsActive(w, now),
		IsSoldOut: IsSoldOut(w, now),
	}
	if s, ok := NextSchedule(w, now); ok {
		v.NextSchedule = &s
		v.AvailableSpots = AvailableSpots(s)
	}
	return v
}
