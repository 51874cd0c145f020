package workshops

type Audience string

const (
	AudienceChildren Audience = "children"
	AudienceAdults   Audience = "adults"
)

type Schedule struct {
	ID         int    `json:"id"`
	Date       string `json:"date"` // YYYY-MM-DD
	Time       string `json:"time"` // HH:MM
	SpotsTotal int    `json:"spotsTotal"`
	SpotsTaken int    `json:"spotsTaken"`
}

type Workshop struct {
	ID       int      `json:"id"`
	Title    string   `json:"title"`
	TitleEn  string   `json:"titleEn"`
	Audience Audience `json:"audience"`
	// nil means the flag was never set, which counts as active.
	Active *bool `json:"active,omitempty"`

	Technique     string `json:"technique"`
	TechniqueEn   string `json:"techniqueEn"`
	Description   string `json:"description"`
	DescriptionEn string `json:"descriptionEn"`
	Duration      string `json:"duration"`
	DurationEn    string `json:"durationEn"`

	Price    float64 `json:"price"`
	Currency string  `json:"currency"`

	Includes   []string `json:"includes"`
	IncludesEn []string `json:"includesEn"`

	AgeRange        string `json:"ageRange"`
	AgeRangeEn      string `json:"ageRangeEn"`
	MaxParticipants int    `json:"maxParticipants"`
	Image           string `json:"image"`

	Schedules []Schedule `json:"schedules"`
}

type EventType struct {
	ID string `json:"id"`
	Sl string `json:"sl"`
	En string `json:"en"`
}

// Document is the shape of workshops.json.
type Document struct {
	Workshops  []Workshop  `json:"workshops"`
	EventTypes []EventType `json:"eventTypes"`
}

func (w Workshop) Enabled() bool {
	return w.Active == nil || *w.Active
}

// Normalize replaces missing lists with empty ones so the stored document
// always carries every key.
func (w *Workshop) Normalize() {
	if w.Includes == nil {
		w.Includes = []string{}
	}
	if w.IncludesEn == nil {
		w.IncludesEn = []string{}
	}
	if w.Schedules == nil {
		w.Schedules = []Schedule{}
	}
	if w.Currency == "" {
		w.Currency = "EUR"
	}
}

func (d *Document) Normalize() {
	if d.Workshops == nil {
		d.Workshops = []Workshop{}
	}
	if d.EventTypes == nil {
		d.EventTypes = []EventType{}
	}
	for i := range d.Workshops {
		d.Workshops[i].Normalize()
	}
}

func (d *Document) Find(id int) (int, bool) {
	for i, w := range d.Workshops {
		if w.ID == id {
			return i, true
		}
	}
	return -1, false
}

func (d *Document) EventType(id string) (EventType, bool) {
	for _, e := range d.EventTypes {
		if e.ID == id {
			return e, true
		}
	}
	return EventType{}, false
}

func WorkshopID(w Workshop) int { return w.ID }
