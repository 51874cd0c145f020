package rentals

type Rental struct {
	ID            int    `json:"id"`
	Title         string `json:"title"`
	TitleEn       string `json:"titleEn"`
	Description   string `json:"description"`
	DescriptionEn string `json:"descriptionEn"`
	Image         string `json:"image"`

	PricePerDay float64 `json:"pricePerDay"`
	Deposit     float64 `json:"deposit"` // per item
	Currency    string  `json:"currency"`

	Category   string `json:"category"`
	Dimensions string `json:"dimensions"`
	// nil counts as active.
	Active *bool `json:"active,omitempty"`
}

type Document struct {
	Rentals []Rental `json:"rentals"`
}

func (r Rental) Enabled() bool {
	return r.Active == nil || *r.Active
}

func (r *Rental) Normalize() {
	if r.Currency == "" {
		r.Currency = "EUR"
	}
}

func (d *Document) Normalize() {
	if d.Rentals == nil {
		d.Rentals = []Rental{}
	}
	for i := range d.Rentals {
		d.Rentals[i].Normalize()
	}
}

func (d *Document) Find(id int) (int, bool) {
	for i, r := range d.Rentals {
		if r.ID == id {
			return i, true
		}
	}
	return -1, false
}

func ActiveRentals(rs []Rental) []Rental {
	out := make([]Rental, 0, len(rs))
	for _, r := range rs {
		if r.Enabled() {
			out = append(out, r)
		}
	}
	return out
}

func RentalID(r Rental) int { return r.ID }
