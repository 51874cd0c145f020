package rentals

import (
	"errors"
	"math"
	"time"
)

const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date")

type Quote struct {
	Days        int     `json:"days"`
	RentalPrice float64 `json:"rentalPrice"`
	Deposit     float64 `json:"deposit"`
	Total       float64 `json:"total"`
	Currency    string  `json:"currency"`
}

// Days counts whole rental days between pickup and return, rounding up and
// never returning less than one.
func Days(pickup, ret time.Time) int {
	d := int(math.Ceil(ret.Sub(pickup).Hours() / 24))
	if d < 1 {
		return 1
	}
	return d
}

func TotalPrice(pricePerDay float64, days int, deposit float64) (rentalPrice, total float64) {
	rentalPrice = pricePerDay * float64(days)
	return rentalPrice, rentalPrice + deposit
}

// QuoteFor prices a reservation from YYYY-MM-DD dates.
func QuoteFor(r Rental, pickupDate, returnDate string) (Quote, error) {
	pickup, err := time.Parse(DateLayout, pickupDate)
	if err != nil {
		return Quote{}, ErrInvalidDate
	}
	ret, err := time.Parse(DateLayout, returnDate)
	if err != nil {
		return Quote{}, ErrInvalidDate
	}
	days := Days(pickup, ret)
	price, total := TotalPrice(r.PricePerDay, days, r.Deposit)
	cur := r.Currency
	if cur == "" {
		cur = "EUR"
	}
	return Quote{Days: days, RentalPrice: price, Deposit: r.Deposit, Total: total, Currency: cur}, nil
}
