package rentals

import (
	"errors"
	"testing"
	"time"
)

func TestDays(t *testing.T) {
	base := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		ret  time.Time
		want int
	}{
		{base, 1},
		{base.AddDate(0, 0, -2), 1},
		{base.AddDate(0, 0, 1), 1},
		{base.AddDate(0, 0, 3), 3},
		{base.Add(49 * time.Hour), 3},
	}
	for _, tc := range cases {
		if got := Days(base, tc.ret); got != tc.want {
			t.Errorf("Days(%v) = %d, want %d", tc.ret, got, tc.want)
		}
	}
}

func TestQuoteFor(t *testing.T) {
	r := Rental{PricePerDay: 12.5, Deposit: 50}
	q, err := QuoteFor(r, "2026-06-01", "2026-06-04")
	if err != nil {
		t.Fatal(err)
	}
	if q.Days != 3 || q.RentalPrice != 37.5 || q.Total != 87.5 || q.Currency != "EUR" {
		t.Fatalf("unexpected quote %+v", q)
	}
	if _, err := QuoteFor(r, "01.06.2026", "2026-06-04"); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate; got %v", err)
	}
}

func TestActiveRentals(t *testing.T) {
	off := false
	rs := []Rental{{ID: 1}, {ID: 2, Active: &off}, {ID: 3}}
	got := ActiveRentals(rs)
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Fatalf("unexpected %+v", got)
	}
}
