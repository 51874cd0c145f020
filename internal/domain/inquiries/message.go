package inquiries

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"doris-art/internal/domain/rentals"
	"doris-art/internal/domain/workshops"
)

type Kind string

const (
	KindContact           Kind = "contact"
	KindWorkshopScheduled Kind = "workshop_scheduled"
	KindWorkshopCustom    Kind = "workshop_custom"
	KindRentalReservation Kind = "rental_reservation"
)

// Message is a plain text mail ready to be sent or turned into a mailto link.
type Message struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func (m Message) Mailto() string {
	return "mailto:" + m.To + "?subject=" + encodeComponent(m.Subject) + "&body=" + encodeComponent(m.Body)
}

type Contact struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

func ComposeContact(to string, c Contact) Message {
	l := labelsFor(LocaleSl)
	subject := l.SubjectContact
	if c.Subject != "" {
		subject += ": " + c.Subject
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", l.Name, c.Name)
	fmt.Fprintf(&b, "%s: %s\n", l.Email, c.Email)
	if c.Phone != "" {
		fmt.Fprintf(&b, "%s: %s\n", l.Phone, c.Phone)
	}
	fmt.Fprintf(&b, "\n%s:\n%s", l.Message, c.Message)
	return Message{To: to, Subject: subject, Body: b.String()}
}

// WorkshopRequest carries a workshop form with the workshop or event type
// already resolved by the caller.
type WorkshopRequest struct {
	Locale  Locale
	Name    string
	Email   string
	Phone   string
	Message string

	// scheduled
	WorkshopTitle string
	Next          *workshops.Schedule

	// custom
	EventType      string
	NumberOfPeople string
	PreferredDate  string
}

func (r WorkshopRequest) Kind() Kind {
	if r.WorkshopTitle != "" {
		return KindWorkshopScheduled
	}
	return KindWorkshopCustom
}

func formatShortDate(loc Locale, date string) string {
	d, err := time.Parse(workshops.DateLayout, date)
	if err != nil {
		return date
	}
	if loc == LocaleEn {
		return d.Format("Jan 2")
	}
	return fmt.Sprintf("%d.%d.", d.Day(), int(d.Month()))
}

func ComposeWorkshop(to string, r WorkshopRequest) Message {
	l := labelsFor(r.Locale)
	var subject string
	if r.Kind() == KindWorkshopScheduled {
		subject = l.SubjectBooking + ": " + r.WorkshopTitle
	} else {
		subject = l.SubjectCustom + ": " + r.EventType
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", l.Name, r.Name)
	fmt.Fprintf(&b, "%s: %s\n", l.Email, r.Email)
	fmt.Fprintf(&b, "%s: %s\n\n", l.Phone, r.Phone)

	if r.Kind() == KindWorkshopScheduled {
		fmt.Fprintf(&b, "%s: %s\n", l.SelectedWorkshop, r.WorkshopTitle)
		if r.Next != nil {
			fmt.Fprintf(&b, "%s: %s %s %s\n", l.Date, formatShortDate(r.Locale, r.Next.Date), l.At, r.Next.Time)
		}
	} else {
		fmt.Fprintf(&b, "%s: %s\n", l.EventType, r.EventType)
		fmt.Fprintf(&b, "%s: %s\n", l.NumberOfPeople, r.NumberOfPeople)
		fmt.Fprintf(&b, "%s: %s\n", l.PreferredDate, r.PreferredDate)
	}

	if r.Message != "" {
		fmt.Fprintf(&b, "\n%s:\n%s", l.Message, r.Message)
	}
	return Message{To: to, Subject: subject, Body: b.String()}
}

type Reservation struct {
	RentalID    int
	RentalTitle string
	Name        string
	Email       string
	Phone       string
	PickupDate  string
	ReturnDate  string
	PickupTime  string
	Message     string
}

// FormatLongDateSl renders YYYY-MM-DD as "1. junij 2026".
func FormatLongDateSl(date string) string {
	d, err := time.Parse(rentals.DateLayout, date)
	if err != nil {
		return date
	}
	return fmt.Sprintf("%d. %s %d", d.Day(), slMonths[d.Month()-1], d.Year())
}

func amount(v float64, cur string) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + " " + cur
}

// ComposeReservation builds the studio notice and the customer confirmation.
func ComposeReservation(adminTo string, r Reservation, q rentals.Quote) (admin, user Message) {
	pickup := FormatLongDateSl(r.PickupDate)
	if r.PickupTime != "" {
		pickup += " ob " + r.PickupTime
	}
	ret := FormatLongDateSl(r.ReturnDate)

	price := fmt.Sprintf("Cena:\n- Najem: %s\n- Varščina: %s\n- Skupaj: %s\n\nPlačilo: Gotovina ob prevzemu\nPrevzem: Osebni prevzem\n",
		amount(q.RentalPrice, q.Currency), amount(q.Deposit, q.Currency), amount(q.Total, q.Currency))

	var a strings.Builder
	a.WriteString("Nova rezervacija izposoje\n\n")
	fmt.Fprintf(&a, "Izposoja: %s\nID: %d\n\n", r.RentalTitle, r.RentalID)
	fmt.Fprintf(&a, "Podatki stranke:\n- Ime: %s\n- Email: %s\n- Telefon: %s\n\n", r.Name, r.Email, r.Phone)
	fmt.Fprintf(&a, "Termin:\n- Prevzem: %s\n- Vrnitev: %s\n\n", pickup, ret)
	if r.Message != "" {
		fmt.Fprintf(&a, "Sporočilo: %s\n\n", r.Message)
	}
	a.WriteString(price)
	a.WriteString("\n---\nTo je avtomatsko sporočilo iz sistema rezervacij.\n")

	var u strings.Builder
	fmt.Fprintf(&u, "Pozdravljeni %s,\n\n", r.Name)
	fmt.Fprintf(&u, "Hvala za vašo rezervacijo izposoje \"%s\".\n\n", r.RentalTitle)
	fmt.Fprintf(&u, "Vaša rezervacija:\n- Prevzem: %s\n- Vrnitev: %s\n\n", pickup, ret)
	u.WriteString(price)
	u.WriteString("\nVaša rezervacija je bila poslana. Kontaktirali vas bomo v najkrajšem možnem času za potrditev.\n\nLep pozdrav,\nDoris Einfalt\n")

	admin = Message{To: adminTo, Subject: "Nova rezervacija izposoje - " + r.RentalTitle, Body: a.String()}
	user = Message{To: r.Email, Subject: "Potrditev rezervacije - " + r.RentalTitle, Body: u.String()}
	return admin, user
}
