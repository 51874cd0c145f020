package contact

import (
	"net/http"
	"strconv"
	"time"

	"doris-art/config"
	"doris-art/datastore"
	"doris-art/internal/api/common"
	"doris-art/internal/domain/inquiries"
	"doris-art/internal/domain/rentals"
	"doris-art/internal/domain/workshops"
	"doris-art/internal/infra/notify"
	"doris-art/internal/validation"

	"github.com/gin-gonic/gin"
)

var now = time.Now

type response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	notify.Delivery
}

// deliver hands n to the configured sinks and writes the form response.
func deliver(c *gin.Context, n notify.Notification, ok string) {
	n.SubmittedAt = now()
	d, err := notify.Default.Notify(c.Request.Context(), n)
	if err != nil {
		common.Fail(c, "send inquiry", err)
		return
	}
	c.JSON(http.StatusOK, response{Success: true, Message: ok, Delivery: d})
}

// POST /api/contact
func Contact(c *gin.Context) {
	body, ok := common.Body(c)
	if !ok {
		return
	}
	var in validation.ContactInput
	if err := validation.Decode(body, &in); err != nil {
		common.Fail(c, "send message", err)
		return
	}

	msg := inquiries.ComposeContact(config.CONTACT_EMAIL, inquiries.Contact{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Subject: in.Subject,
		Message: in.Message,
	})
	deliver(c, notify.Notification{
		Kind:    inquiries.KindContact,
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Admin:   msg,
		Payload: in,
	}, "Message sent successfully")
}

// POST /api/workshop-inquiry
// Scheduled requests name a workshop; the title and next session are looked
// up here rather than trusted from the form.
func WorkshopInquiry(c *gin.Context) {
	body, ok := common.Body(c)
	if !ok {
		return
	}
	var in validation.WorkshopInquiryInput
	if err := validation.Decode(body, &in); err != nil {
		common.Fail(c, "send inquiry", err)
		return
	}

	doc, err := common.Load(datastore.Workshops, func() workshops.Document { return workshops.Document{} })
	if err != nil {
		common.Fail(c, "send inquiry", err)
		return
	}

	loc := inquiries.ParseLocale(in.Locale)
	req := inquiries.WorkshopRequest{
		Locale:  loc,
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Message: in.Message,
	}

	if in.Mode == "scheduled" {
		i, found := doc.Find(*in.WorkshopID)
		if !found || !doc.Workshops[i].Enabled() {
			common.NotFound(c, "Workshop")
			return
		}
		w := doc.Workshops[i]
		req.WorkshopTitle = w.Title
		if loc == inquiries.LocaleEn && w.TitleEn != "" {
			req.WorkshopTitle = w.TitleEn
		}
		if s, ok := workshops.NextSchedule(w, now()); ok {
			req.Next = &s
		}
	} else {
		req.EventType = in.EventType
		if et, ok := doc.EventType(in.EventType); ok {
			req.EventType = et.Sl
			if loc == inquiries.LocaleEn {
				req.EventType = et.En
			}
		}
		if in.NumberOfPeople != nil {
			req.NumberOfPeople = strconv.Itoa(*in.NumberOfPeople)
		}
		req.PreferredDate = in.PreferredDate
	}

	deliver(c, notify.Notification{
		Kind:    req.Kind(),
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Admin:   inquiries.ComposeWorkshop(config.CONTACT_EMAIL, req),
		Payload: in,
	}, "Inquiry sent successfully")
}

// POST /api/rental-reservation
// The price is always computed from the stored rental.
func RentalReservation(c *gin.Context) {
	body, ok := common.Body(c)
	if !ok {
		return
	}
	var in validation.RentalReservationInput
	if err := validation.Decode(body, &in); err != nil {
		common.Fail(c, "process reservation", err)
		return
	}

	doc, err := common.Load(datastore.Rentals, func() rentals.Document { return rentals.Document{} })
	if err != nil {
		common.Fail(c, "process reservation", err)
		return
	}
	i, found := doc.Find(*in.RentalID)
	if !found || !doc.Rentals[i].Enabled() {
		common.NotFound(c, "Rental")
		return
	}
	rental := doc.Rentals[i]

	q, err := rentals.QuoteFor(rental, in.PickupDate, in.ReturnDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reservation dates"})
		return
	}

	admin, user := inquiries.ComposeReservation(config.CONTACT_EMAIL, inquiries.Reservation{
		RentalID:    rental.ID,
		RentalTitle: rental.Title,
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		PickupDate:  in.PickupDate,
		ReturnDate:  in.ReturnDate,
		PickupTime:  in.PickupTime,
		Message:     in.Message,
	}, q)

	deliver(c, notify.Notification{
		Kind:         inquiries.KindRentalReservation,
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		Admin:        admin,
		Confirmation: &user,
		Payload:      gin.H{"reservation": in, "quote": q},
	}, "Reservation submitted successfully")
}
