package notify

import (
	"context"
	"errors"
	"log"
	"time"

	"doris-art/internal/domain/inquiries"
)

// Notification is one submitted public form on its way to the studio.
type Notification struct {
	Kind  inquiries.Kind
	Name  string
	Email string
	Phone string

	Admin        inquiries.Message
	Confirmation *inquiries.Message

	// Payload is the sanitised form as received, kept for the ledger and events.
	Payload     any
	SubmittedAt time.Time
}

// Delivery tells the caller what happened. The mailto links are always filled
// so the browser can fall back to the visitor's mail client.
type Delivery struct {
	AdminMailto string   `json:"adminMailto,omitempty"`
	UserMailto  string   `json:"userMailto,omitempty"`
	Channels    []string `json:"channels"`
}

type Sink interface {
	Notify(ctx context.Context, n Notification) (Delivery, error)
}

// MailtoSink composes mailto links and never fails.
type MailtoSink struct{}

func (MailtoSink) Notify(_ context.Context, n Notification) (Delivery, error) {
	d := Delivery{AdminMailto: n.Admin.Mailto(), Channels: []string{"mailto"}}
	if n.Confirmation != nil {
		d.UserMailto = n.Confirmation.Mailto()
	}
	return d, nil
}

// Fanout hands the notification to every sink. Failing transports are
// logged and skipped; it only errors when no sink succeeded.
type Fanout struct {
	Sinks []Sink
}

func (f Fanout) Notify(ctx context.Context, n Notification) (Delivery, error) {
	var out Delivery
	var errs []error
	for _, s := range f.Sinks {
		d, err := s.Notify(ctx, n)
		if err != nil {
			log.Printf("⚠️ notify via %T failed: %v", s, err)
			errs = append(errs, err)
			continue
		}
		if d.AdminMailto != "" {
			out.AdminMailto = d.AdminMailto
		}
		if d.UserMailto != "" {
			out.UserMailto = d.UserMailto
		}
		out.Channels = append(out.Channels, d.Channels...)
	}
	if len(out.Channels) == 0 && len(errs) > 0 {
		return out, errors.Join(errs...)
	}
	return out, nil
}
