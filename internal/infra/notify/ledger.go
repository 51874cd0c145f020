package notify

import (
	"context"
	"encoding/json"

	"gorm.io/gorm"

	"doris-art/internal/domain/inquiries"
)

// LedgerSink stores every inquiry in the database.
type LedgerSink struct {
	DB *gorm.DB
}

func recordFor(n Notification) (inquiries.Inquiry, error) {
	payload := json.RawMessage("{}")
	if n.Payload != nil {
		b, err := json.Marshal(n.Payload)
		if err != nil {
			return inquiries.Inquiry{}, err
		}
		payload = b
	}
	return inquiries.Inquiry{
		Kind:      string(n.Kind),
		Name:      n.Name,
		Email:     n.Email,
		Phone:     n.Phone,
		Subject:   n.Admin.Subject,
		Body:      n.Admin.Body,
		Payload:   payload,
		CreatedAt: n.SubmittedAt,
	}, nil
}

func (s LedgerSink) Notify(ctx context.Context, n Notification) (Delivery, error) {
	rec, err := recordFor(n)
	if err != nil {
		return Delivery{}, err
	}
	if err := s.DB.WithContext(ctx).Create(&rec).Error; err != nil {
		return Delivery{}, err
	}
	return Delivery{Channels: []string{"ledger"}}, nil
}
