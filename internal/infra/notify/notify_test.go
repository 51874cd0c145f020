package notify

import (
	"context"
	"encoding/json"
	"errors"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"doris-art/internal/domain/inquiries"
)

func sample() Notification {
	return Notification{
		Kind:         inquiries.KindRentalReservation,
		Name:         "Eva",
		Email:        "eva@example.com",
		Admin:        inquiries.Message{To: "info@example.art", Subject: "Nova rezervacija", Body: "a b"},
		Confirmation: &inquiries.Message{To: "eva@example.com", Subject: "Potrditev", Body: "hvala"},
		Payload:      map[string]any{"rentalId": 4},
		SubmittedAt:  time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC),
	}
}

type failingSink struct{}

func (failingSink) Notify(context.Context, Notification) (Delivery, error) {
	return Delivery{}, errors.New("broker down")
}

func TestMailtoSink(t *testing.T) {
	d, err := MailtoSink{}.Notify(context.Background(), sample())
	if err != nil {
		t.Fatal(err)
	}
	if d.AdminMailto != "mailto:info@example.art?subject=Nova%20rezervacija&body=a%20b" {
		t.Fatalf("admin mailto %q", d.AdminMailto)
	}
	if !strings.HasPrefix(d.UserMailto, "mailto:eva@example.com?") {
		t.Fatalf("user mailto %q", d.UserMailto)
	}
}

func TestFanout_TransportFailureDoesNotFail(t *testing.T) {
	f := Fanout{Sinks: []Sink{MailtoSink{}, failingSink{}}}
	d, err := f.Notify(context.Background(), sample())
	if err != nil {
		t.Fatalf("expected success once mailto is composed; got %v", err)
	}
	if d.AdminMailto == "" || len(d.Channels) != 1 || d.Channels[0] != "mailto" {
		t.Fatalf("unexpected delivery %+v", d)
	}
}

func TestFanout_AllFailed(t *testing.T) {
	f := Fanout{Sinks: []Sink{failingSink{}}}
	if _, err := f.Notify(context.Background(), sample()); err == nil {
		t.Fatalf("expected error when no sink succeeded")
	}
}

func TestSMTPSink_SendsNoticeAndConfirmation(t *testing.T) {
	var sent []string
	var rcpts []string
	s := NewSMTPSink("smtp.example.art", "587", "studio@example.art", "pw")
	s.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		if addr != "smtp.example.art:587" || from != "studio@example.art" {
			t.Errorf("unexpected addr/from %s %s", addr, from)
		}
		rcpts = append(rcpts, to...)
		sent = append(sent, string(msg))
		return nil
	}
	d, err := s.Notify(context.Background(), sample())
	if err != nil {
		t.Fatal(err)
	}
	if len(sent) != 2 || rcpts[0] != "info@example.art" || rcpts[1] != "eva@example.com" {
		t.Fatalf("unexpected sends %v", rcpts)
	}
	if !strings.Contains(sent[0], "Reply-To: eva@example.com\r\n") {
		t.Fatalf("studio notice should reply to the visitor:\n%s", sent[0])
	}
	if strings.Contains(sent[1], "Reply-To") {
		t.Fatalf("confirmation carries no Reply-To")
	}
	if len(d.Channels) != 1 || d.Channels[0] != "smtp" {
		t.Fatalf("unexpected delivery %+v", d)
	}
}

func TestSMTPSink_Error(t *testing.T) {
	s := NewSMTPSink("h", "25", "f@x", "")
	s.send = func(string, smtp.Auth, string, []string, []byte) error { return errors.New("refused") }
	if _, err := s.Notify(context.Background(), sample()); err == nil {
		t.Fatalf("expected error")
	}
}

func TestEventAndRecord(t *testing.T) {
	n := sample()
	ev := eventFor(n)
	b, err := json.Marshal(ev)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), `"kind":"rental_reservation"`) || !strings.Contains(string(b), `"rentalId":4`) {
		t.Fatalf("unexpected event %s", b)
	}

	rec, err := recordFor(n)
	if err != nil {
		t.Fatal(err)
	}
	if rec.Subject != "Nova rezervacija" || string(rec.Payload) != `{"rentalId":4}` {
		t.Fatalf("unexpected record %+v", rec)
	}
	n.Payload = nil
	rec, _ = recordFor(n)
	if string(rec.Payload) != "{}" {
		t.Fatalf("nil payload should store {}; got %s", rec.Payload)
	}
}

func TestInit_MailtoOnly(t *testing.T) {
	defer func(prev Sink) { Default = prev }(Default)
	Init(Options{})
	f, ok := Default.(Fanout)
	if !ok || len(f.Sinks) != 1 {
		t.Fatalf("expected mailto-only fanout; got %#v", Default)
	}
	Init(Options{SMTPHost: "h", SMTPFrom: "f", RabbitMQURL: "amqp://x"})
	if f := Default.(Fanout); len(f.Sinks) != 3 {
		t.Fatalf("expected 3 sinks; got %d", len(f.Sinks))
	}
}
