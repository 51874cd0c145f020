package notify

import (
	"context"
	"fmt"
	"mime"
	"net/smtp"

	"doris-art/internal/domain/inquiries"
)

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPSink delivers the studio notice and the visitor confirmation by mail.
type SMTPSink struct {
	Host     string
	Port     string
	From     string
	Password string

	send sendFunc
}

func NewSMTPSink(host, port, from, password string) *SMTPSink {
	return &SMTPSink{Host: host, Port: port, From: from, Password: password, send: smtp.SendMail}
}

func (s *SMTPSink) Notify(_ context.Context, n Notification) (Delivery, error) {
	auth := smtp.PlainAuth("", s.From, s.Password, s.Host)
	addr := s.Host + ":" + s.Port

	if err := s.send(addr, auth, s.From, []string{n.Admin.To}, s.build(n.Admin, n.Email)); err != nil {
		fmt.Println("❌ SMTP error:", err)
		return Delivery{}, err
	}
	if n.Confirmation != nil {
		if err := s.send(addr, auth, s.From, []string{n.Confirmation.To}, s.build(*n.Confirmation, "")); err != nil {
			fmt.Println("❌ SMTP error:", err)
			return Delivery{}, err
		}
	}
	return Delivery{Channels: []string{"smtp"}}, nil
}

func (s *SMTPSink) build(m inquiries.Message, replyTo string) []byte {
	msg := "Subject: " + mime.QEncoding.Encode("utf-8", m.Subject) + "\r\n" +
		"From: " + s.From + "\r\n" +
		"To: " + m.To + "\r\n"
	if replyTo != "" {
		msg += "Reply-To: " + replyTo + "\r\n"
	}
	msg += "Content-Type: text/plain; charset=UTF-8\r\n" +
		"\r\n" +
		m.Body + "\r\n"
	return []byte(msg)
}
