package notify

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const InquiryQueue = "inquiry.submitted"

// AMQPSink publishes every inquiry as a persistent JSON message.
type AMQPSink struct {
	URL   string
	Queue string
}

func NewAMQPSink(url string) *AMQPSink {
	return &AMQPSink{URL: url, Queue: InquiryQueue}
}

type inquiryEvent struct {
	Kind        string    `json:"kind"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	Subject     string    `json:"subject"`
	Body        string    `json:"body"`
	Payload     any       `json:"payload,omitempty"`
	SubmittedAt time.Time `json:"submittedAt"`
}

func eventFor(n Notification) inquiryEvent {
	return inquiryEvent{
		Kind:        string(n.Kind),
		Name:        n.Name,
		Email:       n.Email,
		Phone:       n.Phone,
		Subject:     n.Admin.Subject,
		Body:        n.Admin.Body,
		Payload:     n.Payload,
		SubmittedAt: n.SubmittedAt.UTC(),
	}
}

func (s *AMQPSink) Notify(ctx context.Context, n Notification) (Delivery, error) {
	conn, err := amqp.Dial(s.URL)
	if err != nil {
		log.Printf("rabbitmq: dial failed: %v", err)
		return Delivery{}, err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("rabbitmq: channel open failed: %v", err)
		return Delivery{}, err
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(
		s.Queue, // name
		true,    // durable
		false,   // autoDelete
		false,   // exclusive
		false,   // noWait
		nil,     // args
	); err != nil {
		log.Printf("rabbitmq: queue declare failed: %v", err)
		return Delivery{}, err
	}

	body, err := json.Marshal(eventFor(n))
	if err != nil {
		return Delivery{}, err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", s.Queue, false, false, pub); err != nil {
		log.Printf("rabbitmq: publish failed: %v", err)
		return Delivery{}, err
	}
	return Delivery{Channels: []string{"amqp"}}, nil
}
