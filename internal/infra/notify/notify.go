package notify

import (
	"fmt"

	"gorm.io/gorm"
)

// Default is the sink used by the public form handlers.
var Default Sink = Fanout{Sinks: []Sink{MailtoSink{}}}

type Options struct {
	SMTPHost     string
	SMTPPort     string
	SMTPFrom     string
	SMTPPassword string
	RabbitMQURL  string
	DB           *gorm.DB
}

// Init builds the fan-out from whatever transports are configured.
func Init(o Options) {
	sinks := []Sink{MailtoSink{}}
	if o.SMTPHost != "" && o.SMTPFrom != "" {
		sinks = append(sinks, NewSMTPSink(o.SMTPHost, o.SMTPPort, o.SMTPFrom, o.SMTPPassword))
	}
	if o.RabbitMQURL != "" {
		sinks = append(sinks, NewAMQPSink(o.RabbitMQURL))
	}
	if o.DB != nil {
		sinks = append(sinks, LedgerSink{DB: o.DB})
	}
	Default = Fanout{Sinks: sinks}
	fmt.Printf("✅ Notifications via %d channel(s)\n", len(sinks))
}
