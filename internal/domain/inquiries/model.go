package inquiries

import (
	"encoding/json"
	"time"
)

// Inquiry is one submitted public form, kept in the optional ledger.
type Inquiry struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Kind  string `gorm:"not null;index" json:"kind"`
	Name  string `gorm:"not null" json:"name"`
	Email string `gorm:"not null;index" json:"email"`
	Phone string `json:"phone,omitempty"`

	Subject string          `gorm:"not null" json:"subject"`
	Body    string          `gorm:"type:text;not null" json:"body"`
	Payload json.RawMessage `gorm:"type:jsonb;not null;default:'{}'" json:"payload"`

	CreatedAt time.Time `json:"created_at"`
}
