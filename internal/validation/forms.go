package validation

type ContactInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message" validate:"required"`
}

type WorkshopInquiryInput struct {
	Mode   string `json:"mode" validate:"oneof=scheduled custom"`
	Locale string `json:"locale" validate:"omitempty,oneof=sl en"`
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
	Phone  string `json:"phone" validate:"required"`

	WorkshopID *int `json:"workshopId" validate:"required_if=Mode scheduled"`

	EventType      string `json:"eventType" validate:"required_if=Mode custom"`
	NumberOfPeople *int   `json:"numberOfPeople" validate:"omitnil,min=1"`
	PreferredDate  string `json:"preferredDate"`

	Message string `json:"message"`
}

type RentalReservationInput struct {
	RentalID   *int   `json:"rentalId" validate:"required"`
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"required"`
	PickupDate string `json:"pickupDate" validate:"required,isodate"`
	ReturnDate string `json:"returnDate" validate:"required,isodate"`
	PickupTime string `json:"pickupTime" validate:"omitempty,hhmm"`
	Message    string `json:"message"`
}
