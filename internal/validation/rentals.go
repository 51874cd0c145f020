package validation

import "doris-art/internal/domain/rentals"

type RentalCreate struct {
	Title         string   `json:"title" validate:"required"`
	TitleEn       string   `json:"titleEn"`
	Description   string   `json:"description" validate:"required"`
	DescriptionEn string   `json:"descriptionEn"`
	Image         string   `json:"image" validate:"required"`
	PricePerDay   *float64 `json:"pricePerDay" validate:"required,min=0"`
	Deposit       *float64 `json:"deposit" validate:"required,min=0"`
	Currency      string   `json:"currency"`
	Category      string   `json:"category" validate:"required"`
	Dimensions    string   `json:"dimensions"`
	Active        *bool    `json:"active" validate:"required"`
}

func (in RentalCreate) Rental(id int) rentals.Rental {
	r := rentals.Rental{
		ID:            id,
		Title:         in.Title,
		TitleEn:       in.TitleEn,
		Description:   in.Description,
		DescriptionEn: in.DescriptionEn,
		Image:         in.Image,
		PricePerDay:   *in.PricePerDay,
		Deposit:       *in.Deposit,
		Currency:      in.Currency,
		Category:      in.Category,
		Dimensions:    in.Dimensions,
		Active:        in.Active,
	}
	r.Normalize()
	return r
}

type RentalUpdate struct {
	Title         *string  `json:"title" validate:"omitnil,min=1"`
	TitleEn       *string  `json:"titleEn"`
	Description   *string  `json:"description" validate:"omitnil,min=1"`
	DescriptionEn *string  `json:"descriptionEn"`
	Image         *string  `json:"image" validate:"omitnil,min=1"`
	PricePerDay   *float64 `json:"pricePerDay" validate:"omitnil,min=0"`
	Deposit       *float64 `json:"deposit" validate:"omitnil,min=0"`
	Currency      *string  `json:"currency"`
	Category      *string  `json:"category" validate:"omitnil,min=1"`
	Dimensions    *string  `json:"dimensions"`
	Active        *bool    `json:"active"`
}

func (in RentalUpdate) ApplyTo(r *rentals.Rental) {
	setString(&r.Title, in.Title)
	setString(&r.TitleEn, in.TitleEn)
	setString(&r.Description, in.Description)
	setString(&r.DescriptionEn, in.DescriptionEn)
	setString(&r.Image, in.Image)
	setFloat(&r.PricePerDay, in.PricePerDay)
	setFloat(&r.Deposit, in.Deposit)
	setString(&r.Currency, in.Currency)
	setString(&r.Category, in.Category)
	setString(&r.Dimensions, in.Dimensions)
	if in.Active != nil {
		r.Active = in.Active
	}
	r.Normalize()
}
