package validation

import "doris-art/internal/domain/site"

type SettingsInput struct {
	RentalCategories []string        `json:"rentalCategories" validate:"required,dive,required"`
	PageVisibility   map[string]bool `json:"pageVisibility" validate:"required"`
}

func (in SettingsInput) Settings() site.Settings {
	return site.Settings{RentalCategories: in.RentalCategories, PageVisibility: in.PageVisibility}
}

type BiographyInput struct {
	Sl []string `json:"sl" validate:"required"`
	En []string `json:"en" validate:"required"`
}

type AboutInput struct {
	Biography BiographyInput `json:"biography" validate:"required"`
	Image     string         `json:"image" validate:"required"`
}

func (in AboutInput) About() site.About {
	return site.About{
		Biography: site.Biography{Sl: in.Biography.Sl, En: in.Biography.En},
		Image:     in.Image,
	}
}
