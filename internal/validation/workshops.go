package validation

import (
	"fmt"

	"doris-art/internal/domain/workshops"
)

type ScheduleInput struct {
	ID         *int   `json:"id" validate:"required"`
	Date       string `json:"date" validate:"isodate"`
	Time       string `json:"time" validate:"hhmm"`
	SpotsTotal *int   `json:"spotsTotal" validate:"required,min=1"`
	SpotsTaken *int   `json:"spotsTaken" validate:"required,min=0"`
}

func (s ScheduleInput) schedule() workshops.Schedule {
	return workshops.Schedule{ID: *s.ID, Date: s.Date, Time: s.Time, SpotsTotal: *s.SpotsTotal, SpotsTaken: *s.SpotsTaken}
}

func checkSchedules(ss []ScheduleInput) Errors {
	var out Errors
	for i, s := range ss {
		if *s.SpotsTaken > *s.SpotsTotal {
			out = append(out, FieldError{
				Path:    fmt.Sprintf("schedules[%d].spotsTaken", i),
				Message: "Must not exceed spotsTotal",
			})
		}
	}
	return out
}

func toSchedules(ss []ScheduleInput) []workshops.Schedule {
	out := make([]workshops.Schedule, len(ss))
	for i, s := range ss {
		out[i] = s.schedule()
	}
	return out
}

type WorkshopCreate struct {
	Title         string   `json:"title" validate:"required"`
	TitleEn       string   `json:"titleEn"`
	Audience      string   `json:"audience" validate:"oneof=children adults"`
	Active        *bool    `json:"active" validate:"required"`
	Technique     string   `json:"technique" validate:"required"`
	TechniqueEn   string   `json:"techniqueEn"`
	Description   string   `json:"description" validate:"required"`
	DescriptionEn string   `json:"descriptionEn"`
	Duration      string   `json:"duration" validate:"required"`
	DurationEn    string   `json:"durationEn"`
	Price         *float64 `json:"price" validate:"required,min=0"`
	Currency      string   `json:"currency"`
	Includes      []string `json:"includes" validate:"required"`
	IncludesEn    []string `json:"includesEn"`
	AgeRange      string   `json:"ageRange"`
	AgeRangeEn    string   `json:"ageRangeEn"`

	MaxParticipants *int            `json:"maxParticipants" validate:"required,min=1"`
	Image           string          `json:"image" validate:"required"`
	Schedules       []ScheduleInput `json:"schedules" validate:"required,dive"`
}

func (in WorkshopCreate) Check() Errors { return checkSchedules(in.Schedules) }

func (in WorkshopCreate) Workshop(id int) workshops.Workshop {
	w := workshops.Workshop{
		ID:              id,
		Title:           in.Title,
		TitleEn:         in.TitleEn,
		Audience:        workshops.Audience(in.Audience),
		Active:          in.Active,
		Technique:       in.Technique,
		TechniqueEn:     in.TechniqueEn,
		Description:     in.Description,
		DescriptionEn:   in.DescriptionEn,
		Duration:        in.Duration,
		DurationEn:      in.DurationEn,
		Price:           *in.Price,
		Currency:        in.Currency,
		Includes:        in.Includes,
		IncludesEn:      in.IncludesEn,
		AgeRange:        in.AgeRange,
		AgeRangeEn:      in.AgeRangeEn,
		MaxParticipants: *in.MaxParticipants,
		Image:           in.Image,
		Schedules:       toSchedules(in.Schedules),
	}
	w.Normalize()
	return w
}

// WorkshopUpdate is a partial workshop. Absent fields keep their stored value.
type WorkshopUpdate struct {
	Title         *string   `json:"title" validate:"omitnil,min=1"`
	TitleEn       *string   `json:"titleEn"`
	Audience      *string   `json:"audience" validate:"omitnil,oneof=children adults"`
	Active        *bool     `json:"active"`
	Technique     *string   `json:"technique" validate:"omitnil,min=1"`
	TechniqueEn   *string   `json:"techniqueEn"`
	Description   *string   `json:"description" validate:"omitnil,min=1"`
	DescriptionEn *string   `json:"descriptionEn"`
	Duration      *string   `json:"duration" validate:"omitnil,min=1"`
	DurationEn    *string   `json:"durationEn"`
	Price         *float64  `json:"price" validate:"omitnil,min=0"`
	Currency      *string   `json:"currency"`
	Includes      *[]string `json:"includes"`
	IncludesEn    *[]string `json:"includesEn"`
	AgeRange      *string   `json:"ageRange"`
	AgeRangeEn    *string   `json:"ageRangeEn"`

	MaxParticipants *int             `json:"maxParticipants" validate:"omitnil,min=1"`
	Image           *string          `json:"image" validate:"omitnil,min=1"`
	Schedules       *[]ScheduleInput `json:"schedules" validate:"omitnil,dive"`
}

func (in WorkshopUpdate) Check() Errors {
	if in.Schedules == nil {
		return nil
	}
	return checkSchedules(*in.Schedules)
}

func (in WorkshopUpdate) ApplyTo(w *workshops.Workshop) {
	setString(&w.Title, in.Title)
	setString(&w.TitleEn, in.TitleEn)
	if in.Audience != nil {
		w.Audience = workshops.Audience(*in.Audience)
	}
	if in.Active != nil {
		w.Active = in.Active
	}
	setString(&w.Technique, in.Technique)
	setString(&w.TechniqueEn, in.TechniqueEn)
	setString(&w.Description, in.Description)
	setString(&w.DescriptionEn, in.DescriptionEn)
	setString(&w.Duration, in.Duration)
	setString(&w.DurationEn, in.DurationEn)
	setFloat(&w.Price, in.Price)
	setString(&w.Currency, in.Currency)
	setStrings(&w.Includes, in.Includes)
	setStrings(&w.IncludesEn, in.IncludesEn)
	setString(&w.AgeRange, in.AgeRange)
	setString(&w.AgeRangeEn, in.AgeRangeEn)
	setInt(&w.MaxParticipants, in.MaxParticipants)
	setString(&w.Image, in.Image)
	if in.Schedules != nil {
		w.Schedules = toSchedules(*in.Schedules)
	}
	w.Normalize()
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setStrings(dst *[]string, v *[]string) {
	if v != nil {
		*dst = *v
	}
}
