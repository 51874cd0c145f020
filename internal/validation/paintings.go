package validation

import (
	"doris-art/internal/domain/media"
	"doris-art/internal/domain/paintings"
)

type ImageInput struct {
	ID  *int   `json:"id" validate:"required"`
	Src string `json:"src" validate:"required"`
	Alt string `json:"alt"`
}

func toImages(in []ImageInput) []media.Image {
	out := make([]media.Image, len(in))
	for i, img := range in {
		out[i] = media.Image{ID: *img.ID, Src: img.Src, Alt: img.Alt}
	}
	return out
}

type PaintingCreate struct {
	Title       string       `json:"title" validate:"required"`
	TitleEn     string       `json:"titleEn"`
	Size        string       `json:"size"`
	Technique   string       `json:"technique"`
	TechniqueEn string       `json:"techniqueEn"`
	Location    string       `json:"location"`
	LocationEn  string       `json:"locationEn"`
	Images      []ImageInput `json:"images" validate:"required,dive"`
}

func (in PaintingCreate) Painting(id int) paintings.Painting {
	p := paintings.Painting{
		ID:          id,
		Title:       in.Title,
		TitleEn:     in.TitleEn,
		Size:        in.Size,
		Technique:   in.Technique,
		TechniqueEn: in.TechniqueEn,
		Location:    in.Location,
		LocationEn:  in.LocationEn,
		Images:      toImages(in.Images),
	}
	p.Normalize()
	return p
}

type PaintingUpdate struct {
	Title       *string       `json:"title" validate:"omitnil,min=1"`
	TitleEn     *string       `json:"titleEn"`
	Size        *string       `json:"size"`
	Technique   *string       `json:"technique"`
	TechniqueEn *string       `json:"techniqueEn"`
	Location    *string       `json:"location"`
	LocationEn  *string       `json:"locationEn"`
	Images      *[]ImageInput `json:"images" validate:"omitnil,dive"`
}

func (in PaintingUpdate) ApplyTo(p *paintings.Painting) {
	setString(&p.Title, in.Title)
	setString(&p.TitleEn, in.TitleEn)
	setString(&p.Size, in.Size)
	setString(&p.Technique, in.Technique)
	setString(&p.TechniqueEn, in.TechniqueEn)
	setString(&p.Location, in.Location)
	setString(&p.LocationEn, in.LocationEn)
	if in.Images != nil {
		p.Images = toImages(*in.Images)
	}
	p.Normalize()
}
