package validation

import (
	"fmt"

	"doris-art/internal/domain/media"
)

type GalleryImageCreate struct {
	Src string `json:"src" validate:"required"`
	Alt string `json:"alt"`
}

func (in GalleryImageCreate) Image(id int) media.Image {
	return media.Image{ID: id, Src: in.Src, Alt: in.Alt}
}

type GalleryImageUpdate struct {
	Src *string `json:"src" validate:"omitnil,min=1"`
	Alt *string `json:"alt"`
}

func (in GalleryImageUpdate) ApplyTo(img *media.Image) {
	setString(&img.Src, in.Src)
	setString(&img.Alt, in.Alt)
}

// GalleryReorder replaces the whole image list.
type GalleryReorder struct {
	Images []ImageInput `json:"images" validate:"required,dive"`
}

func (in GalleryReorder) Check() Errors {
	var out Errors
	seen := make(map[int]bool, len(in.Images))
	for i, img := range in.Images {
		if seen[*img.ID] {
			out = append(out, FieldError{Path: fmt.Sprintf("images[%d].id", i), Message: "Duplicate id"})
			continue
		}
		seen[*img.ID] = true
	}
	return out
}

func (in GalleryReorder) List() []media.Image { return toImages(in.Images) }
