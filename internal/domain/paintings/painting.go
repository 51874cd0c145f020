package paintings

import "doris-art/internal/domain/media"

type Painting struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	TitleEn string `json:"titleEn"`

	Size        string `json:"size"`
	Technique   string `json:"technique"`
	TechniqueEn string `json:"techniqueEn"`
	Location    string `json:"location"`
	LocationEn  string `json:"locationEn"`

	Images []media.Image `json:"images"`
}

type Document struct {
	Paintings []Painting `json:"paintings"`
}

func (p *Painting) Normalize() {
	if p.Images == nil {
		p.Images = []media.Image{}
	}
}

func (d *Document) Normalize() {
	if d.Paintings == nil {
		d.Paintings = []Painting{}
	}
	for i := range d.Paintings {
		d.Paintings[i].Normalize()
	}
}

func (d *Document) Find(id int) (int, bool) {
	for i, p := range d.Paintings {
		if p.ID == id {
			return i, true
		}
	}
	return -1, false
}

func PaintingID(p Painting) int { return p.ID }
