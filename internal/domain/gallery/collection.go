package gallery

import "doris-art/internal/domain/media"

// Collection is the shared shape of gallery.json, photography.json and
// wall-paintings.json.
type Collection struct {
	Images []media.Image `json:"images"`
}

func Empty() Collection {
	return Collection{Images: []media.Image{}}
}

func (c *Collection) Normalize() {
	if c.Images == nil {
		c.Images = []media.Image{}
	}
}

func (c *Collection) Find(id int) (int, bool) {
	for i, img := range c.Images {
		if img.ID == id {
			return i, true
		}
	}
	return -1, false
}
