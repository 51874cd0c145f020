package media

// Image is one picture inside a painting or an image collection.
type Image struct {
	ID  int    `json:"id"`
	Src string `json:"src"`
	Alt string `json:"alt"`
}

func ImageID(i Image) int { return i.ID }
