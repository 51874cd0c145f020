package datastore

// Key names one JSON document in the data directory.
type Key string

const (
	Workshops     Key = "workshops"
	Paintings     Key = "paintings"
	Rentals       Key = "rentals"
	Gallery       Key = "gallery"
	Photography   Key = "photography"
	Settings      Key = "settings"
	About         Key = "about"
	WallPaintings Key = "wall-paintings"
)

var AllKeys = []Key{
	Workshops,
	Paintings,
	Rentals,
	Gallery,
	Photography,
	Settings,
	About,
	WallPaintings,
}

func (k Key) Valid() bool {
	for _, known := range AllKeys {
		if k == known {
			return true
		}
	}
	return false
}

func (k Key) FileName() string {
	return string(k) + ".json"
}
