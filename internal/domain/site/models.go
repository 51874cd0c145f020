package site

// Page keys used in settings.pageVisibility.
const (
	PageWorkshops     = "workshops"
	PagePaintings     = "paintings"
	PageRentals       = "rentals"
	PageGallery       = "gallery"
	PagePhotography   = "photography"
	PageWallPaintings = "wallPaintings"
	PageAbout         = "about"
	PageOther         = "other"
)

var PageKeys = []string{
	PageWorkshops, PagePaintings, PageRentals, PageGallery,
	PagePhotography, PageWallPaintings, PageAbout,
}

type Settings struct {
	RentalCategories []string        `json:"rentalCategories"`
	PageVisibility   map[string]bool `json:"pageVisibility"`
}

type Biography struct {
	Sl []string `json:"sl"`
	En []string `json:"en"`
}

type About struct {
	Biography Biography `json:"biography"`
	Image     string    `json:"image"`
}

func DefaultSettings() Settings {
	vis := make(map[string]bool, len(PageKeys))
	for _, k := range PageKeys {
		vis[k] = true
	}
	return Settings{
		RentalCategories: []string{"Dekoracija", "Pohištvo", "Razsvetljava", "Tekstil", "Drugo"},
		PageVisibility:   vis,
	}
}

// DefaultPublicVisibility is served when settings.json cannot be read.
func DefaultPublicVisibility() map[string]bool {
	vis := DefaultSettings().PageVisibility
	vis[PageOther] = true
	return vis
}

func DefaultAbout() About {
	return About{
		Biography: Biography{Sl: []string{""}, En: []string{""}},
		Image:     "/images/author/doris.jpeg",
	}
}

func (s *Settings) Normalize() {
	if s.RentalCategories == nil {
		s.RentalCategories = []string{}
	}
	if s.PageVisibility == nil {
		s.PageVisibility = map[string]bool{}
	}
}

func (a *About) Normalize() {
	if a.Biography.Sl == nil {
		a.Biography.Sl = []string{}
	}
	if a.Biography.En == nil {
		a.Biography.En = []string{}
	}
}
