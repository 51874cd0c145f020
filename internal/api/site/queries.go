package siteapi

import (
	"doris-art/datastore"
	"doris-art/internal/api/common"
	"doris-art/internal/domain/site"
)

func loadSettings() (site.Settings, error) {
	s, err := common.Load(datastore.Settings, site.DefaultSettings)
	s.Normalize()
	return s, err
}

func loadAbout() (site.About, error) {
	a, err := common.Load(datastore.About, site.DefaultAbout)
	a.Normalize()
	return a, err
}

// PageVisibility is read by the public page guard. Any read problem serves
// every section.
func PageVisibility() map[string]bool {
	s := common.LoadOr(datastore.Settings, func() site.Settings {
		return site.Settings{PageVisibility: site.DefaultPublicVisibility()}
	})
	if s.PageVisibility == nil {
		return site.DefaultPublicVisibility()
	}
	return s.PageVisibility
}
