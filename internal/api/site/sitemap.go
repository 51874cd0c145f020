package siteapi

import (
	"net/http"
	"time"

	"doris-art/config"
	"doris-art/datastore"
	"doris-art/internal/api/common"
	"doris-art/internal/domain/rentals"
	"doris-art/internal/domain/site"

	"github.com/gin-gonic/gin"
)

var now = time.Now

// GET /sitemap.xml
func Sitemap(c *gin.Context) {
	doc := common.LoadOr(datastore.Rentals, func() rentals.Document { return rentals.Document{} })
	active := rentals.ActiveRentals(doc.Rentals)
	ids := make([]int, 0, len(active))
	for _, r := range active {
		ids = append(ids, r.ID)
	}

	pages := make([]site.Page, 0, len(config.Site.Pages))
	for _, p := range config.Site.Pages {
		pages = append(pages, site.Page{Path: p.Path, Priority: p.Priority})
	}

	out, err := site.BuildSitemap(site.SitemapInput{
		BaseURL:   config.Site.BaseURL,
		Locales:   config.Site.Locales,
		Pages:     pages,
		RentalIDs: ids,
		Now:       now(),
	})
	if err != nil {
		common.Fail(c, "build sitemap", err)
		return
	}
	common.Public(c)
	c.Data(http.StatusOK, "application/xml; charset=utf-8", out)
}
