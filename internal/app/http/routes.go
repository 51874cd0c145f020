package routes

import (
	"net/http"

	"doris-art/config"
	adminapi "doris-art/internal/api/admin"
	authapi "doris-art/internal/api/auth"
	"doris-art/internal/api/backups"
	"doris-art/internal/api/contact"
	galleryapi "doris-art/internal/api/gallery"
	paintingsapi "doris-art/internal/api/paintings"
	rentalsapi "doris-art/internal/api/rentals"
	siteapi "doris-art/internal/api/site"
	uploadsapi "doris-art/internal/api/uploads"
	workshopsapi "doris-art/internal/api/workshops"
	"doris-art/internal/app/http/middleware"
	"doris-art/internal/domain/site"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RegisterRoutes wires the public site API and the admin CMS. rdb may be nil,
// in which case rate limiting and response caching are off.
func RegisterRoutes(r *gin.Engine, rdb *redis.Client) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	cached := middleware.ResponseCache(config.Cache, rdb)
	visible := func(page string) gin.HandlerFunc {
		return middleware.PageVisible(page, siteapi.PageVisibility)
	}

	r.GET("/sitemap.xml", cached, siteapi.Sitemap)

	// Public reads. The visibility check runs before the cache so hiding a
	// page takes effect even for cached responses.
	api := r.Group("/api")
	api.GET("/workshops", visible(site.PageWorkshops), cached, workshopsapi.ListPublic)
	api.GET("/paintings", visible(site.PagePaintings), cached, paintingsapi.ListPublic)
	api.GET("/rentals", visible(site.PageRentals), cached, rentalsapi.ListPublic)
	api.GET("/rentals/:id", visible(site.PageRentals), cached, rentalsapi.GetPublic)
	api.GET("/gallery", visible(site.PageGallery), cached, galleryapi.Gallery.ListPublic)
	api.GET("/photography", visible(site.PagePhotography), cached, galleryapi.Photography.ListPublic)
	api.GET("/wall-paintings", visible(site.PageWallPaintings), cached, galleryapi.WallPaintings.ListPublic)
	api.GET("/about", visible(site.PageAbout), cached, siteapi.PublicAbout)
	api.GET("/settings", siteapi.PublicSettings)

	// Public forms
	forms := api.Group("/")
	forms.Use(middleware.RateLimit(config.RateLimit, rdb), middleware.SanitizeAndCleanInputMiddleware())
	forms.POST("/contact", contact.Contact)
	forms.POST("/workshop-inquiry", visible(site.PageWorkshops), contact.WorkshopInquiry)
	forms.POST("/rental-reservation", visible(site.PageRentals), contact.RentalReservation)
	forms.POST("/upload-image", uploadsapi.Public)

	// Admin session
	api.POST("/admin/auth", middleware.RateLimit(config.RateLimit, rdb), authapi.Login)
	api.DELETE("/admin/auth", authapi.Logout)
	api.GET("/admin/auth", authapi.Status)

	admin := api.Group("/admin")
	admin.Use(middleware.AdminSession(), middleware.FlushCacheOnWrite(config.Cache, rdb))

	admin.GET("/dashboard", adminapi.AdminDashboard)
	admin.GET("/inquiries", adminapi.ListInquiries)

	admin.GET("/workshops", workshopsapi.List)
	admin.POST("/workshops", workshopsapi.Create)
	admin.PUT("/workshops", workshopsapi.Reorder)
	admin.GET("/workshops/:id", workshopsapi.Get)
	admin.PUT("/workshops/:id", workshopsapi.Update)
	admin.DELETE("/workshops/:id", workshopsapi.Delete)

	admin.GET("/paintings", paintingsapi.List)
	admin.POST("/paintings", paintingsapi.Create)
	admin.PUT("/paintings", paintingsapi.Reorder)
	admin.GET("/paintings/:id", paintingsapi.Get)
	admin.PUT("/paintings/:id", paintingsapi.Update)
	admin.DELETE("/paintings/:id", paintingsapi.Delete)

	admin.GET("/rentals", rentalsapi.List)
	admin.POST("/rentals", rentalsapi.Create)
	admin.PUT("/rentals", rentalsapi.Reorder)
	admin.GET("/rentals/:id", rentalsapi.Get)
	admin.PUT("/rentals/:id", rentalsapi.Update)
	admin.DELETE("/rentals/:id", rentalsapi.Delete)

	for path, h := range map[string]galleryapi.Handler{
		"/gallery":        galleryapi.Gallery,
		"/photography":    galleryapi.Photography,
		"/wall-paintings": galleryapi.WallPaintings,
	} {
		admin.GET(path, h.List)
		admin.POST(path, h.Create)
		admin.PUT(path, h.Reorder)
		admin.PUT(path+"/:id", h.Update)
		admin.DELETE(path+"/:id", h.Delete)
	}

	admin.GET("/settings", siteapi.GetSettings)
	admin.PUT("/settings", siteapi.UpdateSettings)
	admin.GET("/about", siteapi.GetAbout)
	admin.PUT("/about", siteapi.UpdateAbout)

	admin.POST("/upload", uploadsapi.Admin)

	admin.GET("/backups", backups.List)
	admin.POST("/backups/cleanup", backups.Cleanup)
	admin.POST("/backups/restore", backups.Restore)
}
