package admin

import (
	"net/http"
	"strconv"
	"time"

	"doris-art/database"
	"doris-art/datastore"
	"doris-art/internal/api/common"
	"doris-art/internal/domain/gallery"
	"doris-art/internal/domain/inquiries"
	"doris-art/internal/domain/paintings"
	"doris-art/internal/domain/rentals"
	"doris-art/internal/domain/workshops"

	"github.com/gin-gonic/gin"
)

var now = time.Now

type WorkshopStats struct {
	Total   int                      `json:"total"`
	ByState map[workshops.Status]int `json:"by_status"`
}

type RentalStats struct {
	Total  int `json:"total"`
	Active int `json:"active"`
}

type DocumentStats struct {
	Present    bool       `json:"present"`
	Size       int64      `json:"size"`
	Backups    int        `json:"backups"`
	LastBackup *time.Time `json:"last_backup,omitempty"`
}

type AdminStats struct {
	Workshops WorkshopStats                   `json:"workshops"`
	Rentals   RentalStats                     `json:"rentals"`
	Paintings int                             `json:"paintings"`
	Images    map[datastore.Key]int           `json:"images"`
	Documents map[datastore.Key]DocumentStats `json:"documents"`
	Ledger    bool                            `json:"ledger"`
}

// GET /api/admin/dashboard
// Unreadable documents count as empty so one broken file does not hide the rest.
func AdminDashboard(c *gin.Context) {
	t := now()
	stats := AdminStats{
		Workshops: WorkshopStats{ByState: map[workshops.Status]int{}},
		Images:    map[datastore.Key]int{},
		Documents: map[datastore.Key]DocumentStats{},
		Ledger:    database.DB != nil,
	}

	ws := common.LoadOr(datastore.Workshops, func() workshops.Document { return workshops.Document{} })
	stats.Workshops.Total = len(ws.Workshops)
	for _, w := range ws.Workshops {
		stats.Workshops.ByState[workshops.ComputeStatus(w, t)]++
	}

	rs := common.LoadOr(datastore.Rentals, func() rentals.Document { return rentals.Document{} })
	stats.Rentals = RentalStats{Total: len(rs.Rentals), Active: len(rentals.ActiveRentals(rs.Rentals))}

	ps := common.LoadOr(datastore.Paintings, func() paintings.Document { return paintings.Document{} })
	stats.Paintings = len(ps.Paintings)

	for _, k := range []datastore.Key{datastore.Gallery, datastore.Photography, datastore.WallPaintings} {
		stats.Images[k] = len(common.LoadOr(k, gallery.Empty).Images)
	}

	for _, k := range datastore.AllKeys {
		var d DocumentStats
		ok, size, err := datastore.Docs.Exists(k)
		if err != nil {
			common.Fail(c, "load dashboard", err)
			return
		}
		d.Present, d.Size = ok, size
		list, err := datastore.Docs.ListBackups(k)
		if err != nil {
			common.Fail(c, "load dashboard", err)
			return
		}
		d.Backups = len(list)
		if len(list) > 0 {
			d.LastBackup = &list[0].CreatedAt
		}
		stats.Documents[k] = d
	}

	c.JSON(http.StatusOK, stats)
}

// GET /api/admin/inquiries?limit=50
// Lists the ledger newest first. Without a ledger database the list is empty.
func ListInquiries(c *gin.Context) {
	if database.DB == nil {
		c.JSON(http.StatusOK, gin.H{"ledger": false, "inquiries": []inquiries.Inquiry{}})
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit < 1 || limit > 500 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 500"})
		return
	}

	q := database.DB.WithContext(c.Request.Context()).Order("created_at DESC").Limit(limit)
	if kind := c.Query("kind"); kind != "" {
		q = q.Where("kind = ?", kind)
	}
	var list []inquiries.Inquiry
	if err := q.Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load inquiries"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ledger": true, "inquiries": list})
}
