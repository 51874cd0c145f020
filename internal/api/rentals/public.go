package rentalsapi

import (
	"net/http"

	"doris-art/internal/api/common"
	"doris-art/internal/domain/rentals"

	"github.com/gin-gonic/gin"
)

// GET /api/rentals
func ListPublic(c *gin.Context) {
	doc, err := LoadDocument()
	if err != nil {
		common.Fail(c, "fetch rentals", err)
		return
	}
	common.Public(c)
	c.JSON(http.StatusOK, rentals.Document{Rentals: rentals.ActiveRentals(doc.Rentals)})
}

// GET /api/rentals/:id
// Switched-off rentals are reported as missing.
func GetPublic(c *gin.Context) {
	id, ok := common.ParamID(c)
	if !ok {
		return
	}
	doc, err := LoadDocument()
	if err != nil {
		common.Fail(c, "fetch rental", err)
		return
	}
	i, found := doc.Find(id)
	if !found || !doc.Rentals[i].Enabled() {
		common.NotFound(c, "Rental")
		return
	}
	common.Public(c)
	c.JSON(http.StatusOK, doc.Rentals[i])
}
