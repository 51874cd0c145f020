package rentalsapi

import (
	"encoding/json"
	"net/http"

	"doris-art/datastore"
	"doris-art/internal/api/common"
	"doris-art/internal/domain/rentals"
	"doris-art/internal/validation"

	"github.com/gin-gonic/gin"
)

func emptyDocument() rentals.Document {
	return rentals.Document{Rentals: []rentals.Rental{}}
}

// LoadDocument is shared with the reservation form and the sitemap.
func LoadDocument() (rentals.Document, error) {
	doc, err := common.Load(datastore.Rentals, emptyDocument)
	doc.Normalize()
	return doc, err
}

// GET /api/admin/rentals
func List(c *gin.Context) {
	doc, err := LoadDocument()
	if err != nil {
		common.Fail(c, "fetch rentals", err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// GET /api/admin/rentals/:id
func Get(c *gin.Context) {
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
	if !found {
		common.NotFound(c, "Rental")
		return
	}
	c.JSON(http.StatusOK, doc.Rentals[i])
}

// POST /api/admin/rentals
func Create(c *gin.Context) {
	body, ok := common.Body(c)
	if !ok {
		return
	}
	var in validation.RentalCreate
	if err := validation.Decode(body, &in); err != nil {
		common.Fail(c, "create rental", err)
		return
	}

	doc, err := LoadDocument()
	if err != nil {
		common.Fail(c, "create rental", err)
		return
	}
	rental := in.Rental(datastore.NextID(doc.Rentals, rentals.RentalID))
	doc.Rentals = append(doc.Rentals, rental)

	if err := common.Save(datastore.Rentals, doc); err != nil {
		common.Fail(c, "create rental", err)
		return
	}
	c.JSON(http.StatusCreated, rental)
}

// PUT /api/admin/rentals/:id
func Update(c *gin.Context) {
	id, ok := common.ParamID(c)
	if !ok {
		return
	}
	body, ok := common.Body(c)
	if !ok {
		return
	}
	var in validation.RentalUpdate
	if err := validation.Decode(body, &in); err != nil {
		common.Fail(c, "update rental", err)
		return
	}

	doc, err := LoadDocument()
	if err != nil {
		common.Fail(c, "update rental", err)
		return
	}
	i, found := doc.Find(id)
	if !found {
		common.NotFound(c, "Rental")
		return
	}
	in.ApplyTo(&doc.Rentals[i])

	if err := common.Save(datastore.Rentals, doc); err != nil {
		common.Fail(c, "update rental", err)
		return
	}
	c.JSON(http.StatusOK, doc.Rentals[i])
}

// DELETE /api/admin/rentals/:id
func Delete(c *gin.Context) {
	id, ok := common.ParamID(c)
	if !ok {
		return
	}
	doc, err := LoadDocument()
	if err != nil {
		common.Fail(c, "delete rental", err)
		return
	}
	i, found := doc.Find(id)
	if !found {
		common.NotFound(c, "Rental")
		return
	}
	doc.Rentals = append(doc.Rentals[:i], doc.Rentals[i+1:]...)

	if err := common.Save(datastore.Rentals, doc); err != nil {
		common.Fail(c, "delete rental", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// PUT /api/admin/rentals
func Reorder(c *gin.Context) {
	var input struct {
		Rentals []json.RawMessage `json:"rentals"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Rentals == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rentals array required"})
		return
	}
	items, err := validation.DecodeList[validation.RentalCreate](input.Rentals, "rentals")
	if err != nil {
		common.Fail(c, "reorder rentals", err)
		return
	}

	doc := rentals.Document{Rentals: make([]rentals.Rental, len(items))}
	for i, it := range items {
		doc.Rentals[i] = it.Value.Rental(it.ID)
	}

	if err := common.Save(datastore.Rentals, doc); err != nil {
		common.Fail(c, "reorder rentals", err)
		return
	}
	c.JSON(http.StatusOK, doc)
}
