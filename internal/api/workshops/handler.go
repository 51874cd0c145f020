package workshopsapi

import (
	"encoding/json"
	"net/http"
	"time"

	"doris-art/datastore"
	"doris-art/internal/api/common"
	"doris-art/internal/domain/workshops"
	"doris-art/internal/validation"

	"github.com/gin-gonic/gin"
)

var now = time.Now

func emptyDocument() workshops.Document {
	return workshops.Document{Workshops: []workshops.Workshop{}, EventTypes: []workshops.EventType{}}
}

func loadDocument() (workshops.Document, error) {
	doc, err := common.Load(datastore.Workshops, emptyDocument)
	doc.Normalize()
	return doc, err
}

// GET /api/admin/workshops
func List(c *gin.Context) {
	doc, err := loadDocument()
	if err != nil {
		common.Fail(c, "fetch workshops", err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// GET /api/admin/workshops/:id
func Get(c *gin.Context) {
	id, ok := common.ParamID(c)
	if !ok {
		return
	}
	doc, err := loadDocument()
	if err != nil {
		common.Fail(c, "fetch workshop", err)
		return
	}
	i, found := doc.Find(id)
	if !found {
		common.NotFound(c, "Workshop")
		return
	}
	c.JSON(http.StatusOK, doc.Workshops[i])
}

// POST /api/admin/workshops
func Create(c *gin.Context) {
	body, ok := common.Body(c)
	if !ok {
		return
	}
	var in validation.WorkshopCreate
	if err := validation.Decode(body, &in); err != nil {
		common.Fail(c, "create workshop", err)
		return
	}

	doc, err := loadDocument()
	if err != nil {
		common.Fail(c, "create workshop", err)
		return
	}
	w := in.Workshop(datastore.NextID(doc.Workshops, workshops.WorkshopID))
	doc.Workshops = append(doc.Workshops, w)

	if err := common.Save(datastore.Workshops, doc); err != nil {
		common.Fail(c, "create workshop", err)
		return
	}
	c.JSON(http.StatusCreated, w)
}

// PUT /api/admin/workshops/:id
func Update(c *gin.Context) {
	id, ok := common.ParamID(c)
	if !ok {
		return
	}
	body, ok := common.Body(c)
	if !ok {
		return
	}
	var in validation.WorkshopUpdate
	if err := validation.Decode(body, &in); err != nil {
		common.Fail(c, "update workshop", err)
		return
	}

	doc, err := loadDocument()
	if err != nil {
		common.Fail(c, "update workshop", err)
		return
	}
	i, found := doc.Find(id)
	if !found {
		common.NotFound(c, "Workshop")
		return
	}
	in.ApplyTo(&doc.Workshops[i])

	if err := common.Save(datastore.Workshops, doc); err != nil {
		common.Fail(c, "update workshop", err)
		return
	}
	c.JSON(http.StatusOK, doc.Workshops[i])
}

// DELETE /api/admin/workshops/:id
func Delete(c *gin.Context) {
	id, ok := common.ParamID(c)
	if !ok {
		return
	}
	doc, err := loadDocument()
	if err != nil {
		common.Fail(c, "delete workshop", err)
		return
	}
	i, found := doc.Find(id)
	if !found {
		common.NotFound(c, "Workshop")
		return
	}
	doc.Workshops = append(doc.Workshops[:i], doc.Workshops[i+1:]...)

	if err := common.Save(datastore.Workshops, doc); err != nil {
		common.Fail(c, "delete workshop", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// PUT /api/admin/workshops
// Replaces the list in the order given. eventTypes is replaced too when sent.
func Reorder(c *gin.Context) {
	var input struct {
		Workshops  []json.RawMessage      `json:"workshops"`
		EventTypes *[]workshops.EventType `json:"eventTypes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Workshops == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Workshops array required"})
		return
	}
	items, err := validation.DecodeList[validation.WorkshopCreate](input.Workshops, "workshops")
	if err != nil {
		common.Fail(c, "reorder workshops", err)
		return
	}

	doc, err := loadDocument()
	if err != nil {
		common.Fail(c, "reorder workshops", err)
		return
	}
	doc.Workshops = make([]workshops.Workshop, len(items))
	for i, it := range items {
		doc.Workshops[i] = it.Value.Workshop(it.ID)
	}
	if input.EventTypes != nil {
		doc.EventTypes = *input.EventTypes
	}
	doc.Normalize()

	if err := common.Save(datastore.Workshops, doc); err != nil {
		common.Fail(c, "reorder workshops", err)
		return
	}
	c.JSON(http.StatusOK, doc)
}
