package paintingsapi

import (
	"encoding/json"
	"net/http"

	"doris-art/datastore"
	"doris-art/internal/api/common"
	"doris-art/internal/domain/paintings"
	"doris-art/internal/validation"

	"github.com/gin-gonic/gin"
)

func emptyDocument() paintings.Document {
	return paintings.Document{Paintings: []paintings.Painting{}}
}

func loadDocument() (paintings.Document, error) {
	doc, err := common.Load(datastore.Paintings, emptyDocument)
	doc.Normalize()
	return doc, err
}

// GET /api/admin/paintings
func List(c *gin.Context) {
	doc, err := loadDocument()
	if err != nil {
		common.Fail(c, "fetch paintings", err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// GET /api/paintings
func ListPublic(c *gin.Context) {
	doc, err := loadDocument()
	if err != nil {
		common.Fail(c, "fetch paintings", err)
		return
	}
	common.Public(c)
	c.JSON(http.StatusOK, doc)
}

// GET /api/admin/paintings/:id
func Get(c *gin.Context) {
	id, ok := common.ParamID(c)
	if !ok {
		return
	}
	doc, err := loadDocument()
	if err != nil {
		common.Fail(c, "fetch painting", err)
		return
	}
	i, found := doc.Find(id)
	if !found {
		common.NotFound(c, "Painting")
		return
	}
	c.JSON(http.StatusOK, doc.Paintings[i])
}

// POST /api/admin/paintings
func Create(c *gin.Context) {
	body, ok := common.Body(c)
	if !ok {
		return
	}
	var in validation.PaintingCreate
	if err := validation.Decode(body, &in); err != nil {
		common.Fail(c, "create painting", err)
		return
	}

	doc, err := loadDocument()
	if err != nil {
		common.Fail(c, "create painting", err)
		return
	}
	p := in.Painting(datastore.NextID(doc.Paintings, paintings.PaintingID))
	doc.Paintings = append(doc.Paintings, p)

	if err := common.Save(datastore.Paintings, doc); err != nil {
		common.Fail(c, "create painting", err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// PUT /api/admin/paintings/:id
func Update(c *gin.Context) {
	id, ok := common.ParamID(c)
	if !ok {
		return
	}
	body, ok := common.Body(c)
	if !ok {
		return
	}
	var in validation.PaintingUpdate
	if err := validation.Decode(body, &in); err != nil {
		common.Fail(c, "update painting", err)
		return
	}

	doc, err := loadDocument()
	if err != nil {
		common.Fail(c, "update painting", err)
		return
	}
	i, found := doc.Find(id)
	if !found {
		common.NotFound(c, "Painting")
		return
	}
	in.ApplyTo(&doc.Paintings[i])

	if err := common.Save(datastore.Paintings, doc); err != nil {
		common.Fail(c, "update painting", err)
		return
	}
	c.JSON(http.StatusOK, doc.Paintings[i])
}

// DELETE /api/admin/paintings/:id
func Delete(c *gin.Context) {
	id, ok := common.ParamID(c)
	if !ok {
		return
	}
	doc, err := loadDocument()
	if err != nil {
		common.Fail(c, "delete painting", err)
		return
	}
	i, found := doc.Find(id)
	if !found {
		common.NotFound(c, "Painting")
		return
	}
	doc.Paintings = append(doc.Paintings[:i], doc.Paintings[i+1:]...)

	if err := common.Save(datastore.Paintings, doc); err != nil {
		common.Fail(c, "delete painting", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// PUT /api/admin/paintings
func Reorder(c *gin.Context) {
	var input struct {
		Paintings []json.RawMessage `json:"paintings"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Paintings == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Paintings array required"})
		return
	}
	items, err := validation.DecodeList[validation.PaintingCreate](input.Paintings, "paintings")
	if err != nil {
		common.Fail(c, "reorder paintings", err)
		return
	}

	doc := paintings.Document{Paintings: make([]paintings.Painting, len(items))}
	for i, it := range items {
		doc.Paintings[i] = it.Value.Painting(it.ID)
	}

	if err := common.Save(datastore.Paintings, doc); err != nil {
		common.Fail(c, "reorder paintings", err)
		return
	}
	c.JSON(http.StatusOK, doc)
}
