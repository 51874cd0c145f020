package galleryapi

import (
	"net/http"

	"doris-art/datastore"
	"doris-art/internal/api/common"
	"doris-art/internal/domain/gallery"
	"doris-art/internal/domain/media"
	"doris-art/internal/validation"

	"github.com/gin-gonic/gin"
)

// Handler serves one image collection document. Gallery, photography and
// wall paintings share the same shape and routes.
type Handler struct {
	Key  datastore.Key
	Name string
}

var (
	Gallery       = Handler{Key: datastore.Gallery, Name: "gallery"}
	Photography   = Handler{Key: datastore.Photography, Name: "photography"}
	WallPaintings = Handler{Key: datastore.WallPaintings, Name: "wall paintings"}
)

func (h Handler) load() (gallery.Collection, error) {
	col, err := common.Load(h.Key, gallery.Empty)
	col.Normalize()
	return col, err
}

// GET /api/admin/<collection>
func (h Handler) List(c *gin.Context) {
	col, err := h.load()
	if err != nil {
		common.Fail(c, "fetch "+h.Name, err)
		return
	}
	c.JSON(http.StatusOK, col)
}

// GET /api/<collection>
// Never fails: an unreadable document is served as an empty collection.
func (h Handler) ListPublic(c *gin.Context) {
	col := common.LoadOr(h.Key, gallery.Empty)
	col.Normalize()
	common.Public(c)
	c.JSON(http.StatusOK, col)
}

// POST /api/admin/<collection>
func (h Handler) Create(c *gin.Context) {
	body, ok := common.Body(c)
	if !ok {
		return
	}
	var in validation.GalleryImageCreate
	if err := validation.Decode(body, &in); err != nil {
		common.Fail(c, "add image", err)
		return
	}

	col, err := h.load()
	if err != nil {
		common.Fail(c, "add image", err)
		return
	}
	img := in.Image(datastore.NextID(col.Images, media.ImageID))
	col.Images = append(col.Images, img)

	if err := common.Save(h.Key, col); err != nil {
		common.Fail(c, "add image", err)
		return
	}
	c.JSON(http.StatusCreated, img)
}

// PUT /api/admin/<collection>
func (h Handler) Reorder(c *gin.Context) {
	body, ok := common.Body(c)
	if !ok {
		return
	}
	var in validation.GalleryReorder
	if err := validation.Decode(body, &in); err != nil {
		common.Fail(c, "reorder "+h.Name, err)
		return
	}

	col := gallery.Collection{Images: in.List()}
	if err := common.Save(h.Key, col); err != nil {
		common.Fail(c, "reorder "+h.Name, err)
		return
	}
	c.JSON(http.StatusOK, col)
}

// PUT /api/admin/<collection>/:id
func (h Handler) Update(c *gin.Context) {
	id, ok := common.ParamID(c)
	if !ok {
		return
	}
	body, ok := common.Body(c)
	if !ok {
		return
	}
	var in validation.GalleryImageUpdate
	if err := validation.Decode(body, &in); err != nil {
		common.Fail(c, "update image", err)
		return
	}

	col, err := h.load()
	if err != nil {
		common.Fail(c, "update image", err)
		return
	}
	i, found := col.Find(id)
	if !found {
		common.NotFound(c, "Image")
		return
	}
	in.ApplyTo(&col.Images[i])

	if err := common.Save(h.Key, col); err != nil {
		common.Fail(c, "update image", err)
		return
	}
	c.JSON(http.StatusOK, col.Images[i])
}

// DELETE /api/admin/<collection>/:id
func (h Handler) Delete(c *gin.Context) {
	id, ok := common.ParamID(c)
	if !ok {
		return
	}
	col, err := h.load()
	if err != nil {
		common.Fail(c, "delete image", err)
		return
	}
	i, found := col.Find(id)
	if !found {
		common.NotFound(c, "Image")
		return
	}
	col.Images = append(col.Images[:i], col.Images[i+1:]...)

	if err := common.Save(h.Key, col); err != nil {
		common.Fail(c, "delete image", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
