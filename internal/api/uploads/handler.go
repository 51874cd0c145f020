package uploadsapi

import (
	"errors"
	"net/http"
	"strconv"

	"doris-art/config"
	"doris-art/internal/domain/site"
	"doris-art/internal/infra/uploads"

	"github.com/gin-gonic/gin"
)

type dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type publicResponse struct {
	Success       bool        `json:"success"`
	Filename      string      `json:"filename"`
	Path          string      `json:"path"`
	OriginalSize  int64       `json:"originalSize"`
	OptimizedSize int64       `json:"optimizedSize"`
	Dimensions    *dimensions `json:"dimensions,omitempty"`
}

// save stores the multipart file in field under folder. It writes the error
// response itself and reports whether the caller should continue.
func save(c *gin.Context, field, folder string, store *uploads.Store) (uploads.Result, bool) {
	fh, err := c.FormFile(field)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return uploads.Result{}, false
	}
	if fh.Size > store.MaxSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": uploads.ErrTooLarge.Error()})
		return uploads.Result{}, false
	}

	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file"})
		return uploads.Result{}, false
	}
	defer f.Close()

	res, err := store.Save(f, fh.Filename, folder)
	switch {
	case err == nil:
		return res, true
	case errors.Is(err, uploads.ErrNoFile), errors.Is(err, uploads.ErrTooLarge),
		errors.Is(err, uploads.ErrUnsupportedType), errors.Is(err, uploads.ErrUndecodable):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload file"})
	}
	return uploads.Result{}, false
}

// POST /api/admin/upload
func Admin(c *gin.Context) {
	res, ok := save(c, "file", "uploads", uploads.New(config.PUBLIC_DIR, uploads.AdminTypes))
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "path": res.Path, "filename": res.Filename})
}

// POST /api/upload-image
func Public(c *gin.Context) {
	folder := site.SafeFolder(c.PostForm("folder"), "gallery")
	store := uploads.New(config.PUBLIC_DIR, uploads.PublicTypes)
	store.Optimize = &uploads.Bounds{
		MaxWidth:  formInt(c, "maxWidth"),
		MaxHeight: formInt(c, "maxHeight"),
	}
	res, ok := save(c, "image", folder, store)
	if !ok {
		return
	}
	out := publicResponse{
		Success:       true,
		Filename:      res.Filename,
		Path:          res.Path,
		OriginalSize:  res.OriginalSize,
		OptimizedSize: res.Size,
	}
	if res.Width > 0 {
		out.Dimensions = &dimensions{Width: res.Width, Height: res.Height}
	}
	c.JSON(http.StatusOK, out)
}

// formInt reads a positive integer form field; anything else is 0.
func formInt(c *gin.Context, name string) int {
	n, err := strconv.Atoi(c.PostForm(name))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
