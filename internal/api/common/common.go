package common

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"

	"doris-art/datastore"
	"doris-art/internal/validation"

	"github.com/gin-gonic/gin"
)

const PublicCacheControl = "public, s-maxage=3600, stale-while-revalidate=86400"

// Load reads a document. One that was never written yields fallback(); a
// corrupt one is returned as an error.
func Load[T any](key datastore.Key, fallback func() T) (T, error) {
	var v T
	err := datastore.Docs.Read(key, &v)
	if err == nil {
		return v, nil
	}
	if errors.Is(err, os.ErrNotExist) && fallback != nil {
		return fallback(), nil
	}
	var zero T
	return zero, err
}

// LoadOr never fails: any read problem is logged and fallback() is served.
func LoadOr[T any](key datastore.Key, fallback func() T) T {
	var v T
	if err := datastore.Docs.Read(key, &v); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Println("⚠️ Serving default for", key+":", err)
		}
		return fallback()
	}
	return v
}

func Save(key datastore.Key, v any) error {
	return datastore.Docs.Write(key, v)
}

// Fail maps store and validation errors to a JSON error response.
func Fail(c *gin.Context, action string, err error) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": verrs})
	case errors.Is(err, datastore.ErrUnknownDocument):
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown document"})
	default:
		fmt.Printf("❌ Failed to %s: %v\n", action, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action})
	}
}

func NotFound(c *gin.Context, what string) {
	c.JSON(http.StatusNotFound, gin.H{"error": what + " not found"})
}

// ParamID parses the :id path segment, answering 400 when it is not a number.
func ParamID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return id, true
}

// Body reads the raw request body, answering 400 on failure.
func Body(c *gin.Context) ([]byte, bool) {
	b, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid body"})
		return nil, false
	}
	return b, true
}

// Public marks a response as shareable by the CDN.
func Public(c *gin.Context) {
	c.Header("Cache-Control", PublicCacheControl)
}
