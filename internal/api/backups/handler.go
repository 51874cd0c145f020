package backups

import (
	"errors"
	"net/http"
	"time"

	"doris-art/datastore"
	"doris-art/internal/api/common"

	"github.com/gin-gonic/gin"
)

type backupDTO struct {
	Key       datastore.Key `json:"key"`
	Name      string        `json:"name"`
	CreatedAt time.Time     `json:"createdAt"`
	Size      int64         `json:"size"`
}

// GET /api/admin/backups?key=workshops
func List(c *gin.Context) {
	key := datastore.Key(c.Query("key"))
	if key != "" && !key.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown document key"})
		return
	}
	list, err := datastore.Docs.ListBackups(key)
	if err != nil {
		common.Fail(c, "list backups", err)
		return
	}
	out := make([]backupDTO, 0, len(list))
	for _, b := range list {
		out = append(out, backupDTO{Key: b.Key, Name: b.Name, CreatedAt: b.CreatedAt, Size: b.Size})
	}
	c.JSON(http.StatusOK, gin.H{"backups": out})
}

// POST /api/admin/backups/cleanup
func Cleanup(c *gin.Context) {
	if err := datastore.Docs.CleanupBackups(); err != nil {
		common.Fail(c, "clean up backups", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// POST /api/admin/backups/restore
func Restore(c *gin.Context) {
	var input struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Backup name is required"})
		return
	}
	key, err := datastore.Docs.RestoreBackup(input.Name)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"success": true, "key": key})
	case errors.Is(err, datastore.ErrReadFailure):
		c.JSON(http.StatusNotFound, gin.H{"error": "Backup not found"})
	case errors.Is(err, datastore.ErrWriteFailure), errors.Is(err, datastore.ErrUnknownDocument):
		common.Fail(c, "restore backup", err)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}
