package siteapi

import (
	"net/http"

	"doris-art/datastore"
	"doris-art/internal/api/common"
	"doris-art/internal/domain/site"
	"doris-art/internal/validation"

	"github.com/gin-gonic/gin"
)

// GET /api/admin/settings
func GetSettings(c *gin.Context) {
	s, err := loadSettings()
	if err != nil {
		common.Fail(c, "fetch settings", err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// PUT /api/admin/settings
func UpdateSettings(c *gin.Context) {
	body, ok := common.Body(c)
	if !ok {
		return
	}
	var in validation.SettingsInput
	if err := validation.Decode(body, &in); err != nil {
		common.Fail(c, "update settings", err)
		return
	}
	s := in.Settings()
	if err := common.Save(datastore.Settings, s); err != nil {
		common.Fail(c, "update settings", err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// GET /api/admin/about
func GetAbout(c *gin.Context) {
	a, err := loadAbout()
	if err != nil {
		common.Fail(c, "fetch about", err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// PUT /api/admin/about
func UpdateAbout(c *gin.Context) {
	body, ok := common.Body(c)
	if !ok {
		return
	}
	var in validation.AboutInput
	if err := validation.Decode(body, &in); err != nil {
		common.Fail(c, "update about", err)
		return
	}
	a := in.About()
	if err := common.Save(datastore.About, a); err != nil {
		common.Fail(c, "update about", err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// GET /api/settings
func PublicSettings(c *gin.Context) {
	common.Public(c)
	c.JSON(http.StatusOK, PublicSettingsResponse{PageVisibility: PageVisibility()})
}

// GET /api/about
func PublicAbout(c *gin.Context) {
	a := common.LoadOr(datastore.About, site.DefaultAbout)
	a.Normalize()
	common.Public(c)
	c.JSON(http.StatusOK, a)
}
