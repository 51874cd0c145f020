package workshopsapi

import (
	"net/http"

	"doris-art/internal/api/common"
	"doris-art/internal/domain/workshops"

	"github.com/gin-gonic/gin"
)

type publicResponse struct {
	Workshops  []workshops.View      `json:"workshops"`
	EventTypes []workshops.EventType `json:"eventTypes"`
}

// GET /api/workshops?audience=children|adults
func ListPublic(c *gin.Context) {
	doc, err := loadDocument()
	if err != nil {
		common.Fail(c, "fetch workshops", err)
		return
	}

	ws := workshops.FilterEnabled(doc.Workshops)
	if a := c.Query("audience"); a != "" {
		ws = workshops.FilterByAudience(ws, workshops.Audience(a))
	}

	t := now()
	out := publicResponse{Workshops: make([]workshops.View, 0, len(ws)), EventTypes: doc.EventTypes}
	for _, w := range ws {
		out.Workshops = append(out.Workshops, workshops.NewView(w, t))
	}

	common.Public(c)
	c.JSON(http.StatusOK, out)
}
