package handler

import (
	"net/http"

	"auction-front/services/auction/helpers"

	"github.com/gin-gonic/gin"
)

// GetMediaHandler handles GET /media/:id
func (h *AuctionHandler) GetMediaHandler(c *gin.Context) {
	mediaID := c.Param("id")
	m, err := h.media.Get(mediaID)
	if err != nil {
		helpers.HandleServiceError(c, "GetMediaHandler", "failed to get media", err, map[string]any{"media_id": mediaID})
		return
	}

	c.Header("Cache-Control", "private, max-age=3600")
	c.Data(http.StatusOK, m.ContentType, m.Data)
}
