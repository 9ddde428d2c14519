package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ntu-info/emogo-backend-ChenYuWen/services"
)

// dashboard renders the vlog overview page. Video bytes are never loaded
// here; the listing is metadata only, timestamps in display time.
// @Summary Dashboard
// @Tags dashboard
// @Produce html
// @Success 200 {string} string "HTML page"
// @Failure 500 {object} map[string]string "error: store failure"
// @Router / [get]
func (h *Handlers) dashboard(c *gin.Context) {
	vlogs, err := services.ListVlogs(h.DB, false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"vlogs": services.VlogViews(vlogs),
	})
}
