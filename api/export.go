package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ntu-info/emogo-backend-ChenYuWen/services"
)

// exportJSON renders the export-everything artifact.
// @Summary Export all records as JSON
// @Description One document with sentiments, gps and vlog metadata, timestamps normalized to UTC+8.
// @Tags export
// @Produce json
// @Success 200 {object} services.ExportDocument
// @Failure 500 {object} map[string]string "error: store failure"
// @Router /export [get]
func (h *Handlers) exportJSON(c *gin.Context) {
	vlogs, err := services.ListVlogs(h.DB, false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	sentiments, err := services.ListSentiments(h.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	points, err := services.ListGpsPoints(h.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	doc := services.ExportDocument{
		Sentiments: services.SentimentViews(sentiments),
		Gps:        services.GpsViews(points),
		Vlogs:      services.VlogViews(vlogs),
	}

	body, err := services.BuildJSONExport(doc)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=Emogo_export.json")
	c.Data(http.StatusOK, "application/json", body)
}

// downloadVideo serves one vlog's payload.
// @Summary Download a single video
// @Tags export
// @Produce octet-stream
// @Param vlog_id query string true "Vlog UUID"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string "error: malformed vlog_id"
// @Failure 404 {object} map[string]string "error: no such vlog"
// @Failure 410 {object} map[string]string "error: stored but payload unavailable"
// @Router /download_video [get]
func (h *Handlers) downloadVideo(c *gin.Context) {
	vlogID := c.Query("vlog_id")

	v, err := services.GetVlog(h.DB, vlogID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidVlogID):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vlog_id"})
		case errors.Is(err, services.ErrVlogNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Video not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	payload, err := services.VideoPayload(v)
	if err != nil {
		if errors.Is(err, services.ErrPayloadUnavailable) {
			// Record exists but its legacy file is gone. Distinct from 404:
			// the data was stored and has since become unreadable.
			c.JSON(http.StatusGone, gin.H{"error": "video payload unavailable"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+services.VideoFileName(v))
	c.Data(http.StatusOK, "video/mp4", payload)
}

// exportVideosZip bundles every resolvable video payload.
// @Summary Export all videos as a ZIP archive
// @Description Entries are named {user_id}_{vlog_id}.mp4. Vlogs whose payload cannot be resolved are skipped.
// @Tags export
// @Produce octet-stream
// @Success 200 {file} binary
// @Failure 500 {object} map[string]string "error: store failure"
// @Router /export_videos_zip [get]
func (h *Handlers) exportVideosZip(c *gin.Context) {
	vlogs, err := services.ListVlogs(h.DB, true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	entries := make([]services.ArchiveEntry, 0, len(vlogs))
	for i := range vlogs {
		v := &vlogs[i]
		payload, err := services.VideoPayload(v)
		if err != nil {
			h.Log.Warn("skipping vlog with unavailable payload",
				zap.String("vlog_id", v.VlogID), zap.Error(err))
		}
		entries = append(entries, services.ArchiveEntry{
			Name:    services.VideoFileName(v),
			Payload: payload,
		})
	}

	body, err := services.BuildVideoArchive(entries)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=all_videos.zip")
	c.Data(http.StatusOK, "application/zip", body)
}

func (h *Handlers) serveCSV(c *gin.Context, filename string, columns []string, rows []map[string]string) {
	body, err := services.CSVDocument(columns, rows)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "text/csv", body)
}

// exportSentimentsCSV renders the sentiments-only CSV.
// @Summary Export sentiments as CSV
// @Tags export
// @Produce plain
// @Success 200 {string} string "CSV body"
// @Failure 500 {object} map[string]string "error: store failure"
// @Router /export_sentiments_csv [get]
func (h *Handlers) exportSentimentsCSV(c *gin.Context) {
	sentiments, err := services.ListSentiments(h.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	rows := services.SentimentCSVRows(services.SentimentViews(sentiments))
	h.serveCSV(c, "sentiments.csv", services.SentimentCSVColumns, rows)
}

// exportGpsCSV renders the GPS-only CSV.
// @Summary Export GPS fixes as CSV
// @Tags export
// @Produce plain
// @Success 200 {string} string "CSV body"
// @Failure 500 {object} map[string]string "error: store failure"
// @Router /export_gps_csv [get]
func (h *Handlers) exportGpsCSV(c *gin.Context) {
	points, err := services.ListGpsPoints(h.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	rows := services.GpsCSVRows(services.GpsViews(points))
	h.serveCSV(c, "gps.csv", services.GpsCSVColumns, rows)
}

// exportMergedCSV renders the combined sentiment+GPS CSV.
// @Summary Export the merged sentiment and GPS series as CSV
// @Description Rows keyed by normalized timestamp; colliding keys merge per the series-merge rules.
// @Tags export
// @Produce plain
// @Success 200 {string} string "CSV body"
// @Failure 500 {object} map[string]string "error: store failure"
// @Router /export_csv_all [get]
func (h *Handlers) exportMergedCSV(c *gin.Context) {
	sentiments, err := services.ListSentiments(h.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	points, err := services.ListGpsPoints(h.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	merged := services.MergeSeries(sentiments, points)
	h.serveCSV(c, "Emogo_export.csv", services.MergedCSVColumns, services.MergedCSVRows(merged))
}
