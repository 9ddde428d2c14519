package api

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ntu-info/emogo-backend-ChenYuWen/models"
	"github.com/ntu-info/emogo-backend-ChenYuWen/services"
)

// Score, Lat and Lng bind through pointers so that zero is a valid value
// while a missing field still fails `required`.

type sentimentUpload struct {
	UserID    string `json:"user_id" binding:"required"`
	Score     *int   `json:"score" binding:"required"`
	Timestamp string `json:"timestamp" binding:"required"`
}

type gpsUpload struct {
	UserID    string   `json:"user_id" binding:"required"`
	Lat       *float64 `json:"lat" binding:"required"`
	Lng       *float64 `json:"lng" binding:"required"`
	Timestamp string   `json:"timestamp" binding:"required"`
}

// uploadVlog stores an uploaded video inline.
// @Summary Upload a vlog
// @Description Store a video clip with its owner; the server stamps the upload time.
// @Tags ingest
// @Accept mpfd
// @Produce json
// @Param user_id formData string true "Owner user ID"
// @Param file formData file true "Video file"
// @Success 200 {object} map[string]string "status: ok, vlog_id: UUID"
// @Failure 400 {object} map[string]string "error: missing field"
// @Failure 500 {object} map[string]string "error: store failure"
// @Router /upload_vlog [post]
func (h *Handlers) uploadVlog(c *gin.Context) {
	userID := c.PostForm("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to open upload"})
		return
	}
	defer f.Close()

	video, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read upload"})
		return
	}

	v := models.Vlog{
		VlogID:    uuid.NewString(),
		UserID:    userID,
		Timestamp: services.StoredTimestamp(time.Now()),
		Video:     video,
	}
	if err := h.DB.Create(&v).Error; err != nil {
		h.Log.Error("failed to store vlog", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store vlog"})
		return
	}

	h.Recorder.RecordVlog(userID, len(video))
	c.JSON(http.StatusOK, gin.H{"status": "ok", "vlog_id": v.VlogID})
}

// uploadSentiment stores one sentiment sample.
// @Summary Upload a sentiment score
// @Tags ingest
// @Accept json
// @Produce json
// @Param data body sentimentUpload true "Sentiment sample"
// @Success 200 {object} map[string]string "status: ok"
// @Failure 400 {object} map[string]string "error: invalid input"
// @Failure 500 {object} map[string]string "error: store failure"
// @Router /upload_sentiment [post]
func (h *Handlers) uploadSentiment(c *gin.Context) {
	var data sentimentUpload
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	record := models.Sentiment{
		UserID:    data.UserID,
		Score:     *data.Score,
		Timestamp: data.Timestamp,
	}
	if err := h.DB.Create(&record).Error; err != nil {
		h.Log.Error("failed to store sentiment", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store sentiment"})
		return
	}

	h.Recorder.RecordSentiment(data.UserID, *data.Score)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// uploadGps stores one GPS fix.
// @Summary Upload a GPS coordinate
// @Tags ingest
// @Accept json
// @Produce json
// @Param data body gpsUpload true "GPS fix"
// @Success 200 {object} map[string]string "status: ok"
// @Failure 400 {object} map[string]string "error: invalid input"
// @Failure 500 {object} map[string]string "error: store failure"
// @Router /upload_gps [post]
func (h *Handlers) uploadGps(c *gin.Context) {
	var data gpsUpload
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	record := models.GpsPoint{
		UserID:    data.UserID,
		Lat:       *data.Lat,
		Lng:       *data.Lng,
		Timestamp: data.Timestamp,
	}
	if err := h.DB.Create(&record).Error; err != nil {
		h.Log.Error("failed to store gps point", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store gps point"})
		return
	}

	h.Recorder.RecordGps(data.UserID, *data.Lat, *data.Lng)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
