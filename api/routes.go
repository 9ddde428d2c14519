package api

import (
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"go.uber.org/zap"

	"github.com/ntu-info/emogo-backend-ChenYuWen/services"
)

// Handlers carries the request-independent collaborators: the store
// handle, the optional ingest metrics sink, and the service logger.
type Handlers struct {
	DB       *gorm.DB
	Recorder *services.IngestRecorder
	Log      *zap.Logger
}

func NewHandlers(db *gorm.DB, recorder *services.IngestRecorder, log *zap.Logger) *Handlers {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handlers{DB: db, Recorder: recorder, Log: log}
}

// SetupRoutes registers the ingest, dashboard, and export endpoints.
// Paths match the original service surface.
func SetupRoutes(r *gin.Engine, h *Handlers) {
	r.GET("/", h.dashboard)

	r.POST("/upload_vlog", h.uploadVlog)
	r.POST("/upload_sentiment", h.uploadSentiment)
	r.POST("/upload_gps", h.uploadGps)

	r.GET("/export", h.exportJSON)
	r.GET("/download_video", h.downloadVideo)
	r.GET("/export_videos_zip", h.exportVideosZip)
	r.GET("/export_sentiments_csv", h.exportSentimentsCSV)
	r.GET("/export_gps_csv", h.exportGpsCSV)
	r.GET("/export_csv_all", h.exportMergedCSV)
}
