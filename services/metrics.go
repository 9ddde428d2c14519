package services

import (
	"context"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"go.uber.org/zap"
)

// IngestRecorder mirrors accepted uploads into InfluxDB as one point per
// record, for ops dashboards. It is optional: a nil *IngestRecorder is a
// working no-op, so the service runs fine without an Influx deployment.
type IngestRecorder struct {
	client influxdb2.Client
	org    string
	bucket string
	log    *zap.Logger
}

func NewIngestRecorder(url, token, org, bucket string, log *zap.Logger) *IngestRecorder {
	if url == "" || token == "" || org == "" || bucket == "" {
		return nil
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &IngestRecorder{
		client: influxdb2.NewClient(url, token),
		org:    org,
		bucket: bucket,
		log:    log,
	}
}

// Close releases the underlying client. Safe on nil.
func (r *IngestRecorder) Close() {
	if r != nil {
		r.client.Close()
	}
}

func (r *IngestRecorder) write(kind, userID string, fields map[string]interface{}) {
	if r == nil {
		return
	}

	point := influxdb2.NewPoint("ingest",
		map[string]string{"kind": kind, "user_id": userID},
		fields,
		time.Now(),
	)

	writeAPI := r.client.WriteAPIBlocking(r.org, r.bucket)
	if err := writeAPI.WritePoint(context.Background(), point); err != nil {
		// Metrics never block ingest; log and move on.
		r.log.Warn("failed to record ingest point", zap.String("kind", kind), zap.Error(err))
	}
}

// RecordSentiment mirrors one accepted sentiment upload.
func (r *IngestRecorder) RecordSentiment(userID string, score int) {
	r.write("sentiment", userID, map[string]interface{}{"score": score})
}

// RecordGps mirrors one accepted GPS upload.
func (r *IngestRecorder) RecordGps(userID string, lat, lng float64) {
	r.write("gps", userID, map[string]interface{}{"lat": lat, "lng": lng})
}

// RecordVlog mirrors one accepted vlog upload.
func (r *IngestRecorder) RecordVlog(userID string, sizeBytes int) {
	r.write("vlog", userID, map[string]interface{}{"size_bytes": sizeBytes})
}
