package services

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/ntu-info/emogo-backend-ChenYuWen/models"
)

var (
	// ErrPayloadUnavailable marks a vlog whose legacy file reference no
	// longer resolves on disk. The record exists; its bytes are gone.
	ErrPayloadUnavailable = errors.New("video payload unavailable")
)

// SentimentView is a sentiment record as it appears in export artifacts:
// timestamp already normalized to display time.
type SentimentView struct {
	UserID    string `json:"user_id"`
	Score     int    `json:"score"`
	Timestamp string `json:"timestamp"`
}

// GpsView is a GPS record as exported: timestamp normalized, coordinates
// rounded to 4 decimals.
type GpsView struct {
	UserID    string  `json:"user_id"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Timestamp string  `json:"timestamp"`
}

// VlogView is vlog metadata as exported. Video bytes never appear here.
type VlogView struct {
	VlogID    string `json:"vlog_id"`
	UserID    string `json:"user_id"`
	Timestamp string `json:"timestamp"`
}

// ExportDocument is the "export everything" artifact. The three top-level
// keys are a fixed contract.
type ExportDocument struct {
	Sentiments []SentimentView `json:"sentiments"`
	Gps        []GpsView       `json:"gps"`
	Vlogs      []VlogView      `json:"vlogs"`
}

// SentimentViews normalizes a sentiment list for export.
func SentimentViews(records []models.Sentiment) []SentimentView {
	views := make([]SentimentView, 0, len(records))
	for _, s := range records {
		views = append(views, SentimentView{
			UserID:    s.UserID,
			Score:     s.Score,
			Timestamp: NormalizeTimestamp(s.Timestamp),
		})
	}
	return views
}

// GpsViews normalizes a GPS list for export.
func GpsViews(records []models.GpsPoint) []GpsView {
	views := make([]GpsView, 0, len(records))
	for _, g := range records {
		views = append(views, GpsView{
			UserID:    g.UserID,
			Lat:       Round4(g.Lat),
			Lng:       Round4(g.Lng),
			Timestamp: NormalizeTimestamp(g.Timestamp),
		})
	}
	return views
}

// VlogViews normalizes vlog metadata for export.
func VlogViews(records []models.Vlog) []VlogView {
	views := make([]VlogView, 0, len(records))
	for _, v := range records {
		views = append(views, VlogView{
			VlogID:    v.VlogID,
			UserID:    v.UserID,
			Timestamp: NormalizeTimestamp(v.Timestamp),
		})
	}
	return views
}

// BuildJSONExport serializes the export document with 4-space indentation.
// Non-ASCII text is kept literal and <, >, & are not HTML-escaped, so the
// artifact reads the same as the stored values.
func BuildJSONExport(doc ExportDocument) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to encode export document: %w", err)
	}
	return buf.Bytes(), nil
}

// Fixed CSV column orders. These are part of the export contract.
var (
	SentimentCSVColumns = []string{"timestamp", "user_id", "score"}
	GpsCSVColumns       = []string{"timestamp", "user_id", "lat", "lng"}
	MergedCSVColumns    = []string{"timestamp", "user_id", "sentiment", "lat", "lng"}
)

// CSVDocument renders rows under the given column order, header first.
// A field missing from a row renders as an empty cell.
func CSVDocument(columns []string, rows []map[string]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(columns); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	record := make([]string, len(columns))
	for _, row := range rows {
		for i, col := range columns {
			record[i] = row[col]
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// SentimentCSVRows maps normalized sentiment views onto CSV rows.
func SentimentCSVRows(views []SentimentView) []map[string]string {
	rows := make([]map[string]string, 0, len(views))
	for _, v := range views {
		rows = append(rows, map[string]string{
			"timestamp": v.Timestamp,
			"user_id":   v.UserID,
			"score":     strconv.Itoa(v.Score),
		})
	}
	return rows
}

// GpsCSVRows maps normalized GPS views onto CSV rows.
func GpsCSVRows(views []GpsView) []map[string]string {
	rows := make([]map[string]string, 0, len(views))
	for _, v := range views {
		rows = append(rows, map[string]string{
			"timestamp": v.Timestamp,
			"user_id":   v.UserID,
			"lat":       formatCoord(v.Lat),
			"lng":       formatCoord(v.Lng),
		})
	}
	return rows
}

// MergedCSVRows maps merged rows onto CSV rows. Unset fields are left out
// of the map and render as empty cells.
func MergedCSVRows(rows []models.MergedRow) []map[string]string {
	out := make([]map[string]string, 0, len(rows))
	for _, r := range rows {
		row := map[string]string{
			"timestamp": r.Timestamp,
			"user_id":   r.UserID,
		}
		if r.Sentiment != nil {
			row["sentiment"] = strconv.Itoa(*r.Sentiment)
		}
		if r.Lat != nil {
			row["lat"] = formatCoord(*r.Lat)
		}
		if r.Lng != nil {
			row["lng"] = formatCoord(*r.Lng)
		}
		out = append(out, row)
	}
	return out
}

// ArchiveEntry is one candidate file for the videos ZIP. A nil Payload
// means the bytes could not be resolved; BuildVideoArchive skips it.
type ArchiveEntry struct {
	Name    string
	Payload []byte
}

// BuildVideoArchive produces a deflate ZIP of the resolvable entries.
// Callers derive unique names (VideoFileName combines user and vlog IDs).
// Unresolvable entries are dropped silently; a half-empty archive beats a
// failed export of everything else.
func BuildVideoArchive(entries []ArchiveEntry) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, e := range entries {
		if e.Payload == nil {
			continue
		}
		f, err := zw.Create(e.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to create zip entry %s: %w", e.Name, err)
		}
		if _, err := f.Write(e.Payload); err != nil {
			return nil, fmt.Errorf("failed to write zip entry %s: %w", e.Name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize zip: %w", err)
	}
	return buf.Bytes(), nil
}

// VideoFileName is the download/archive name for a vlog's payload.
func VideoFileName(v *models.Vlog) string {
	return fmt.Sprintf("%s_%s.mp4", v.UserID, v.VlogID)
}

// VideoPayload resolves either payload variant to bytes. Inline bytes
// win; otherwise the legacy file reference is read from disk. A missing
// or unreadable legacy file, or a record with neither variant, is
// ErrPayloadUnavailable.
func VideoPayload(v *models.Vlog) ([]byte, error) {
	if len(v.Video) > 0 {
		return v.Video, nil
	}
	if v.FilePath == "" {
		return nil, ErrPayloadUnavailable
	}

	data, err := os.ReadFile(v.FilePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrPayloadUnavailable, v.FilePath)
	}
	return data, nil
}
