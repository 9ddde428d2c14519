package api

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	_ "github.com/jinzhu/gorm/dialects/sqlite"

	"github.com/ntu-info/emogo-backend-ChenYuWen/models"
)

func TestExportJSON(t *testing.T) {
	r, db := setupTestRouter(t)

	db.Create(&models.Sentiment{UserID: "u1", Score: 3, Timestamp: "2024-01-01T00:00:00.000Z"})
	db.Create(&models.GpsPoint{UserID: "u1", Lat: 25.033928571, Lng: 121.564468, Timestamp: "2024-01-01T00:00:00Z"})
	db.Create(&models.Vlog{
		VlogID:    "3f2c7e9a-0b1d-4c5e-8f6a-7b8c9d0e1f2a",
		UserID:    "u1",
		Timestamp: "2024-01-01T00:00:00Z",
		Video:     []byte("video-bytes"),
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/export", nil)
	r.ServeHTTP(w, req)

	if w.Code != 200 {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "Emogo_export.json") {
		t.Errorf("unexpected Content-Disposition %q", cd)
	}

	var doc struct {
		Sentiments []map[string]interface{} `json:"sentiments"`
		Gps        []map[string]interface{} `json:"gps"`
		Vlogs      []map[string]interface{} `json:"vlogs"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &doc); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}

	if len(doc.Sentiments) != 1 || len(doc.Gps) != 1 || len(doc.Vlogs) != 1 {
		t.Fatalf("unexpected record counts: %d/%d/%d", len(doc.Sentiments), len(doc.Gps), len(doc.Vlogs))
	}
	if doc.Sentiments[0]["timestamp"] != "2024-01-01 08:00:00" {
		t.Errorf("sentiment timestamp not normalized: %v", doc.Sentiments[0]["timestamp"])
	}
	if doc.Gps[0]["lat"] != 25.0339 {
		t.Errorf("gps lat not rounded: %v", doc.Gps[0]["lat"])
	}
	if _, hasVideo := doc.Vlogs[0]["video"]; hasVideo {
		t.Error("vlog metadata must not carry video bytes")
	}
}

func TestExportSentimentsCSV(t *testing.T) {
	r, db := setupTestRouter(t)
	db.Create(&models.Sentiment{UserID: "u1", Score: 3, Timestamp: "2024-01-01T00:00:00Z"})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/export_sentiments_csv", nil)
	r.ServeHTTP(w, req)

	if w.Code != 200 {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	records, err := csv.NewReader(w.Body).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if records[0][0] != "timestamp" || records[0][1] != "user_id" || records[0][2] != "score" {
		t.Errorf("unexpected header: %v", records[0])
	}
	if records[1][0] != "2024-01-01 08:00:00" || records[1][2] != "3" {
		t.Errorf("unexpected row: %v", records[1])
	}
}

func TestExportMergedCSV(t *testing.T) {
	r, db := setupTestRouter(t)

	// Colliding timestamps: one merged row with both kinds populated.
	db.Create(&models.Sentiment{UserID: "sentiment-user", Score: 7, Timestamp: "2024-01-01T00:00:00.000Z"})
	db.Create(&models.GpsPoint{UserID: "gps-user", Lat: 25.033928571, Lng: 121.564468, Timestamp: "2024-01-01T00:00:00Z"})
	// And one sentiment on its own key.
	db.Create(&models.Sentiment{UserID: "sentiment-user", Score: 2, Timestamp: "2024-01-01T01:00:00Z"})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/export_csv_all", nil)
	r.ServeHTTP(w, req)

	if w.Code != 200 {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	records, err := csv.NewReader(w.Body).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(records))
	}

	merged := records[1]
	if merged[0] != "2024-01-01 08:00:00" {
		t.Errorf("unexpected key: %v", merged)
	}
	if merged[1] != "gps-user" {
		t.Errorf("expected gps user to win the shared row, got %q", merged[1])
	}
	if merged[2] != "7" || merged[3] != "25.0339" || merged[4] != "121.5645" {
		t.Errorf("merged row fields wrong: %v", merged)
	}

	solo := records[2]
	if solo[2] != "2" || solo[3] != "" || solo[4] != "" {
		t.Errorf("sentiment-only row should have empty gps cells: %v", solo)
	}
}

func TestDownloadVideo(t *testing.T) {
	r, db := setupTestRouter(t)
	tmpDir := t.TempDir()

	inlineID := "3f2c7e9a-0b1d-4c5e-8f6a-7b8c9d0e1f2a"
	db.Create(&models.Vlog{VlogID: inlineID, UserID: "u1", Timestamp: "2024-01-01T00:00:00Z", Video: []byte("inline-bytes")})

	legacyID := "9a8b7c6d-5e4f-4a3b-8c2d-1e0f9a8b7c6d"
	db.Create(&models.Vlog{VlogID: legacyID, UserID: "u2", Timestamp: "2024-01-01T00:00:00Z", FilePath: filepath.Join(tmpDir, "gone.mp4")})

	t.Run("inline payload served", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/download_video?vlog_id="+inlineID, nil)
		r.ServeHTTP(w, req)

		if w.Code != 200 {
			t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
		}
		if w.Body.String() != "inline-bytes" {
			t.Error("payload mismatch")
		}
		if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "u1_"+inlineID+".mp4") {
			t.Errorf("unexpected Content-Disposition %q", cd)
		}
	})

	t.Run("malformed id is 400", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/download_video?vlog_id=../../etc/passwd", nil)
		r.ServeHTTP(w, req)
		if w.Code != 400 {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/download_video?vlog_id=00000000-0000-0000-0000-000000000000", nil)
		r.ServeHTTP(w, req)
		if w.Code != 404 {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})

	t.Run("legacy file missing is 410", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/download_video?vlog_id="+legacyID, nil)
		r.ServeHTTP(w, req)
		if w.Code != 410 {
			t.Errorf("expected 410, got %d", w.Code)
		}
	})
}

func TestExportVideosZip_SkipsUnavailable(t *testing.T) {
	r, db := setupTestRouter(t)
	tmpDir := t.TempDir()

	presentPath := filepath.Join(tmpDir, "present.mp4")
	os.WriteFile(presentPath, []byte("legacy-bytes"), 0644)

	db.Create(&models.Vlog{VlogID: "3f2c7e9a-0b1d-4c5e-8f6a-7b8c9d0e1f2a", UserID: "u1", Timestamp: "2024-01-01T00:00:00Z", Video: []byte("inline-bytes")})
	db.Create(&models.Vlog{VlogID: "9a8b7c6d-5e4f-4a3b-8c2d-1e0f9a8b7c6d", UserID: "u2", Timestamp: "2024-01-01T00:00:00Z", FilePath: presentPath})
	db.Create(&models.Vlog{VlogID: "11111111-2222-4333-8444-555555555555", UserID: "u3", Timestamp: "2024-01-01T00:00:00Z", FilePath: filepath.Join(tmpDir, "gone.mp4")})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/export_videos_zip", nil)
	r.ServeHTTP(w, req)

	if w.Code != 200 {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	body := w.Body.Bytes()
	zr, err := zip.NewReader(bytes.NewReader(body), int64(len(body)))
	if err != nil {
		t.Fatalf("response is not a zip: %v", err)
	}
	if len(zr.File) != 2 {
		t.Fatalf("expected 2 entries (missing one skipped), got %d", len(zr.File))
	}

	names := map[string]bool{}
	for _, f := range zr.File {
		names[f.Name] = true
	}
	if !names["u1_3f2c7e9a-0b1d-4c5e-8f6a-7b8c9d0e1f2a.mp4"] || !names["u2_9a8b7c6d-5e4f-4a3b-8c2d-1e0f9a8b7c6d.mp4"] {
		t.Errorf("unexpected entry names: %v", names)
	}
}
