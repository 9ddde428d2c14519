package services

import (
	"math"
	"sort"

	"github.com/ntu-info/emogo-backend-ChenYuWen/models"
)

// Round4 rounds a coordinate to 4 decimal places for display. Stored
// values keep full precision.
func Round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

// MergeSeries joins a sentiment series and a GPS series into one row set
// keyed by the normalized display timestamp string.
//
// Within each kind the last record at a key wins; across kinds the fields
// are additive (sentiment writes never clobber lat/lng and vice versa).
// Every write also stamps the row's UserID, so with both kinds colliding
// on a key the GPS record's user wins (GPS is processed last).
//
// Known hazard kept from the export contract: the key is the display
// string only, so records from different users whose timestamps format
// identically collapse into one row. Export sessions are assumed
// single-user.
//
// Rows come back sorted ascending by key. Keys that fell through
// normalization unparsed sort by their raw string value, which is not
// necessarily chronological.
func MergeSeries(sentiments []models.Sentiment, points []models.GpsPoint) []models.MergedRow {
	merged := make(map[string]*models.MergedRow)

	row := func(key string) *models.MergedRow {
		r, ok := merged[key]
		if !ok {
			r = &models.MergedRow{Timestamp: key}
			merged[key] = r
		}
		return r
	}

	for _, s := range sentiments {
		r := row(NormalizeTimestamp(s.Timestamp))
		score := s.Score
		r.UserID = s.UserID
		r.Sentiment = &score
	}

	for _, g := range points {
		r := row(NormalizeTimestamp(g.Timestamp))
		lat := Round4(g.Lat)
		lng := Round4(g.Lng)
		r.UserID = g.UserID
		r.Lat = &lat
		r.Lng = &lng
	}

	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rows := make([]models.MergedRow, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, *merged[k])
	}
	return rows
}
