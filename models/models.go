package models

import (
	"time"
)

// Sentiment is one self-reported mood sample. Rows are append-only:
// ingest inserts them and nothing ever updates or deletes one.
type Sentiment struct {
	ID        uint       `gorm:"primary_key" json:"-"`
	CreatedAt time.Time  `json:"-"`
	UpdatedAt time.Time  `json:"-"`
	DeletedAt *time.Time `sql:"index" json:"-"`

	UserID    string `json:"user_id"`
	Score     int    `json:"score"`
	Timestamp string `json:"timestamp" gorm:"index"` // ISO-8601, naive, UTC-implied
}

// GpsPoint is one location fix. Same append-only lifecycle as Sentiment.
// Lat/Lng are stored as received; the 4-decimal rounding on export is
// display-only and never written back.
type GpsPoint struct {
	ID        uint       `gorm:"primary_key" json:"-"`
	CreatedAt time.Time  `json:"-"`
	UpdatedAt time.Time  `json:"-"`
	DeletedAt *time.Time `sql:"index" json:"-"`

	UserID    string  `json:"user_id"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Timestamp string  `json:"timestamp" gorm:"index"`
}

// Vlog is one uploaded video clip. Exactly one of the two payload
// variants is set: Video holds the bytes inline, or FilePath points at a
// legacy file under the media directory. Consumers must handle both;
// a FilePath whose file is gone is a permanent integrity failure, not a
// transient one.
type Vlog struct {
	ID        uint       `gorm:"primary_key" json:"-"`
	CreatedAt time.Time  `json:"-"`
	UpdatedAt time.Time  `json:"-"`
	DeletedAt *time.Time `sql:"index" json:"-"`

	VlogID    string `json:"vlog_id" gorm:"unique_index"` // UUID, externally visible
	UserID    string `json:"user_id"`
	Timestamp string `json:"timestamp" gorm:"index"`
	Video     []byte `json:"-"` // inline payload
	FilePath  string `json:"-"` // legacy fallback
}

// MergedRow is the derived row of the combined sentiment+GPS export.
// Never persisted; built per export request and keyed by the normalized
// display timestamp string. Nil pointers render as empty CSV cells.
type MergedRow struct {
	Timestamp string
	UserID    string
	Sentiment *int
	Lat       *float64
	Lng       *float64
}
