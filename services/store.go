package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"

	"github.com/ntu-info/emogo-backend-ChenYuWen/models"
)

var (
	// ErrVlogNotFound: no record with the requested ID.
	ErrVlogNotFound = errors.New("vlog not found")
	// ErrInvalidVlogID: the supplied identifier is not a UUID at all.
	ErrInvalidVlogID = errors.New("invalid vlog id")
)

// ListSentiments returns every sentiment record in insertion order.
func ListSentiments(db *gorm.DB) ([]models.Sentiment, error) {
	var records []models.Sentiment
	if err := db.Order("id asc").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// ListGpsPoints returns every GPS record in insertion order.
func ListGpsPoints(db *gorm.DB) ([]models.GpsPoint, error) {
	var records []models.GpsPoint
	if err := db.Order("id asc").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// ListVlogs returns every vlog record. With includeVideo false the inline
// payload column is left out, which keeps metadata listings cheap.
func ListVlogs(db *gorm.DB, includeVideo bool) ([]models.Vlog, error) {
	var records []models.Vlog
	q := db.Order("id asc")
	if !includeVideo {
		q = q.Select("id, created_at, updated_at, deleted_at, vlog_id, user_id, timestamp, file_path")
	}
	if err := q.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// GetVlog looks one vlog up by its external UUID. A malformed identifier
// is ErrInvalidVlogID (bad request), an unknown one ErrVlogNotFound.
func GetVlog(db *gorm.DB, vlogID string) (*models.Vlog, error) {
	if _, err := uuid.Parse(vlogID); err != nil {
		return nil, ErrInvalidVlogID
	}

	var v models.Vlog
	if err := db.Where("vlog_id = ?", vlogID).First(&v).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrVlogNotFound
		}
		return nil, err
	}
	return &v, nil
}
