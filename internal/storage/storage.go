// Package storage persists complaint records as a single JSON array in a
// file. The file is the sole source of truth; there is no secondary index.
package storage

import (
	"errors"

	"campusdesk/backend/internal/models"
)

// ErrNotFound is returned when no record matches the requested id.
var ErrNotFound = errors.New("complaint not found")

type Storage interface {
	Append(record *models.ComplaintRecord) error
	List() ([]models.ComplaintRecord, error)
	GetByID(id int64) (*models.ComplaintRecord, error)
	UpdateStatus(id int64, status string) error
}
