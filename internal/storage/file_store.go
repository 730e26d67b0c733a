package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"campusdesk/backend/internal/models"
)

// FileStore keeps every record in one pretty-printed JSON array file. All
// operations are whole-file read-modify-write cycles; the mutex serializes
// them so concurrent requests within this process cannot lose writes.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates the parent directory if needed and initializes the
// file to an empty array when it does not exist yet.
func NewFileStore(path string) (*FileStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create store directory: %w", err)
		}
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
			return nil, fmt.Errorf("initialize store file: %w", err)
		}
	}
	return &FileStore{path: path}, nil
}

// Append adds one record to the end of the array and rewrites the file.
func (s *FileStore) Append(record *models.ComplaintRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return err
	}
	records = append(records, *record)
	return s.write(records)
}

// List returns all records in insertion order. A missing file yields an
// empty list, not an error.
func (s *FileStore) List() ([]models.ComplaintRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// GetByID scans the array for a matching id.
func (s *FileStore) GetByID(id int64) (*models.ComplaintRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].ID == id {
			return &records[i], nil
		}
	}
	return nil, ErrNotFound
}

// UpdateStatus rewrites the file with student_view.status changed on the
// matching record. Every other field is left untouched.
func (s *FileStore) UpdateStatus(id int64, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return err
	}
	for i := range records {
		if records[i].ID == id {
			records[i].StudentView.Status = status
			return s.write(records)
		}
	}
	return ErrNotFound
}

func (s *FileStore) load() ([]models.ComplaintRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.ComplaintRecord{}, nil
		}
		return nil, fmt.Errorf("read complaints store: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return []models.ComplaintRecord{}, nil
	}
	var records []models.ComplaintRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse complaints store %s: %w", s.path, err)
	}
	return records, nil
}

func (s *FileStore) write(records []models.ComplaintRecord) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	// Keep non-ASCII complaint text readable in the file.
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encode complaints store: %w", err)
	}
	if err := os.WriteFile(s.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write complaints store: %w", err)
	}
	return nil
}
