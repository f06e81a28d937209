package recordstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/hyejin/scholarhub/internal/app/models"
	"github.com/hyejin/scholarhub/internal/pkg/logger"
)

// LocalStore keeps student records in a JSON file. It backs the server
// on machines without a record table and is also used by tests. Access
// is serialized with a mutex; the file is rewritten on every change.
type LocalStore struct {
	mu      sync.Mutex
	path    string
	records map[string]*models.StudentRecord
}

// NewLocalStore creates a LocalStore persisting to the given file,
// loading any existing records from it.
func NewLocalStore(path string) (*LocalStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create record directory: %w", err)
	}

	ls := &LocalStore{
		path:    path,
		records: make(map[string]*models.StudentRecord),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read record file %s: %w", path, err)
		}
		return ls, nil
	}

	if err := json.Unmarshal(data, &ls.records); err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("Record file unreadable, starting empty")
		ls.records = make(map[string]*models.StudentRecord)
	}
	return ls, nil
}

// flush writes the record map back to disk. Callers hold the mutex.
func (ls *LocalStore) flush() error {
	data, err := json.MarshalIndent(ls.records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}
	if err := os.WriteFile(ls.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write record file %s: %w", ls.path, err)
	}
	return nil
}

// GetItem fetches the student's record; a missing item is (nil, nil)
func (ls *LocalStore) GetItem(ctx context.Context, studentID string) (*models.StudentRecord, error) {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	record, ok := ls.records[studentID]
	if !ok {
		return nil, nil
	}
	copied := *record
	copied.SavedScholarshipIDs = slices.Clone(record.SavedScholarshipIDs)
	return &copied, nil
}

// PutItem writes the student's record, replacing any previous item
func (ls *LocalStore) PutItem(ctx context.Context, record *models.StudentRecord) error {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	copied := *record
	copied.SavedScholarshipIDs = slices.Clone(record.SavedScholarshipIDs)
	ls.records[record.StudentID] = &copied
	return ls.flush()
}

// AddSavedID adds a scholarship id to the saved set; duplicates are
// ignored.
func (ls *LocalStore) AddSavedID(ctx context.Context, studentID, scholarshipID string) error {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	record, ok := ls.records[studentID]
	if !ok {
		record = &models.StudentRecord{}
		record.StudentID = studentID
		ls.records[studentID] = record
	}

	if slices.Contains(record.SavedScholarshipIDs, scholarshipID) {
		return nil
	}
	record.SavedScholarshipIDs = append(record.SavedScholarshipIDs, scholarshipID)
	return ls.flush()
}

// RemoveSavedID removes a scholarship id from the saved set; removing an
// absent id succeeds.
func (ls *LocalStore) RemoveSavedID(ctx context.Context, studentID, scholarshipID string) error {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	record, ok := ls.records[studentID]
	if !ok {
		return nil
	}

	idx := slices.Index(record.SavedScholarshipIDs, scholarshipID)
	if idx < 0 {
		return nil
	}
	record.SavedScholarshipIDs = slices.Delete(record.SavedScholarshipIDs, idx, idx+1)
	return ls.flush()
}
