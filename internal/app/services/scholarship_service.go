package services

import (
	"context"

	"github.com/hyejin/scholarhub/internal/app/models"
	"github.com/hyejin/scholarhub/internal/catalog"
	"github.com/hyejin/scholarhub/internal/pkg/apperrors"
	"github.com/hyejin/scholarhub/internal/storage/recordstore"
)

// ScholarshipService defines the interface for catalog and saved-list
// operations. The catalog is read-only; only the saved-list mutates.
type ScholarshipService interface {
	List(ctx context.Context, category models.ScholarshipCategory) ([]models.Scholarship, error)
	GetByID(ctx context.Context, id string) (*models.Scholarship, error)
	ListSaved(ctx context.Context, studentID string) ([]models.Scholarship, error)
	Save(ctx context.Context, studentID, scholarshipID string) error
	Unsave(ctx context.Context, studentID, scholarshipID string) error
}

// scholarshipServiceImpl implements the ScholarshipService interface
type scholarshipServiceImpl struct {
	catalog *catalog.Catalog
	records recordstore.RecordStore
}

// NewScholarshipService creates a new scholarship service over an
// injected catalog.
func NewScholarshipService(cat *catalog.Catalog, records recordstore.RecordStore) ScholarshipService {
	return &scholarshipServiceImpl{
		catalog: cat,
		records: records,
	}
}

// List returns the catalog in insertion order, filtered to one category
// when category is non-empty.
func (s *scholarshipServiceImpl) List(ctx context.Context, category models.ScholarshipCategory) ([]models.Scholarship, error) {
	if category == "" {
		return s.catalog.All(), nil
	}
	if !category.Valid() {
		return nil, apperrors.NewValidationError("Invalid category filter.")
	}
	return s.catalog.FilterByCategory(category), nil
}

// GetByID returns one catalog entry
func (s *scholarshipServiceImpl) GetByID(ctx context.Context, id string) (*models.Scholarship, error) {
	entry, ok := s.catalog.Get(id)
	if !ok {
		return nil, apperrors.NewNotFoundError("Scholarship not found.")
	}
	return entry, nil
}

// ListSaved resolves the student's saved-id set against the catalog in
// catalog order. Ids with no catalog entry are skipped; the catalog is
// the source of truth for display fields.
func (s *scholarshipServiceImpl) ListSaved(ctx context.Context, studentID string) ([]models.Scholarship, error) {
	record, err := s.records.GetItem(ctx, studentID)
	if err != nil {
		return nil, apperrors.NewStorageError("Failed to access saved scholarships.")
	}

	saved := []models.Scholarship{}
	if record == nil || len(record.SavedScholarshipIDs) == 0 {
		return saved, nil
	}

	savedSet := make(map[string]struct{}, len(record.SavedScholarshipIDs))
	for _, id := range record.SavedScholarshipIDs {
		savedSet[id] = struct{}{}
	}

	for _, entry := range s.catalog.All() {
		if _, ok := savedSet[entry.ID]; ok {
			saved = append(saved, entry)
		}
	}
	return saved, nil
}

// Save adds a scholarship to the student's saved set. Saving an
// already-saved id succeeds without duplicating.
func (s *scholarshipServiceImpl) Save(ctx context.Context, studentID, scholarshipID string) error {
	if _, ok := s.catalog.Get(scholarshipID); !ok {
		return apperrors.NewNotFoundError("Scholarship not found.")
	}
	if err := s.records.AddSavedID(ctx, studentID, scholarshipID); err != nil {
		return apperrors.NewStorageError("Failed to save scholarship.")
	}
	return nil
}

// Unsave removes a scholarship from the student's saved set. Unsaving a
// never-saved id is a successful no-op.
func (s *scholarshipServiceImpl) Unsave(ctx context.Context, studentID, scholarshipID string) error {
	if err := s.records.RemoveSavedID(ctx, studentID, scholarshipID); err != nil {
		return apperrors.NewStorageError("Failed to remove saved scholarship.")
	}
	return nil
}
