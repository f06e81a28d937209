package recordstore

import (
	"context"

	"github.com/hyejin/scholarhub/internal/app/models"
)

// RecordStore is the adapter over the key-value table holding one item
// per student. Adapters are pass-throughs: no retries, no business
// logic; a failed call surfaces immediately.
type RecordStore interface {
	// GetItem fetches the student's record. A missing item is (nil, nil);
	// only infrastructure faults produce an error.
	GetItem(ctx context.Context, studentID string) (*models.StudentRecord, error)

	// PutItem writes the student's record, replacing any previous item
	PutItem(ctx context.Context, record *models.StudentRecord) error

	// AddSavedID adds a scholarship id to the student's saved set.
	// Adding an already-present id is a no-op.
	AddSavedID(ctx context.Context, studentID, scholarshipID string) error

	// RemoveSavedID removes a scholarship id from the student's saved
	// set. Removing an absent id is a no-op.
	RemoveSavedID(ctx context.Context, studentID, scholarshipID string) error
}
