package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hyejin/scholarhub/internal/app/models"
	"github.com/hyejin/scholarhub/internal/app/models/dto"
	"github.com/hyejin/scholarhub/internal/pkg/apperrors"
	"github.com/hyejin/scholarhub/internal/pkg/validation"
	"github.com/hyejin/scholarhub/internal/storage/objectstore"
	"github.com/hyejin/scholarhub/internal/storage/recordstore"
)

// minimalPDF is stored for form-written resumes, which carry no real
// file. Matches what clients get when they download such a resume.
const minimalPDF = "%PDF-1.4\n"

// ResumeService defines the interface for resume-related operations
type ResumeService interface {
	Upload(ctx context.Context, studentID, fileName string, content []byte, meta map[string]interface{}) (*models.ResumeRecord, error)
	Write(ctx context.Context, studentID string, req *dto.ResumeWriteRequest) (*models.ResumeRecord, error)
	Get(ctx context.Context, studentID string) (*models.ResumeRecord, error)
	Download(ctx context.Context, studentID, storedFileName string) (*objectstore.Object, error)
}

// resumeServiceImpl implements the ResumeService interface
type resumeServiceImpl struct {
	objects        objectstore.ObjectStore
	records        recordstore.RecordStore
	publicBasePath string
}

// NewResumeService creates a new resume service instance. publicBasePath
// is the URL prefix under which this API serves stored files.
func NewResumeService(objects objectstore.ObjectStore, records recordstore.RecordStore, publicBasePath string) ResumeService {
	return &resumeServiceImpl{
		objects:        objects,
		records:        records,
		publicBasePath: strings.TrimRight(publicBasePath, "/"),
	}
}

func storageKey(studentID, storedFileName string) string {
	return studentID + "/" + storedFileName
}

func (s *resumeServiceImpl) downloadURL(studentID, storedFileName string) string {
	return s.publicBasePath + "/" + studentID + "/" + storedFileName
}

// Upload stores the uploaded file bytes and overwrites the student's
// resume record. The file is written before the record so a partial
// failure never leaves a record pointing at a missing file.
func (s *resumeServiceImpl) Upload(ctx context.Context, studentID, fileName string, content []byte, meta map[string]interface{}) (*models.ResumeRecord, error) {
	if !strings.HasSuffix(strings.ToLower(fileName), ".pdf") {
		return nil, apperrors.NewValidationError("Only PDF uploads are allowed.")
	}
	if len(content) == 0 {
		return nil, apperrors.NewValidationError("Uploaded file is empty.")
	}
	if err := validation.ValidateMeta(meta); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidationFailed, err.Error())
	}

	if meta == nil {
		meta = make(map[string]interface{})
	}
	meta["source"] = "upload"

	return s.store(ctx, studentID, fileName, content, meta)
}

// Write creates a resume record from form input. There is no uploaded
// file, so a minimal PDF placeholder is stored and the form fields
// become the record's metadata.
func (s *resumeServiceImpl) Write(ctx context.Context, studentID string, req *dto.ResumeWriteRequest) (*models.ResumeRecord, error) {
	if req == nil || strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.NewValidationError("Resume form requires a name.")
	}

	meta := map[string]interface{}{
		"source":       "write",
		"name":         req.Name,
		"major":        req.Major,
		"grade":        req.Grade,
		"certificates": req.Certificates,
	}

	fileName := fmt.Sprintf("resume_%s.pdf", req.Name)
	return s.store(ctx, studentID, fileName, []byte(minimalPDF), meta)
}

// store writes the file, then the record, carrying the existing saved
// scholarship set forward across the overwrite.
func (s *resumeServiceImpl) store(ctx context.Context, studentID, fileName string, content []byte, meta map[string]interface{}) (*models.ResumeRecord, error) {
	resumeID := strings.ReplaceAll(uuid.NewString(), "-", "")
	storedFileName := resumeID + ".pdf"
	key := storageKey(studentID, storedFileName)

	if err := s.objects.Put(ctx, key, content, "application/pdf"); err != nil {
		return nil, apperrors.NewStorageError("Failed to upload resume to storage.")
	}

	existing, err := s.records.GetItem(ctx, studentID)
	if err != nil {
		return nil, apperrors.NewStorageError("Failed to access resume store.")
	}

	record := &models.StudentRecord{
		ResumeRecord: models.ResumeRecord{
			StudentID:      studentID,
			ResumeID:       resumeID,
			FileName:       fileName,
			StoredFileName: storedFileName,
			StorageKey:     key,
			URL:            s.downloadURL(studentID, storedFileName),
			UploadedAt:     time.Now().UTC().Format(time.RFC3339),
			Meta:           meta,
		},
	}
	if existing != nil {
		record.SavedScholarshipIDs = existing.SavedScholarshipIDs
	}

	if err := s.records.PutItem(ctx, record); err != nil {
		return nil, apperrors.NewStorageError("Failed to store resume metadata.")
	}

	return &record.ResumeRecord, nil
}

// Get returns the student's resume record
func (s *resumeServiceImpl) Get(ctx context.Context, studentID string) (*models.ResumeRecord, error) {
	record, err := s.records.GetItem(ctx, studentID)
	if err != nil {
		return nil, apperrors.NewStorageError("Failed to access resume store.")
	}
	if !record.HasResume() {
		return nil, apperrors.NewNotFoundError("Resume not found for this student.")
	}
	return &record.ResumeRecord, nil
}

// Download returns the raw file bytes for the student's stored file. The
// requested name must match the record's storage key, so stale or
// guessed keys read nothing.
func (s *resumeServiceImpl) Download(ctx context.Context, studentID, storedFileName string) (*objectstore.Object, error) {
	record, err := s.records.GetItem(ctx, studentID)
	if err != nil {
		return nil, apperrors.NewStorageError("Failed to access resume store.")
	}
	if !record.HasResume() {
		return nil, apperrors.NewNotFoundError("Resume not found for this student.")
	}

	requestedKey := storageKey(studentID, storedFileName)
	if record.StorageKey != requestedKey {
		return nil, apperrors.NewNotFoundError("Resume file not found.")
	}

	obj, err := s.objects.Get(ctx, requestedKey)
	if err != nil {
		if errors.Is(err, objectstore.ErrNotExist) {
			return nil, apperrors.NewNotFoundError("Resume file not found.")
		}
		return nil, apperrors.NewStorageError("Failed to read resume from storage.")
	}
	if obj.ContentType == "" {
		obj.ContentType = "application/pdf"
	}
	return obj, nil
}
