package models

// ResumeRecord is the resume pointer stored for a student. A student has
// at most one active record; a new upload overwrites the previous one.
type ResumeRecord struct {
	StudentID      string                 `json:"studentId" dynamodbav:"studentId"`           // Partition identity
	ResumeID       string                 `json:"resumeId" dynamodbav:"resumeId"`             // Generated on upload
	FileName       string                 `json:"fileName" dynamodbav:"fileName"`             // Original upload name
	StoredFileName string                 `json:"storedFileName" dynamodbav:"storedFileName"` // {resumeId}.pdf
	StorageKey     string                 `json:"storageKey" dynamodbav:"storageKey"`         // {studentId}/{storedFileName}
	URL            string                 `json:"url" dynamodbav:"url"`                       // Download path served by this API
	UploadedAt     string                 `json:"uploadedAt" dynamodbav:"uploadedAt"`         // RFC3339
	Meta           map[string]interface{} `json:"meta,omitempty" dynamodbav:"meta,omitempty"` // Client-supplied metadata
}

// StudentRecord is the single record-store item kept per student: the
// resume pointer plus the saved scholarship id set.
type StudentRecord struct {
	ResumeRecord
	SavedScholarshipIDs []string `json:"savedScholarshipIds,omitempty" dynamodbav:"savedScholarshipIds,stringset,omitempty"` // Saved-list, set semantics
}

// HasResume reports whether the record carries an uploaded resume pointer
func (r *StudentRecord) HasResume() bool {
	return r != nil && r.ResumeID != ""
}
