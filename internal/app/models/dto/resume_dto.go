package dto

import "github.com/hyejin/scholarhub/internal/app/models"

// ResumeResponse represents the response for a stored resume
type ResumeResponse struct {
	ResumeID string                 `json:"resumeId" example:"3f2b8c0e0a6f4c1b9d2e5a7c8f013579"` // Identifier generated on upload
	FileName string                 `json:"fileName" example:"resume.pdf"`                       // Original upload name
	URL      string                 `json:"url" example:"/api/resume-files/20250001/3f2b.pdf"`   // Download path served by this API
	Meta     map[string]interface{} `json:"meta,omitempty"`                                      // Client-supplied metadata
}

// NewResumeResponse converts a ResumeRecord to its wire representation
func NewResumeResponse(rec *models.ResumeRecord) ResumeResponse {
	return ResumeResponse{
		ResumeID: rec.ResumeID,
		FileName: rec.FileName,
		URL:      rec.URL,
		Meta:     rec.Meta,
	}
}

// ResumeWriteRequest represents the form-based resume creation request
type ResumeWriteRequest struct {
	Name         string `json:"name" binding:"required" example:"김철수"`  // Student name
	Major        string `json:"major" binding:"required" example:"컴퓨터공학"` // Major
	Grade        string `json:"grade" binding:"required" example:"3학년"` // School year
	Certificates string `json:"certificates" example:"TOEIC 850"`       // Certificates, free text
}
