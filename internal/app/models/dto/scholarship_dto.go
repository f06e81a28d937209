package dto

// SaveResponse represents the response for save/unsave operations
type SaveResponse struct {
	Success       bool   `json:"success" example:"true"` // Always true on a 2xx response
	ScholarshipID string `json:"scholarshipId" example:"1"`
}

// NewSaveResponse creates a save/unsave acknowledgement
func NewSaveResponse(scholarshipID string) SaveResponse {
	return SaveResponse{
		Success:       true,
		ScholarshipID: scholarshipID,
	}
}
