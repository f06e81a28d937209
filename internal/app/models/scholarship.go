package models

// ScholarshipCategory classifies a catalog entry
type ScholarshipCategory string

const (
	// CategoryScholarship marks entries that grant money for studying
	CategoryScholarship ScholarshipCategory = "scholarship"
	// CategoryCompetition marks contest entries with prize money
	CategoryCompetition ScholarshipCategory = "competition"
)

// Valid reports whether the category is one of the recognized values
func (c ScholarshipCategory) Valid() bool {
	return c == CategoryScholarship || c == CategoryCompetition
}

// ScholarshipConditions describes eligibility requirements of an entry.
// All fields are optional; empty fields mean no requirement.
type ScholarshipConditions struct {
	Grade        []string `json:"grade,omitempty" example:"2학년,3학년"`  // Eligible school years
	Major        []string `json:"major,omitempty" example:"컴퓨터공학"`    // Eligible majors
	GPA          *float64 `json:"gpa,omitempty" example:"3.5"`        // Minimum GPA
	Income       string   `json:"income,omitempty" example:"기초생활수급자"` // Income bracket requirement
	Certificates []string `json:"certificates,omitempty"`             // Required certificates
}

// Scholarship defines one read-only catalog entry. Descriptive fields are
// passed through to clients unmodified.
type Scholarship struct {
	ID              string                `json:"id" example:"1"`                 // Stable identifier
	Title           string                `json:"title"`                          // Display title
	Summary         string                `json:"summary"`                        // Short description
	Organization    string                `json:"organization"`                   // Granting organization
	Amount          string                `json:"amount" example:"최대 300만원"`      // Award amount, free text
	Deadline        string                `json:"deadline" example:"2025-12-15"`  // Application deadline
	ApplicationLink string                `json:"applicationLink"`                // Where to apply
	Conditions      ScholarshipConditions `json:"conditions"`                     // Eligibility requirements
	Category        ScholarshipCategory   `json:"category" example:"scholarship"` // scholarship or competition
	Source          string                `json:"source"`                         // Where the entry was collected from
	IsNew           bool                  `json:"isNew"`                          // Recently published flag
	ViewCount       int                   `json:"viewCount" example:"1247"`       // Seed view counter
}
