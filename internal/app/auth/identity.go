package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/hyejin/scholarhub/internal/pkg/apperrors"
)

// DefaultStudentHeader carries the student identity on routes that have
// no student id in the path.
const DefaultStudentHeader = "X-Student-Id"

// StudentResolver determines the student on whose behalf a request is
// made. Routes like /scholarships/saved carry no student id in the
// path, so the resolver is an explicit, injected collaborator rather
// than a hardcoded default.
type StudentResolver interface {
	Resolve(c *gin.Context) (string, error)
}

// HeaderStudentResolver resolves the student identity from a request
// header.
type HeaderStudentResolver struct {
	header string
}

// NewHeaderStudentResolver creates a resolver reading DefaultStudentHeader
func NewHeaderStudentResolver() *HeaderStudentResolver {
	return &HeaderStudentResolver{header: DefaultStudentHeader}
}

// Resolve returns the student id from the configured header
func (r *HeaderStudentResolver) Resolve(c *gin.Context) (string, error) {
	studentID := c.GetHeader(r.header)
	if studentID == "" {
		return "", apperrors.NewValidationError("Missing student identity.")
	}
	return studentID, nil
}
