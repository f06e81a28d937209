package controllers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hyejin/scholarhub/internal/app/auth"
	"github.com/hyejin/scholarhub/internal/app/models"
	"github.com/hyejin/scholarhub/internal/app/models/dto"
	"github.com/hyejin/scholarhub/internal/app/services"
	"github.com/hyejin/scholarhub/internal/middleware"
)

// ScholarshipController handles catalog listing and saved-list operations
type ScholarshipController struct {
	scholarshipService services.ScholarshipService
	students           auth.StudentResolver
}

// NewScholarshipController creates a new ScholarshipController
func NewScholarshipController(scholarshipService services.ScholarshipService, students auth.StudentResolver) *ScholarshipController {
	return &ScholarshipController{
		scholarshipService: scholarshipService,
		students:           students,
	}
}

// List handles retrieving the catalog with an optional category filter
func (c *ScholarshipController) List(ctx *gin.Context) {
	category := models.ScholarshipCategory(ctx.Query("category"))
	if category != "" && !category.Valid() {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid category filter."))
		return
	}

	entries, err := c.scholarshipService.List(ctx, category)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, entries)
}

// GetByID handles retrieving one catalog entry
func (c *ScholarshipController) GetByID(ctx *gin.Context) {
	id := strings.TrimSpace(ctx.Param("id"))
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Scholarship id must not be empty."))
		return
	}

	entry, err := c.scholarshipService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, entry)
}

// ListSaved handles listing the current student's saved scholarships
func (c *ScholarshipController) ListSaved(ctx *gin.Context) {
	studentID, err := c.students.Resolve(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	entries, err := c.scholarshipService.ListSaved(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, entries)
}

// Save handles bookmarking a scholarship for the current student
func (c *ScholarshipController) Save(ctx *gin.Context) {
	c.updateSaved(ctx, c.scholarshipService.Save)
}

// Unsave handles removing a bookmark for the current student
func (c *ScholarshipController) Unsave(ctx *gin.Context) {
	c.updateSaved(ctx, c.scholarshipService.Unsave)
}

// updateSaved runs one saved-list mutation after resolving identity and
// validating the id parameter.
func (c *ScholarshipController) updateSaved(ctx *gin.Context, op func(ctx context.Context, studentID, scholarshipID string) error) {
	id := strings.TrimSpace(ctx.Param("id"))
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Scholarship id must not be empty."))
		return
	}

	studentID, err := c.students.Resolve(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := op(ctx, studentID, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSaveResponse(id))
}
