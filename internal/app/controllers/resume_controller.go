package controllers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hyejin/scholarhub/internal/app/models/dto"
	"github.com/hyejin/scholarhub/internal/app/services"
	"github.com/hyejin/scholarhub/internal/middleware"
	"github.com/hyejin/scholarhub/internal/pkg/logger"
)

// ResumeController handles resume upload, retrieval and download
type ResumeController struct {
	resumeService services.ResumeService
}

// NewResumeController creates a new ResumeController
func NewResumeController(resumeService services.ResumeService) *ResumeController {
	return &ResumeController{
		resumeService: resumeService,
	}
}

// studentIDParam extracts and validates the studentId path parameter
func studentIDParam(ctx *gin.Context) (string, bool) {
	studentID := strings.TrimSpace(ctx.Param("studentId"))
	if studentID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Student id must not be empty."))
		return "", false
	}
	return studentID, true
}

// Upload handles multipart resume uploads for a student
func (c *ResumeController) Upload(ctx *gin.Context) {
	studentID, ok := studentIDParam(ctx)
	if !ok {
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid or missing file."))
		return
	}

	// Browsers send application/pdf; some clients leave the generic
	// multipart default. The extension check in the service still applies.
	contentType := fileHeader.Header.Get("Content-Type")
	if contentType != "" && contentType != "application/pdf" && contentType != "application/octet-stream" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Only PDF uploads are allowed."))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid or missing file."))
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Failed to read uploaded file."))
		return
	}

	var meta map[string]interface{}
	if metaStr := ctx.DefaultPostForm("meta", "{}"); metaStr != "" {
		if err := json.Unmarshal([]byte(metaStr), &meta); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("`meta` must be valid JSON."))
			return
		}
	}

	fileName := fileHeader.Filename
	if fileName == "" {
		fileName = "resume.pdf"
	}

	record, err := c.resumeService.Upload(ctx, studentID, fileName, content, meta)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	logger.Info().Str("studentId", studentID).Str("resumeId", record.ResumeID).Msg("Resume uploaded")
	ctx.JSON(http.StatusCreated, dto.NewResumeResponse(record))
}

// Write handles form-based resume creation for a student
func (c *ResumeController) Write(ctx *gin.Context) {
	studentID, ok := studentIDParam(ctx)
	if !ok {
		return
	}

	var req dto.ResumeWriteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid resume form data."))
		return
	}

	record, err := c.resumeService.Write(ctx, studentID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	logger.Info().Str("studentId", studentID).Str("resumeId", record.ResumeID).Msg("Resume written from form")
	ctx.JSON(http.StatusCreated, dto.NewResumeResponse(record))
}

// Get handles retrieving a student's resume record
func (c *ResumeController) Get(ctx *gin.Context) {
	studentID, ok := studentIDParam(ctx)
	if !ok {
		return
	}

	record, err := c.resumeService.Get(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewResumeResponse(record))
}

// Download streams the stored file bytes for a student's resume
func (c *ResumeController) Download(ctx *gin.Context) {
	studentID, ok := studentIDParam(ctx)
	if !ok {
		return
	}

	fileName := strings.TrimSpace(ctx.Param("fileName"))
	if fileName == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("File name must not be empty."))
		return
	}

	obj, err := c.resumeService.Download(ctx, studentID, fileName)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	ctx.Data(http.StatusOK, obj.ContentType, obj.Body)
}
