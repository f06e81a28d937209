package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hyejin/scholarhub/internal/app/models/dto"
	"github.com/hyejin/scholarhub/internal/pkg/apperrors"
	"github.com/hyejin/scholarhub/internal/pkg/logger"
)

// HandleAPIError is the single place service errors become HTTP
// responses: 400 for validation, 404 for not found, 502 for a failed
// store call, 500 for anything unrecognized.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(apperrors.Detail(err)))
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(apperrors.Detail(err)))
	case errors.Is(err, apperrors.ErrStorageFailure):
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Storage failure")
		c.JSON(http.StatusBadGateway, dto.NewErrorResponse(apperrors.Detail(err)))
	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error."))
	}
}
