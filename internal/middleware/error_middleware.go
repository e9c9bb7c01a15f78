package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/ahatanar/StudentSpace/internal/app/models/dto"
	"github.com/ahatanar/StudentSpace/internal/pkg/apperrors"
	"github.com/ahatanar/StudentSpace/internal/pkg/logger"
)

// HandleAPIError translates application errors into the standard error
// payload. "No dataset for this term" maps to 404; it is deliberately a
// different condition from a dataset that exists but matches zero sections,
// which never reaches this function.
func HandleAPIError(c *gin.Context, err error) {
	var custom *apperrors.CustomError
	message := err.Error()
	if errors.As(err, &custom) && custom.Message != "" {
		message = custom.Message
	}

	switch {
	case errors.Is(err, apperrors.ErrDatasetNotFound):
		c.JSON(404, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeDatasetNotFound, message)))
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(404, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Resource not found")))
	case errors.Is(err, apperrors.ErrDatasetAlreadyExists), errors.Is(err, apperrors.ErrConflict):
		c.JSON(409, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, message)))
	case errors.Is(err, apperrors.ErrInvalidInterval),
		errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(400, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message)))
	case errors.Is(err, apperrors.ErrDatasetCorrupt):
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Corrupt dataset")
		c.JSON(500, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeDatasetCorrupt, "Stored dataset cannot be decoded")))
	case errors.Is(err, apperrors.ErrDatasetUnavailable):
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Dataset source unavailable")
		c.JSON(503, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeDatabaseError, "Dataset source unavailable")))
	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled error")
		c.JSON(500, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
	}
}
