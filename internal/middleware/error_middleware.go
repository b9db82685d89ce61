package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/schoolfm/internal/app/models/dto"
	"github.com/yigit/schoolfm/internal/pkg/apperrors"
	"github.com/yigit/schoolfm/internal/pkg/logger"
)

// HandleAPIError maps an application error onto a status code and the
// standard error body, and aborts the request.
func HandleAPIError(c *gin.Context, err error) {
	message := err.Error()
	field := ""
	var custom *apperrors.CustomError
	if errors.As(err, &custom) {
		message = custom.Error()
		field = custom.Field
	}

	var status int
	var detail *dto.ErrorDetail
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		status = http.StatusBadRequest
		detail = dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message).WithField(field)
	case errors.Is(err, apperrors.ErrBadRequest):
		status = http.StatusBadRequest
		detail = dto.NewErrorDetail(dto.ErrorCodeBadRequest, message)
	case errors.Is(err, apperrors.ErrConflict):
		status = http.StatusConflict
		detail = dto.NewErrorDetail(dto.ErrorCodeConflict, message).WithSeverity(dto.ErrorSeverityWarning)
	case errors.Is(err, apperrors.ErrStorage):
		status = http.StatusInternalServerError
		detail = dto.NewErrorDetail(dto.ErrorCodeStorageError, message).WithSeverity(dto.ErrorSeverityCritical)
	default:
		status = http.StatusInternalServerError
		detail = dto.NewErrorDetail(dto.ErrorCodeInternalServer, message).WithSeverity(dto.ErrorSeverityCritical)
	}

	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).Str("method", c.Request.Method).Str("path", c.Request.URL.Path).Msg("Request failed")
	}

	c.AbortWithStatusJSON(status, dto.NewErrorResponse(detail))
}

// HandleBindingError reports a request body or parameter that could not be
// decoded or failed validation.
func HandleBindingError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
}
