package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aksoyb/schedly/internal/app/models/dto"
	"github.com/aksoyb/schedly/internal/pkg/apperrors"
)

// HandleAPIError maps application errors onto HTTP responses. Controllers
// call it with whatever the service layer returned; the error message and
// any structured details travel with the response.
func HandleAPIError(c *gin.Context, err error) {
	var custom *apperrors.CustomError
	message := err.Error()
	var details interface{}
	if errors.As(err, &custom) {
		if custom.Details != nil {
			details = custom.Details
		}
	}

	switch {
	case errors.Is(err, apperrors.ErrScheduleConflict):
		detail := dto.NewErrorDetail(dto.ErrorCodeScheduleConflict, message)
		if details != nil {
			detail = detail.WithDetails(details)
		}
		c.JSON(http.StatusConflict, dto.APIResponse{Error: detail})

	case errors.Is(err, apperrors.ErrDuplicateSection):
		c.JSON(http.StatusConflict, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeDuplicateSection, message),
		})

	case errors.Is(err, apperrors.ErrStateTransition):
		c.JSON(http.StatusConflict, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeStateTransition, message),
		})

	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message),
		})

	case errors.Is(err, apperrors.ErrResourceAlreadyExists):
		c.JSON(http.StatusConflict, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, message),
		})

	case isNotFound(err):
		c.JSON(http.StatusNotFound, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, message),
		})

	case errors.Is(err, apperrors.ErrTokenInvalid), errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeUnauthorized, message),
		})

	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied"),
		})

	case errors.Is(err, apperrors.ErrCollaboratorUnavailable):
		c.JSON(http.StatusServiceUnavailable, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeCollaboratorUnavailable, message),
		})

	default:
		c.JSON(http.StatusInternalServerError, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		})
	}
}

func isNotFound(err error) bool {
	for _, target := range []error{
		apperrors.ErrResourceNotFound,
		apperrors.ErrSemesterNotFound,
		apperrors.ErrCourseNotFound,
		apperrors.ErrDoctorNotFound,
		apperrors.ErrClassroomNotFound,
		apperrors.ErrTimeSlotNotFound,
		apperrors.ErrSectionNotFound,
		apperrors.ErrScheduleNotFound,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
