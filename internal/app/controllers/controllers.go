package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/aksoyb/schedly/internal/app/models/dto"
)

// pathID parses a numeric path parameter, writing the 400 response itself
// when the value is not a number.
func pathID(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid ID")
		detail = detail.WithField(name).WithDetails("ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return 0, false
	}
	return id, true
}

// respondBindError writes the 400 response for a failed request binding.
func respondBindError(ctx *gin.Context, message string, err error) {
	detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message)
	ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail.WithDetails(err.Error())))
}
