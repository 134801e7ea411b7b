package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aksoyb/schedly/internal/app/models/dto"
	"github.com/aksoyb/schedly/internal/app/services"
	"github.com/aksoyb/schedly/internal/middleware"
)

// SectionController handles course section operations.
type SectionController struct {
	sectionService *services.SectionService
}

// NewSectionController creates a new SectionController.
func NewSectionController(sectionService *services.SectionService) *SectionController {
	return &SectionController{sectionService: sectionService}
}

// CreateSection handles section creation
// @Summary Create a section
// @Description Creates a numbered section of a course. Without a requested number the lowest free number is assigned.
// @Tags sections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateSectionRequest true "Section information"
// @Success 201 {object} dto.APIResponse{data=models.Section} "Section created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Section number already in use"
// @Router /sections [post]
func (c *SectionController) CreateSection(ctx *gin.Context) {
	var req dto.CreateSectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, "Invalid section data", err)
		return
	}

	section, err := c.sectionService.CreateSection(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: section, Timestamp: time.Now()})
}

// GetSectionByID retrieves a section
// @Summary Get section by ID
// @Tags sections
// @Produce json
// @Security BearerAuth
// @Param id path int true "Section ID"
// @Success 200 {object} dto.APIResponse{data=models.Section} "Section retrieved"
// @Failure 404 {object} dto.ErrorResponse "Section not found"
// @Router /sections/{id} [get]
func (c *SectionController) GetSectionByID(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	section, err := c.sectionService.GetSection(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: section, Timestamp: time.Now()})
}

// GetSectionsBySemester lists a semester's sections
// @Summary List sections of a semester
// @Tags sections
// @Produce json
// @Security BearerAuth
// @Param semesterId query int true "Semester ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Section} "Sections retrieved"
// @Router /sections [get]
func (c *SectionController) GetSectionsBySemester(ctx *gin.Context) {
	semesterID, err := strconv.ParseInt(ctx.Query("semesterId"), 10, 64)
	if err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid semester ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail.WithField("semesterId")))
		return
	}

	sections, err := c.sectionService.GetSectionsBySemester(ctx, semesterID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: sections, Timestamp: time.Now()})
}

// GetNextSectionNumber previews the next free section number
// @Summary Preview the next section number
// @Tags sections
// @Produce json
// @Security BearerAuth
// @Param semesterId query int true "Semester ID"
// @Param courseId query int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.NextSectionNumberResponse} "Next free number"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /sections/next-number [get]
func (c *SectionController) GetNextSectionNumber(ctx *gin.Context) {
	semesterID, err := strconv.ParseInt(ctx.Query("semesterId"), 10, 64)
	if err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid semester ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail.WithField("semesterId")))
		return
	}
	courseID, err := strconv.ParseInt(ctx.Query("courseId"), 10, 64)
	if err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail.WithField("courseId")))
		return
	}

	resp, err := c.sectionService.NextNumber(ctx, semesterID, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp, Timestamp: time.Now()})
}

// UpdateSection edits a section
// @Summary Update a section
// @Tags sections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Section ID"
// @Param request body dto.UpdateSectionRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Section} "Section updated"
// @Failure 404 {object} dto.ErrorResponse "Section not found"
// @Router /sections/{id} [put]
func (c *SectionController) UpdateSection(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateSectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, "Invalid section data", err)
		return
	}

	section, err := c.sectionService.UpdateSection(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: section, Timestamp: time.Now()})
}

// DeleteSection removes a section
// @Summary Delete a section
// @Description Deletes a section that has no active schedules.
// @Tags sections
// @Produce json
// @Security BearerAuth
// @Param id path int true "Section ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Section deleted"
// @Failure 409 {object} dto.ErrorResponse "Section has active schedules"
// @Router /sections/{id} [delete]
func (c *SectionController) DeleteSection(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.sectionService.DeleteSection(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Section deleted"},
		Timestamp: time.Now(),
	})
}
