package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aksoyb/schedly/internal/app/models/dto"
	"github.com/aksoyb/schedly/internal/app/services"
	"github.com/aksoyb/schedly/internal/middleware"
)

// SemesterController handles academic term operations.
type SemesterController struct {
	semesterService *services.SemesterService
}

// NewSemesterController creates a new SemesterController.
func NewSemesterController(semesterService *services.SemesterService) *SemesterController {
	return &SemesterController{semesterService: semesterService}
}

// CreateSemester handles semester creation
// @Summary Create a semester
// @Tags semesters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateSemesterRequest true "Semester information"
// @Success 201 {object} dto.APIResponse{data=models.Semester} "Semester created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /semesters [post]
func (c *SemesterController) CreateSemester(ctx *gin.Context) {
	var req dto.CreateSemesterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, "Invalid semester data", err)
		return
	}

	semester, err := c.semesterService.CreateSemester(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: semester, Timestamp: time.Now()})
}

// GetAllSemesters lists semesters
// @Summary List semesters
// @Tags semesters
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Semester} "Semesters retrieved"
// @Router /semesters [get]
func (c *SemesterController) GetAllSemesters(ctx *gin.Context) {
	semesters, err := c.semesterService.GetAllSemesters(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: semesters, Timestamp: time.Now()})
}

// GetSemesterByID retrieves a semester
// @Summary Get semester by ID
// @Tags semesters
// @Produce json
// @Param id path int true "Semester ID"
// @Success 200 {object} dto.APIResponse{data=models.Semester} "Semester retrieved"
// @Failure 404 {object} dto.ErrorResponse "Semester not found"
// @Router /semesters/{id} [get]
func (c *SemesterController) GetSemesterByID(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	semester, err := c.semesterService.GetSemester(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: semester, Timestamp: time.Now()})
}

// ActivateSemester marks a semester as the active one
// @Summary Activate a semester
// @Description Makes the semester the active term and deactivates all others.
// @Tags semesters
// @Produce json
// @Security BearerAuth
// @Param id path int true "Semester ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Semester activated"
// @Failure 404 {object} dto.ErrorResponse "Semester not found"
// @Router /semesters/{id}/activate [post]
func (c *SemesterController) ActivateSemester(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.semesterService.ActivateSemester(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Semester activated"},
		Timestamp: time.Now(),
	})
}
