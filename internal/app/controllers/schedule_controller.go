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

// ScheduleController handles schedule CRUD, conflict checks and the
// semester lifecycle operations.
type ScheduleController struct {
	scheduleService   *services.ScheduleService
	conflictService   *services.ConflictService
	generatorService  *services.GeneratorService
	validationService *services.ValidationService
}

// NewScheduleController creates a new ScheduleController.
func NewScheduleController(
	scheduleService *services.ScheduleService,
	conflictService *services.ConflictService,
	generatorService *services.GeneratorService,
	validationService *services.ValidationService,
) *ScheduleController {
	return &ScheduleController{
		scheduleService:   scheduleService,
		conflictService:   conflictService,
		generatorService:  generatorService,
		validationService: validationService,
	}
}

// CreateSchedule handles schedule creation
// @Summary Create a schedule
// @Description Places a section into a classroom with weekly meeting slots. Conflicting assignments are rejected with the full conflict list.
// @Tags schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateScheduleRequest true "Schedule information"
// @Success 201 {object} dto.APIResponse{data=models.Schedule} "Schedule created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Referenced entity not found"
// @Failure 409 {object} dto.ErrorResponse "Schedule conflict"
// @Router /schedules [post]
func (c *ScheduleController) CreateSchedule(ctx *gin.Context) {
	var req dto.CreateScheduleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, "Invalid schedule data", err)
		return
	}

	schedule, err := c.scheduleService.CreateSchedule(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: schedule, Timestamp: time.Now()})
}

// GetScheduleByID retrieves a schedule
// @Summary Get schedule by ID
// @Tags schedules
// @Produce json
// @Security BearerAuth
// @Param id path int true "Schedule ID"
// @Success 200 {object} dto.APIResponse{data=models.Schedule} "Schedule retrieved"
// @Failure 404 {object} dto.ErrorResponse "Schedule not found"
// @Router /schedules/{id} [get]
func (c *ScheduleController) GetScheduleByID(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	schedule, err := c.scheduleService.GetSchedule(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: schedule, Timestamp: time.Now()})
}

// GetSchedulesBySemester lists a semester's schedules
// @Summary List schedules of a semester
// @Tags schedules
// @Produce json
// @Security BearerAuth
// @Param semesterId query int true "Semester ID"
// @Param includeCancelled query bool false "Include cancelled schedules"
// @Success 200 {object} dto.APIResponse{data=[]models.Schedule} "Schedules retrieved"
// @Router /schedules [get]
func (c *ScheduleController) GetSchedulesBySemester(ctx *gin.Context) {
	semesterID, err := strconv.ParseInt(ctx.Query("semesterId"), 10, 64)
	if err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid semester ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail.WithField("semesterId")))
		return
	}
	includeCancelled := ctx.Query("includeCancelled") == "true"

	schedules, err := c.scheduleService.GetSchedulesBySemester(ctx, semesterID, includeCancelled)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: schedules, Timestamp: time.Now()})
}

// UpdateSchedule edits a schedule in place
// @Summary Update a schedule
// @Description Edits doctor, classroom, slots or notes. Assignment changes re-run the conflict check and demote the schedule to draft.
// @Tags schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Schedule ID"
// @Param request body dto.UpdateScheduleRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Schedule} "Schedule updated"
// @Failure 409 {object} dto.ErrorResponse "Schedule conflict or invalid state"
// @Router /schedules/{id} [put]
func (c *ScheduleController) UpdateSchedule(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateScheduleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, "Invalid schedule data", err)
		return
	}

	schedule, err := c.scheduleService.UpdateSchedule(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: schedule, Timestamp: time.Now()})
}

// CancelSchedule cancels a schedule
// @Summary Cancel a schedule
// @Description Cancels a schedule from any state, freeing its doctor, classroom and section. Idempotent.
// @Tags schedules
// @Produce json
// @Security BearerAuth
// @Param id path int true "Schedule ID"
// @Success 200 {object} dto.APIResponse{data=models.Schedule} "Schedule cancelled"
// @Failure 404 {object} dto.ErrorResponse "Schedule not found"
// @Router /schedules/{id}/cancel [post]
func (c *ScheduleController) CancelSchedule(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	schedule, err := c.scheduleService.CancelSchedule(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: schedule, Timestamp: time.Now()})
}

// CheckConflicts runs an ad-hoc conflict check
// @Summary Check a candidate assignment for conflicts
// @Description Reports every doctor, classroom and section overlap the proposed assignment would create, without persisting anything.
// @Tags schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CheckConflictsRequest true "Candidate assignment"
// @Success 200 {object} dto.APIResponse{data=dto.ConflictCheckResponse} "Conflict report"
// @Failure 400 {object} dto.ErrorResponse "Malformed slot"
// @Router /schedules/check-conflicts [post]
func (c *ScheduleController) CheckConflicts(ctx *gin.Context) {
	var req dto.CheckConflictsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, "Invalid conflict check request", err)
		return
	}

	resp, err := c.conflictService.CheckConflicts(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp, Timestamp: time.Now()})
}

// GenerateSchedules runs the greedy generator for a semester
// @Summary Generate draft schedules
// @Description Places every unscheduled section of the semester it can and reports the rest with reasons. Existing schedules are never touched.
// @Tags schedules
// @Produce json
// @Security BearerAuth
// @Param id path int true "Semester ID"
// @Success 200 {object} dto.APIResponse{data=dto.GenerateResponse} "Generation summary"
// @Failure 404 {object} dto.ErrorResponse "Semester not found"
// @Router /semesters/{id}/generate [post]
func (c *ScheduleController) GenerateSchedules(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.generatorService.Generate(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp, Timestamp: time.Now()})
}

// ValidateSemester sweeps a semester for conflicts
// @Summary Validate a semester
// @Description Checks every active schedule pair. A clean sweep promotes drafts to validated; otherwise the conflicts come back and nothing changes.
// @Tags schedules
// @Produce json
// @Security BearerAuth
// @Param id path int true "Semester ID"
// @Success 200 {object} dto.APIResponse{data=dto.ValidateResponse} "Validation result"
// @Failure 404 {object} dto.ErrorResponse "Semester not found"
// @Router /semesters/{id}/validate [post]
func (c *ScheduleController) ValidateSemester(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.validationService.Validate(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp, Timestamp: time.Now()})
}

// PublishSemester publishes every validated schedule
// @Summary Publish a semester
// @Description Promotes validated schedules to published after a final sweep. Fails while drafts remain. Publishing twice reports zero.
// @Tags schedules
// @Produce json
// @Security BearerAuth
// @Param id path int true "Semester ID"
// @Success 200 {object} dto.APIResponse{data=dto.PublishResponse} "Publish summary"
// @Failure 409 {object} dto.ErrorResponse "Drafts remain or conflicts resurfaced"
// @Router /semesters/{id}/publish [post]
func (c *ScheduleController) PublishSemester(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.validationService.Publish(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp, Timestamp: time.Now()})
}
