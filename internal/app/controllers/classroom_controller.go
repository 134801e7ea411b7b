package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aksoyb/schedly/internal/app/models"
	"github.com/aksoyb/schedly/internal/app/models/dto"
	"github.com/aksoyb/schedly/internal/app/services"
	"github.com/aksoyb/schedly/internal/middleware"
)

// ClassroomController handles room operations.
type ClassroomController struct {
	classroomService *services.ClassroomService
}

// NewClassroomController creates a new ClassroomController.
func NewClassroomController(classroomService *services.ClassroomService) *ClassroomController {
	return &ClassroomController{classroomService: classroomService}
}

// CreateClassroom registers a room
// @Summary Register a classroom
// @Tags classrooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateClassroomRequest true "Classroom information"
// @Success 201 {object} dto.APIResponse{data=models.Classroom} "Classroom registered"
// @Failure 409 {object} dto.ErrorResponse "Name already registered"
// @Router /classrooms [post]
func (c *ClassroomController) CreateClassroom(ctx *gin.Context) {
	var req dto.CreateClassroomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, "Invalid classroom data", err)
		return
	}

	classroom, err := c.classroomService.CreateClassroom(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: classroom, Timestamp: time.Now()})
}

// GetAllClassrooms lists rooms
// @Summary List classrooms
// @Tags classrooms
// @Produce json
// @Param availableOnly query bool false "Only available rooms"
// @Success 200 {object} dto.APIResponse{data=[]models.Classroom} "Classrooms retrieved"
// @Router /classrooms [get]
func (c *ClassroomController) GetAllClassrooms(ctx *gin.Context) {
	availableOnly := ctx.Query("availableOnly") == "true"

	classrooms, err := c.classroomService.GetAllClassrooms(ctx, availableOnly)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: classrooms, Timestamp: time.Now()})
}

// GetClassroomByID retrieves a room
// @Summary Get classroom by ID
// @Tags classrooms
// @Produce json
// @Param id path int true "Classroom ID"
// @Success 200 {object} dto.APIResponse{data=models.Classroom} "Classroom retrieved"
// @Failure 404 {object} dto.ErrorResponse "Classroom not found"
// @Router /classrooms/{id} [get]
func (c *ClassroomController) GetClassroomByID(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	classroom, err := c.classroomService.GetClassroom(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: classroom, Timestamp: time.Now()})
}

// UpdateClassroom edits a room
// @Summary Update a classroom
// @Tags classrooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Classroom ID"
// @Param request body models.Classroom true "Classroom record"
// @Success 200 {object} dto.APIResponse{data=models.Classroom} "Classroom updated"
// @Failure 404 {object} dto.ErrorResponse "Classroom not found"
// @Router /classrooms/{id} [put]
func (c *ClassroomController) UpdateClassroom(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var classroom models.Classroom
	if err := ctx.ShouldBindJSON(&classroom); err != nil {
		respondBindError(ctx, "Invalid classroom data", err)
		return
	}
	classroom.ID = id

	if err := c.classroomService.UpdateClassroom(ctx, &classroom); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: classroom, Timestamp: time.Now()})
}
