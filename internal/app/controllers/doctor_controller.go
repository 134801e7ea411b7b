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

// DoctorController handles teaching staff operations.
type DoctorController struct {
	doctorService *services.DoctorService
}

// NewDoctorController creates a new DoctorController.
func NewDoctorController(doctorService *services.DoctorService) *DoctorController {
	return &DoctorController{doctorService: doctorService}
}

// CreateDoctor registers a doctor
// @Summary Register a doctor
// @Tags doctors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateDoctorRequest true "Doctor information"
// @Success 201 {object} dto.APIResponse{data=models.Doctor} "Doctor registered"
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Router /doctors [post]
func (c *DoctorController) CreateDoctor(ctx *gin.Context) {
	var req dto.CreateDoctorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, "Invalid doctor data", err)
		return
	}

	doctor, err := c.doctorService.CreateDoctor(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: doctor, Timestamp: time.Now()})
}

// GetAllDoctors lists doctors
// @Summary List doctors
// @Tags doctors
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Doctor} "Doctors retrieved"
// @Router /doctors [get]
func (c *DoctorController) GetAllDoctors(ctx *gin.Context) {
	doctors, err := c.doctorService.GetAllDoctors(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: doctors, Timestamp: time.Now()})
}

// GetDoctorByID retrieves a doctor
// @Summary Get doctor by ID
// @Tags doctors
// @Produce json
// @Param id path int true "Doctor ID"
// @Success 200 {object} dto.APIResponse{data=models.Doctor} "Doctor retrieved"
// @Failure 404 {object} dto.ErrorResponse "Doctor not found"
// @Router /doctors/{id} [get]
func (c *DoctorController) GetDoctorByID(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	doctor, err := c.doctorService.GetDoctor(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: doctor, Timestamp: time.Now()})
}

// UpdateDoctor edits a doctor
// @Summary Update a doctor
// @Tags doctors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Doctor ID"
// @Param request body models.Doctor true "Doctor record"
// @Success 200 {object} dto.APIResponse{data=models.Doctor} "Doctor updated"
// @Failure 404 {object} dto.ErrorResponse "Doctor not found"
// @Router /doctors/{id} [put]
func (c *DoctorController) UpdateDoctor(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var doctor models.Doctor
	if err := ctx.ShouldBindJSON(&doctor); err != nil {
		respondBindError(ctx, "Invalid doctor data", err)
		return
	}
	doctor.ID = id

	if err := c.doctorService.UpdateDoctor(ctx, &doctor); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: doctor, Timestamp: time.Now()})
}
