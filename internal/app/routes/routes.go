package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aksoyb/schedly/internal/app/controllers"
	"github.com/aksoyb/schedly/internal/middleware"
	"github.com/aksoyb/schedly/internal/pkg/auth"
)

// SetupRouter configures all application routes. Reference data is readable
// without a token; scheduling reads need a valid token and every mutation is
// restricted to department heads.
func SetupRouter(
	router *gin.Engine,
	semesterController *controllers.SemesterController,
	courseController *controllers.CourseController,
	doctorController *controllers.DoctorController,
	classroomController *controllers.ClassroomController,
	timeSlotController *controllers.TimeSlotController,
	sectionController *controllers.SectionController,
	scheduleController *controllers.ScheduleController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// --- Public reference data ---
	semesters := v1.Group("/semesters")
	{
		semesters.GET("", semesterController.GetAllSemesters)
		semesters.GET("/:id", semesterController.GetSemesterByID)
	}

	courses := v1.Group("/courses")
	{
		courses.GET("", courseController.GetAllCourses)
		courses.GET("/:id", courseController.GetCourseByID)
	}

	doctors := v1.Group("/doctors")
	{
		doctors.GET("", doctorController.GetAllDoctors)
		doctors.GET("/:id", doctorController.GetDoctorByID)
	}

	classrooms := v1.Group("/classrooms")
	{
		classrooms.GET("", classroomController.GetAllClassrooms)
		classrooms.GET("/:id", classroomController.GetClassroomByID)
	}

	timeSlots := v1.Group("/time-slots")
	{
		timeSlots.GET("", timeSlotController.GetTimeSlotsBySemester)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		sections := authenticated.Group("/sections")
		{
			sections.GET("", sectionController.GetSectionsBySemester)
			sections.GET("/next-number", sectionController.GetNextSectionNumber)
			sections.GET("/:id", sectionController.GetSectionByID)
		}

		schedules := authenticated.Group("/schedules")
		{
			schedules.GET("", scheduleController.GetSchedulesBySemester)
			schedules.GET("/:id", scheduleController.GetScheduleByID)
			schedules.POST("/check-conflicts", scheduleController.CheckConflicts)
		}

		// Head-only mutations
		head := authenticated.Group("")
		head.Use(authMiddleware.RoleRequired(auth.RoleHead))
		{
			head.POST("/semesters", semesterController.CreateSemester)
			head.POST("/semesters/:id/activate", semesterController.ActivateSemester)
			head.POST("/semesters/:id/generate", scheduleController.GenerateSchedules)
			head.POST("/semesters/:id/validate", scheduleController.ValidateSemester)
			head.POST("/semesters/:id/publish", scheduleController.PublishSemester)

			head.POST("/courses", courseController.CreateCourse)
			head.DELETE("/courses/:id", courseController.DeleteCourse)

			head.POST("/doctors", doctorController.CreateDoctor)
			head.PUT("/doctors/:id", doctorController.UpdateDoctor)

			head.POST("/classrooms", classroomController.CreateClassroom)
			head.PUT("/classrooms/:id", classroomController.UpdateClassroom)

			head.POST("/time-slots", timeSlotController.CreateTimeSlot)
			head.DELETE("/time-slots/:id", timeSlotController.DeleteTimeSlot)

			head.POST("/sections", sectionController.CreateSection)
			head.PUT("/sections/:id", sectionController.UpdateSection)
			head.DELETE("/sections/:id", sectionController.DeleteSection)

			head.POST("/schedules", scheduleController.CreateSchedule)
			head.PUT("/schedules/:id", scheduleController.UpdateSchedule)
			head.POST("/schedules/:id/cancel", scheduleController.CancelSchedule)
		}
	}
}
