package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/schoolfm/internal/app/controllers"
)

// SetupRouter configures all application routes under /api
func SetupRouter(
	router *gin.Engine,
	staffRoleController *controllers.StaffRoleController,
	classController *controllers.ClassController,
	staffController *controllers.StaffController,
	studentController *controllers.StudentController,
	transportController *controllers.TransportController,
	billingController *controllers.BillingController,
	settingsController *controllers.SettingsController,
	healthController *controllers.HealthController,
) {
	api := router.Group("/api")

	api.GET("/health", healthController.Health)

	settings := api.Group("/settings")
	{
		settings.GET("", settingsController.GetSettings)
		settings.PUT("", settingsController.ReplaceSettings)
	}

	// --- Organization ---
	staffRoles := api.Group("/staff-roles")
	{
		staffRoles.GET("", staffRoleController.GetAllStaffRoles)
		staffRoles.POST("", staffRoleController.CreateStaffRole)
		staffRoles.DELETE("/:id", staffRoleController.DeleteStaffRole)
	}

	classes := api.Group("/classes")
	{
		classes.GET("", classController.GetAllClasses)
		classes.POST("", classController.CreateClass)
		classes.DELETE("/:id", classController.DeleteClass)
	}

	sections := api.Group("/sections")
	{
		sections.GET("", classController.GetSections) // ?class_id=
		sections.POST("", classController.CreateSection)
		sections.DELETE("/:id", classController.DeleteSection)
	}

	// --- People (archived, never deleted) ---
	students := api.Group("/students")
	{
		students.GET("", studentController.GetActiveStudents)
		students.GET("/archived", studentController.GetArchivedStudents)
		students.POST("", studentController.CreateStudent)
		students.PUT("/:id", studentController.UpdateStudent)
		students.PUT("/:id/archive", studentController.ArchiveStudent)
		students.GET("/:id/fees", studentController.GetStudentFees)
	}

	staff := api.Group("/staff")
	{
		staff.GET("", staffController.GetActiveStaff)
		staff.GET("/archived", staffController.GetArchivedStaff)
		staff.POST("", staffController.CreateStaff)
		staff.PUT("/:id", staffController.UpdateStaff)
		staff.PUT("/:id/archive", staffController.ArchiveStaff)
	}

	// --- Transport ---
	busRoutes := api.Group("/bus-routes")
	{
		busRoutes.GET("", transportController.GetAllBusRoutes)
		busRoutes.POST("", transportController.CreateBusRoute)
		busRoutes.DELETE("/:id", transportController.DeleteBusRoute)
	}

	busStops := api.Group("/bus-stops")
	{
		busStops.GET("", transportController.GetBusStops) // ?bus_route_id=
		busStops.POST("", transportController.CreateBusStop)
		busStops.DELETE("/:id", transportController.DeleteBusStop)
	}

	// --- Billing ---
	feeStructures := api.Group("/fee-structures")
	{
		feeStructures.GET("", billingController.GetAllFeeStructures)
		feeStructures.POST("", billingController.CreateFeeStructure)
		feeStructures.DELETE("/:id", billingController.DeleteFeeStructure)
	}

	fees := api.Group("/fees")
	{
		fees.POST("", billingController.CreateFee)
		fees.PUT("/:id", billingController.UpdateFee)
		fees.DELETE("/:id", billingController.DeleteFee)
	}
}
