package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yongsanfmc/instructor-directory/internal/app/controllers"
	"github.com/yongsanfmc/instructor-directory/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	referenceController *controllers.ReferenceController,
	instructorController *controllers.InstructorController,
	timetableController *controllers.TimetableController,
	authController *controllers.AuthController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	v1.GET("/health", referenceController.HealthCheck)

	// --- Public reference routes ---
	centers := v1.Group("/centers")
	{
		centers.GET("", referenceController.ListCenters)
		centers.GET("/:name/categories", referenceController.ListCenterCategories)
	}
	v1.GET("/categories", referenceController.ListCategories)

	// --- Public directory routes ---
	instructors := v1.Group("/instructors")
	{
		instructors.GET("", instructorController.ListInstructors)
		instructors.GET("/overview", instructorController.GetOverview)
	}

	timetables := v1.Group("/timetable-urls")
	{
		timetables.GET("", timetableController.ListTimetableURLs)
		timetables.GET("/:center/:category", timetableController.GetTimetableURL)
	}

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/logout", authController.Logout)
		authenticated.POST("/auth/logout-all", authController.LogoutAll)
		authenticated.GET("/auth/session", authController.Session)

		// Admin-only maintenance routes
		admin := authenticated.Group("")
		admin.Use(authMiddleware.AdminRequired())
		{
			admin.PUT("/instructors", instructorController.SaveInstructor)
			admin.DELETE("/instructors/:id", instructorController.DeleteInstructor)
			admin.PUT("/timetable-urls/:center/:category", timetableController.SetTimetableURL)
			admin.DELETE("/timetable-urls/:center/:category", timetableController.DeleteTimetableURL)
		}
	}
}
