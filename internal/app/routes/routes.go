package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hyejin/scholarhub/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	resumeController *controllers.ResumeController,
	scholarshipController *controllers.ScholarshipController,
) {
	api := router.Group("/api")

	// Resume routes
	students := api.Group("/students/:studentId")
	{
		students.POST("/resume", resumeController.Upload)
		students.POST("/resume/write", resumeController.Write)
		students.GET("/resume", resumeController.Get)
	}

	// Raw file downloads live outside the student group so stored URLs
	// stay stable.
	api.GET("/resume-files/:studentId/:fileName", resumeController.Download)

	// Scholarship routes. The static /saved route must be registered in
	// the same group as the :id routes; gin resolves the static segment
	// first.
	scholarships := api.Group("/scholarships")
	{
		scholarships.GET("", scholarshipController.List)
		scholarships.GET("/saved", scholarshipController.ListSaved)
		scholarships.GET("/:id", scholarshipController.GetByID)
		scholarships.POST("/:id/save", scholarshipController.Save)
		scholarships.DELETE("/:id/save", scholarshipController.Unsave)
	}

	// Health check endpoint (public)
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Service index
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message":      "Scholarship & Resume API running",
			"resumeUpload": "/api/students/{studentId}/resume",
			"scholarships": "/api/scholarships",
		})
	})
}
