package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/HoseaMuriira/iruma-portal/internal/app/controllers"
	"github.com/HoseaMuriira/iruma-portal/internal/app/models"
	"github.com/HoseaMuriira/iruma-portal/internal/middleware"
)

// Redirects declares where browser form posts land after each flow. The
// pages are the static portal front end; API callers get JSON instead.
func Redirects() controllers.RedirectMap {
	return controllers.RedirectMap{
		RegisterDone: "/dashboard-student.html",
		LoginAdmin:   "/index.html",
		LoginTeacher: "/dashboard-staff.html",
		LoginStudent: "/dashboard-student.html",
		LogoutDone:   "/index.html",
		ApplyDone:    "/admissions.html?applied=1",
		ContactDone:  "/contact.html?sent=1",
	}
}

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	portalController *controllers.PortalController,
	intakeController *controllers.IntakeController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// --- Public intake routes ---
	router.POST("/apply", intakeController.Apply)
	router.POST("/contact-send", intakeController.ContactSend)

	api := router.Group("/api")

	// --- Public auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/logout", authController.Logout)
	}

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	// The department catalogue backs the public marketing pages
	api.GET("/departments", portalController.Departments)

	// Me resolves its own cookie; no middleware ahead of it
	api.GET("/me", authController.Me)

	// --- Authenticated routes ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.SessionAuth())
	{
		authenticated.GET("/profile", portalController.Profile)

		students := authenticated.Group("/students")
		{
			// The roster is staff-only; individual results stay readable
			// by their owner, enforced in the service.
			students.GET("", authMiddleware.RoleRequired(models.RoleTeacher), portalController.Students)
			students.GET("/:id/results", portalController.StudentResults)
		}
	}

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
