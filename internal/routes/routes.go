package routes

import (
	"professor-booking-server/internal/config"
	"professor-booking-server/internal/handlers"
	"professor-booking-server/internal/middleware"
	"professor-booking-server/internal/models"
	"professor-booking-server/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config, logger *zap.Logger) {
	// Repositories
	professorRepo := repository.NewProfessorRepository(db)
	userRepo := repository.NewUserRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userRepo, professorRepo, cfg, logger)
	professorHandler := handlers.NewProfessorHandler(professorRepo, logger)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentRepo, professorRepo, userRepo, cfg.Location, logger)
	adminHandler := handlers.NewAdminHandler(professorRepo, logger)

	api := router.Group("/api")

	// User front end
	userRoutes := api.Group("/user")
	{
		userRoutes.POST("/register", authHandler.RegisterUser)
		userRoutes.POST("/login", authHandler.LoginUser)

		private := userRoutes.Group("")
		private.Use(middleware.AuthMiddleware(cfg, middleware.HeaderUserToken))
		private.Use(middleware.RoleAuthMiddleware(models.RoleUser))
		{
			private.POST("/book-appointment", appointmentHandler.Book)
			private.POST("/cancel-appointment", appointmentHandler.Cancel)
			private.GET("/appointments", appointmentHandler.ListForUser)
		}
	}

	// Professor panel of the admin front end
	professorRoutes := api.Group("/professor")
	{
		professorRoutes.POST("/login", authHandler.LoginProfessor)
		professorRoutes.GET("/list", professorHandler.List)

		private := professorRoutes.Group("")
		private.Use(middleware.AuthMiddleware(cfg, middleware.HeaderProfessorToken))
		private.Use(middleware.RoleAuthMiddleware(models.RoleProfessor))
		{
			private.GET("/profile", professorHandler.Profile)
			private.POST("/update-profile", professorHandler.UpdateProfile)
			private.GET("/appointments", appointmentHandler.ListForProfessor)
		}
	}

	// Admin panel
	adminRoutes := api.Group("/admin")
	{
		adminRoutes.POST("/login", authHandler.LoginAdmin)

		private := adminRoutes.Group("")
		private.Use(middleware.AuthMiddleware(cfg, middleware.HeaderAdminToken))
		private.Use(middleware.RoleAuthMiddleware(models.RoleAdmin))
		{
			private.POST("/add-professor", adminHandler.AddProfessor)
			private.GET("/all-professors", adminHandler.AllProfessors)
			private.POST("/change-availability", adminHandler.ChangeAvailability)
			private.GET("/appointments", appointmentHandler.ListAll)
		}
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}
