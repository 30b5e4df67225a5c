package main

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/sreeharir/resume-crm/internal/config"
	"github.com/sreeharir/resume-crm/internal/constants"
	"github.com/sreeharir/resume-crm/internal/database"
	"github.com/sreeharir/resume-crm/internal/handlers"
	"github.com/sreeharir/resume-crm/internal/middleware"
	"github.com/sreeharir/resume-crm/internal/repository"
	"github.com/sreeharir/resume-crm/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		logrus.WithError(err).Fatal("Failed to connect to database")
	}

	// Run migrations and seed the bootstrap admin
	if err := database.Migrate(); err != nil {
		logrus.WithError(err).Fatal("Failed to run migrations")
	}
	if err := database.Seed(); err != nil {
		logrus.WithError(err).Fatal("Failed to seed database")
	}

	// Initialize Gin router
	r := gin.Default()

	// Session middleware. Sessions are transient per-client state, so a
	// signed cookie store is enough; nothing is persisted server-side.
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   constants.SessionMaxAge,
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // SameSite=Lax
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Wire repositories, services and handlers
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	resumeRepo := repository.NewResumeRepository(db)

	authService := services.NewAuthService(userRepo)
	resumeService := services.NewResumeService(resumeRepo)
	exportService := services.NewExportService()

	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(authService)
	resumeHandler := handlers.NewResumeHandler(resumeService, exportService)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Resume CRM API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)
		}

		// Resume record routes (protected)
		resumes := api.Group("/resumes")
		resumes.Use(middleware.RequireAuth())
		{
			resumes.GET("", resumeHandler.ListResumes)
			resumes.POST("", resumeHandler.CreateResume)
			resumes.GET("/years", resumeHandler.ListYears)
			resumes.GET("/export", resumeHandler.ExportResumes)
			resumes.GET("/:id", resumeHandler.GetResume)
			resumes.PUT("/:id", resumeHandler.UpdateResume)
			resumes.DELETE("/:id", middleware.RequireAdmin(), resumeHandler.DeleteResume)
		}

		// Dashboard counters (protected)
		api.GET("/stats", middleware.RequireAuth(), resumeHandler.GetStats)

		// User management (admin only)
		users := api.Group("/users")
		users.Use(middleware.RequireAuth(), middleware.RequireAdmin())
		{
			users.POST("", userHandler.CreateUser)
		}
	}

	// Start server
	logrus.WithField("addr", cfg.ListenAddr).Info("Server starting")
	if err := r.Run(cfg.ListenAddr); err != nil {
		logrus.WithError(err).Fatal("Failed to start server")
	}
}
