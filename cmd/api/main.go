package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"tripdesk/internal/config"
	"tripdesk/internal/database"
	"tripdesk/internal/middleware"
	"tripdesk/internal/modules/admin"
	"tripdesk/internal/modules/auth"
	"tripdesk/internal/modules/document"
	"tripdesk/internal/modules/form"
	"tripdesk/internal/modules/itinerary"
	"tripdesk/internal/modules/schema"
	"tripdesk/internal/modules/submission"
	"tripdesk/internal/modules/upload"
	jwtsvc "tripdesk/internal/pkg/jwt"
	"tripdesk/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	submissionRepo := repository.NewSubmissionRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	schemaService := schema.NewService(cfg.SchemaPath)
	schemaHandler := schema.NewHandler(schemaService)

	submissionService := submission.NewService(submissionRepo)
	submissionHandler := submission.NewHandler(submissionService, cfg.DocsDir)

	itineraryService := itinerary.NewService(itinerary.NewDraftStore(), submissionService)
	itineraryHandler := itinerary.NewHandler(itineraryService)

	formService := form.NewService(schemaService, submissionService)
	formHandler := form.NewHandler(formService)

	generator := document.NewPDFGenerator(cfg.DocsDir, cfg.PublicBaseURL)
	adminService := admin.NewService(submissionService, generator)
	adminHandler := admin.NewHandler(adminService)

	uploadService := upload.NewService(cfg.UploadDir, cfg.PublicBaseURL)
	uploadHandler := upload.NewHandler(uploadService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	r.Static("/static/uploads", cfg.UploadDir)
	r.Static("/static/docs", cfg.DocsDir)

	v1 := r.Group("/api")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)
		schemaHandler.RegisterRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			itineraryHandler.RegisterRoutes(protected)
			formHandler.RegisterRoutes(protected)
			submissionHandler.RegisterRoutes(protected)
			uploadHandler.RegisterRoutes(protected)

			adminGroup := protected.Group("/admin")
			adminGroup.Use(middleware.AdminOnly())
			{
				adminHandler.RegisterRoutes(adminGroup)
			}
		}
	}

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
