package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/Priya1724/RealEstateFinal/internal/auth"
	"github.com/Priya1724/RealEstateFinal/internal/config"
	"github.com/Priya1724/RealEstateFinal/internal/handler"
	"github.com/Priya1724/RealEstateFinal/internal/middleware"
	"github.com/Priya1724/RealEstateFinal/internal/repository"
	"github.com/Priya1724/RealEstateFinal/internal/service"
	"github.com/Priya1724/RealEstateFinal/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	cfg := config.Load()

	db, err := sqlx.Connect("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}
	if err := repository.Migrate(context.Background(), db); err != nil {
		log.Fatalf("db migrate error: %v", err)
	}

	mongoClient, err := storage.NewMongoClient(cfg.MongoURI)
	if err != nil {
		log.Fatalf("mongo connect error: %v", err)
	}
	images := storage.NewGridFSImageStore(mongoClient, cfg.MongoDB)

	userRepo := repository.NewUserRepository(db)
	propertyRepo := repository.NewPropertyRepository(db)

	tokens := auth.NewTokenManager(cfg.JWTSecret)
	authSvc := service.NewAuthService(userRepo, tokens)
	propertySvc := service.NewPropertyService(propertyRepo, userRepo, images)
	adminSvc := service.NewAdminService(propertyRepo, userRepo)

	if err := authSvc.EnsureAdmin(context.Background(), cfg.AdminName, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("admin bootstrap error: %v", err)
	}

	authHandler := &handler.AuthHandler{Auth: authSvc}
	propertyHandler := &handler.PropertyHandler{Properties: propertySvc}
	adminHandler := &handler.AdminHandler{Admin: adminSvc}
	imageHandler := &handler.ImageHandler{Images: images}

	r := gin.Default()
	api := r.Group("/api")

	authHandler.RegisterRoutes(api)
	propertyHandler.RegisterPublicRoutes(api)
	imageHandler.RegisterRoutes(api)

	protected := api.Group("/")
	protected.Use(middleware.JWTAuth(tokens))
	propertyHandler.RegisterProtectedRoutes(protected)

	admin := api.Group("/admin")
	admin.Use(middleware.JWTAuth(tokens), middleware.RequireAdmin())
	adminHandler.RegisterRoutes(admin)

	log.Printf("RealEstate service running on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
