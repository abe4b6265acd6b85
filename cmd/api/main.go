package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	handlerHttp "github.com/bloghub/bloghub/internal/handler/http"
	redisclient "github.com/bloghub/bloghub/internal/infrastructure/cache"
	"github.com/bloghub/bloghub/internal/infrastructure/config"
	database "github.com/bloghub/bloghub/internal/infrastructure/database"
	"github.com/bloghub/bloghub/internal/infrastructure/jwt"
	"github.com/bloghub/bloghub/internal/infrastructure/logger"
	passwordservice "github.com/bloghub/bloghub/internal/infrastructure/password_service"
	"github.com/bloghub/bloghub/internal/infrastructure/repository/mongodb"
	"github.com/bloghub/bloghub/internal/infrastructure/store"
	"github.com/bloghub/bloghub/internal/infrastructure/uuidgen"
	"github.com/bloghub/bloghub/internal/infrastructure/validator"
	"github.com/bloghub/bloghub/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	appConfig := config.NewConfig()
	if appConfig.MongoURI == "" {
		log.Fatal("MONGODB_URI environment variable not set")
	}
	if appConfig.JWTSecret == "" {
		log.Fatal("JWT_SECRET environment variable not set")
	}

	// Establish MongoDB connection
	mongoClient, err := database.NewMongoDBClient(appConfig.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect()

	db := mongoClient.Client.Database(appConfig.MongoDBName)

	// Dependency Injection: Repositories
	userRepo := mongodb.NewMongoUserRepository(db.Collection("users"))
	blogRepo := mongodb.NewBlogRepository(db)

	indexCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := userRepo.EnsureIndexes(indexCtx); err != nil {
		log.Fatalf("Failed to create user indexes: %v", err)
	}
	if err := blogRepo.EnsureIndexes(indexCtx); err != nil {
		log.Fatalf("Failed to create blog indexes: %v", err)
	}

	// Dependency Injection: Services
	hasher := passwordservice.NewHasher()
	jwtManager := jwt.NewJWTManager(appConfig.JWTSecret, time.Duration(appConfig.AccessTokenExpiryMinutes)*time.Minute)
	jwtService := jwt.NewJWTService(jwtManager)
	appLogger := logger.NewLogger()
	appValidator := validator.NewValidator()
	uuidGenerator := uuidgen.NewGenerator()

	// Dependency Injection: Usecases
	userUsecase := usecase.NewUserUsecase(userRepo, hasher, jwtService, appLogger, appValidator, uuidGenerator)
	blogUsecase := usecase.NewBlogUsecase(blogRepo, userRepo, uuidGenerator, appLogger)

	// Optional Dependency Injection: Redis cache
	if appConfig.RedisURL != "" {
		rdb := redisclient.NewRedisFromURL(context.Background(), appConfig.RedisURL)
		defer redisclient.Close(rdb)
		blogUsecase.SetBlogCache(store.NewBlogCacheStore(rdb))
	}

	// Setup API routes
	router := gin.Default()
	appRouter := handlerHttp.NewRouter(userUsecase, blogUsecase, jwtService, appLogger)
	appRouter.SetupRoutes(router)

	// Start the server
	log.Printf("Server running on port %s", appConfig.Port)
	if err := router.Run(":" + appConfig.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
