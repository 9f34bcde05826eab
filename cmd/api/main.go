package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	handlerHttp "github.com/ireporter/api/internal/handler/http"
	redisclient "github.com/ireporter/api/internal/infrastructure/cache"
	"github.com/ireporter/api/internal/infrastructure/config"
	database "github.com/ireporter/api/internal/infrastructure/database"
	"github.com/ireporter/api/internal/infrastructure/external_services"
	"github.com/ireporter/api/internal/infrastructure/jwt"
	"github.com/ireporter/api/internal/infrastructure/logger"
	passwordservice "github.com/ireporter/api/internal/infrastructure/password_service"
	randomgenerator "github.com/ireporter/api/internal/infrastructure/random_generator"
	"github.com/ireporter/api/internal/infrastructure/repository/mongodb"
	"github.com/ireporter/api/internal/infrastructure/store"
	"github.com/ireporter/api/internal/infrastructure/uuidgen"
	"github.com/ireporter/api/internal/infrastructure/validator"
	"github.com/ireporter/api/internal/usecase"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		log.Fatal("MONGODB_URI environment variable not set")
	}
	dbName := os.Getenv("MONGODB_DB_NAME")
	if dbName == "" {
		log.Fatal("MONGODB_DB_NAME environment variable not set")
	}

	mongoClient, err := database.NewMongoDBClient(mongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect()

	// Initialize email service
	smtpHost := os.Getenv("EMAIL_HOST")
	smtpPort := os.Getenv("EMAIL_PORT")
	smtpUsername := os.Getenv("EMAIL_USERNAME")
	smtpPassword := os.Getenv("EMAIL_APP_PASSWORD")
	smtpFrom := os.Getenv("EMAIL_FROM")

	// Initialize Gin router
	router := gin.Default()

	// Dependency Injection: Repositories
	db := mongoClient.Client.Database(dbName)
	userRepo := mongodb.NewMongoUserRepository(db.Collection("users"))
	unverifiedRepo := mongodb.NewUnverifiedUserRepository(db.Collection("unverified_users"))
	reportRepo := mongodb.NewReportRepository(db.Collection("reports"))

	// Uniqueness of email, username and phone number is enforced in the store.
	if err := userRepo.EnsureIndexes(context.Background()); err != nil {
		log.Fatalf("Failed to create user indexes: %v", err)
	}
	if err := unverifiedRepo.EnsureIndexes(context.Background()); err != nil {
		log.Fatalf("Failed to create pending-signup indexes: %v", err)
	}

	// Dependency Injection: Services
	appConfig := config.NewConfig()
	hasher := passwordservice.NewHasher()
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable not set")
	}
	sessionTokens := jwt.NewManager(jwtSecret, appConfig.GetSessionTokenExpiry())
	appLogger := logger.NewStdLogger()
	mailService := external_services.NewEmailService(smtpHost, smtpPort, smtpUsername, smtpPassword, smtpFrom)
	randomGenerator := randomgenerator.NewRandomGenerator()
	appValidator := validator.NewValidator()
	uuidGenerator := uuidgen.NewGenerator()

	// Optional Dependency Injection: Redis report cache
	var reportCache *store.ReportCacheStore
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		rdb := redisclient.NewRedisFromURL(context.Background(), redisURL)
		if rdb != nil {
			defer redisclient.Close(rdb)
			reportCache = store.NewReportCacheStore(rdb)
		}
	}

	// Dependency Injection: Usecases
	authUsecase := usecase.NewAuthUsecase(userRepo, unverifiedRepo, hasher, sessionTokens, mailService, randomGenerator, uuidGenerator, appLogger, appConfig, appValidator)
	userUsecase := usecase.NewUserUsecase(userRepo, appLogger, appValidator)
	var reportUsecase *usecase.ReportUsecase
	if reportCache != nil {
		reportUsecase = usecase.NewReportUsecase(reportRepo, userRepo, reportCache, mailService, uuidGenerator, appLogger, appConfig)
	} else {
		reportUsecase = usecase.NewReportUsecase(reportRepo, userRepo, nil, mailService, uuidGenerator, appLogger, appConfig)
	}

	// Setup API routes
	appRouter := handlerHttp.NewRouter(
		authUsecase, userUsecase, reportUsecase,
		sessionTokens, userRepo, appConfig,
		handlerHttp.OAuthCredentials{
			ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
			ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		},
		appConfig.GetCookieSecure(),
	)
	appRouter.SetupRoutes(router)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
