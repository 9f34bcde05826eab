package http

import (
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ireporter/api/internal/domain/contract"
	"github.com/ireporter/api/internal/domain/entity"
	"github.com/ireporter/api/internal/handler/http/middleware"
	"github.com/ireporter/api/internal/usecase"
	usecasecontract "github.com/ireporter/api/internal/usecase/contract"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Router owns the handlers and the dependencies the middleware chain needs.
type Router struct {
	authHandler   *AuthHandler
	oauthHandler  *OAuthHandler
	userHandler   *UserHandler
	reportHandler *ReportHandler
	sessionTokens usecase.SessionTokenService
	userRepo      contract.IUserRepository
}

// OAuthCredentials carries the Google client pair; empty values disable the
// OAuth routes.
type OAuthCredentials struct {
	ClientID     string
	ClientSecret string
}

func NewRouter(
	authUsecase usecasecontract.IAuthUseCase,
	userUsecase usecasecontract.IUserUseCase,
	reportUsecase usecasecontract.IReportUseCase,
	sessionTokens usecase.SessionTokenService,
	userRepo contract.IUserRepository,
	cfg usecasecontract.IConfigProvider,
	oauth OAuthCredentials,
	cookieSecure bool,
) *Router {
	return &Router{
		authHandler:   NewAuthHandler(authUsecase, cfg, cookieSecure),
		oauthHandler:  NewOAuthHandler(authUsecase, cfg, oauth.ClientID, oauth.ClientSecret, cookieSecure),
		userHandler:   NewUserHandler(userUsecase),
		reportHandler: NewReportHandler(reportUsecase),
		sessionTokens: sessionTokens,
		userRepo:      userRepo,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// rate limiter configuration
	lmt := tollbooth.NewLimiter(10, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage("Too many requests, please try again later.")
	router.Use(middleware.RateLimiter(lmt))
	router.Use(middleware.Metrics())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")

	protect := middleware.Protect(r.sessionTokens, r.userRepo)
	adminOnly := middleware.RestrictTo(entity.UserRoleAdmin)

	users := v1.Group("/users")
	{
		users.POST("/signup", r.authHandler.Signup)
		users.POST("/complete-signup/:token", r.authHandler.CompleteSignup)
		users.POST("/login", r.authHandler.Login)
		users.GET("/logout", r.authHandler.Logout)
		users.POST("/forgotpassword", r.authHandler.ForgotPassword)
		users.POST("/resetpassword/:token", r.authHandler.ResetPassword)

		// Google OAuth endpoints
		users.GET("/google/login", r.oauthHandler.HandleGoogleLogin)
		users.GET("/google/callback", r.oauthHandler.HandleGoogleCallback)

		// Routes below require a valid session.
		users.POST("/updatepassword", protect, r.authHandler.UpdatePassword)
		users.GET("/me", protect, r.userHandler.GetMe)
		users.PATCH("/updateme", protect, r.userHandler.UpdateMe)
		users.DELETE("/deleteme", protect, r.userHandler.DeleteMe)

		// Administrative user management.
		users.GET("", protect, adminOnly, r.userHandler.ListUsers)
		users.GET("/:id", protect, adminOnly, r.userHandler.GetUser)
		users.PATCH("/:id/promote", protect, adminOnly, r.userHandler.PromoteUser)
		users.PATCH("/:id/demote", protect, adminOnly, r.userHandler.DemoteUser)
		users.DELETE("/:id", protect, adminOnly, r.userHandler.DeleteUser)
	}

	reports := v1.Group("/reports")
	reports.Use(protect)
	{
		reports.POST("", r.reportHandler.CreateReport)
		reports.GET("", r.reportHandler.ListReports)
		reports.GET("/:id", r.reportHandler.GetReport)
		reports.PATCH("/:id", r.reportHandler.UpdateReport)
		reports.DELETE("/:id", r.reportHandler.DeleteReport)
		reports.PATCH("/status/:id", adminOnly, r.reportHandler.ChangeReportStatus)
	}
}
