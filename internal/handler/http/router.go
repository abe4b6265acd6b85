package http

import (
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	tollbooth_gin "github.com/didip/tollbooth_gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bloghub/bloghub/internal/domain/entity"
	"github.com/bloghub/bloghub/internal/handler/http/middleware"
	"github.com/bloghub/bloghub/internal/infrastructure/metrics"
	"github.com/bloghub/bloghub/internal/usecase"
	usecasecontract "github.com/bloghub/bloghub/internal/usecase/contract"
)

type Router struct {
	userHandler *UserHandler
	blogHandler *BlogHandler
	userUsecase usecasecontract.IUserUseCase
	jwtService  usecase.JWTService
	logger      usecasecontract.IAppLogger
}

func NewRouter(userUsecase usecasecontract.IUserUseCase, blogUsecase usecasecontract.IBlogUseCase, jwtService usecase.JWTService, logger usecasecontract.IAppLogger) *Router {
	return &Router{
		userHandler: NewUserHandler(userUsecase),
		blogHandler: NewBlogHandler(blogUsecase),
		userUsecase: userUsecase,
		jwtService:  jwtService,
		logger:      logger,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// rate limiter configuration
	lmt := tollbooth.NewLimiter(10, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage("Too many requests, please try again later.")
	router.Use(tollbooth_gin.LimitHandler(lmt))

	router.Use(metrics.Middleware())
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK", "message": "Server is running"})
	})

	// Public routes (no authentication required)
	auth := api.Group("/auth")
	{
		auth.POST("/signup", r.userHandler.Signup)
		auth.POST("/login", r.userHandler.Login)
	}

	// Protected routes (authentication required)
	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(r.jwtService, r.userUsecase, r.logger))
	{
		protected.GET("/me", r.userHandler.GetCurrentUser)

		// Blog routes
		protected.POST("/blogs", r.blogHandler.CreateBlogHandler)
		protected.GET("/blogs", r.blogHandler.ListApprovedHandler)
		protected.GET("/blogs/pending", r.blogHandler.ListPendingHandler)
		protected.GET("/blogs/stats", r.blogHandler.GetStatsHandler)
		protected.GET("/blogs/:id", r.blogHandler.GetBlogHandler)

		// Moderation: role check both here and in the usecase so the rule
		// holds even for callers that bypass the router.
		protected.PUT("/blogs/:id/status",
			middleware.RequireRole(entity.UserRoleAdmin),
			r.blogHandler.SetStatusHandler)

		// Interaction routes
		protected.POST("/blogs/:id/like", r.blogHandler.ToggleLikeHandler)
		protected.POST("/blogs/:id/comments", r.blogHandler.AddCommentHandler)
		protected.DELETE("/blogs/:id/comments/:commentId", r.blogHandler.DeleteCommentHandler)
	}
}
