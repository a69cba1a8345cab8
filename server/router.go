package server

import (
	"net/http"
	"time"

	"granitereply/domain/repository"
	httpHandler "granitereply/interfaces/http"
	"granitereply/interfaces/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func InitiateRouter(
	userHandler httpHandler.IUserHandler,
	aiHandler httpHandler.IAIHandler,
	reviewHandler httpHandler.IReviewHandler,
	siteHandler httpHandler.ISiteHandler,
	googleOAuthHandler httpHandler.IGoogleOAuthHandler,
	userRepository repository.IUser,
	secretKey string,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"https://granitereply.com", "https://app.granitereply.com", "http://localhost:3000", "http://localhost:4200"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.POST("/login", userHandler.Login)
	router.POST("/register", userHandler.Register)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// OAuth connect flow (approval happens in the browser)
	if googleOAuthHandler != nil {
		router.GET("/auth/google", googleOAuthHandler.GetAuthURL)
		router.GET("/auth/google/callback", googleOAuthHandler.Callback)
	}

	// Public marketing-site endpoints
	if siteHandler != nil {
		router.POST("/api/chat", siteHandler.Chat)
		router.POST("/api/demo/generate", siteHandler.Demo)
		router.POST("/api/leads/submit", siteHandler.SubmitLead)
	}

	api := router.Group("api")
	api.Use(middleware.Auth(userRepository, secretKey))

	if aiHandler != nil {
		ai := api.Group("/ai")
		{
			ai.POST("/generate", aiHandler.Generate)
			ai.POST("/sentiment", aiHandler.Sentiment)
			ai.POST("/improve", aiHandler.Improve)
		}
	}

	if reviewHandler != nil {
		reviews := api.Group("/reviews")
		{
			reviews.POST("/sync", reviewHandler.Sync)
			reviews.POST("/respond", reviewHandler.Respond)
		}
	}

	return router
}
