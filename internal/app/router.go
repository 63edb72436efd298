package app

import (
	"kanasense_backend/docs"
	"kanasense_backend/internal/config"
	"kanasense_backend/internal/middleware"
	"kanasense_backend/pkg/monitoring"
	"kanasense_backend/pkg/security"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 公共路由(无需登录)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)

		// 游客身份随便领，认证口必须单独限得更死
		auth := public.Group("/auth", security.AuthRateLimiter())
		{
			auth.POST("/guest", c.auth.CreateGuest)
			auth.POST("/user", c.auth.ResumeUser)
		}

		// 层级信息是静态描述，关卡选择界面无登录也要能展示
		public.GET("/quiz/level/:level", c.quiz.GetLevelInfo)
	}

	// 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		quiz := authGroup.Group("/quiz", security.QuizRateLimiter())
		{
			quiz.GET("/questions/:level", c.quiz.GetQuestions)
			quiz.POST("/submit", c.quiz.Submit)
		}

		progress := authGroup.Group("/progress")
		{
			progress.GET("", c.progress.GetProgress)
			progress.POST("/update", c.progress.UpdateProgress)
			progress.POST("/sync", c.progress.SyncProgress)
			progress.GET("/level/:level", c.progress.GetLevelProgress)
			progress.POST("/reset", c.progress.ResetProgress)
		}

		user := authGroup.Group("/user")
		{
			user.GET("/profile", c.user.GetProfile)
			user.PATCH("/profile", c.user.UpdateProfile)
			user.GET("/stats", c.user.GetStats)
			user.GET("/leaderboard", c.user.GetLeaderboard)
		}
	}
}
