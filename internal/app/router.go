package app

import (
	"github.com/Sitalakshmib/AceIt-sub001/docs"
	"github.com/Sitalakshmib/AceIt-sub001/internal/config"
	"github.com/Sitalakshmib/AceIt-sub001/internal/middleware"
	"github.com/Sitalakshmib/AceIt-sub001/pkg/monitoring"

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
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}

	// 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		authGroup.GET("/profile", c.auth.GetProfile)

		// 进度仪表盘
		authGroup.GET("/progress/dashboard", c.progress.GetDashboard)
		authGroup.GET("/progress/snapshot", c.progress.GetSnapshot)
		authGroup.POST("/progress/preview", c.progress.PreviewReport)

		// 练习记录
		authGroup.POST("/activities", c.activity.RecordActivity)
		authGroup.GET("/activities", c.activity.GetRecentActivities)
		authGroup.POST("/aptitude/results", c.activity.RecordAptitudeResult)
		authGroup.POST("/coding/submissions", c.activity.RecordCodingSubmission)
		authGroup.POST("/interviews/sessions", c.activity.RecordInterviewSession)

		// 简历
		authGroup.POST("/resume/upload", c.resume.UploadResume)
		authGroup.GET("/resume/reviews", c.resume.GetReviews)
	}
}
