package app

import (
	"odyssey_backend/docs"
	"odyssey_backend/internal/config"
	"odyssey_backend/internal/middleware"
	"odyssey_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 公共路由（无需令牌）
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/auth/link", c.auth.Link)
	}

	// 授权路由。auth.enabled=false 时中间件放行
	api := router.Group("/api")
	api.Use(middleware.AuthMiddleware(cfg))
	{
		session := api.Group("/session")
		{
			session.GET("", c.session.GetSession)
			session.PUT("/view", c.session.SelectView)
			session.POST("/xp", c.session.AwardExperience)
			session.GET("/logs", c.session.GetLogs)
			session.POST("/logs", c.session.RecordLog)
			session.PUT("/notes", c.session.UpdateNotes)
			session.PUT("/cursor", c.session.SetCursor)
			session.PUT("/preferences", c.session.SetPreferences)
			session.POST("/initialized", c.session.MarkInitialized)
			session.GET("/export", c.session.Export)
		}

		roadmap := api.Group("/roadmap")
		{
			roadmap.GET("", c.roadmap.GetRoadmap)
			roadmap.POST("/modules/:id/days/:day/toggle", c.roadmap.ToggleDay)
			roadmap.POST("/modules/:id/days/:day/quiz", c.roadmap.SubmitQuiz)
			roadmap.POST("/modules/:id/days/:day/briefing", c.roadmap.Briefing)
		}

		project := api.Group("/project")
		{
			project.POST("/generate", c.project.Generate)
			project.POST("/blueprint", c.project.RegenerateBlueprint)
			project.POST("/tasks", c.project.InjectTask)
			project.PUT("/tasks/:id/toggle", c.project.ToggleTask)
			project.DELETE("", c.project.Reset)
		}

		mentor := api.Group("/mentor")
		{
			mentor.POST("/ask", c.mentor.Ask)
			mentor.GET("/history", c.mentor.History)
			mentor.DELETE("/history", c.mentor.ResetHistory)
			mentor.PUT("/persona", c.mentor.SetPersona)
		}

		api.GET("/stats", c.stats.GetStats)
	}
}
