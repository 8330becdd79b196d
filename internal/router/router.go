package router

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/liferpg/internal/handler"
	"gorm.io/gorm"
)

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(gdb *gorm.DB, sessionSecret string) *gin.Engine {
	r := gin.Default()

	// 配置会话中间件
	store := cookie.NewStore([]byte(sessionSecret))
	r.Use(sessions.Sessions("liferpg_session", store))

	api := handler.NewAPI(gdb)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	r.GET("/login", api.LoginPage)
	r.POST("/login", api.Login)
	r.GET("/logout", api.Logout)

	// 需要认证的 API 路由
	authed := r.Group("/api")
	authed.Use(handler.AuthRequired())
	{
		authed.GET("/habits", api.ListHabits)
		authed.POST("/habits", api.CreateHabit)
		authed.GET("/habits/:id", api.GetHabit)
		authed.PUT("/habits/:id", api.UpdateHabit)
		authed.DELETE("/habits/:id", api.DeleteHabit)

		authed.GET("/logs", api.ListDailyLogs)
		authed.GET("/logs/:date", api.GetDailyLog)
		authed.PUT("/logs/:date/items", api.UpsertLogItem)

		authed.GET("/journal/:date", api.GetJournalEntry)
		authed.PUT("/journal/:date", api.SaveJournalEntry)
		authed.GET("/journal/:date/html", api.RenderJournalEntry)

		authed.GET("/dashboard", api.GetDashboard)
		authed.GET("/dashboard/recovery", api.GetRecovery)
		authed.GET("/dashboard/quote", api.GetQuote)

		authed.GET("/settings", api.GetSettings)
		authed.PUT("/settings", api.UpdateSettings)

		authed.GET("/export", api.ExportData)
		authed.POST("/import", api.ImportData)
		authed.POST("/clear", api.ClearData)
	}

	return r
}
