package routes

import (
	authapi "academy-cms/internal/api/auth"
	contentapi "academy-cms/internal/api/content"
	formsapi "academy-cms/internal/api/forms"
	"academy-cms/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	// Public: content and forms readable by anonymous visitors, submissions
	// pass through input sanitization.
	api.GET("/content/:pageKey", contentapi.GetContent)
	api.GET("/forms/:pageKey", formsapi.GetPublicForm)

	submit := api.Group("/")
	submit.Use(middleware.SanitizeAndCleanInputMiddleware())
	submit.POST("/forms/:pageKey/submit", formsapi.Submit)

	// Session endpoints stay outside the auth gate.
	api.POST("/admin/login", authapi.Login)
	api.POST("/admin/logout", authapi.Logout)
	api.GET("/admin/check-auth", authapi.CheckAuth)

	// Admin
	admin := api.Group("/admin")
	admin.Use(middleware.RequireAdmin())
	admin.GET("/pages", contentapi.ListPages)
	admin.GET("/content/:pageKey", contentapi.GetContent)
	admin.PUT("/content/:pageKey", contentapi.UpdateContent)
	admin.POST("/migrate-content", contentapi.MigrateContent)

	admin.GET("/forms", formsapi.ListForms)
	admin.POST("/forms", formsapi.CreateForm)
	admin.GET("/forms/:pageKey", formsapi.GetForm)
	admin.PUT("/forms/:pageKey", formsapi.UpdateForm)
	admin.DELETE("/forms/:pageKey", formsapi.DeleteForm)

	admin.GET("/submissions", formsapi.ListSubmissions)
}
