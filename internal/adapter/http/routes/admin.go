package routes

import (
	"github.com/x17green/realest-sub003/internal/adapter/http/handlers"
	"github.com/x17green/realest-sub003/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const PathAdmin = "/admin"

func addAdminRoutes(rg *gin.RouterGroup, adminHandler *handlers.AdminHandler) {
	admin := rg.Group(PathAdmin, middleware.RequireAuth(), middleware.RequireRole("admin"))
	{
		admin.PATCH("/properties/:id/status", adminHandler.UpdatePropertyStatus)
		admin.PATCH("/properties/:id/verification", adminHandler.UpdatePropertyVerification)
		admin.GET("/analytics/overview", adminHandler.AnalyticsOverview)
	}
}
