package routes

import (
	"github.com/x17green/realest-sub003/internal/adapter/http/handlers"
	"github.com/x17green/realest-sub003/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const PathProperties = "/properties"

func addPropertyRoutes(rg *gin.RouterGroup, propertyHandler *handlers.PropertyHandler, inquiryHandler *handlers.InquiryHandler) {
	properties := rg.Group(PathProperties)
	{
		// Public surface. OptionalAuth lets owners and admins see their own
		// non-public listings on the detail route.
		properties.GET("", propertyHandler.SearchProperties)
		properties.GET("/:id", middleware.OptionalAuth(), propertyHandler.GetProperty)

		// Submission requires a listing-capable role.
		properties.POST("",
			middleware.RequireAuth(),
			middleware.RequireRole("owner", "agent"),
			propertyHandler.CreateProperty,
		)
		properties.PATCH("/:id/submit",
			middleware.RequireAuth(),
			middleware.RequireRole("owner", "agent"),
			propertyHandler.SubmitProperty,
		)

		properties.POST("/:id/inquiries",
			middleware.RequireAuth(),
			inquiryHandler.CreateInquiry,
		)
	}
}
