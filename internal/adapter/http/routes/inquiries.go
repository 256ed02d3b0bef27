package routes

import (
	"github.com/x17green/realest-sub003/internal/adapter/http/handlers"
	"github.com/x17green/realest-sub003/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const PathInquiries = "/inquiries"

func addInquiryRoutes(rg *gin.RouterGroup, inquiryHandler *handlers.InquiryHandler) {
	inquiries := rg.Group(PathInquiries, middleware.RequireAuth())
	{
		inquiries.GET("", inquiryHandler.ListReceivedInquiries)
		inquiries.PATCH("/:id/respond", inquiryHandler.RespondInquiry)
		inquiries.PATCH("/:id/close", inquiryHandler.CloseInquiry)
	}
}
