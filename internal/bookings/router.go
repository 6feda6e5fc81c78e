package bookings

import (
	"tripbook/internal/shared/config"
	"tripbook/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// Router handles booking-related routes
type Router struct {
	controller *Controller
	config     *config.Config
}

// NewRouter creates a new bookings router
func NewRouter(controller *Controller, cfg *config.Config) *Router {
	return &Router{
		controller: controller,
		config:     cfg,
	}
}

// SetupRoutes registers all booking routes
func (br *Router) SetupRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/bookings")
	group.Use(middleware.JWTAuthWithConfig(br.config))
	{
		group.POST("", br.controller.CreateBooking)
		group.GET("/:id", br.controller.GetBooking)
		group.PATCH("/:id", br.controller.ModifyBooking)
		group.POST("/:id/payment", br.controller.ProcessPayment)
		group.POST("/:id/cancel", br.controller.CancelBooking)
		group.GET("/group/:groupId", br.controller.GetGroupBookings)
	}
}
