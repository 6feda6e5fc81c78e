package catalog

import (
	"github.com/gin-gonic/gin"
)

// Router handles catalog browse routes
type Router struct {
	controller *Controller
}

// NewRouter creates a new catalog router
func NewRouter(controller *Controller) *Router {
	return &Router{controller: controller}
}

// SetupRoutes registers all catalog routes. Browsing is public; no
// authentication middleware is attached.
func (cr *Router) SetupRoutes(rg *gin.RouterGroup) {
	destinations := rg.Group("/destinations")
	{
		destinations.GET("", cr.controller.ListDestinations)
		destinations.GET("/:id", cr.controller.GetDestination)
		destinations.GET("/:id/hotels", cr.controller.GetHotels)
		destinations.GET("/:id/restaurants", cr.controller.GetRestaurants)
		destinations.GET("/:id/activities", cr.controller.GetActivities)
	}

	rg.GET("/hotels/:id", cr.controller.GetHotel)
	rg.GET("/restaurants/:id", cr.controller.GetRestaurant)
	rg.GET("/activities/:id", cr.controller.GetActivity)
}
