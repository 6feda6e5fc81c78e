package catalog

import (
	"errors"
	"net/http"

	"tripbook/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// ListDestinations handles GET /destinations
func (c *Controller) ListDestinations(ctx *gin.Context) {
	var filters DestinationFilters
	if err := ctx.ShouldBindQuery(&filters); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid query parameters", err.Error())
		return
	}

	result, err := c.service.ListDestinations(ctx.Request.Context(), filters)
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to list destinations", err.Error())
		return
	}

	response.Success(ctx, http.StatusOK, "Destinations retrieved", result)
}

// GetDestination handles GET /destinations/:id
func (c *Controller) GetDestination(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid destination id", nil)
		return
	}

	destination, err := c.service.GetDestination(ctx.Request.Context(), id)
	if err != nil {
		respondCatalogError(ctx, err, "Failed to fetch destination")
		return
	}

	response.Success(ctx, http.StatusOK, "Destination retrieved", destination)
}

// GetHotels handles GET /destinations/:id/hotels
func (c *Controller) GetHotels(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid destination id", nil)
		return
	}

	hotels, err := c.service.GetHotels(ctx.Request.Context(), id)
	if err != nil {
		respondCatalogError(ctx, err, "Failed to fetch hotels")
		return
	}

	response.Success(ctx, http.StatusOK, "Hotels retrieved", hotels)
}

// GetRestaurants handles GET /destinations/:id/restaurants
func (c *Controller) GetRestaurants(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid destination id", nil)
		return
	}

	restaurants, err := c.service.GetRestaurants(ctx.Request.Context(), id)
	if err != nil {
		respondCatalogError(ctx, err, "Failed to fetch restaurants")
		return
	}

	response.Success(ctx, http.StatusOK, "Restaurants retrieved", restaurants)
}

// GetActivities handles GET /destinations/:id/activities
func (c *Controller) GetActivities(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid destination id", nil)
		return
	}

	activities, err := c.service.GetActivities(ctx.Request.Context(), id)
	if err != nil {
		respondCatalogError(ctx, err, "Failed to fetch activities")
		return
	}

	response.Success(ctx, http.StatusOK, "Activities retrieved", activities)
}

// GetHotel handles GET /hotels/:id
func (c *Controller) GetHotel(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid hotel id", nil)
		return
	}

	hotel, err := c.service.GetHotel(ctx.Request.Context(), id)
	if err != nil {
		respondCatalogError(ctx, err, "Failed to fetch hotel")
		return
	}

	response.Success(ctx, http.StatusOK, "Hotel retrieved", hotel)
}

// GetRestaurant handles GET /restaurants/:id
func (c *Controller) GetRestaurant(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid restaurant id", nil)
		return
	}

	restaurant, err := c.service.GetRestaurant(ctx.Request.Context(), id)
	if err != nil {
		respondCatalogError(ctx, err, "Failed to fetch restaurant")
		return
	}

	response.Success(ctx, http.StatusOK, "Restaurant retrieved", restaurant)
}

// GetActivity handles GET /activities/:id
func (c *Controller) GetActivity(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid activity id", nil)
		return
	}

	activity, err := c.service.GetActivity(ctx.Request.Context(), id)
	if err != nil {
		respondCatalogError(ctx, err, "Failed to fetch activity")
		return
	}

	response.Success(ctx, http.StatusOK, "Activity retrieved", activity)
}

func respondCatalogError(ctx *gin.Context, err error, fallback string) {
	if errors.Is(err, ErrDestinationNotFound) || errors.Is(err, ErrItemNotFound) {
		response.Error(ctx, http.StatusNotFound, err.Error(), nil)
		return
	}
	response.Error(ctx, http.StatusInternalServerError, fallback, err.Error())
}
