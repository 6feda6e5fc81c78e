package bookings

import (
	"net/http"

	"tripbook/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type Controller struct {
	service   Service
	validator *validator.Validate
}

func NewController(service Service) *Controller {
	return &Controller{
		service:   service,
		validator: validator.New(),
	}
}

// CreateBooking handles POST /bookings
func (c *Controller) CreateBooking(ctx *gin.Context) {
	userID, ok := authenticatedUserID(ctx)
	if !ok {
		response.Error(ctx, http.StatusUnauthorized, "User not authenticated", nil)
		return
	}

	var req CreateBookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	req.UserID = userID

	confirmation, err := c.service.CreateBooking(ctx.Request.Context(), &req)
	if err != nil {
		respondError(ctx, err, "Failed to create booking")
		return
	}

	response.Success(ctx, http.StatusCreated, "Booking created", confirmation)
}

// GetBooking handles GET /bookings/:id
func (c *Controller) GetBooking(ctx *gin.Context) {
	bookingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid booking id", nil)
		return
	}

	booking, err := c.service.GetBooking(ctx.Request.Context(), bookingID)
	if err != nil {
		respondError(ctx, err, "Failed to fetch booking")
		return
	}

	if !c.mayAccess(ctx, booking) {
		response.Error(ctx, http.StatusForbidden, "Insufficient permissions", nil)
		return
	}

	response.Success(ctx, http.StatusOK, "Booking retrieved", booking)
}

// GetGroupBookings handles GET /bookings/group/:groupId
func (c *Controller) GetGroupBookings(ctx *gin.Context) {
	groupID, err := uuid.Parse(ctx.Param("groupId"))
	if err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid group id", nil)
		return
	}

	list, err := c.service.GetGroupBookings(ctx.Request.Context(), groupID)
	if err != nil {
		respondError(ctx, err, "Failed to fetch group bookings")
		return
	}

	response.Success(ctx, http.StatusOK, "Group bookings retrieved", list)
}

// ProcessPayment handles POST /bookings/:id/payment
func (c *Controller) ProcessPayment(ctx *gin.Context) {
	bookingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid booking id", nil)
		return
	}

	var req ProcessPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	result, err := c.service.ProcessPayment(ctx.Request.Context(), bookingID, &req)
	if err != nil {
		respondError(ctx, err, "Failed to process payment")
		return
	}

	if !result.Success {
		// The charge was declined and the booking is now failed.
		response.RespondJSON(ctx, "error", http.StatusPaymentRequired, "Payment declined", result, nil)
		return
	}

	response.Success(ctx, http.StatusOK, "Payment processed", result)
}

// CancelBooking handles POST /bookings/:id/cancel
func (c *Controller) CancelBooking(ctx *gin.Context) {
	bookingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid booking id", nil)
		return
	}

	var req CancelBookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		response.Error(ctx, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	result, err := c.service.CancelBooking(ctx.Request.Context(), bookingID, &req)
	if err != nil {
		respondError(ctx, err, "Failed to cancel booking")
		return
	}

	response.Success(ctx, http.StatusOK, "Booking cancelled", result)
}

// ModifyBooking handles PATCH /bookings/:id
func (c *Controller) ModifyBooking(ctx *gin.Context) {
	bookingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid booking id", nil)
		return
	}

	var req ModifyBookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if req.Modifications.IsEmpty() && req.SpecialRequests == nil {
		response.Error(ctx, http.StatusBadRequest, "No modifications provided", nil)
		return
	}

	result, err := c.service.ModifyBooking(ctx.Request.Context(), bookingID, &req)
	if err != nil {
		respondError(ctx, err, "Failed to modify booking")
		return
	}

	response.Success(ctx, http.StatusOK, "Booking modified", result)
}

// respondError maps error kinds onto HTTP statuses.
func respondError(ctx *gin.Context, err error, fallback string) {
	switch KindOf(err) {
	case KindValidation:
		response.Error(ctx, http.StatusBadRequest, err.Error(), nil)
	case KindNotFound:
		response.Error(ctx, http.StatusNotFound, err.Error(), nil)
	case KindStateConflict:
		response.Error(ctx, http.StatusConflict, err.Error(), nil)
	default:
		response.Error(ctx, http.StatusBadGateway, fallback, err.Error())
	}
}

func authenticatedUserID(ctx *gin.Context) (uuid.UUID, bool) {
	raw, exists := ctx.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}
	str, ok := raw.(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(str)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// mayAccess allows owners and admins to read a booking.
func (c *Controller) mayAccess(ctx *gin.Context, booking *Booking) bool {
	if role, exists := ctx.Get("user_role"); exists {
		if roleStr, ok := role.(string); ok && roleStr == "ADMIN" {
			return true
		}
	}
	userID, ok := authenticatedUserID(ctx)
	return ok && userID == booking.UserID
}
