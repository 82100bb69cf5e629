package handler

import (
	"strconv"
	"time"

	"github.com/cleansync/service-booking/internal/application"
	bookingDomain "github.com/cleansync/service-booking/internal/domain/booking"
	"github.com/cleansync/service-booking/internal/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const serviceDateLayout = "2006-01-02"

// BookingHandler handles HTTP requests for booking operations.
type BookingHandler struct {
	service *application.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(service *application.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// RegisterRoutes registers all booking routes on the given router group.
func (h *BookingHandler) RegisterRoutes(r *gin.RouterGroup) {
	bookings := r.Group("/api/v1/bookings")
	{
		bookings.POST("", h.CreateBooking)
		bookings.GET("", h.ListBookings)
		bookings.GET("/upcoming", h.ListUpcomingBookings)
		bookings.GET("/completed", h.ListCompletedBookings)
		bookings.GET("/stats", h.GetBookingStats)
		bookings.GET("/:id", h.GetBooking)
		bookings.PUT("/:id/status", h.SetBookingStatus)
		bookings.POST("/:id/cancel", h.CancelBooking)
	}
}

// CreateBooking handles POST /api/v1/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req application.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// ListBookings handles GET /api/v1/bookings. All query filters are optional
// and combined conjunctively.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	filter, ok := parseBookingFilter(c)
	if !ok {
		return
	}
	page, limit := parsePagination(c)

	result, err := h.service.ListBookings(c.Request.Context(), filter, page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Paginated(c, result.Items, result.Total, result.Page, result.Limit)
}

// ListUpcomingBookings handles GET /api/v1/bookings/upcoming: bookings with
// a service date from today onwards.
func (h *BookingHandler) ListUpcomingBookings(c *gin.Context) {
	today := time.Now().UTC().Truncate(24 * time.Hour)
	filter := bookingDomain.Filter{ServiceDateFrom: &today}
	page, limit := parsePagination(c)

	result, err := h.service.ListBookings(c.Request.Context(), filter, page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Paginated(c, result.Items, result.Total, result.Page, result.Limit)
}

// ListCompletedBookings handles GET /api/v1/bookings/completed: bookings
// whose status is "Completed" in any casing.
func (h *BookingHandler) ListCompletedBookings(c *gin.Context) {
	filter := bookingDomain.Filter{StatusFold: string(bookingDomain.StatusCompleted)}
	page, limit := parsePagination(c)

	result, err := h.service.ListBookings(c.Request.Context(), filter, page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Paginated(c, result.Items, result.Total, result.Page, result.Limit)
}

// GetBookingStats handles GET /api/v1/bookings/stats.
func (h *BookingHandler) GetBookingStats(c *gin.Context) {
	result, err := h.service.GetBookingStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetBooking handles GET /api/v1/bookings/:id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid booking ID")
		return
	}

	result, err := h.service.GetBooking(c.Request.Context(), bookingID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// SetBookingStatus handles PUT /api/v1/bookings/:id/status?status=NewStatus.
func (h *BookingHandler) SetBookingStatus(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid booking ID")
		return
	}

	status := c.Query("status")
	if status == "" {
		response.BadRequest(c, "status query parameter is required")
		return
	}

	result, err := h.service.SetStatus(c.Request.Context(), bookingID, status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// CancelBooking handles POST /api/v1/bookings/:id/cancel.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid booking ID")
		return
	}

	result, err := h.service.CancelBooking(c.Request.Context(), bookingID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// parseBookingFilter reads the optional query filters. On a malformed value
// it writes a 400 response and returns ok=false.
func parseBookingFilter(c *gin.Context) (bookingDomain.Filter, bool) {
	var filter bookingDomain.Filter

	if raw := c.Query("customer_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(c, "invalid customer_id")
			return filter, false
		}
		filter.CustomerID = &id
	}
	if raw := c.Query("provider_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(c, "invalid provider_id")
			return filter, false
		}
		filter.ProviderID = &id
	}
	if raw := c.Query("service_date"); raw != "" {
		date, err := time.Parse(serviceDateLayout, raw)
		if err != nil {
			response.BadRequest(c, "invalid service_date, expected YYYY-MM-DD")
			return filter, false
		}
		filter.ServiceDate = &date
	}
	filter.Status = c.Query("status")

	return filter, true
}

// parsePagination extracts page and limit query parameters with defaults.
func parsePagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	return page, limit
}
